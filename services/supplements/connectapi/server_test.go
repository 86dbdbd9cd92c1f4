package connectapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"supplements-backend/internal/components/telemetry"
	"supplements-backend/lib/scrapers/prices"
	"supplements-backend/lib/testutil"
	supplementsv1 "supplements-backend/proto/supplements/v1"
	"supplements-backend/proto/supplements/v1/supplementsv1connect"
	"supplements-backend/services/supplements"
	"supplements-backend/services/supplements/db"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

type staticFetcher map[string]float64

func (f staticFetcher) FetchPrice(ctx context.Context, url string) (float64, error) {
	price, ok := f[url]
	if !ok {
		return 0, fmt.Errorf("%w: status 404", prices.ErrBadResponse)
	}
	return price, nil
}

func connectHandler(path string, handler http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	return mux
}

func setupClient(t *testing.T) supplementsv1connect.SupplementsServiceClient {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "connectapi",
		DbSchema: db.Schema,
	})
	t.Cleanup(cleanup)

	recorder := &telemetry.Recorder{}
	svc := supplements.NewService(
		res.DB,
		staticFetcher{"https://www.amazon.com/ok": 21.5},
		supplements.WithCustomTelemetryAPI(recorder),
	)
	server := httptest.NewServer(
		connectHandler(supplementsv1connect.NewSupplementsServiceHandler(NewServer(svc, recorder))),
	)
	t.Cleanup(server.Close)
	return supplementsv1connect.NewSupplementsServiceClient(server.Client(), server.URL)
}

func TestCatalogRpcs(t *testing.T) {
	client := setupClient(t)
	ctx := context.Background()

	created, err := client.CreateSupplement(ctx, connect.NewRequest(&supplementsv1.CreateSupplementRequest{
		Name:       "Vitamin D",
		Price:      9.99,
		Categories: []string{"Vitamins"},
		StoreInfos: []*supplementsv1.NewStoreInfo{
			{Name: "Amazon", StoreUrl: "https://www.amazon.com/ok"},
		},
	}))
	require.NoError(t, err)
	supplement := created.Msg.GetSupplement()
	require.Equal(t, "Vitamin D", supplement.GetName())
	require.Len(t, supplement.GetStoreInfos(), 1)

	_, err = client.CreateSupplement(ctx, connect.NewRequest(&supplementsv1.CreateSupplementRequest{}))
	require.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	listed, err := client.ListSupplements(ctx, connect.NewRequest(&supplementsv1.ListSupplementsRequest{}))
	require.NoError(t, err)
	require.Len(t, listed.Msg.GetSupplements(), 1)

	updated, err := client.UpdateSupplement(ctx, connect.NewRequest(&supplementsv1.UpdateSupplementRequest{
		Id:       supplement.GetId(),
		Quantity: proto.Int64(12),
	}))
	require.NoError(t, err)
	require.EqualValues(t, 12, updated.Msg.GetSupplement().GetQuantity())
	require.Equal(t, "Vitamin D", updated.Msg.GetSupplement().GetName())

	refreshed, err := client.RefreshPrice(ctx, connect.NewRequest(&supplementsv1.RefreshPriceRequest{
		StoreInfoId: supplement.GetStoreInfos()[0].GetId(),
	}))
	require.NoError(t, err)
	require.Equal(t, 21.5, refreshed.Msg.GetPrice())

	store, err := client.AddStoreInfo(ctx, connect.NewRequest(&supplementsv1.AddStoreInfoRequest{
		SupplementId: supplement.GetId(),
		StoreInfo: &supplementsv1.NewStoreInfo{
			Name:     "Walmart",
			StoreUrl: "https://www.walmart.com/ip/10448595",
		},
	}))
	require.NoError(t, err)
	_, err = client.RefreshPrice(ctx, connect.NewRequest(&supplementsv1.RefreshPriceRequest{
		StoreInfoId: store.Msg.GetStoreInfo().GetId(),
	}))
	require.Equal(t, connect.CodeUnavailable, connect.CodeOf(err))

	search, err := client.SearchSupplements(ctx, connect.NewRequest(&supplementsv1.SearchSupplementsRequest{Query: "vitamin"}))
	require.NoError(t, err)
	require.Len(t, search.Msg.GetResults(), 1)

	categories, err := client.ListCategories(ctx, connect.NewRequest(&supplementsv1.ListCategoriesRequest{}))
	require.NoError(t, err)
	require.Equal(t, []string{"Vitamins"}, categories.Msg.GetCategories())

	_, err = client.DeleteSupplement(ctx, connect.NewRequest(&supplementsv1.DeleteSupplementRequest{Id: supplement.GetId()}))
	require.NoError(t, err)
	_, err = client.GetSupplement(ctx, connect.NewRequest(&supplementsv1.GetSupplementRequest{Id: supplement.GetId()}))
	require.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestCartAndOrderRpcs(t *testing.T) {
	client := setupClient(t)
	ctx := context.Background()

	created, err := client.CreateSupplement(ctx, connect.NewRequest(&supplementsv1.CreateSupplementRequest{
		Name: "Protein Powder",
		StoreInfos: []*supplementsv1.NewStoreInfo{
			{Name: "Walmart", StoreUrl: "https://www.walmart.com/ip/17476803", Price: proto.Float64(80)},
		},
	}))
	require.NoError(t, err)
	supplement := created.Msg.GetSupplement()

	_, err = client.AddToCart(ctx, connect.NewRequest(&supplementsv1.AddToCartRequest{
		SupplementId: supplement.GetId(),
		StoreInfoId:  supplement.GetStoreInfos()[0].GetId(),
		Quantity:     0,
	}))
	require.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	added, err := client.AddToCart(ctx, connect.NewRequest(&supplementsv1.AddToCartRequest{
		SupplementId: supplement.GetId(),
		StoreInfoId:  supplement.GetStoreInfos()[0].GetId(),
		Quantity:     1,
	}))
	require.NoError(t, err)

	_, err = client.SetQuantity(ctx, connect.NewRequest(&supplementsv1.SetQuantityRequest{
		CartItemId: added.Msg.GetItem().GetId(),
		Quantity:   2,
	}))
	require.NoError(t, err)

	cart, err := client.ListCart(ctx, connect.NewRequest(&supplementsv1.ListCartRequest{}))
	require.NoError(t, err)
	require.Len(t, cart.Msg.GetItems(), 1)
	require.Equal(t, 160.0, cart.Msg.GetTotal())
	require.Equal(t, 160.0, cart.Msg.GetItems()[0].GetSubtotal())

	order, err := client.Checkout(ctx, connect.NewRequest(&supplementsv1.CheckoutRequest{}))
	require.NoError(t, err)
	require.Len(t, order.Msg.GetOrder().GetItems(), 1)
	require.Equal(t, 160.0, order.Msg.GetOrder().GetTotal())
	require.Equal(t, order.Msg.GetOrder().GetId(), order.Msg.GetOrder().GetItems()[0].GetOrderId())

	_, err = client.Checkout(ctx, connect.NewRequest(&supplementsv1.CheckoutRequest{}))
	require.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	orders, err := client.ListOrders(ctx, connect.NewRequest(&supplementsv1.ListOrdersRequest{}))
	require.NoError(t, err)
	require.Len(t, orders.Msg.GetOrders(), 1)

	_, err = client.DeleteOrder(ctx, connect.NewRequest(&supplementsv1.DeleteOrderRequest{Id: order.Msg.GetOrder().GetId()}))
	require.NoError(t, err)
	_, err = client.GetOrder(ctx, connect.NewRequest(&supplementsv1.GetOrderRequest{Id: order.Msg.GetOrder().GetId()}))
	require.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestLookupRpcs(t *testing.T) {
	client := setupClient(t)
	ctx := context.Background()

	for _, name := range []string{"mg", "IU", "mg"} {
		_, err := client.AddLookupOption(ctx, connect.NewRequest(&supplementsv1.AddLookupOptionRequest{
			Kind: supplementsv1.LookupKind_LOOKUP_KIND_DOSAGE_UNIT,
			Name: name,
		}))
		require.NoError(t, err)
	}

	listed, err := client.ListLookupOptions(ctx, connect.NewRequest(&supplementsv1.ListLookupOptionsRequest{
		Kind: supplementsv1.LookupKind_LOOKUP_KIND_DOSAGE_UNIT,
	}))
	require.NoError(t, err)
	require.Equal(t, []string{"IU", "mg"}, listed.Msg.GetNames())

	categories, err := client.ListLookupOptions(ctx, connect.NewRequest(&supplementsv1.ListLookupOptionsRequest{
		Kind: supplementsv1.LookupKind_LOOKUP_KIND_CATEGORY,
	}))
	require.NoError(t, err)
	require.Empty(t, categories.Msg.GetNames())

	_, err = client.ListLookupOptions(ctx, connect.NewRequest(&supplementsv1.ListLookupOptionsRequest{}))
	require.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = client.DeleteLookupOption(ctx, connect.NewRequest(&supplementsv1.DeleteLookupOptionRequest{
		Kind: supplementsv1.LookupKind_LOOKUP_KIND_DOSAGE_UNIT,
		Name: "IU",
	}))
	require.NoError(t, err)
	_, err = client.DeleteLookupOption(ctx, connect.NewRequest(&supplementsv1.DeleteLookupOptionRequest{
		Kind: supplementsv1.LookupKind_LOOKUP_KIND_DOSAGE_UNIT,
		Name: "IU",
	}))
	require.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestSnapshotRpcs(t *testing.T) {
	client := setupClient(t)
	ctx := context.Background()

	_, err := client.CreateSupplement(ctx, connect.NewRequest(&supplementsv1.CreateSupplementRequest{
		Name:   "Magnesium",
		Dosage: "400mg",
	}))
	require.NoError(t, err)

	exported, err := client.ExportSnapshot(ctx, connect.NewRequest(&supplementsv1.ExportSnapshotRequest{}))
	require.NoError(t, err)
	require.Contains(t, string(exported.Msg.GetSnapshotJson()), "Magnesium")

	_, err = client.ImportSnapshot(ctx, connect.NewRequest(&supplementsv1.ImportSnapshotRequest{
		SnapshotJson: []byte("{not json"),
	}))
	require.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = client.ClearCart(ctx, connect.NewRequest(&supplementsv1.ClearCartRequest{}))
	require.NoError(t, err)
	_, err = client.ImportSnapshot(ctx, connect.NewRequest(&supplementsv1.ImportSnapshotRequest{
		SnapshotJson: exported.Msg.GetSnapshotJson(),
	}))
	require.NoError(t, err)

	listed, err := client.ListSupplements(ctx, connect.NewRequest(&supplementsv1.ListSupplementsRequest{}))
	require.NoError(t, err)
	require.Len(t, listed.Msg.GetSupplements(), 1)
	require.Equal(t, "400mg", listed.Msg.GetSupplements()[0].GetDosage())
}

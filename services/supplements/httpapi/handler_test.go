package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"supplements-backend/internal/components/telemetry"
	"supplements-backend/lib/scrapers/prices"
	"supplements-backend/lib/testutil"
	"supplements-backend/services/supplements"
	"supplements-backend/services/supplements/db"
	"testing"

	"github.com/stretchr/testify/require"
)

type staticFetcher map[string]float64

func (f staticFetcher) FetchPrice(ctx context.Context, url string) (float64, error) {
	price, ok := f[url]
	if !ok {
		return 0, fmt.Errorf("%w: status 404", prices.ErrBadResponse)
	}
	return price, nil
}

func setupServer(t *testing.T) *httptest.Server {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "httpapi",
		DbSchema: db.Schema,
	})
	t.Cleanup(cleanup)

	recorder := &telemetry.Recorder{}
	svc := supplements.NewService(
		res.DB,
		staticFetcher{"https://www.amazon.com/ok": 21.5},
		supplements.WithCustomTelemetryAPI(recorder),
	)
	server := httptest.NewServer(NewHandler(svc, recorder).Router())
	t.Cleanup(server.Close)
	return server
}

func call(t *testing.T, server *httptest.Server, method, path string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	switch body := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(body)
	default:
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	res, err := server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	if out != nil {
		err = json.NewDecoder(res.Body).Decode(out)
		require.NoError(t, err)
	}
	return res.StatusCode
}

func TestCatalogRoutes(t *testing.T) {
	server := setupServer(t)

	var created supplements.Supplement
	status := call(t, server, http.MethodPost, "/supplements", supplements.CreateSupplementRequest{
		Name:       "Vitamin D",
		Price:      9.99,
		Categories: []string{"Vitamins"},
		StoreInfos: []supplements.AddStoreInfoRequest{
			{Name: "Amazon", StoreURL: "https://www.amazon.com/ok"},
		},
	}, &created)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "Vitamin D", created.Name)

	var errRes errorResponse
	status = call(t, server, http.MethodPost, "/supplements", supplements.CreateSupplementRequest{Name: ""}, &errRes)
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, errRes.Error, "validation failed")

	status = call(t, server, http.MethodPost, "/supplements", `{"name": "x", "unknown": 1}`, &errRes)
	require.Equal(t, http.StatusBadRequest, status)

	var catalog []supplements.Supplement
	status = call(t, server, http.MethodGet, "/supplements", nil, &catalog)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, catalog, 1)

	var updated supplements.Supplement
	status = call(t, server, http.MethodPatch, "/supplements/"+created.ID, map[string]any{"quantity": 12}, &updated)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 12, updated.Quantity)

	var store supplements.StoreInfo
	status = call(t, server, http.MethodPost, "/supplements/"+created.ID+"/stores", supplements.AddStoreInfoRequest{
		Name:     "Walmart",
		StoreURL: "https://www.walmart.com/ip/10448595",
	}, &store)
	require.Equal(t, http.StatusCreated, status)

	var price priceResponse
	status = call(t, server, http.MethodPost, "/stores/"+created.StoreInfos[0].ID+"/refresh", nil, &price)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 21.5, price.Price)

	status = call(t, server, http.MethodPost, "/stores/"+store.ID+"/refresh", nil, &errRes)
	require.Equal(t, http.StatusBadGateway, status)

	var results []supplements.SearchResult
	status = call(t, server, http.MethodGet, "/search?q=vitamin", nil, &results)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, results, 1)

	var categories []string
	status = call(t, server, http.MethodGet, "/categories", nil, &categories)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, []string{"Vitamins"}, categories)

	status = call(t, server, http.MethodDelete, "/stores/"+store.ID, nil, nil)
	require.Equal(t, http.StatusNoContent, status)
	status = call(t, server, http.MethodGet, "/stores/"+store.ID, nil, &errRes)
	require.Equal(t, http.StatusNotFound, status)

	status = call(t, server, http.MethodDelete, "/supplements/"+created.ID, nil, nil)
	require.Equal(t, http.StatusNoContent, status)
	status = call(t, server, http.MethodGet, "/supplements/"+created.ID, nil, &errRes)
	require.Equal(t, http.StatusNotFound, status)
}

func TestCartAndOrderRoutes(t *testing.T) {
	server := setupServer(t)

	var created supplements.Supplement
	call(t, server, http.MethodPost, "/supplements", supplements.CreateSupplementRequest{
		Name: "Protein Powder",
		StoreInfos: []supplements.AddStoreInfoRequest{
			{Name: "Walmart", StoreURL: "https://www.walmart.com/ip/17476803", Price: ptr(80.0)},
		},
	}, &created)

	var errRes errorResponse
	status := call(t, server, http.MethodPost, "/cart/items", addToCartRequest{
		SupplementID: created.ID,
		StoreInfoID:  created.StoreInfos[0].ID,
		Quantity:     0,
	}, &errRes)
	require.Equal(t, http.StatusBadRequest, status)

	var item supplements.CartItem
	status = call(t, server, http.MethodPost, "/cart/items", addToCartRequest{
		SupplementID: created.ID,
		StoreInfoID:  created.StoreInfos[0].ID,
		Quantity:     1,
	}, &item)
	require.Equal(t, http.StatusCreated, status)

	status = call(t, server, http.MethodPut, "/cart/items/"+item.ID, map[string]int{"quantity": 2}, nil)
	require.Equal(t, http.StatusNoContent, status)

	var cart cartResponse
	status = call(t, server, http.MethodGet, "/cart", nil, &cart)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 160.0, cart.Total)
	require.Equal(t, supplements.TotalOf(cart.Items), cart.Total)

	var total totalResponse
	call(t, server, http.MethodGet, "/cart/total", nil, &total)
	require.Equal(t, 160.0, total.Total)

	var order orderResponse
	status = call(t, server, http.MethodPost, "/checkout", nil, &order)
	require.Equal(t, http.StatusCreated, status)
	require.Len(t, order.Items, 1)
	require.Equal(t, 160.0, order.Total)

	status = call(t, server, http.MethodPost, "/checkout", nil, &errRes)
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, errRes.Error, "cart is empty")

	var orders []orderResponse
	status = call(t, server, http.MethodGet, "/orders", nil, &orders)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, orders, 1)
	require.Equal(t, order.ID, orders[0].ID)

	status = call(t, server, http.MethodDelete, "/orders/"+order.ID, nil, nil)
	require.Equal(t, http.StatusNoContent, status)
	status = call(t, server, http.MethodGet, "/orders/"+order.ID, nil, &errRes)
	require.Equal(t, http.StatusNotFound, status)

	var snapshot supplements.Snapshot
	status = call(t, server, http.MethodGet, "/snapshot", nil, &snapshot)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, snapshot.Supplements, 1)
	require.Empty(t, snapshot.Cart)
	require.Empty(t, snapshot.OrderList)

	var report supplements.RefreshReport
	status = call(t, server, http.MethodPost, "/refresh", nil, &report)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, report.Failures, 1)
	require.Equal(t, created.StoreInfos[0].ID, report.Failures[0].StoreInfoID)
	require.NotEmpty(t, report.Failures[0].Message)
}

func TestMetricsRoute(t *testing.T) {
	server := setupServer(t)

	res, err := server.Client().Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "go_goroutines")
}

func ptr[T any](v T) *T {
	return &v
}

func TestLookupRoutes(t *testing.T) {
	server := setupServer(t)

	status := call(t, server, http.MethodPost, "/lookups/dosage-unit", addLookupOptionRequest{Name: "mg"}, nil)
	require.Equal(t, http.StatusNoContent, status)
	status = call(t, server, http.MethodPost, "/lookups/dosage_unit", addLookupOptionRequest{Name: " IU"}, nil)
	require.Equal(t, http.StatusNoContent, status)

	var units []string
	status = call(t, server, http.MethodGet, "/lookups/dosage_unit", nil, &units)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, []string{"IU", "mg"}, units)

	status = call(t, server, http.MethodDelete, "/lookups/dosage_unit/mg", nil, nil)
	require.Equal(t, http.StatusNoContent, status)
	status = call(t, server, http.MethodDelete, "/lookups/dosage_unit/mg", nil, nil)
	require.Equal(t, http.StatusNotFound, status)

	var categories []string
	status = call(t, server, http.MethodGet, "/lookups/category", nil, &categories)
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, categories)

	status = call(t, server, http.MethodGet, "/lookups/brand", nil, nil)
	require.Equal(t, http.StatusBadRequest, status)
	status = call(t, server, http.MethodPost, "/lookups/category", map[string]string{}, nil)
	require.Equal(t, http.StatusBadRequest, status)
}

package supplements

import (
	"fmt"
	"supplements-backend/internal/components/telemetry"
	"supplements-backend/lib/testutil"
	"supplements-backend/services/supplements/db"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCheckoutMovesTheWholeCart(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	protein := mustCreate(t, svc, "Protein Powder",
		AddStoreInfoRequest{Name: "Walmart", StoreURL: "https://www.walmart.com/ip/17476803", Price: ptr(80.0)},
	)
	vitamin := mustCreate(t, svc, "Vitamin D",
		AddStoreInfoRequest{Name: "Amazon", StoreURL: "https://www.amazon.com/vitd", Price: ptr(9.99)},
	)
	_, err := svc.AddToCart(ctx, protein.ID, protein.StoreInfos[0].ID, 1)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, vitamin.ID, vitamin.StoreInfos[0].ID, 2)
	require.NoError(t, err)

	before, err := svc.ListCart(ctx)
	require.NoError(t, err)

	order, err := svc.Checkout(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)
	require.False(t, order.OrderedAt.IsZero())
	require.InDelta(t, 99.98, order.Total(), 1e-9)

	expected := make([]CartItem, len(before))
	for i, item := range before {
		item.OrderID = order.ID
		expected[i] = item
	}
	require.Empty(t, cmp.Diff(expected, order.Items))

	cart, err := svc.ListCart(ctx)
	require.NoError(t, err)
	require.Empty(t, cart)

	_, err = svc.Checkout(ctx)
	require.ErrorIs(t, err, ErrEmptyCart)
	require.ErrorIs(t, err, ErrValidationFailed)

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Empty(t, cmp.Diff(order, orders[0]))
}

func TestCheckoutSelectedItems(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	supplement := mustCreate(t, svc, "Multivitamin",
		AddStoreInfoRequest{Name: "Amazon", StoreURL: "https://www.amazon.com/multi", Price: ptr(12.5)},
		AddStoreInfoRequest{Name: "Walmart", StoreURL: "https://www.walmart.com/multi", Price: ptr(11.0)},
	)
	first, err := svc.AddToCart(ctx, supplement.ID, supplement.StoreInfos[0].ID, 1)
	require.NoError(t, err)
	second, err := svc.AddToCart(ctx, supplement.ID, supplement.StoreInfos[1].ID, 1)
	require.NoError(t, err)

	{
		_, err := svc.Checkout(ctx, first.ID, "missing")
		require.ErrorIs(t, err, ErrNotFound)

		cart, err := svc.ListCart(ctx)
		require.NoError(t, err)
		require.Len(t, cart, 2)
		orders, err := svc.ListOrders(ctx)
		require.NoError(t, err)
		require.Empty(t, orders)
	}

	order, err := svc.Checkout(ctx, first.ID, first.ID)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	require.Equal(t, first.ID, order.Items[0].ID)

	cart, err := svc.ListCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	require.Equal(t, second.ID, cart[0].ID)

	// already ordered
	_, err = svc.Checkout(ctx, first.ID)
	require.ErrorIs(t, err, ErrNotFound)

	later, err := svc.Checkout(ctx)
	require.NoError(t, err)

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.Equal(t, later.ID, orders[0].ID)
	require.Equal(t, order.ID, orders[1].ID)
}

func TestDeleteOrder(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	supplement := mustCreate(t, svc, "Zinc",
		AddStoreInfoRequest{Name: "Amazon", StoreURL: "https://www.amazon.com/zinc"},
	)
	_, err := svc.AddToCart(ctx, supplement.ID, supplement.StoreInfos[0].ID, 1)
	require.NoError(t, err)
	order, err := svc.Checkout(ctx)
	require.NoError(t, err)

	err = svc.DeleteOrder(ctx, order.ID)
	require.NoError(t, err)

	_, err = svc.GetOrder(ctx, order.ID)
	require.ErrorIs(t, err, ErrNotFound)
	err = svc.DeleteOrder(ctx, order.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// the supplement can still be ordered again
	_, err = svc.AddToCart(ctx, supplement.ID, supplement.StoreInfos[0].ID, 1)
	require.NoError(t, err)
}

type sequentialIDs struct {
	issued []string
}

func (g *sequentialIDs) NewID() string {
	id := fmt.Sprintf("id-%d", len(g.issued)+1)
	g.issued = append(g.issued, id)
	return id
}

func TestCheckoutUsesGeneratedIDs(t *testing.T) {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "supplements",
		DbSchema: db.Schema,
	})
	defer cleanup()

	ids := &sequentialIDs{}
	svc := NewService(
		res.DB,
		&fakeFetcher{},
		WithCustomTelemetryAPI(&telemetry.Recorder{}),
		WithCustomTimeAPI(newFakeClock()),
		WithCustomIDGenerator(ids),
	)
	ctx := testContext(t)

	fish := mustCreate(t, svc, "Omega-3 Fish Oil",
		AddStoreInfoRequest{Name: "Amazon", StoreURL: "https://www.amazon.com/omega", Price: ptr(19.99)},
	)
	require.Contains(t, ids.issued, fish.ID)
	require.Contains(t, ids.issued, fish.StoreInfos[0].ID)

	item, err := svc.AddToCart(ctx, fish.ID, fish.StoreInfos[0].ID, 1)
	require.NoError(t, err)
	require.Equal(t, ids.issued[len(ids.issued)-1], item.ID)

	order, err := svc.Checkout(ctx)
	require.NoError(t, err)
	require.Equal(t, ids.issued[len(ids.issued)-1], order.ID)
	require.Equal(t, order.ID, order.Items[0].OrderID)
}

func TestCheckoutRollsBackOnWriteFailure(t *testing.T) {
	svc, recorder := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	zinc := mustCreate(t, svc, "Zinc",
		AddStoreInfoRequest{Name: "Amazon", StoreURL: "https://www.amazon.com/zinc", Price: ptr(5.0)},
	)
	item, err := svc.AddToCart(ctx, zinc.ID, zinc.StoreInfos[0].ID, 1)
	require.NoError(t, err)

	_, err = svc.db.ExecContext(ctx, `
create trigger fail_checkout after update of order_id on cart_item
begin
	select raise(abort, 'boom');
end;
`)
	require.NoError(t, err)

	_, err = svc.Checkout(ctx)
	require.ErrorIs(t, err, ErrPersistenceFailed)
	require.ErrorContains(t, err, "boom")

	_, err = svc.Checkout(ctx, item.ID)
	require.ErrorIs(t, err, ErrPersistenceFailed)

	cart, err := svc.ListCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	require.Equal(t, item.ID, cart[0].ID)
	require.Equal(t, 1, cart[0].Quantity)
	require.Empty(t, cart[0].OrderID)

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Empty(t, orders)

	broken := recorder.Reports("broken")
	require.Len(t, broken, 2)
	require.Equal(t, "supplements: "+report_cart_checkout, broken[0].ID)
}

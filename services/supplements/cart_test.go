package supplements

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddToCartMergesPairs(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	supplement := mustCreate(t, svc, "Protein Powder",
		AddStoreInfoRequest{Name: "Amazon", StoreURL: "https://www.amazon.com/protein", Price: ptr(29.99)},
		AddStoreInfoRequest{Name: "Walmart", StoreURL: "https://www.walmart.com/protein", Price: ptr(28.5)},
	)
	other := mustCreate(t, svc, "Vitamin D",
		AddStoreInfoRequest{Name: "Amazon", StoreURL: "https://www.amazon.com/vitd"},
	)

	first, err := svc.AddToCart(ctx, supplement.ID, supplement.StoreInfos[0].ID, 1)
	require.NoError(t, err)
	second, err := svc.AddToCart(ctx, supplement.ID, supplement.StoreInfos[0].ID, 2)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 3, second.Quantity)
	require.Equal(t, "Protein Powder", second.SupplementName)
	require.Equal(t, "Amazon", second.StoreName)
	require.Equal(t, 29.99, *second.Price)

	// a different store of the same supplement is a different pair
	_, err = svc.AddToCart(ctx, supplement.ID, supplement.StoreInfos[1].ID, 1)
	require.NoError(t, err)

	cart, err := svc.ListCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 2)
	require.Equal(t, 3, cart[0].Quantity)
	require.Equal(t, 1, cart[1].Quantity)

	type testCase struct {
		name         string
		supplementId string
		storeInfoId  string
		qty          int
		expected     error
	}
	cases := []testCase{
		{name: "zero quantity", supplementId: supplement.ID, storeInfoId: supplement.StoreInfos[0].ID, qty: 0, expected: ErrValidationFailed},
		{name: "negative quantity", supplementId: supplement.ID, storeInfoId: supplement.StoreInfos[0].ID, qty: -2, expected: ErrValidationFailed},
		{name: "foreign store", supplementId: supplement.ID, storeInfoId: other.StoreInfos[0].ID, qty: 1, expected: ErrValidationFailed},
		{name: "unknown supplement", supplementId: "missing", storeInfoId: supplement.StoreInfos[0].ID, qty: 1, expected: ErrNotFound},
		{name: "unknown store", supplementId: supplement.ID, storeInfoId: "missing", qty: 1, expected: ErrNotFound},
	}
	for _, test := range cases {
		_, err := svc.AddToCart(ctx, test.supplementId, test.storeInfoId, test.qty)
		require.ErrorIs(t, err, test.expected, test.name)
	}

	cart, err = svc.ListCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 2)
}

func TestSetQuantityAndRemove(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	supplement := mustCreate(t, svc, "Magnesium",
		AddStoreInfoRequest{Name: "Amazon", StoreURL: "https://www.amazon.com/mag", Price: ptr(4.0)},
		AddStoreInfoRequest{Name: "Walmart", StoreURL: "https://www.walmart.com/mag", Price: ptr(3.0)},
	)
	item, err := svc.AddToCart(ctx, supplement.ID, supplement.StoreInfos[0].ID, 1)
	require.NoError(t, err)
	other, err := svc.AddToCart(ctx, supplement.ID, supplement.StoreInfos[1].ID, 1)
	require.NoError(t, err)

	{
		err := svc.SetQuantity(ctx, item.ID, 5)
		require.NoError(t, err)
		cart, err := svc.ListCart(ctx)
		require.NoError(t, err)
		require.Equal(t, 5, cart[0].Quantity)

		total, err := svc.TotalPrice(ctx)
		require.NoError(t, err)
		require.InDelta(t, 23.0, total, 1e-9)
	}
	{
		err := svc.SetQuantity(ctx, item.ID, 0)
		require.NoError(t, err)
		cart, err := svc.ListCart(ctx)
		require.NoError(t, err)
		require.Len(t, cart, 1)
		require.Equal(t, other.ID, cart[0].ID)
	}
	{
		err := svc.SetQuantity(ctx, item.ID, 2)
		require.ErrorIs(t, err, ErrNotFound)
		err = svc.RemoveFromCart(ctx, item.ID)
		require.ErrorIs(t, err, ErrNotFound)
	}
	{
		_, err := svc.Checkout(ctx)
		require.NoError(t, err)

		err = svc.SetQuantity(ctx, other.ID, 3)
		require.ErrorIs(t, err, ErrValidationFailed)
		require.ErrorIs(t, err, ErrItemOrdered)
		err = svc.RemoveFromCart(ctx, other.ID)
		require.ErrorIs(t, err, ErrValidationFailed)
	}
	{
		again, err := svc.AddToCart(ctx, supplement.ID, supplement.StoreInfos[1].ID, 2)
		require.NoError(t, err)
		require.NotEqual(t, other.ID, again.ID)

		err = svc.RemoveFromCart(ctx, again.ID)
		require.NoError(t, err)
		cart, err := svc.ListCart(ctx)
		require.NoError(t, err)
		require.Empty(t, cart)
	}
}

func TestClearCartKeepsOrders(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	supplement := mustCreate(t, svc, "Iron",
		AddStoreInfoRequest{Name: "Amazon", StoreURL: "https://www.amazon.com/iron"},
	)
	_, err := svc.AddToCart(ctx, supplement.ID, supplement.StoreInfos[0].ID, 1)
	require.NoError(t, err)
	order, err := svc.Checkout(ctx)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, supplement.ID, supplement.StoreInfos[0].ID, 2)
	require.NoError(t, err)

	err = svc.ClearCart(ctx)
	require.NoError(t, err)

	cart, err := svc.ListCart(ctx)
	require.NoError(t, err)
	require.Empty(t, cart)

	ordered, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, ordered.Items, 1)
}

func TestTotalPriceTreatsUnknownPriceAsZero(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	priced := mustCreate(t, svc, "Priced",
		AddStoreInfoRequest{Name: "Shop", StoreURL: "https://shop.example.com/a", Price: ptr(10.0)},
	)
	unpriced := mustCreate(t, svc, "Unpriced",
		AddStoreInfoRequest{Name: "Shop", StoreURL: "https://shop.example.com/b"},
	)

	_, err := svc.AddToCart(ctx, priced.ID, priced.StoreInfos[0].ID, 2)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, unpriced.ID, unpriced.StoreInfos[0].ID, 1)
	require.NoError(t, err)

	total, err := svc.TotalPrice(ctx)
	require.NoError(t, err)
	require.Equal(t, 20.0, total)

	empty, _ := setupService(t, &fakeFetcher{})
	total, err = empty.TotalPrice(ctx)
	require.NoError(t, err)
	require.Equal(t, 0.0, total)
}

func TestTotalOf(t *testing.T) {
	type testCase struct {
		name     string
		items    []CartItem
		expected float64
	}
	cases := []testCase{
		{name: "nil", expected: 0},
		{
			name: "priced",
			items: []CartItem{
				{Price: ptr(12.5), Quantity: 2},
				{Price: ptr(3.0), Quantity: 1},
			},
			expected: 28,
		},
		{
			name: "unknown price",
			items: []CartItem{
				{Price: ptr(4.0), Quantity: 3},
				{Quantity: 5},
			},
			expected: 12,
		},
	}
	for _, test := range cases {
		require.InDelta(t, test.expected, TotalOf(test.items), 1e-9, test.name)
		require.InDelta(t, test.expected, Order{Items: test.items}.Total(), 1e-9, test.name)
	}

	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)
	created := mustCreate(t, svc, "Magnesium",
		AddStoreInfoRequest{Name: "Shop", StoreURL: "https://shop.example.com/m", Price: ptr(7.25)},
	)
	_, err := svc.AddToCart(ctx, created.ID, created.StoreInfos[0].ID, 4)
	require.NoError(t, err)

	items, err := svc.ListCart(ctx)
	require.NoError(t, err)
	total, err := svc.TotalPrice(ctx)
	require.NoError(t, err)
	require.Equal(t, TotalOf(items), total)
	require.Equal(t, 29.0, total)
}

package supplements

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"supplements-backend/internal/components/telemetry"
	"supplements-backend/lib/scrapers/prices"
	"supplements-backend/lib/testutil"
	"supplements-backend/services/supplements/db"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mutex sync.Mutex
	now   time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

// fakeFetcher answers with a fixed price per url, unknown urls fail like a
// server error would.
type fakeFetcher struct {
	mutex  sync.Mutex
	prices map[string]float64
	calls  []string
	hook   func(ctx context.Context, url string) error
}

func (f *fakeFetcher) FetchPrice(ctx context.Context, url string) (float64, error) {
	f.mutex.Lock()
	f.calls = append(f.calls, url)
	hook := f.hook
	price, ok := f.prices[url]
	f.mutex.Unlock()

	if hook != nil {
		if err := hook(ctx, url); err != nil {
			return 0, err
		}
	}
	if !ok {
		return 0, fmt.Errorf("%w: status 500", prices.ErrBadResponse)
	}
	return price, nil
}

func setupServiceAt(t *testing.T, dbpath string, fetcher PriceFetcher) (Service, *telemetry.Recorder) {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "supplements",
		DbSchema: db.Schema,
		DbPath:   dbpath,
	})
	t.Cleanup(cleanup)

	recorder := &telemetry.Recorder{}
	svc := NewService(
		res.DB,
		fetcher,
		WithCustomTelemetryAPI(recorder),
		WithCustomTimeAPI(newFakeClock()),
	)
	return svc, recorder
}

func setupService(t *testing.T, fetcher PriceFetcher) (Service, *telemetry.Recorder) {
	return setupServiceAt(t, "", fetcher)
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	t.Cleanup(cancel)
	return ctx
}

func ptr[T any](v T) *T {
	return &v
}

func mustCreate(t *testing.T, svc Service, name string, stores ...AddStoreInfoRequest) Supplement {
	t.Helper()
	created, err := svc.CreateSupplement(context.Background(), CreateSupplementRequest{
		Name:       name,
		Price:      10,
		Quantity:   30,
		Type:       "Capsule",
		StoreInfos: stores,
	})
	require.NoError(t, err)
	return created
}

func TestCreateAndGetSupplement(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	created, err := svc.CreateSupplement(ctx, CreateSupplementRequest{
		Name:       "  Vitamin C ",
		Price:      7.5,
		Dosage:     "1 tablet daily",
		Quantity:   60,
		Type:       "Tablet",
		Categories: []string{"Vitamins", "vitamins", " ", "Immune"},
		StoreInfos: []AddStoreInfoRequest{
			{Name: "Amazon", StoreURL: "https://www.amazon.com/dp/B000", Price: ptr(6.5)},
			{Name: "Walmart", StoreURL: "https://www.walmart.com/ip/1", InfoURL: "https://www.walmart.com/reviews/1"},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Vitamin C", created.Name)
	require.Equal(t, []string{"Vitamins", "Immune"}, created.Categories)
	require.Len(t, created.StoreInfos, 2)
	require.Equal(t, "Amazon", created.StoreInfos[0].Name)
	require.Equal(t, created.ID, created.StoreInfos[0].SupplementID)
	require.Equal(t, 6.5, *created.StoreInfos[0].Price)
	require.Nil(t, created.StoreInfos[1].Price)

	fetched, err := svc.GetSupplement(ctx, created.ID)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(created, fetched))

	cheapest, ok := fetched.CheapestStoreInfo()
	require.True(t, ok)
	require.Equal(t, created.StoreInfos[0].ID, cheapest.ID)

	_, err = svc.GetSupplement(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateSupplementValidation(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	type testCase struct {
		name string
		req  CreateSupplementRequest
	}
	cases := []testCase{
		{name: "empty name", req: CreateSupplementRequest{Name: "   "}},
		{name: "negative price", req: CreateSupplementRequest{Name: "A", Price: -1}},
		{name: "infinite price", req: CreateSupplementRequest{Name: "A", Price: math.Inf(1)}},
		{name: "negative quantity", req: CreateSupplementRequest{Name: "A", Quantity: -1}},
		{
			name: "store without name",
			req: CreateSupplementRequest{Name: "A", StoreInfos: []AddStoreInfoRequest{
				{StoreURL: "https://example.com"},
			}},
		},
		{
			name: "store with relative url",
			req: CreateSupplementRequest{Name: "A", StoreInfos: []AddStoreInfoRequest{
				{Name: "Shop", StoreURL: "/ip/1"},
			}},
		},
		{
			name: "store with bad info url",
			req: CreateSupplementRequest{Name: "A", StoreInfos: []AddStoreInfoRequest{
				{Name: "Shop", StoreURL: "https://example.com", InfoURL: "mailto:someone"},
			}},
		},
		{
			name: "store with NaN price",
			req: CreateSupplementRequest{Name: "A", StoreInfos: []AddStoreInfoRequest{
				{Name: "Shop", StoreURL: "https://example.com", Price: ptr(math.NaN())},
			}},
		},
		{
			name: "store with negative price",
			req: CreateSupplementRequest{Name: "A", StoreInfos: []AddStoreInfoRequest{
				{Name: "Shop", StoreURL: "https://example.com", Price: ptr(-3.0)},
			}},
		},
	}
	for _, test := range cases {
		_, err := svc.CreateSupplement(ctx, test.req)
		require.ErrorIs(t, err, ErrValidationFailed, test.name)
	}

	catalog, err := svc.ListSupplements(ctx)
	require.NoError(t, err)
	require.Empty(t, catalog)

	created, err := svc.CreateSupplement(ctx, CreateSupplementRequest{Name: "NaN price", Price: math.NaN()})
	require.NoError(t, err)
	require.Equal(t, 0.0, created.Price)
	require.Empty(t, created.StoreInfos)
	require.Equal(t, []string{}, created.Categories)
}

func TestListAndUpdateSupplements(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	first := mustCreate(t, svc, "Zinc")
	second := mustCreate(t, svc, "Magnesium")

	catalog, err := svc.ListSupplements(ctx)
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	require.Equal(t, first.ID, catalog[0].ID)
	require.Equal(t, second.ID, catalog[1].ID)

	updated, err := svc.UpdateSupplement(ctx, first.ID, SupplementPatch{
		Name:       ptr("Zinc Picolinate"),
		Quantity:   ptr(90),
		Categories: &[]string{"Minerals", "Immune"},
	})
	require.NoError(t, err)
	require.Equal(t, "Zinc Picolinate", updated.Name)
	require.Equal(t, 90, updated.Quantity)
	require.Equal(t, first.Price, updated.Price)
	require.Equal(t, []string{"Minerals", "Immune"}, updated.Categories)

	// categories left alone when the patch doesn't mention them
	updated, err = svc.UpdateSupplement(ctx, first.ID, SupplementPatch{Dosage: ptr("1 daily")})
	require.NoError(t, err)
	require.Equal(t, []string{"Minerals", "Immune"}, updated.Categories)
	require.Equal(t, "1 daily", updated.Dosage)

	_, err = svc.UpdateSupplement(ctx, first.ID, SupplementPatch{Quantity: ptr(-4)})
	require.ErrorIs(t, err, ErrValidationFailed)
	_, err = svc.UpdateSupplement(ctx, first.ID, SupplementPatch{Name: ptr(" ")})
	require.ErrorIs(t, err, ErrValidationFailed)
	_, err = svc.UpdateSupplement(ctx, "missing", SupplementPatch{Name: ptr("x")})
	require.ErrorIs(t, err, ErrNotFound)

	fetched, err := svc.GetSupplement(ctx, first.ID)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(updated, fetched))

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Immune", "Minerals"}, categories)
}

func TestStoreInfoCRUD(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	supplement := mustCreate(t, svc, "Creatine")

	store, err := svc.AddStoreInfo(ctx, supplement.ID, AddStoreInfoRequest{
		Name:     "Amazon",
		StoreURL: "https://www.amazon.com/dp/B002",
		Price:    ptr(24.99),
	})
	require.NoError(t, err)
	require.Equal(t, supplement.ID, store.SupplementID)

	_, err = svc.AddStoreInfo(ctx, "missing", AddStoreInfoRequest{Name: "A", StoreURL: "https://example.com"})
	require.ErrorIs(t, err, ErrNotFound)
	_, err = svc.AddStoreInfo(ctx, supplement.ID, AddStoreInfoRequest{Name: "A", StoreURL: "example.com"})
	require.ErrorIs(t, err, ErrValidationFailed)

	updated, err := svc.UpdateStoreInfo(ctx, store.ID, StoreInfoPatch{Name: ptr("Amazon US")})
	require.NoError(t, err)
	require.Equal(t, "Amazon US", updated.Name)
	require.Equal(t, 24.99, *updated.Price)

	updated, err = svc.UpdateStoreInfo(ctx, store.ID, StoreInfoPatch{ClearPrice: true, Price: ptr(3.0)})
	require.NoError(t, err)
	require.Nil(t, updated.Price)

	_, err = svc.UpdateStoreInfo(ctx, store.ID, StoreInfoPatch{Price: ptr(math.Inf(1))})
	require.ErrorIs(t, err, ErrValidationFailed)
	_, err = svc.UpdateStoreInfo(ctx, "missing", StoreInfoPatch{})
	require.ErrorIs(t, err, ErrNotFound)

	fetched, err := svc.GetStoreInfo(ctx, store.ID)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(updated, fetched))

	reloaded, err := svc.GetSupplement(ctx, supplement.ID)
	require.NoError(t, err)
	require.Equal(t, []StoreInfo{updated}, reloaded.StoreInfos)
}

func TestDeleteSupplementCascades(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	doomed := mustCreate(t, svc, "Fish Oil",
		AddStoreInfoRequest{Name: "Amazon", StoreURL: "https://www.amazon.com/fish", Price: ptr(15.0)},
		AddStoreInfoRequest{Name: "Walmart", StoreURL: "https://www.walmart.com/fish", Price: ptr(12.0)},
	)
	kept := mustCreate(t, svc, "Vitamin D",
		AddStoreInfoRequest{Name: "Amazon", StoreURL: "https://www.amazon.com/vitd", Price: ptr(9.0)},
	)

	_, err := svc.AddToCart(ctx, doomed.ID, doomed.StoreInfos[0].ID, 1)
	require.NoError(t, err)
	order, err := svc.Checkout(ctx)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, doomed.ID, doomed.StoreInfos[1].ID, 2)
	require.NoError(t, err)
	keptItem, err := svc.AddToCart(ctx, kept.ID, kept.StoreInfos[0].ID, 1)
	require.NoError(t, err)

	err = svc.DeleteSupplement(ctx, doomed.ID)
	require.NoError(t, err)

	_, err = svc.GetSupplement(ctx, doomed.ID)
	require.ErrorIs(t, err, ErrNotFound)
	for _, store := range doomed.StoreInfos {
		_, err = svc.GetStoreInfo(ctx, store.ID)
		require.ErrorIs(t, err, ErrNotFound)
	}

	cart, err := svc.ListCart(ctx)
	require.NoError(t, err)
	require.Equal(t, []CartItem{keptItem}, cart)

	ordered, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Empty(t, ordered.Items)

	err = svc.DeleteSupplement(ctx, doomed.ID)
	require.ErrorIs(t, err, ErrNotFound)

	catalog, err := svc.ListSupplements(ctx)
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	require.Equal(t, kept.ID, catalog[0].ID)
}

func TestDeleteStoreInfoRepointsCartItems(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	supplement := mustCreate(t, svc, "Protein",
		AddStoreInfoRequest{Name: "Expensive", StoreURL: "https://a.example.com", Price: ptr(10.0)},
		AddStoreInfoRequest{Name: "Cheap", StoreURL: "https://b.example.com", Price: ptr(5.0)},
		AddStoreInfoRequest{Name: "Unknown", StoreURL: "https://c.example.com"},
	)
	expensive := supplement.StoreInfos[0]
	cheap := supplement.StoreInfos[1]
	unknown := supplement.StoreInfos[2]

	_, err := svc.AddToCart(ctx, supplement.ID, expensive.ID, 2)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, supplement.ID, cheap.ID, 1)
	require.NoError(t, err)

	// the expensive item merges into the cheap one
	err = svc.DeleteStoreInfo(ctx, expensive.ID)
	require.NoError(t, err)
	cart, err := svc.ListCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	require.Equal(t, cheap.ID, cart[0].StoreInfoID)
	require.Equal(t, 3, cart[0].Quantity)

	// no priced store remains so the earliest remaining one is used
	err = svc.DeleteStoreInfo(ctx, cheap.ID)
	require.NoError(t, err)
	cart, err = svc.ListCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	require.Equal(t, unknown.ID, cart[0].StoreInfoID)
	require.Equal(t, "Unknown", cart[0].StoreName)
	require.Equal(t, 3, cart[0].Quantity)

	err = svc.DeleteStoreInfo(ctx, unknown.ID)
	require.NoError(t, err)
	cart, err = svc.ListCart(ctx)
	require.NoError(t, err)
	require.Empty(t, cart)

	err = svc.DeleteStoreInfo(ctx, unknown.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteStoreInfoRepointsOrderedItems(t *testing.T) {
	svc, _ := setupService(t, &fakeFetcher{})
	ctx := testContext(t)

	supplement := mustCreate(t, svc, "Omega-3",
		AddStoreInfoRequest{Name: "Amazon", StoreURL: "https://www.amazon.com/omega", Price: ptr(20.0)},
		AddStoreInfoRequest{Name: "Walmart", StoreURL: "https://www.walmart.com/omega", Price: ptr(18.0)},
	)
	_, err := svc.AddToCart(ctx, supplement.ID, supplement.StoreInfos[0].ID, 1)
	require.NoError(t, err)
	order, err := svc.Checkout(ctx)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, supplement.ID, supplement.StoreInfos[0].ID, 4)
	require.NoError(t, err)

	err = svc.DeleteStoreInfo(ctx, supplement.StoreInfos[0].ID)
	require.NoError(t, err)

	ordered, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, ordered.Items, 1)
	require.Equal(t, supplement.StoreInfos[1].ID, ordered.Items[0].StoreInfoID)
	require.Equal(t, 1, ordered.Items[0].Quantity)

	// the in-cart item is repointed separately and not merged with the ordered one
	cart, err := svc.ListCart(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	require.Equal(t, supplement.StoreInfos[1].ID, cart[0].StoreInfoID)
	require.Equal(t, 4, cart[0].Quantity)
}

func TestPersistenceRoundTrip(t *testing.T) {
	dbpath := filepath.Join(t.TempDir(), "supplements.db")

	var created Supplement
	{
		res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
			Name:     "supplements",
			DbSchema: db.Schema,
			DbPath:   dbpath,
		})
		svc := NewService(res.DB, &fakeFetcher{}, WithCustomTimeAPI(newFakeClock()))

		var err error
		created, err = svc.CreateSupplement(context.Background(), CreateSupplementRequest{
			Name:       "Vitamin D",
			Price:      9.99,
			Dosage:     "1 capsule daily",
			Quantity:   100,
			Type:       "Capsule",
			Categories: []string{"Vitamins"},
			StoreInfos: []AddStoreInfoRequest{
				{Name: "Amazon", StoreURL: "https://www.amazon.com/Vitamin-D3-5000-IU/dp/B00JGCBGQA", Price: ptr(9.99)},
				{Name: "Walmart", StoreURL: "https://www.walmart.com/ip/10448595"},
			},
		})
		require.NoError(t, err)
		cleanup()
	}

	svc, _ := setupServiceAt(t, dbpath, &fakeFetcher{})
	reloaded, err := svc.GetSupplement(testContext(t), created.ID)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(created, reloaded))
}

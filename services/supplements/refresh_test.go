package supplements

import (
	"context"
	"net/http"
	"net/http/httptest"
	"supplements-backend/internal/components/telemetry"
	"supplements-backend/lib/scrapers/prices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRefreshAllPricesAgainstRetailers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/first", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><span class="price">$12.34</span></body></html>`))
	})
	mux.HandleFunc("/second", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div itemprop="price">USD 1,056.78</div></body></html>`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := prices.NewClient(prices.ClientOptions{
		Timeout:           time.Second * 2,
		RequestsPerSecond: -1,
	}, &telemetry.Recorder{})
	svc, _ := setupService(t, client)
	ctx := testContext(t)

	supplement := mustCreate(t, svc, "Protein Powder",
		AddStoreInfoRequest{Name: "Broken", StoreURL: server.URL + "/broken", Price: ptr(29.99)},
		AddStoreInfoRequest{Name: "First", StoreURL: server.URL + "/first"},
	)
	other := mustCreate(t, svc, "Vitamin D",
		AddStoreInfoRequest{Name: "Second", StoreURL: server.URL + "/second", Price: ptr(1.0)},
	)
	broken := supplement.StoreInfos[0]

	report, err := svc.RefreshAllPrices(ctx)
	require.NoError(t, err)
	require.False(t, report.Cancelled)
	require.Zero(t, report.Skipped)

	require.Len(t, report.Failures, 1)
	require.Equal(t, broken.ID, report.Failures[0].StoreInfoID)
	require.ErrorIs(t, report.Failures[0].Reason, prices.ErrBadResponse)

	require.Len(t, report.Updated, 2)
	require.Equal(t, supplement.StoreInfos[1].ID, report.Updated[0].StoreInfoID)
	require.Nil(t, report.Updated[0].Previous)
	require.Equal(t, other.StoreInfos[0].ID, report.Updated[1].StoreInfoID)
	require.Equal(t, 1.0, *report.Updated[1].Previous)

	refreshed, err := svc.GetSupplement(ctx, supplement.ID)
	require.NoError(t, err)
	require.Nil(t, refreshed.StoreInfos[0].Price)
	require.InDelta(t, 12.34, *refreshed.StoreInfos[1].Price, 1e-9)

	store, err := svc.GetStoreInfo(ctx, other.StoreInfos[0].ID)
	require.NoError(t, err)
	require.InDelta(t, 1056.78, *store.Price, 1e-9)
}

func TestRefreshPrice(t *testing.T) {
	fetcher := &fakeFetcher{prices: map[string]float64{
		"https://www.amazon.com/ok": 19.5,
	}}
	svc, recorder := setupService(t, fetcher)
	ctx := testContext(t)

	supplement := mustCreate(t, svc, "Creatine",
		AddStoreInfoRequest{Name: "Amazon", StoreURL: "https://www.amazon.com/ok"},
		AddStoreInfoRequest{Name: "Walmart", StoreURL: "https://www.walmart.com/gone", Price: ptr(7.0)},
	)

	price, err := svc.RefreshPrice(ctx, supplement.StoreInfos[0].ID)
	require.NoError(t, err)
	require.Equal(t, 19.5, price)
	store, err := svc.GetStoreInfo(ctx, supplement.StoreInfos[0].ID)
	require.NoError(t, err)
	require.Equal(t, 19.5, *store.Price)

	_, err = svc.RefreshPrice(ctx, supplement.StoreInfos[1].ID)
	require.ErrorIs(t, err, prices.ErrBadResponse)
	store, err = svc.GetStoreInfo(ctx, supplement.StoreInfos[1].ID)
	require.NoError(t, err)
	require.Nil(t, store.Price)
	require.Len(t, recorder.Reports("warning"), 1)

	_, err = svc.RefreshPrice(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRefreshAllPricesSkipsDeletedStores(t *testing.T) {
	fetcher := &fakeFetcher{prices: map[string]float64{
		"https://a.example.com": 1,
		"https://b.example.com": 2,
		"https://c.example.com": 3,
	}}
	svc, _ := setupService(t, fetcher)
	ctx := testContext(t)

	supplement := mustCreate(t, svc, "Vitamin C",
		AddStoreInfoRequest{Name: "A", StoreURL: "https://a.example.com"},
		AddStoreInfoRequest{Name: "B", StoreURL: "https://b.example.com"},
		AddStoreInfoRequest{Name: "C", StoreURL: "https://c.example.com"},
	)

	fetcher.hook = func(ctx context.Context, url string) error {
		if url == "https://a.example.com" {
			return svc.DeleteStoreInfo(ctx, supplement.StoreInfos[1].ID)
		}
		return nil
	}

	report, err := svc.RefreshAllPrices(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, report.Skipped)
	require.Empty(t, report.Failures)
	require.Len(t, report.Updated, 2)
	require.Equal(t, supplement.StoreInfos[0].ID, report.Updated[0].StoreInfoID)
	require.Equal(t, supplement.StoreInfos[2].ID, report.Updated[1].StoreInfoID)
	require.Equal(t, []string{"https://a.example.com", "https://c.example.com"}, fetcher.calls)
}

func TestRefreshAllPricesCancellation(t *testing.T) {
	fetcher := &fakeFetcher{prices: map[string]float64{
		"https://a.example.com": 1,
		"https://b.example.com": 2,
		"https://c.example.com": 3,
	}}
	svc, _ := setupService(t, fetcher)

	supplement := mustCreate(t, svc, "Vitamin K",
		AddStoreInfoRequest{Name: "A", StoreURL: "https://a.example.com"},
		AddStoreInfoRequest{Name: "B", StoreURL: "https://b.example.com", Price: ptr(20.0)},
		AddStoreInfoRequest{Name: "C", StoreURL: "https://c.example.com", Price: ptr(30.0)},
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fetcher.hook = func(ctx context.Context, url string) error {
		if url == "https://b.example.com" {
			cancel()
			return ctx.Err()
		}
		return nil
	}

	report, err := svc.RefreshAllPrices(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.True(t, report.Cancelled)
	require.Len(t, report.Updated, 1)
	require.Empty(t, report.Failures)

	// applied updates are kept, the rest is left untouched
	refreshed, err := svc.GetSupplement(testContext(t), supplement.ID)
	require.NoError(t, err)
	require.Equal(t, 1.0, *refreshed.StoreInfos[0].Price)
	require.Equal(t, 20.0, *refreshed.StoreInfos[1].Price)
	require.Equal(t, 30.0, *refreshed.StoreInfos[2].Price)
	require.Len(t, fetcher.calls, 2)
}

func TestRefreshAllPricesSingleFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	fetcher := &fakeFetcher{
		prices: map[string]float64{"https://a.example.com": 1},
		hook: func(ctx context.Context, url string) error {
			close(started)
			<-release
			return nil
		},
	}
	svc, _ := setupService(t, fetcher)
	ctx := testContext(t)

	mustCreate(t, svc, "Biotin",
		AddStoreInfoRequest{Name: "A", StoreURL: "https://a.example.com"},
	)

	done := make(chan error)
	go func() {
		_, err := svc.RefreshAllPrices(ctx)
		done <- err
	}()

	<-started
	_, err := svc.RefreshAllPrices(ctx)
	require.ErrorIs(t, err, ErrRefreshInProgress)

	close(release)
	require.NoError(t, <-done)

	fetcher.hook = nil
	report, err := svc.RefreshAllPrices(ctx)
	require.NoError(t, err)
	require.Len(t, report.Updated, 1)
}

package supplements

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"supplements-backend/services/supplements/db"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type PriceUpdate struct {
	StoreInfoID  string   `json:"storeInfoId"`
	SupplementID string   `json:"supplementId"`
	Price        float64  `json:"price"`
	Previous     *float64 `json:"previous,omitempty"`
}

type RefreshFailure struct {
	StoreInfoID string `json:"storeInfoId"`
	StoreURL    string `json:"storeURL"`
	Reason      error  `json:"-"`
	Message     string `json:"reason"`
}

type RefreshReport struct {
	Updated  []PriceUpdate    `json:"updated"`
	Failures []RefreshFailure `json:"failures"`
	// Skipped counts store infos that were deleted while the batch ran.
	Skipped   int  `json:"skipped"`
	Cancelled bool `json:"cancelled"`
}

// storePrice writes the result of a fetch, it reports false if the store
// info no longer exists.
//
// the write must happen even if the fetch was the last thing the caller
// waited for before cancelling, so it ignores ctx cancellation.
func (s Service) storePrice(ctx context.Context, id string, price *float64) (bool, error) {
	affected, err := s.qry.SetStoreInfoPrice(context.WithoutCancel(ctx), db.SetStoreInfoPriceParams{
		ID:    id,
		Price: nullPrice(price),
	})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// RefreshPrice fetches the current price of a store info and stores it,
// when fetching fails the price is cleared instead of left stale.
func (s Service) RefreshPrice(ctx context.Context, storeInfoId string) (float64, error) {
	ctx, span := tracer.Start(ctx, "RefreshPrice")
	defer span.End()
	span.SetAttributes(attribute.String("store_info_id", storeInfoId))

	store, err := s.qry.GetStoreInfo(ctx, storeInfoId)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, notFound("store info", storeInfoId)
	}
	if err != nil {
		return 0, s.persistenceError(report_refresh_price, err)
	}

	price, fetchErr := s.prices.FetchPrice(ctx, store.StoreUrl)
	if fetchErr != nil && ctx.Err() != nil {
		return 0, ctx.Err()
	}

	var stored *float64
	if fetchErr == nil {
		stored = &price
	}
	exists, err := s.storePrice(ctx, storeInfoId, stored)
	if err != nil {
		return 0, s.persistenceError(report_refresh_price, err)
	}
	if !exists {
		return 0, notFound("store info", storeInfoId)
	}

	if fetchErr != nil {
		refreshTotal.WithLabelValues(refreshResultFailed).Inc()
		span.RecordError(fetchErr)
		span.SetStatus(codes.Error, fetchErr.Error())
		s.tel.ReportWarning(report_refresh_price, storeInfoId, fetchErr)
		return 0, fmt.Errorf("refresh %s: %w", storeInfoId, fetchErr)
	}

	refreshTotal.WithLabelValues(refreshResultUpdated).Inc()
	return price, nil
}

// RefreshAllPrices refreshes every store info of every supplement, one
// request at a time. Failures clear the price and are collected in the
// report, the batch only stops early when ctx is cancelled, in which case
// the partial report is returned along with ctx.Err().
func (s Service) RefreshAllPrices(ctx context.Context) (RefreshReport, error) {
	if !s.refreshing.CompareAndSwap(false, true) {
		return RefreshReport{}, ErrRefreshInProgress
	}
	defer s.refreshing.Store(false)

	ctx, span := tracer.Start(ctx, "RefreshAllPrices")
	defer span.End()

	start := s.time.Now()
	defer func() {
		refreshBatchDuration.Observe(s.time.Now().Sub(start).Seconds())
	}()

	stores, err := s.qry.ListStoreInfos(ctx)
	if err != nil {
		return RefreshReport{}, s.persistenceError(report_refresh_all, err)
	}

	report := RefreshReport{}
	cancelled := func() (RefreshReport, error) {
		report.Cancelled = true
		span.SetStatus(codes.Error, "cancelled")
		s.tel.ReportDebug("price refresh cancelled", len(report.Updated), len(report.Failures))
		return report, ctx.Err()
	}

	for _, listed := range stores {
		if ctx.Err() != nil {
			return cancelled()
		}

		store, err := s.qry.GetStoreInfo(ctx, listed.ID)
		if errors.Is(err, sql.ErrNoRows) {
			report.Skipped++
			refreshTotal.WithLabelValues(refreshResultSkipped).Inc()
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return cancelled()
			}
			return report, s.persistenceError(report_refresh_all, err)
		}

		price, fetchErr := s.prices.FetchPrice(ctx, store.StoreUrl)
		if fetchErr != nil && ctx.Err() != nil {
			return cancelled()
		}

		var stored *float64
		if fetchErr == nil {
			stored = &price
		}
		exists, err := s.storePrice(ctx, store.ID, stored)
		if err != nil {
			return report, s.persistenceError(report_refresh_all, err)
		}
		if !exists {
			report.Skipped++
			refreshTotal.WithLabelValues(refreshResultSkipped).Inc()
			continue
		}

		if fetchErr != nil {
			refreshTotal.WithLabelValues(refreshResultFailed).Inc()
			report.Failures = append(report.Failures, RefreshFailure{
				StoreInfoID: store.ID,
				StoreURL:    store.StoreUrl,
				Reason:      fetchErr,
				Message:     fetchErr.Error(),
			})
			continue
		}

		refreshTotal.WithLabelValues(refreshResultUpdated).Inc()
		report.Updated = append(report.Updated, PriceUpdate{
			StoreInfoID:  store.ID,
			SupplementID: store.SupplementID,
			Price:        price,
			Previous:     pricePtr(store.Price),
		})
	}

	span.SetAttributes(
		attribute.Int("updated", len(report.Updated)),
		attribute.Int("failed", len(report.Failures)),
		attribute.Int("skipped", report.Skipped),
	)
	s.tel.ReportCount(report_refresh_all_count, int64(len(report.Updated)))
	if len(report.Failures) > 0 {
		s.tel.ReportWarning(report_refresh_all_failed, len(report.Failures))
	}
	return report, nil
}

package supplements

import (
	"context"
	"database/sql"
	"fmt"
	"supplements-backend/internal/components/assert"
	"supplements-backend/internal/components/chrono"
	"supplements-backend/internal/components/telemetry"
	"supplements-backend/services/supplements/db"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

var tracer = otel.Tracer("supplements.services.supplements")

const (
	report_catalog_create_supplement = "catalog.create-supplement"
	report_catalog_get_supplement    = "catalog.get-supplement"
	report_catalog_list_supplements  = "catalog.list-supplements"
	report_catalog_update_supplement = "catalog.update-supplement"
	report_catalog_delete_supplement = "catalog.delete-supplement"
	report_catalog_add_store_info    = "catalog.add-store-info"
	report_catalog_get_store_info    = "catalog.get-store-info"
	report_catalog_update_store_info = "catalog.update-store-info"
	report_catalog_delete_store_info = "catalog.delete-store-info"
	report_catalog_list_categories   = "catalog.list-categories"
	report_catalog_search            = "catalog.search"
	report_catalog_seed              = "catalog.seed"

	report_cart_add      = "cart.add"
	report_cart_set      = "cart.set-quantity"
	report_cart_remove   = "cart.remove"
	report_cart_clear    = "cart.clear"
	report_cart_list     = "cart.list"
	report_cart_checkout = "cart.checkout"

	report_orders_list   = "orders.list"
	report_orders_get    = "orders.get"
	report_orders_delete = "orders.delete"

	report_refresh_price      = "refresh.price"
	report_refresh_all        = "refresh.all"
	report_refresh_all_count  = "refresh.all-updated"
	report_refresh_all_failed = "refresh.all-failed"
	report_snapshot_import    = "snapshot.import"

	report_lookup_list   = "lookup.list"
	report_lookup_add    = "lookup.add"
	report_lookup_delete = "lookup.delete"
)

// PriceFetcher fetches the current price of a retailer product page.
//
// note: fault injection point
type PriceFetcher interface {
	FetchPrice(ctx context.Context, storeURL string) (float64, error)
}

// IDGenerator produces the ids of every created record.
//
// note: fault injection point
type IDGenerator interface {
	NewID() string
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

// Service owns the catalog, the cart and the orders, every method persists
// its changes before returning.
type Service struct {
	db     *sql.DB
	qry    *db.Queries
	prices PriceFetcher
	time   chrono.TimeAPI
	ids    IDGenerator
	tel    telemetry.API

	refreshing *atomic.Bool
}

type serviceCfg struct {
	tel  telemetry.API
	time chrono.TimeAPI
	ids  IDGenerator
}

type ServiceOption func(cfg *serviceCfg)

func WithCustomTelemetryAPI(tel telemetry.API) ServiceOption {
	return func(cfg *serviceCfg) {
		cfg.tel = tel
	}
}

func WithCustomTimeAPI(time chrono.TimeAPI) ServiceOption {
	return func(cfg *serviceCfg) {
		cfg.time = time
	}
}

func WithCustomIDGenerator(ids IDGenerator) ServiceOption {
	return func(cfg *serviceCfg) {
		cfg.ids = ids
	}
}

// NewService creates a Service over a database that has db.Schema applied.
func NewService(database *sql.DB, prices PriceFetcher, opts ...ServiceOption) Service {
	assert.NotNil(database, "database")
	assert.NotNil(prices, "price fetcher")

	var cfg serviceCfg
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.tel == nil {
		cfg.tel = telemetry.SlogAPI{}
	}
	if cfg.time == nil {
		cfg.time = chrono.NewStandardTime(nil)
	}
	if cfg.ids == nil {
		cfg.ids = uuidGenerator{}
	}

	return Service{
		db:         database,
		qry:        db.New(database),
		prices:     prices,
		time:       cfg.time,
		ids:        cfg.ids,
		tel:        telemetry.NewScopedAPI("supplements", cfg.tel),
		refreshing: &atomic.Bool{},
	}
}

// persistenceError reports a failed database operation and wraps it in
// ErrPersistenceFailed.
func (s Service) persistenceError(id string, err error) error {
	s.tel.ReportBroken(id, err)
	return fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
}

// inTx runs fn in a transaction, fn must only use the queries it is given.
//
// errors returned by fn are passed through untouched, failing to begin or
// commit the transaction is a persistence error.
func (s Service) inTx(ctx context.Context, reportId string, fn func(txqry *db.Queries) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.persistenceError(reportId, err)
	}
	defer tx.Rollback()

	err = fn(s.qry.WithTx(tx))
	if err != nil {
		return err
	}

	err = tx.Commit()
	if err != nil {
		return s.persistenceError(reportId, err)
	}
	return nil
}

func (s Service) now() int64 {
	return s.time.Now().UnixMilli()
}

func fromUnixMilli(ms int64) time.Time {
	return time.UnixMilli(ms)
}

func nullPrice(price *float64) sql.NullFloat64 {
	if price == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *price, Valid: true}
}

func pricePtr(price sql.NullFloat64) *float64 {
	if !price.Valid {
		return nil
	}
	value := price.Float64
	return &value
}

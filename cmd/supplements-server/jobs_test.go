package main

import (
	"context"
	"supplements-backend/internal/components/telemetry"
	"supplements-backend/lib/testutil"
	"supplements-backend/services/supplements"
	"supplements-backend/services/supplements/db"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeCron struct {
	specs []string
	jobs  []func()
}

func (c *fakeCron) Cron(spec string, callback func()) error {
	c.specs = append(c.specs, spec)
	c.jobs = append(c.jobs, callback)
	return nil
}

func (c *fakeCron) Stop() {}

type constantFetcher float64

func (f constantFetcher) FetchPrice(ctx context.Context, url string) (float64, error) {
	return float64(f), nil
}

func TestScheduleJobs(t *testing.T) {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "supplements-server",
		DbSchema: db.Schema,
	})
	defer cleanup()

	svc := supplements.NewService(res.DB, constantFetcher(12.5), supplements.WithCustomTelemetryAPI(&telemetry.Recorder{}))
	ctx := context.Background()
	_, err := svc.SeedCatalog(ctx)
	require.NoError(t, err)

	cron := &fakeCron{}
	cfg := Config{RefreshSchedule: "0 6 * * *"}.withDefaults()
	require.NoError(t, ScheduleJobs(ctx, cron, svc, cfg, false))
	require.Equal(t, []string{"0 6 * * *"}, cron.specs)

	cron.jobs[0]()

	list, err := svc.ListSupplements(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	for _, s := range list {
		for _, store := range s.StoreInfos {
			require.NotNil(t, store.Price, store.StoreURL)
			require.Equal(t, 12.5, *store.Price)
		}
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	require.Equal(t, 8000, cfg.Port)
	require.Equal(t, "Local", cfg.Timezone)
	require.Equal(t, "<dev_state>/supplements.db", cfg.Database.File)

	cfg = Config{Port: 9000}.withDefaults()
	require.Equal(t, 9000, cfg.Port)
}

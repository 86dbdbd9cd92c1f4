package main

import (
	"flag"
	"log/slog"
	"supplements-backend/internal/components/chrono"
	"supplements-backend/internal/components/telemetry"
	"supplements-backend/lib/configutil"
	"supplements-backend/lib/serviceutil"
	"supplements-backend/services/supplements"
	"supplements-backend/services/supplements/db"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	configPath := flag.String("config", "config.json5", "The path to the configuration file.")
	initialRefresh := flag.Bool("refresh", false, "Refresh every price immediately on start.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	InitTelemetry(ctx, *verbose)

	cfg, err := configutil.ReadConfig[Config](*configPath)
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	cfg = cfg.withDefaults()

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		serviceutil.Fatal("load timezone", err)
	}
	timeApi := chrono.NewStandardTime(location)

	database, err := cfg.Database.OpenDB(db.Schema)
	if err != nil {
		serviceutil.Fatal("open database", err)
	}
	defer database.Close()

	tel := telemetry.SlogAPI{}
	svc := supplements.NewService(
		database,
		NewPriceClient(cfg.Prices, tel, *verbose),
		supplements.WithCustomTelemetryAPI(tel),
		supplements.WithCustomTimeAPI(timeApi),
	)

	if cfg.SeedOnStart {
		count, err := svc.SeedCatalog(ctx)
		if err != nil {
			serviceutil.Fatal("seed catalog", err)
		}
		if count > 0 {
			slog.InfoContext(ctx, "seeded default catalog", "supplements", count)
		}
	}

	cron := chrono.NewStandardCron(timeApi, tel)
	defer cron.Stop()

	err = ScheduleJobs(ctx, cron, svc, cfg, *initialRefresh)
	if err != nil {
		serviceutil.Fatal("schedule jobs", err)
	}

	mux := NewMux(svc, tel, cfg.Rpc)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return serviceutil.StartHttpServer(ctx, cfg.Port, mux)
	})
	err = group.Wait()
	if err != nil {
		serviceutil.Fatal("serve http", err)
	}
}

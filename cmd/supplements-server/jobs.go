package main

import (
	"context"
	"errors"
	"log/slog"
	"supplements-backend/internal/components/chrono"
	"supplements-backend/internal/components/telemetry"
	"supplements-backend/lib/backup"
	"supplements-backend/lib/restyutil"
	"supplements-backend/lib/scrapers/prices"
	"supplements-backend/services/supplements"
	"time"
)

func NewPriceClient(cfg PricesConfig, tel telemetry.API, verbose bool) *prices.Client {
	opts := prices.ClientOptions{
		UserAgent:         cfg.UserAgent,
		Timeout:           time.Duration(cfg.TimeoutSeconds) * time.Second,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
		BypassCloudflare:  cfg.BypassCloudflare,
	}
	if verbose {
		output, err := restyutil.NewFilesystemOutput("<dev_state>/resty/prices")
		if err != nil {
			slog.Warn("failed to create resty output directory", "err", err)
		} else {
			opts.Output = output
		}
	}
	return prices.NewClient(opts, tel)
}

func refreshJob(ctx context.Context, svc supplements.Service) {
	report, err := svc.RefreshAllPrices(ctx)
	if errors.Is(err, supplements.ErrRefreshInProgress) {
		slog.InfoContext(ctx, "skipping scheduled refresh, one is already running")
		return
	}
	if err != nil && !report.Cancelled {
		slog.ErrorContext(ctx, "scheduled refresh failed", "err", err)
		return
	}
	slog.InfoContext(
		ctx, "scheduled refresh finished",
		"updated", len(report.Updated),
		"failed", len(report.Failures),
		"skipped", report.Skipped,
		"cancelled", report.Cancelled,
	)
}

func backupJob(ctx context.Context, svc supplements.Service, uploader *backup.Uploader, at time.Time) {
	snapshot, err := svc.ExportSnapshot(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "export snapshot", "err", err)
		return
	}
	key, err := uploader.Upload(ctx, snapshot, at)
	if err != nil {
		slog.ErrorContext(ctx, "upload snapshot", "err", err)
		return
	}
	slog.InfoContext(ctx, "uploaded snapshot", "key", key)
}

// ScheduleJobs registers the price refresh and backup cron jobs, both are
// optional and are skipped when their schedule is empty.
func ScheduleJobs(ctx context.Context, cron chrono.CronAPI, svc supplements.Service, cfg Config, initialRefresh bool) error {
	if initialRefresh {
		go refreshJob(ctx, svc)
	}

	if cfg.RefreshSchedule != "" {
		err := cron.Cron(cfg.RefreshSchedule, func() {
			refreshJob(ctx, svc)
		})
		if err != nil {
			return err
		}
		slog.InfoContext(ctx, "scheduled price refresh", "schedule", cfg.RefreshSchedule)
	}

	if cfg.Backup.Schedule == "" {
		return nil
	}
	uploader, err := backup.NewUploader(ctx, cfg.Backup.S3)
	if err != nil {
		return err
	}
	err = cron.Cron(cfg.Backup.Schedule, func() {
		backupJob(ctx, svc, uploader, time.Now())
	})
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "scheduled snapshot backups", "schedule", cfg.Backup.Schedule, "bucket", cfg.Backup.S3.Bucket)
	return nil
}

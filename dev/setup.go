package main

import (
	"context"
	"fmt"
	"log/slog"
	"supplements-backend/internal/components/telemetry"
	configsqlite "supplements-backend/lib/configutil/sqlite"
	"supplements-backend/lib/scrapers/prices"
	"supplements-backend/services/supplements"
	"supplements-backend/services/supplements/db"
)

const devDatabase = "<dev_state>/supplements.db"

func CreateServiceDB(seed bool) error {
	database, err := configsqlite.Struct{File: devDatabase}.OpenDB(db.Schema)
	if err != nil {
		return err
	}
	defer database.Close()
	fmt.Println("database ready at", devDatabase)

	if !seed {
		return nil
	}

	tel := telemetry.SlogAPI{}
	svc := supplements.NewService(
		database,
		prices.NewClient(prices.ClientOptions{}, tel),
		supplements.WithCustomTelemetryAPI(tel),
	)
	count, err := svc.SeedCatalog(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("seeded %d supplements\n", count)
	return nil
}

func PrintConfigLocations() {
	slog.Info("the server reads config.json5 (and config.local.json5) from its working directory, cmd/supplements-server/config.json5 is an example.")
	slog.Info("telemetry is exported only when a telemetry.json5 exists in the working directory or one of its parents.")
}

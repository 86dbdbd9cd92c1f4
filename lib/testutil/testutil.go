package testutil

import (
	"database/sql"
	"fmt"
	configsqlite "supplements-backend/lib/configutil/sqlite"
	"supplements-backend/lib/telemetry"
	"testing"
)

type ServiceParams struct {
	Name string
	// if unspecified, it will skip setting up a db
	DbSchema string
	// if unspecified, it will use `:memory:`
	DbPath string
}

type ServiceResult struct {
	DB *sql.DB
}

// SetupService initializes telemetry for the test (if configured) and opens
// a database with the given schema applied, the returned func releases both.
func SetupService(t testing.TB, params ServiceParams) (ServiceResult, func()) {
	cleanupTelemetry := telemetry.SetupForTesting(t, fmt.Sprintf("test:%s", params.Name))
	if params.DbSchema == "" {
		return ServiceResult{}, cleanupTelemetry
	}

	dbpath := params.DbPath
	if dbpath == "" {
		dbpath = ":memory:"
	}
	database, err := configsqlite.Struct{File: dbpath}.OpenDB(params.DbSchema)
	if err != nil {
		cleanupTelemetry()
		t.Fatal(err)
	}

	return ServiceResult{DB: database}, func() {
		database.Close()
		cleanupTelemetry()
	}
}

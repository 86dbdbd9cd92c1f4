package commands

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"supplements-backend/internal/components/telemetry"
	"supplements-backend/lib/backup"
	"supplements-backend/lib/configutil"
	configsqlite "supplements-backend/lib/configutil/sqlite"
	"supplements-backend/lib/orderemail"
	"supplements-backend/lib/scrapers/prices"
	"supplements-backend/services/supplements"
	"supplements-backend/services/supplements/db"

	"github.com/spf13/cobra"
)

// Config is the contents of the file given to --config, every field is
// optional.
type Config struct {
	Database configsqlite.Struct   `json:"database"`
	Smtp     orderemail.SmtpConfig `json:"smtp"`
	S3       backup.S3Config       `json:"s3"`
}

type state struct {
	cfg      Config
	database *sql.DB
	svc      supplements.Service
}

type stateKey struct{}

func getState(ctx context.Context) *state {
	return ctx.Value(stateKey{}).(*state)
}

func service(cmd *cobra.Command) supplements.Service {
	return getState(cmd.Context()).svc
}

func config(cmd *cobra.Command) Config {
	return getState(cmd.Context()).cfg
}

var (
	configPath *string
	dbPath     *string
)

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "config.json5", "The configuration file, it may not exist.")
	dbPath = rootCmd.PersistentFlags().String("db", "", "The sqlite database to use, overrides the configuration file.")
}

func readConfig() (Config, error) {
	cfg, err := configutil.ReadConfig[Config](*configPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}
	if *dbPath != "" {
		cfg.Database = configsqlite.Struct{File: *dbPath}
	}
	if cfg.Database.File == "" && cfg.Database.Url == "" {
		cfg.Database.File = "<dev_state>/supplements.db"
	}
	return cfg, nil
}

var rootCmd = &cobra.Command{
	Use:           "supplements-cli",
	Short:         "supplements-cli manages the supplement catalog, the cart and past orders.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readConfig()
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		database, err := cfg.Database.OpenDB(db.Schema)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}

		tel := telemetry.SlogAPI{}
		svc := supplements.NewService(
			database,
			prices.NewClient(prices.ClientOptions{BypassCloudflare: true}, tel),
			supplements.WithCustomTelemetryAPI(tel),
		)
		cmd.SetContext(context.WithValue(cmd.Context(), stateKey{}, &state{
			cfg:      cfg,
			database: database,
			svc:      svc,
		}))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return getState(cmd.Context()).database.Close()
	},
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

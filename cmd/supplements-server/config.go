package main

import (
	"supplements-backend/lib/backup"
	configsqlite "supplements-backend/lib/configutil/sqlite"
)

type PricesConfig struct {
	UserAgent         string  `json:"user_agent"`
	TimeoutSeconds    int     `json:"timeout_seconds"`
	RequestsPerSecond float64 `json:"requests_per_second"`
	Burst             int     `json:"burst"`
	BypassCloudflare  bool    `json:"bypass_cloudflare"`
}

type BackupConfig struct {
	// a cron spec, backups are disabled when empty
	Schedule string          `json:"schedule"`
	S3       backup.S3Config `json:"s3"`
}

// Config is the contents of config.json5
type Config struct {
	Port     int                 `json:"port"`
	Timezone string              `json:"timezone"`
	Database configsqlite.Struct `json:"database"`
	Prices   PricesConfig        `json:"prices"`
	// a cron spec, scheduled refreshes are disabled when empty
	RefreshSchedule string       `json:"refresh_schedule"`
	SeedOnStart     bool         `json:"seed_on_start"`
	Backup          BackupConfig `json:"backup"`
	Rpc             RpcConfig    `json:"rpc"`
}

func (c Config) withDefaults() Config {
	if c.Port == 0 {
		c.Port = 8000
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.Database.File == "" && c.Database.Url == "" {
		c.Database.File = "<dev_state>/supplements.db"
	}
	return c
}

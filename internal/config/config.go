// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import "time"

// Store backends accepted by STORE_BACKEND.
const (
	StoreBackendRedis  = "redis"
	StoreBackendSQLite = "sqlite"
	StoreBackendMemory = "memory"
)

// Config holds all application configuration loaded from environment variables.
// This struct uses github.com/caarlos0/env for automatic environment variable parsing.
//
// Use struct tags to define:
// - `env:"VAR_NAME"` - the environment variable name
// - `envDefault:"value"` - set a default value
//
// After adding fields here, update loader.go Validate() if custom
// validation is needed.
type Config struct {
	// ============================================================
	// Server configuration
	// ============================================================
	GRPCPort    int    `env:"GRPC_PORT" envDefault:"6565"`
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"StepCompanion"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// ============================================================
	// Persistence configuration
	// ============================================================
	StoreBackend string `env:"STORE_BACKEND" envDefault:"redis"`

	RedisHost         string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort         string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisDB           int    `env:"REDIS_DB" envDefault:"0"`
	RedisKeyPrefix    string `env:"REDIS_KEY_PREFIX" envDefault:"step_companion:"`
	RedisMaxRetries   int    `env:"REDIS_MAX_RETRIES" envDefault:"5"`
	RedisRetryDelayMs int    `env:"REDIS_RETRY_DELAY_MS" envDefault:"1000"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"data/companion.db"`

	// ============================================================
	// Companion configuration
	// ============================================================
	ConfigPath          string        `env:"CONFIG_PATH" envDefault:"config/pipeline.yaml"`
	CatalogPath         string        `env:"CATALOG_PATH"`
	TickInterval        time.Duration `env:"TICK_INTERVAL" envDefault:"1s"`
	SpawnVariantOdds    int           `env:"SPAWN_VARIANT_ODDS" envDefault:"1000"`
	RolloverVariantOdds int           `env:"ROLLOVER_VARIANT_ODDS" envDefault:"100"`
	RandomSeed          uint64        `env:"RANDOM_SEED"`

	// ============================================================
	// Telemetry configuration
	// ============================================================
	OtelEnabled        bool   `env:"OTEL_ENABLED" envDefault:"true"`
	OtelZipkinEndpoint string `env:"OTEL_EXPORTER_ZIPKIN_ENDPOINT"`
	OtelServiceName    string `env:"OTEL_SERVICE_NAME" envDefault:"step-companion"`
}

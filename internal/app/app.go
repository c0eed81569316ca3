// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-step-companion/internal/bootstrap"
	"github.com/AccelByte/extend-step-companion/internal/config"
	"github.com/AccelByte/extend-step-companion/internal/server"
	"github.com/AccelByte/extend-step-companion/pkg/action"
	actionBuiltin "github.com/AccelByte/extend-step-companion/pkg/action/builtin"
	"github.com/AccelByte/extend-step-companion/pkg/lifecycle"
	"github.com/AccelByte/extend-step-companion/pkg/pipeline"
	"github.com/AccelByte/extend-step-companion/pkg/service"
	"github.com/AccelByte/extend-step-companion/pkg/state"
)

// App holds all application dependencies and manages the application lifecycle.
type App struct {
	cfg               *config.Config
	sessionID         string
	grpcServer        *server.GRPCServer
	httpServer        *server.HTTPServer
	manager           *pipeline.Manager
	executor          *action.Executor
	store             state.Store
	redisClient       *redis.Client
	sqliteStore       *state.SQLiteStore
	shutdownTelemetry func(context.Context) error

	// now is the clock used for ticks and session start.
	now func() time.Time
}

// Options overrides collaborators, mostly for tests.
type Options struct {
	// Store replaces the backend selected by STORE_BACKEND.
	Store state.Store
	// Audio replaces the logging audio player.
	Audio service.AudioPlayer
	// Now replaces time.Now.
	Now func() time.Time
	// Logger receives the pipeline manager's logs.
	Logger *slog.Logger
}

// New creates and initializes a new application instance.
//
// ============================================================
// DEVELOPER: Application initialization order
// ============================================================
// Components are initialized in dependency order:
// 1. Persistence (Redis, SQLite or in-memory)
// 2. Pipeline config (YAML configuration) and species catalog
// 3. Pipeline components (rules → actions)
// 4. Lifecycle engine, restored from today's records
// 5. Pipeline manager
// 6. Servers (gRPC, HTTP)
// 7. Telemetry (OpenTelemetry tracing)
//
// A store that cannot be reached here is fatal. Once running,
// store failures are logged and defaulted instead.
// ============================================================
func New(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	logrus.Info("initializing application...")

	app := &App{
		cfg:       cfg,
		sessionID: uuid.NewString(),
		now:       opts.Now,
	}
	if app.now == nil {
		app.now = time.Now
	}
	logrus.Infof("session id: %s", app.sessionID)

	// ============================================================
	// Step 1: Initialize persistence
	// ============================================================
	app.store = opts.Store
	if app.store == nil {
		if err := app.initStore(ctx); err != nil {
			return nil, fmt.Errorf("failed to init %s store: %w", cfg.StoreBackend, err)
		}
	}

	// ============================================================
	// Step 2: Load pipeline configuration and catalog
	// ============================================================
	pipelineConfig, err := pipeline.LoadConfigOrDefault(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load pipeline config from %s: %w", cfg.ConfigPath, err)
	}

	catalog, err := bootstrap.InitCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	// ============================================================
	// Step 3: Bootstrap pipeline components
	// ============================================================
	ruleEngine, ruleRegistry, err := bootstrap.InitRuleEngine(pipelineConfig, catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to init rule engine: %w", err)
	}

	audio := opts.Audio
	if audio == nil {
		audio = service.NewLoggingAudioPlayer()
	}

	actionExecutor, actionRegistry, err := bootstrap.InitActionExecutor(pipelineConfig, &actionBuiltin.Dependencies{
		AudioPlayer: audio,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init action executor: %w", err)
	}
	app.executor = actionExecutor

	// ============================================================
	// Step 4: Restore the companion
	// ============================================================
	engine, err := lifecycle.New(lifecycle.Config{
		Store:               app.store,
		Catalog:             catalog,
		Rules:               ruleEngine,
		Rand:                newRand(cfg.RandomSeed),
		Audio:               audio,
		SpawnVariantOdds:    cfg.SpawnVariantOdds,
		RolloverVariantOdds: cfg.RolloverVariantOdds,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create lifecycle engine: %w", err)
	}
	if err := engine.Start(ctx, app.now()); err != nil {
		return nil, fmt.Errorf("failed to start companion session: %w", err)
	}

	// ============================================================
	// Step 5: Pipeline manager
	// ============================================================
	logger := opts.Logger
	if logger == nil {
		logger = newSlogLogger(os.Stdout, cfg.LogLevel).With(slog.String("session_id", app.sessionID))
	}
	app.manager, err = bootstrap.InitPipeline(engine, ruleRegistry, actionRegistry, actionExecutor, pipelineConfig, logger, pipeline.DefaultQueueSize)
	if err != nil {
		return nil, fmt.Errorf("pipeline wiring validation failed: %w", err)
	}

	// ============================================================
	// Step 6: Setup servers
	// ============================================================
	app.grpcServer = server.NewGRPCServer(cfg.GRPCPort, app.manager)
	if err := app.grpcServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup gRPC server: %w", err)
	}

	var checker server.HealthChecker
	if pinger, ok := app.store.(state.Pinger); ok {
		checker = state.NewHealthChecker(pinger)
	}
	app.httpServer = server.NewHTTPServer(cfg.HTTPPort, app.manager, checker)
	if err := app.httpServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup HTTP server: %w", err)
	}

	// ============================================================
	// Step 7: Setup telemetry
	// ============================================================
	if cfg.OtelEnabled {
		shutdownTelemetry, err := server.SetupTelemetry(ctx, cfg.OtelServiceName, cfg.Environment, cfg.OtelZipkinEndpoint, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to setup telemetry: %w", err)
		}
		app.shutdownTelemetry = shutdownTelemetry
	}

	logrus.Info("application initialized successfully")

	return app, nil
}

// Manager returns the pipeline manager.
func (a *App) Manager() *pipeline.Manager {
	return a.manager
}

// initStore opens the backend selected by STORE_BACKEND.
func (a *App) initStore(ctx context.Context) error {
	switch a.cfg.StoreBackend {
	case config.StoreBackendRedis:
		if err := a.initRedis(ctx); err != nil {
			return err
		}
		a.store = state.NewRedisStore(a.redisClient, state.RedisStoreConfig{KeyPrefix: a.cfg.RedisKeyPrefix})
	case config.StoreBackendSQLite:
		if dir := filepath.Dir(a.cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", dir, err)
			}
		}
		store, err := state.NewSQLiteStore(a.cfg.SQLitePath)
		if err != nil {
			return err
		}
		a.sqliteStore = store
		a.store = store
		logrus.Infof("SQLite store opened at %s", a.cfg.SQLitePath)
	case config.StoreBackendMemory:
		logrus.Warn("using in-memory store, progress is lost on restart")
		a.store = state.NewMemoryStore()
	default:
		return fmt.Errorf("unknown store backend %q", a.cfg.StoreBackend)
	}
	return nil
}

// initRedis initializes the Redis client.
func (a *App) initRedis(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr:         a.cfg.RedisHost + ":" + a.cfg.RedisPort,
		Password:     a.cfg.RedisPassword,
		DB:           a.cfg.RedisDB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Duration(a.cfg.RedisRetryDelayMs) * time.Millisecond
	maxRetries := backoff.WithMaxRetries(b, uint64(a.cfg.RedisMaxRetries))

	err := backoff.Retry(
		func() error {
			_, err := client.Ping(ctx).Result()
			if err != nil {
				logrus.Warnf("Redis connection failed: %v, retrying...", err)
				return err
			}
			return nil
		},
		backoff.WithContext(maxRetries, ctx),
	)

	if err != nil {
		client.Close()
		return err
	}

	a.redisClient = client
	logrus.Info("Redis client initialized")
	return nil
}

// newRand seeds a PCG source. A zero seed draws one at random.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	logrus.Infof("using fixed random seed %d", seed)
	return rand.New(rand.NewPCG(seed, seed))
}

func newSlogLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug", "trace":
		l = slog.LevelDebug
	case "warn", "warning":
		l = slog.LevelWarn
	case "error", "fatal", "panic":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: l}))
}

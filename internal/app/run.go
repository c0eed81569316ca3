// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	companionSignal "github.com/AccelByte/extend-step-companion/pkg/signal"
)

// shutdownTimeout bounds the graceful shutdown sequence.
const shutdownTimeout = 10 * time.Second

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	managerDone := a.Start(ctx)

	if err := a.grpcServer.Start(ctx); err != nil {
		return err
	}
	if err := a.httpServer.Start(ctx); err != nil {
		return err
	}

	logrus.Info("application started successfully")

	<-ctx.Done()
	logrus.Info("shutdown signal received")

	<-managerDone

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return a.Shutdown(shutdownCtx)
}

// Start runs the pipeline manager and the tick loop until ctx is done. The
// returned channel closes once both have stopped.
func (a *App) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	tickerDone := make(chan struct{})

	go func() {
		defer close(tickerDone)
		a.tickLoop(ctx)
	}()

	go func() {
		defer close(done)
		if err := a.manager.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logrus.Errorf("pipeline manager stopped: %v", err)
		}
		<-tickerDone
	}()

	return done
}

// tickLoop submits a tick every TICK_INTERVAL.
func (a *App) tickLoop(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.manager.Submit(ctx, companionSignal.NewTickSignal(a.now())); err != nil {
				logrus.Debugf("tick not submitted: %v", err)
				return
			}
		}
	}
}

// Shutdown gracefully shuts down all application components.
//
// ============================================================
// DEVELOPER: Shutdown order is critical
// ============================================================
// Components are shut down in reverse dependency order:
// 1. Stop accepting new requests (gRPC + HTTP servers)
// 2. Wait for in-flight async actions (audio cues)
// 3. Close the store (Redis or SQLite)
// 4. Flush telemetry data (OpenTelemetry)
//
// Shutdown errors are logged but don't stop the shutdown
// sequence. Each component gets a chance to clean up.
// ============================================================
func (a *App) Shutdown(ctx context.Context) error {
	logrus.Info("shutting down application...")

	if a.grpcServer != nil {
		if err := a.grpcServer.Shutdown(ctx); err != nil {
			logrus.Errorf("gRPC server shutdown error: %v", err)
		}
	}
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			logrus.Errorf("HTTP server shutdown error: %v", err)
		}
	}

	if a.executor != nil {
		a.executor.Wait()
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			logrus.Errorf("Redis close error: %v", err)
		}
	}
	if a.sqliteStore != nil {
		if err := a.sqliteStore.Close(); err != nil {
			logrus.Errorf("SQLite close error: %v", err)
		}
	}

	if a.shutdownTelemetry != nil {
		if err := a.shutdownTelemetry(ctx); err != nil {
			logrus.Errorf("telemetry shutdown error: %v", err)
		}
	}

	logrus.Info("application shutdown complete")
	return nil
}

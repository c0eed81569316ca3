// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-step-companion/pkg/companion"
	"github.com/AccelByte/extend-step-companion/pkg/metrics"
	"github.com/AccelByte/extend-step-companion/pkg/pipeline"
)

// StatusSource provides the read side of the pipeline.
type StatusSource interface {
	Snapshot() companion.Snapshot
	GetStats() pipeline.Stats
}

// HealthChecker reports whether the store is reachable.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HTTPServer serves metrics, the companion snapshot and health.
type HTTPServer struct {
	server  *http.Server
	port    int
	status  StatusSource
	checker HealthChecker
	handler http.Handler
}

// NewHTTPServer creates a new HTTP server instance. checker may be nil.
func NewHTTPServer(port int, status StatusSource, checker HealthChecker) *HTTPServer {
	return &HTTPServer{
		port:    port,
		status:  status,
		checker: checker,
	}
}

// Setup registers collectors and routes.
//
// ============================================================
// DEVELOPER: Register custom Prometheus metrics here
// ============================================================
// Go runtime and process metrics are exposed next to the
// companion metrics from pkg/metrics. New collectors belong in
// pkg/metrics.Collectors().
// ============================================================
func (h *HTTPServer) Setup() error {
	registry := prometheus.NewRegistry()

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	registry.MustRegister(metrics.Collectors()...)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Get("/companion", h.handleCompanion)
	r.Get("/stats", h.handleStats)
	r.Get("/healthz", h.handleHealth)

	h.handler = r
	h.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", h.port),
		Handler: r,
	}

	return nil
}

// Handler returns the routed handler. Setup must have been called.
func (h *HTTPServer) Handler() http.Handler {
	return h.handler
}

// Start begins serving HTTP on the configured port.
func (h *HTTPServer) Start(ctx context.Context) error {
	go func() {
		logrus.Infof("HTTP server listening on port %d", h.port)
		if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server failed: %v", err)
		}
	}()
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (h *HTTPServer) Shutdown(ctx context.Context) error {
	logrus.Info("shutting down HTTP server...")
	if err := h.server.Shutdown(ctx); err != nil {
		return err
	}
	logrus.Info("HTTP server stopped")
	return nil
}

func (h *HTTPServer) handleCompanion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.status.Snapshot())
}

func (h *HTTPServer) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.status.GetStats())
}

func (h *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.checker != nil {
		if err := h.checker.Check(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
				"error":  err.Error(),
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Warnf("failed to write response: %v", err)
	}
}

// ABOUTME: Entry point for the VDB benchmark backend service
// ABOUTME: Serves the cost model and per-session scenario tables over an HTTP API

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chrisspier/vdb-benchmark-app/backend/cache"
	"github.com/chrisspier/vdb-benchmark-app/backend/config"
	"github.com/chrisspier/vdb-benchmark-app/backend/handlers"
	"github.com/chrisspier/vdb-benchmark-app/backend/logger"
	"github.com/chrisspier/vdb-benchmark-app/backend/metrics"
	"github.com/chrisspier/vdb-benchmark-app/backend/models"
	"github.com/chrisspier/vdb-benchmark-app/backend/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize structured logging
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting VDB Benchmark Backend")

	presets, err := services.LoadPresets(cfg.PresetsFile)
	if err != nil {
		slog.Error("Failed to load presets", "path", cfg.PresetsFile, "error", err)
		os.Exit(1)
	}
	catalog := services.NewPresetCatalog(presets)
	slog.Info("Presets ready", "count", catalog.Len(), "custom", cfg.PresetsFile != "")

	// Session tables live in memory and expire after SESSION_TTL of inactivity
	c := cache.New[models.TableState](cfg.SessionTTLDuration())
	defer c.Close()
	sessions := services.NewSessionService(c, catalog)
	slog.Info("Session store initialized", "ttl", cfg.SessionTTLDuration())

	m := metrics.New()
	m.RegisterSessionGauge(sessions.Count)

	h := handlers.NewHandler(cfg, sessions, catalog, m)
	if !cfg.RateLimitEnabled {
		slog.Warn("Rate limiting disabled")
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h.NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "addr", server.Addr, "metrics", cfg.MetricsEnabled)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutting down", "timeout", shutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
		}
	}
}

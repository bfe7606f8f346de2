package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/narwhalmedia/tracker/internal/container"
	"github.com/narwhalmedia/tracker/pkg/config"
	"github.com/narwhalmedia/tracker/pkg/interfaces"
	"github.com/narwhalmedia/tracker/pkg/metrics"
)

func main() {
	// Load configuration
	cfg := config.MustLoadServiceConfig("catalog", config.GetDefaultCatalogConfig())

	// Initialize logger
	zl, err := cfg.Logger.ToLoggerConfig(cfg.Service.Name).Build()
	if err != nil {
		panic(err)
	}
	defer zl.Sync()
	var log interfaces.Logger = zl

	log.Info("Catalog service starting",
		interfaces.String("version", config.GetServiceVersion(&cfg.Service)),
		interfaces.String("environment", cfg.Service.Environment),
		interfaces.String("database", cfg.Database.Driver))

	c, cleanup, err := container.InitializeCatalog(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize catalog", interfaces.Error(err))
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := c.EventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", interfaces.Error(err))
	}

	server := &http.Server{
		Addr:         config.GetListenAddress(&cfg.Service),
		Handler:      c.Router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		log.Info("HTTP server starting", interfaces.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to serve HTTP", interfaces.Error(err))
		}
	}()

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsServer = startMetricsServer(cfg.Metrics, log)
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", interfaces.Error(err))
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.Error("Metrics server shutdown failed", interfaces.Error(err))
		}
	}

	log.Info("Catalog service stopped")
}

func startMetricsServer(cfg config.MetricsConfig, log interfaces.Logger) *http.Server {
	r := chi.NewRouter()
	r.Handle(cfg.Path, metrics.Handler())

	srv := &http.Server{
		Addr:    config.GetMetricsListenAddress(&cfg),
		Handler: r,
	}

	go func() {
		log.Info("Metrics server starting", interfaces.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Metrics server failed", interfaces.Error(err))
		}
	}()
	return srv
}

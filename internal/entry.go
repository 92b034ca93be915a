// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/davewd/folio/internal/api"
	"github.com/davewd/folio/internal/enrich"
	"github.com/davewd/folio/internal/mcpserver"
	"github.com/davewd/folio/internal/portfolio"
	"github.com/davewd/folio/internal/preview"
	"github.com/davewd/folio/internal/records"
	"github.com/davewd/folio/internal/sse"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("data_path", cfg.Data.Path),
		slog.Bool("watch", cfg.Data.Watch),
		slog.Bool("enrichment", cfg.Medium.Enabled()),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Record store: serve the explicit empty snapshot until the first load
	// lands, so handlers never see undefined input.
	store := records.NewStore()
	snap, err := records.Load(cfg.Data.Path)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}
	store.Swap(snap)
	logger.Info("Records loaded",
		slog.Int("projects", len(snap.Projects)),
		slog.Int("timeline_events", len(snap.Timeline)),
		slog.Int("thoughts", len(snap.Thoughts)))

	enriched := enrich.NewCache()
	svc := portfolio.NewService(store, enriched)

	if app.mcp {
		logger.Info("Starting MCP server on stdio")
		return mcpserver.New(svc).ServeStdio()
	}

	// SSE broker.
	broker := sse.NewBroker(2 * time.Second)
	defer broker.Close()

	resolver := preview.NewResolver(preview.Config{Fallbacks: cfg.Preview.Fallbacks})

	apiRouter := api.NewRouter(svc, resolver, http.HandlerFunc(broker.ServeHTTP))

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints.
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !svc.Loaded() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"loading"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Optional fixture watcher with SSE callback.
	if cfg.Data.Watch {
		g.Go(func() error {
			if werr := records.Watch(gCtx, store, cfg.Data.Path, logger, broker.PublishReload); werr != nil {
				logger.Warn("watcher failed", slog.String("error", werr.Error()))
			}
			return nil
		})
	}

	// Best-effort feed enrichment: one shot, never retried, never blocks
	// serving. Its failure leaves the static thoughts untouched.
	if cfg.Medium.Enabled() {
		fetcher := enrich.NewFetcher(enrich.FetcherConfig{Proxies: cfg.Medium.Proxies})
		g.Go(func() error {
			if enrich.Run(gCtx, fetcher, enriched, cfg.Medium.Handle, cfg.Medium.Title, logger) {
				broker.PublishEnriched(enrich.ThoughtID)
			}
			return nil
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

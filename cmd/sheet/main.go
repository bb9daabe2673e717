// Command sheet receives RSVP payloads and keeps them in SQLite. It accepts
// the same JSON the site posts to the spreadsheet script, so it can stand in
// for it locally.
package main

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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/rsvp/internal/config"
	"github.com/mmynk/rsvp/internal/metrics"
	"github.com/mmynk/rsvp/internal/middleware"
	"github.com/mmynk/rsvp/internal/sheet"
	"github.com/mmynk/rsvp/internal/storage/sqlite"
	"github.com/mmynk/rsvp/pkg/logging"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup("sheet")

	cfg, err := config.LoadSheet()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	metrics.Register()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	r := chi.NewRouter()
	r.Use(middleware.Logging("sheet"))
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/", sheet.NewHandler(store).Routes())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Sheet starting", "address", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Sheet failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}

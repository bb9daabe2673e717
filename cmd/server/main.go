package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/rsvp/internal/config"
	"github.com/mmynk/rsvp/internal/metrics"
	"github.com/mmynk/rsvp/internal/middleware"
	"github.com/mmynk/rsvp/internal/service"
	"github.com/mmynk/rsvp/internal/submission"
	"github.com/mmynk/rsvp/internal/web"
	"github.com/mmynk/rsvp/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup("site")

	cfg, err := config.LoadServer()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	metrics.Register()

	sender := submission.NewHTTPSender(cfg.Endpoint, cfg.Mode())
	guard := &submission.Guard{}
	slog.Info("Submissions configured", "endpoint", cfg.Endpoint, "mode", cfg.Mode(), "timeout", cfg.SubmitTimeout)

	r := chi.NewRouter()
	r.Use(middleware.Logging("site"))

	// Connect services
	rsvpPath, rsvpHandler := service.NewRSVPServiceHandler(
		service.NewRSVPService(sender, cfg.SubmitTimeout, guard),
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	)
	r.Mount(rsvpPath, rsvpHandler)
	r.Handle("/metrics", promhttp.Handler())

	staticDir, err := filepath.Abs(cfg.StaticPath)
	if err != nil {
		slog.Error("Failed to resolve static path", "error", err)
		os.Exit(1)
	}
	slog.Info("Serving static files", "path", staticDir)

	pages := web.NewHandler(sender,
		web.WithGuard(guard),
		web.WithSubmitTimeout(cfg.SubmitTimeout),
		web.WithResetAfter(cfg.ResetAfter),
		web.WithStaticPath(staticDir),
	)
	r.Mount("/", pages.Routes())

	// h2c serves HTTP/2 without TLS, which Connect clients use.
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(r, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server starting", "address", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}

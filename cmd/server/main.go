package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/linaank/web1/internal/adapter/httpserver"
	"github.com/linaank/web1/internal/adapter/markup"
	"github.com/linaank/web1/internal/adapter/memory"
	"github.com/linaank/web1/internal/adapter/metrics"
	"github.com/linaank/web1/internal/app"
	"github.com/linaank/web1/internal/platform/config"
	"github.com/linaank/web1/internal/platform/i18n"
	"github.com/linaank/web1/internal/platform/logging"
	"github.com/linaank/web1/internal/platform/version"
)

func runGracefulShutdown(srv *httpserver.Server, cfg *config.Config) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	build := version.Get()
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port, "version", build.Version, "commit", build.Commit)

	locale, err := i18n.ParseLocale(cfg.Locale)
	if err != nil {
		slog.Error("Invalid locale", "locale", cfg.Locale, "error", err)
		os.Exit(1)
	}

	reg := metrics.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(reg)
	evalMetrics := metrics.NewEvaluationMetrics(reg)

	var store *memory.SessionStore
	sessionMetrics := metrics.NewSessionMetrics(reg, func() int { return store.Len() })
	store = memory.NewSessionStore(cfg.MaxRowsPerSession, memory.WithEvictionHook(sessionMetrics.OnEvict))

	renderer := markup.NewRenderer(locale)
	appSvc := app.NewService(store, renderer, clock, evalMetrics)

	srv, err := httpserver.NewServer(cfg, appSvc, renderer, httpMetrics, metrics.Handler(reg))
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	done := runGracefulShutdown(srv, cfg)

	slog.Info("Server starting", "port", cfg.Port, "transport", cfg.Transport, "locale", locale.String())
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/http/fcgi"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/linaank/web1/internal/adapter/metrics"
	"github.com/linaank/web1/internal/platform/config"
	apperrors "github.com/linaank/web1/internal/platform/errors"
)

type appService interface {
	Submit(ctx context.Context, sessionID string, form url.Values) (string, error)
	History(ctx context.Context, sessionID string) (string, error)
	Clear(ctx context.Context, sessionID string) error
}

type fragmentRenderer interface {
	Error(err *apperrors.Error) string
	ErrorText(msg string) string
	Text(key string, args ...any) string
}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	app      appService
	renderer fragmentRenderer

	metricsHandler http.Handler
	httpMetrics    *metrics.HTTPMetrics

	startTime    time.Time
	shuttingDown atomic.Bool

	mu           sync.Mutex
	fcgiListener net.Listener
	fcgiInFlight atomic.Int64
}

const fcgiDrainPollInterval = 10 * time.Millisecond

func NewServer(cfg *config.Config, app appService, renderer fragmentRenderer, httpMetrics *metrics.HTTPMetrics, metricsHandler http.Handler) (*Server, error) {
	if app == nil || renderer == nil {
		return nil, errors.New("app service and renderer are required")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.IPExtractor = ipExtractor(cfg.TrustProxy)

	srv := &Server{
		echo:           e,
		config:         cfg,
		app:            app,
		renderer:       renderer,
		metricsHandler: metricsHandler,
		httpMetrics:    httpMetrics,
		startTime:      time.Now(),
	}

	e.HTTPErrorHandler = srv.handleHTTPError
	srv.registerRoutes()

	return srv, nil
}

// Start serves until Shutdown is called. It returns an error wrapping
// http.ErrServerClosed after a graceful shutdown, for either transport.
func (s *Server) Start() error {
	addr := ":" + s.config.Port
	slog.Info("Starting server", "port", s.config.Port, "transport", s.config.Transport)

	if s.config.Transport == config.TransportFCGI {
		return s.serveFCGI(addr)
	}

	if err := s.echo.Start(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// serveFCGI serves the same router over FastCGI, for deployments behind a
// web server that speaks FastCGI to its backends. net/http/fcgi has no
// graceful shutdown, so requests are counted and Shutdown waits for them.
func (s *Server) serveFCGI(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen for fastcgi: %w", err)
	}

	s.mu.Lock()
	s.fcgiListener = ln
	s.mu.Unlock()

	if err := fcgi.Serve(ln, s.trackFCGI(s.echo)); err != nil {
		if s.shuttingDown.Load() || errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("fastcgi listener closed: %w", http.ErrServerClosed)
		}
		return fmt.Errorf("failed to serve fastcgi: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.shuttingDown.Store(true)

	s.mu.Lock()
	ln := s.fcgiListener
	s.mu.Unlock()
	if ln != nil {
		if err := ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("failed to close fastcgi listener: %w", err)
		}
		return s.drainFCGI(ctx)
	}

	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

func (s *Server) trackFCGI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.fcgiInFlight.Add(1)
		defer s.fcgiInFlight.Add(-1)
		next.ServeHTTP(w, r)
	})
}

// drainFCGI waits until no FastCGI request is running or ctx is done.
func (s *Server) drainFCGI(ctx context.Context) error {
	ticker := time.NewTicker(fcgiDrainPollInterval)
	defer ticker.Stop()

	for {
		n := s.fcgiInFlight.Load()
		if n == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%d fastcgi requests still running: %w", n, ctx.Err())
		case <-ticker.C:
		}
	}
}

// ServeHTTP exposes the router, mainly for tests and embedding.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

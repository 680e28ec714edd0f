package httpserver

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/linaank/web1/internal/adapter/markup"
	"github.com/linaank/web1/internal/adapter/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNewServer_RequiresDependencies(t *testing.T) {
	_, err := NewServer(testConfig(), nil, markup.NewRenderer(language.English), nil, nil)
	assert.Error(t, err)

	_, err = NewServer(testConfig(), &mockAppService{}, nil, nil, nil)
	assert.Error(t, err)
}

func TestNewServer_ServesMetrics(t *testing.T) {
	reg := metrics.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(reg)

	srv, err := NewServer(testConfig(), &mockAppService{}, markup.NewRenderer(language.English), httpMetrics, metrics.Handler(reg))
	require.NoError(t, err)

	rec := postForm(t, srv, "x=1&y=1&r=2", sid)
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `web1_http_requests_total{method="POST",route="/",status_code="200"} 1`)
}

func TestShutdown_MarksNotReady(t *testing.T) {
	srv, err := NewServer(testConfig(), &mockAppService{}, markup.NewRenderer(language.English), nil, nil)
	require.NoError(t, err)

	require.NoError(t, srv.Shutdown(context.Background()))

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestShutdown_FCGIWaitsForInFlightRequests(t *testing.T) {
	srv, err := NewServer(testConfig(), &mockAppService{}, markup.NewRenderer(language.English), nil, nil)
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv.fcgiListener = ln

	started := make(chan struct{})
	release := make(chan struct{})
	handler := srv.trackFCGI(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(started)
		<-release
		w.WriteHeader(http.StatusOK)
	}))

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err = srv.Shutdown(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	<-finished

	require.NoError(t, srv.drainFCGI(context.Background()))
	assert.Zero(t, srv.fcgiInFlight.Load())
}

func TestShutdown_FCGIIdleReturnsImmediately(t *testing.T) {
	srv, err := NewServer(testConfig(), &mockAppService{}, markup.NewRenderer(language.English), nil, nil)
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv.fcgiListener = ln

	require.NoError(t, srv.Shutdown(context.Background()))

	_, err = ln.Accept()
	assert.ErrorIs(t, err, net.ErrClosed)
}

package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/linaank/web1/internal/adapter/markup"
	"github.com/linaank/web1/internal/adapter/memory"
	"github.com/linaank/web1/internal/app"
	"github.com/linaank/web1/internal/platform/config"
	"golang.org/x/text/language"
)

// --- Mock implementations ---

type mockAppService struct {
	submitFn  func(ctx context.Context, sessionID string, form url.Values) (string, error)
	historyFn func(ctx context.Context, sessionID string) (string, error)
	clearFn   func(ctx context.Context, sessionID string) error
}

func (m *mockAppService) Submit(ctx context.Context, sessionID string, form url.Values) (string, error) {
	if m.submitFn != nil {
		return m.submitFn(ctx, sessionID, form)
	}
	return "<tr></tr>", nil
}

func (m *mockAppService) History(ctx context.Context, sessionID string) (string, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, sessionID)
	}
	return "", nil
}

func (m *mockAppService) Clear(ctx context.Context, sessionID string) error {
	if m.clearFn != nil {
		return m.clearFn(ctx, sessionID)
	}
	return nil
}

// --- Test helpers ---

var testNow = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Port:                "8080",
		Transport:           config.TransportHTTP,
		Locale:              "en",
		MaxRowsPerSession:   memory.DefaultMaxRows,
		SessionCookieMaxAge: 168 * time.Hour,
		BodyLimit:           "16K",
		RateLimitBurst:      20,
		RateLimitExpiry:     5 * time.Minute,
	}
}

func newTestServer(t *testing.T, app appService, opts ...func(*Server)) *Server {
	t.Helper()

	e := echo.New()

	srv := &Server{
		echo:      e,
		config:    testConfig(),
		app:       app,
		renderer:  markup.NewRenderer(language.English),
		startTime: time.Now(),
	}

	for _, opt := range opts {
		opt(srv)
	}

	e.IPExtractor = ipExtractor(srv.config.TrustProxy)
	e.HTTPErrorHandler = srv.handleHTTPError
	// Register routes so endpoints are available for testing
	srv.registerRoutes()

	return srv
}

// newServiceServer wires a real service over an in-memory store.
func newServiceServer(t *testing.T, opts ...func(*Server)) *Server {
	t.Helper()
	store := memory.NewSessionStore(memory.DefaultMaxRows)
	svc := app.NewService(store, markup.NewRenderer(language.English), clockwork.NewFakeClockAt(testNow), nil)
	return newTestServer(t, svc, opts...)
}

func withConfig(mutate func(*config.Config)) func(*Server) {
	return func(s *Server) {
		mutate(s.config)
	}
}

func withRenderer(tag language.Tag) func(*Server) {
	return func(s *Server) {
		s.renderer = markup.NewRenderer(tag)
	}
}

func postForm(t *testing.T, srv *Server, body, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func getAction(t *testing.T, srv *Server, target, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}

package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func (s *Server) registerRoutes() {
	s.echo.Use(s.setupRequestLoggerMiddleware())
	s.echo.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			slog.ErrorContext(c.Request().Context(), "Panic recovered",
				"path", c.Request().URL.Path, "error", err, "stack", string(stack))
			return err
		},
	}))
	s.echo.Use(correlationMiddleware)
	s.echo.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		ContentSecurityPolicy: "default-src 'self'; frame-ancestors 'self'",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
	}))
	if s.httpMetrics != nil {
		s.echo.Use(s.httpMetrics.Middleware())
	}
	if s.config.BodyLimit != "" {
		s.echo.Use(middleware.BodyLimit(s.config.BodyLimit))
	}
	s.echo.Use(s.errorHandlingMiddleware())

	s.registerHealthRoutes()
	if s.metricsHandler != nil {
		s.echo.GET("/metrics", echo.WrapHandler(s.metricsHandler))
	}

	rootMiddleware := []echo.MiddlewareFunc{s.sessionMiddleware}
	if s.config.RateLimitRPS > 0 {
		limiter := newRateLimiter(rateLimiterConfig{
			Rate:    s.config.RateLimitRPS,
			Burst:   s.config.RateLimitBurst,
			Expiry:  s.config.RateLimitExpiry,
			Exclude: s.config.RateLimitExemptPrefixes(),
		})
		rootMiddleware = append([]echo.MiddlewareFunc{limiter}, rootMiddleware...)
	}

	s.echo.GET("/", s.handleAction, rootMiddleware...)
	s.echo.POST("/", s.handleSubmit, rootMiddleware...)
	s.echo.Match(otherRootMethods, "/", handleOtherMethod, rootMiddleware...)
	s.echo.RouteNotFound("/*", handleNotFound, s.sessionMiddleware)
}

// otherRootMethods are the routable methods besides GET and POST. Routing
// them explicitly keeps the router from answering OPTIONS itself.
var otherRootMethods = []string{
	http.MethodConnect,
	http.MethodDelete,
	http.MethodHead,
	http.MethodOptions,
	http.MethodPatch,
	echo.PROPFIND,
	http.MethodPut,
	echo.REPORT,
	http.MethodTrace,
}

func (s *Server) setupRequestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			slog.Log(c.Request().Context(), level, "Request", attrs...)
			return nil
		},
	})
}

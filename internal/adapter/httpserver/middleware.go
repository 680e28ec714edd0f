package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/linaank/web1/internal/platform/correlation"
	apperrors "github.com/linaank/web1/internal/platform/errors"
	"github.com/linaank/web1/internal/platform/i18n"
)

func correlationMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := correlation.FromHeader(c.Request().Header.Get(correlation.HeaderName))
		c.Response().Header().Set(correlation.HeaderName, id)
		ctx := correlation.WithID(c.Request().Context(), id)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// ErrorHandlingMiddleware renders structured errors as error fragments.
// Echo HTTP errors pass through to the server's HTTPErrorHandler.
func ErrorHandlingMiddleware(renderer fragmentRenderer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				return err
			}

			structuredErr := apperrors.AsStructuredError(err)
			logError(c, structuredErr)

			return writeFragment(c, structuredErr.HTTPStatus(), renderer.Error(structuredErr))
		}
	}
}

func (s *Server) errorHandlingMiddleware() echo.MiddlewareFunc {
	return ErrorHandlingMiddleware(s.renderer)
}

// handleHTTPError is the Echo error handler. It maps router and middleware
// errors onto the same fragment format handlers use.
func (s *Server) handleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		structuredErr := apperrors.AsStructuredError(err)
		logError(c, structuredErr)
		s.writeErrorFragment(c, structuredErr.HTTPStatus(), s.renderer.Error(structuredErr))
		return
	}

	var body string
	switch httpErr.Code {
	case http.StatusMethodNotAllowed:
		body = s.renderer.Error(apperrors.MethodNotAllowedError())
	case http.StatusNotFound:
		body = s.renderer.ErrorText(s.renderer.Text(i18n.MsgNotFound))
	case http.StatusTooManyRequests:
		body = s.renderer.ErrorText(s.renderer.Text(i18n.MsgTooManyRequests))
	case http.StatusRequestEntityTooLarge:
		body = s.renderer.ErrorText(s.renderer.Text(i18n.MsgBodyTooLarge))
	default:
		body = s.renderer.ErrorText(http.StatusText(httpErr.Code))
	}

	if httpErr.Code >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request().Context(), "HTTP error",
			"status", httpErr.Code, "path", c.Request().URL.Path, "error", httpErr.Internal)
	}
	s.writeErrorFragment(c, httpErr.Code, body)
}

func (s *Server) writeErrorFragment(c echo.Context, status int, body string) {
	if err := writeFragment(c, status, body); err != nil {
		slog.ErrorContext(c.Request().Context(), "Failed to write error response", "error", err)
	}
}

func logError(c echo.Context, err *apperrors.Error) {
	attrs := []any{
		"error_type", err.Type,
		"message", err.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"status", err.HTTPStatus(),
	}

	for k, v := range err.Context {
		attrs = append(attrs, k, v)
	}

	if sessionID := c.Get(sessionIDKey); sessionID != nil {
		attrs = append(attrs, "session_id", sessionID)
	}

	ctx := c.Request().Context()
	switch err.Type {
	case apperrors.TypeMissingParameter, apperrors.TypeParse, apperrors.TypeRange:
		if err.Cause != nil {
			attrs = append(attrs, "cause", err.Cause)
		}
		slog.InfoContext(ctx, "Validation error", attrs...)
	case apperrors.TypeMethodNotAllowed:
		slog.InfoContext(ctx, "Method not allowed", attrs...)
	case apperrors.TypeInternal:
		if err.Cause != nil {
			attrs = append(attrs, "cause", err.Cause)
		}
		slog.ErrorContext(ctx, "Internal error", attrs...)
	default:
		slog.ErrorContext(ctx, "Unknown error type", attrs...)
	}
}

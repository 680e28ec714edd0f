package httpserver

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	apperrors "github.com/linaank/web1/internal/platform/errors"
)

const (
	actionHistory = "history"
	actionClear   = "clear"
)

// handleAction serves GET /. Only the history and clear actions are
// meaningful; anything else asks the client to POST instead.
func (s *Server) handleAction(c echo.Context) error {
	ctx := c.Request().Context()
	sid := sessionID(c)

	switch strings.ToLower(c.QueryParam("action")) {
	case actionHistory:
		rows, err := s.app.History(ctx, sid)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		return writeFragment(c, http.StatusOK, rows)
	case actionClear:
		if err := s.app.Clear(ctx, sid); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		return writeFragment(c, http.StatusOK, "")
	default:
		return apperrors.MethodNotAllowedError()
	}
}

func handleOtherMethod(echo.Context) error {
	return apperrors.MethodNotAllowedError()
}

func handleNotFound(echo.Context) error {
	return echo.ErrNotFound
}

// handleSubmit serves POST /: it evaluates one point and answers with the
// rendered row.
func (s *Server) handleSubmit(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return apperrors.MalformedFormError(err)
	}

	form, err := url.ParseQuery(string(body))
	if err != nil {
		return apperrors.MalformedFormError(err)
	}

	row, err := s.app.Submit(c.Request().Context(), sessionID(c), form)
	if err != nil {
		return fmt.Errorf("failed to submit point: %w", err)
	}
	return writeFragment(c, http.StatusOK, row)
}

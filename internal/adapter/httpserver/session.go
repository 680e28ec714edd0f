package httpserver

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	sessionCookieName = "SID"
	sessionIDKey      = "sessionID"
)

// sessionMiddleware resolves the SID cookie, issuing a fresh one when the
// request carries none, and stores the id on the context.
func (s *Server) sessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := sessionIDFromHeader(c.Request().Header)
		if sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(&http.Cookie{
				Name:     sessionCookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(s.config.SessionCookieMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Set(sessionIDKey, sessionID)
		return next(c)
	}
}

// sessionIDFromHeader scans every Cookie header for the session cookie.
// The name is matched case-insensitively; blank values are ignored.
func sessionIDFromHeader(h http.Header) string {
	for _, line := range h.Values("Cookie") {
		for _, part := range strings.Split(line, ";") {
			name, value, ok := strings.Cut(strings.TrimSpace(part), "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(name), sessionCookieName) {
				continue
			}
			if value = strings.TrimSpace(value); value != "" {
				return value
			}
		}
	}
	return ""
}

func sessionID(c echo.Context) string {
	id, _ := c.Get(sessionIDKey).(string)
	return id
}

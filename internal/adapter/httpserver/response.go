package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// writeFragment writes an HTML fragment with an explicit Content-Length.
// Headers set earlier in the chain (Set-Cookie, X-Request-ID) go out with it.
// HEAD requests get the same headers and no body.
func writeFragment(c echo.Context, status int, body string) error {
	c.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(len(body)))
	if c.Request().Method == http.MethodHead {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		c.Response().WriteHeader(status)
		return nil
	}
	if err := c.HTMLBlob(status, []byte(body)); err != nil {
		return fmt.Errorf("failed to write fragment: %w", err)
	}
	return nil
}

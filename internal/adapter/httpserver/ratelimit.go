package httpserver

import (
	"net/http"
	"net/netip"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const defaultRateLimiterExpiry = 5 * time.Minute

type rateLimiterConfig struct {
	Rate  float64
	Burst int
	// Expiry drops a client's bucket after this long without requests.
	Expiry time.Duration
	// Exclude lists client prefixes that are never limited.
	Exclude []netip.Prefix
}

// newRateLimiter limits requests per client IP as resolved by the Echo
// instance's IPExtractor. Denied requests surface as a 429 HTTPError so they
// render like every other error fragment.
func newRateLimiter(cfg rateLimiterConfig) echo.MiddlewareFunc {
	expiry := cfg.Expiry
	if expiry <= 0 {
		expiry = defaultRateLimiterExpiry
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.Rate),
			Burst:     cfg.Burst,
			ExpiresIn: expiry,
		},
	)
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return isExempt(cfg.Exclude, c.RealIP())
		},
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		Store: store,
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden).SetInternal(err)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests).SetInternal(err)
		},
	})
}

func isExempt(prefixes []netip.Prefix, ip string) bool {
	if len(prefixes) == 0 {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range prefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// ipExtractor picks how c.RealIP resolves the client: forwarded headers are
// honored only behind a trusted proxy.
func ipExtractor(trustProxy bool) echo.IPExtractor {
	if trustProxy {
		return echo.ExtractIPFromXFFHeader()
	}
	return echo.ExtractIPDirect()
}

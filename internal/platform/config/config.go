package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/netip"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/linaank/web1/internal/platform/i18n"
	"go-simpler.org/env"
)

const (
	TransportHTTP = "http"
	TransportFCGI = "fcgi"
)

type Config struct {
	AppEnv    string `env:"APP_ENV" default:"development"`
	Port      string `env:"PORT" default:"8080"`
	Transport string `env:"TRANSPORT" default:"http"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`
	Locale    string `env:"LOCALE" default:"en"`

	MaxRowsPerSession   int           `env:"MAX_ROWS_PER_SESSION" default:"2000"`
	SessionCookieMaxAge time.Duration `env:"SESSION_COOKIE_MAX_AGE" default:"168h"` // 7 days

	BodyLimit  string `env:"BODY_LIMIT" default:"16K"`
	TrustProxy bool   `env:"TRUST_PROXY" default:"false"`

	RateLimitRPS    float64       `env:"RATE_LIMIT_RPS" default:"0"`
	RateLimitBurst  int           `env:"RATE_LIMIT_BURST" default:"20"`
	RateLimitExpiry time.Duration `env:"RATE_LIMIT_EXPIRY" default:"5m"`
	RateLimitExempt []string      `env:"RATE_LIMIT_EXEMPT"` // space-separated addresses or CIDRs

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" default:"10s"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Port == "" {
		return errors.New("PORT is required")
	}

	switch cfg.Transport {
	case TransportHTTP, TransportFCGI:
	default:
		return fmt.Errorf("TRANSPORT must be %q or %q, got %q", TransportHTTP, TransportFCGI, cfg.Transport)
	}

	if _, err := i18n.ParseLocale(cfg.Locale); err != nil {
		return fmt.Errorf("LOCALE: %w", err)
	}

	if cfg.MaxRowsPerSession <= 0 {
		return fmt.Errorf("MAX_ROWS_PER_SESSION must be positive, got %d", cfg.MaxRowsPerSession)
	}
	if cfg.SessionCookieMaxAge <= 0 {
		return errors.New("SESSION_COOKIE_MAX_AGE must be positive")
	}

	if cfg.RateLimitRPS < 0 {
		return errors.New("RATE_LIMIT_RPS must not be negative")
	}
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_BURST must be positive when rate limiting is enabled")
	}
	if cfg.RateLimitExpiry <= 0 {
		return errors.New("RATE_LIMIT_EXPIRY must be positive")
	}
	for _, entry := range cfg.RateLimitExempt {
		if _, err := parseExemptEntry(entry); err != nil {
			return fmt.Errorf("RATE_LIMIT_EXEMPT: %w", err)
		}
	}

	return nil
}

// RateLimitExemptPrefixes returns RATE_LIMIT_EXEMPT as prefixes. Bare
// addresses become single-host prefixes.
func (c *Config) RateLimitExemptPrefixes() []netip.Prefix {
	prefixes := make([]netip.Prefix, 0, len(c.RateLimitExempt))
	for _, entry := range c.RateLimitExempt {
		p, err := parseExemptEntry(entry)
		if err != nil {
			continue
		}
		prefixes = append(prefixes, p)
	}
	return prefixes
}

func parseExemptEntry(entry string) (netip.Prefix, error) {
	entry = strings.TrimSpace(entry)
	if strings.Contains(entry, "/") {
		p, err := netip.ParsePrefix(entry)
		if err != nil {
			return netip.Prefix{}, fmt.Errorf("invalid prefix %q: %w", entry, err)
		}
		return p.Masked(), nil
	}
	addr, err := netip.ParseAddr(entry)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("invalid address %q: %w", entry, err)
	}
	addr = addr.Unmap()
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}

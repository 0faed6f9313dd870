/*
config.go - Service configuration

PURPOSE:
  Collects the few knobs the server has. Values come from the environment
  first; cmd/server flags override them when set.

ENVIRONMENT:
  GOALS_PORT                HTTP port (default: 8080)
  GOALS_ALLOWED_ORIGINS     Comma separated CORS origins
  GOALS_MAX_HORIZON_MONTHS  Largest horizon a request may ask for (default: 1200)
  GOALS_SHUTDOWN_TIMEOUT    Graceful shutdown budget (default: 30s)

SEE ALSO:
  - cmd/server/main.go: Flag overrides
  - api/server.go: Consumes AllowedOrigins
*/
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultAllowedOrigins are the frontends the service was first deployed behind.
var DefaultAllowedOrigins = []string{
	"http://localhost:3000",
	"https://blogueirinho.vercel.app",
}

// Config holds the server configuration.
type Config struct {
	Port             int           `env:"GOALS_PORT" envDefault:"8080"`
	AllowedOrigins   []string      `env:"GOALS_ALLOWED_ORIGINS" envSeparator:","`
	MaxHorizonMonths int           `env:"GOALS_MAX_HORIZON_MONTHS" envDefault:"1200"`
	ShutdownTimeout  time.Duration `env:"GOALS_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.AllowedOrigins = compact(cfg.AllowedOrigins)
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = append([]string(nil), DefaultAllowedOrigins...)
	}
	return cfg, cfg.Validate()
}

// Validate rejects values the server cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.MaxHorizonMonths <= 0 {
		errs = append(errs, fmt.Errorf("max horizon must be positive, got %d", c.MaxHorizonMonths))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout))
	}
	return errors.Join(errs...)
}

func compact(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Addr returns the listen address for Port.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Supported values of STORE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// LogLevel controls the minimum log level.
	// Valid values: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`

	// StoreDriver selects the session store: "postgres" or "sqlite".
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`

	// DatabaseURL is the Postgres connection string. Required for the postgres driver.
	DatabaseURL string `env:"DATABASE_URL"`

	// SQLitePath is the database file used by the sqlite driver.
	SQLitePath string `env:"SQLITE_PATH" envDefault:"parking.db"`

	// RedisURL enables the duration cache when set, e.g. redis://localhost:6379/0.
	RedisURL string `env:"REDIS_URL"`

	// DurationCacheTTL is how long a formatted duration stays cached.
	DurationCacheTTL time.Duration `env:"DURATION_CACHE_TTL" envDefault:"5m"`

	// MaxBodyBytes caps request body size.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	// OTelEndpoint is the OTLP/HTTP traces endpoint. Tracing is off when empty.
	OTelEndpoint string `env:"OTEL_ENDPOINT"`
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))

	var missing []string
	switch cfg.StoreDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
	case DriverSQLite:
		if strings.TrimSpace(cfg.SQLitePath) == "" {
			missing = append(missing, "SQLITE_PATH")
		}
	default:
		return Config{}, fmt.Errorf("config.Load: unsupported STORE_DRIVER %q (want %s or %s)",
			cfg.StoreDriver, DriverPostgres, DriverSQLite)
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("config.Load: MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}
	if cfg.DurationCacheTTL <= 0 {
		return Config{}, fmt.Errorf("config.Load: DURATION_CACHE_TTL must be positive, got %s", cfg.DurationCacheTTL)
	}

	return cfg, nil
}

// trimAll trims every entry and drops the empty ones.
func trimAll(values []string) []string {
	var out []string
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}

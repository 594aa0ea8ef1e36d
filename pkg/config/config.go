package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Storage drivers.
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type Config struct {
	ListenAddress   string        `env:"LISTEN_ADDRESS, default=:8080"`
	TLSCertFile     string        `env:"TLS_CERT_FILE"`
	TLSKeyFile      string        `env:"TLS_KEY_FILE"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	StorageDriver string `env:"STORAGE_DRIVER, default=file"`
	StorageFile   string `env:"STORAGE_FILE, default=customers.json"`
	DatabaseURL   string `env:"DATABASE_URL"`
	RedisAddr     string `env:"REDIS_ADDR, default=localhost:6379"`
	RedisKey      string `env:"REDIS_KEY, default=customers"`

	LogLevel         string  `env:"LOG_LEVEL, default=info"`
	OtelHost         string  `env:"OTEL_HOST"`
	TraceProbability float64 `env:"OTEL_PROBABILITY, default=1.0"`
}

// TLS reports whether both certificate and key are configured.
func (c *Config) TLS() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith parses the configuration from l.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("failed to parse configuration from environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case DriverFile:
		if c.StorageFile == "" {
			return errors.New("STORAGE_FILE must be set for the file driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL must be set for the postgres driver")
		}
	case DriverRedis:
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR must be set for the redis driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		return errors.New("TLS_CERT_FILE and TLS_KEY_FILE must be set together")
	}
	if c.TraceProbability < 0 || c.TraceProbability > 1 {
		return fmt.Errorf("OTEL_PROBABILITY must be within [0,1], got %v", c.TraceProbability)
	}
	return nil
}

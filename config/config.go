package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Config struct {
	Env      string `env:"ENV" envDefault:"local" validate:"required,oneof=local staging production"`
	Port     string `env:"PORT" envDefault:"8080" validate:"required"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"postgres" validate:"oneof=postgres sqlite memory"`
	DatabaseURL    string `env:"DATABASE_URL"    validate:"required_if=DatabaseDriver postgres"`
	SQLitePath     string `env:"SQLITE_PATH"     envDefault:"var/tracker.db" validate:"required_if=DatabaseDriver sqlite"`

	MetricsPort string `env:"METRICS_PORT" envDefault:"9090"`

	JWTSecret  string        `env:"JWT_SECRET,required" validate:"required,min=32"`
	JWTTTL     time.Duration `env:"JWT_TTL"     envDefault:"24h" validate:"min=1m"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"  validate:"min=4,max=31"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

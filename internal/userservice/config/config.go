package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
	"go.uber.org/zap"
)

type Config struct {
	AppEnv          string        `env:"APP_ENV" default:"production"`
	Port            string        `env:"PORT" default:"3000"`
	RateLimit       int           `env:"RATE_LIMIT" default:"100"` // requests per minute per IP
	LogLevel        string        `env:"LOG_LEVEL" default:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT must be positive, got %d", c.RateLimit)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	if _, err := zap.ParseAtomicLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Addr returns the listen address for all interfaces.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// NewLogger builds a development logger when APP_ENV=development and a
// JSON production logger at LOG_LEVEL otherwise.
func (c *Config) NewLogger() (*zap.Logger, error) {
	if c.IsDevelopment() {
		return zap.NewDevelopment()
	}

	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = level
	return zc.Build()
}

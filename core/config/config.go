// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type AuthConfig struct {
	Secret   string
	TokenTTL time.Duration
}

type TelemetryConfig struct {
	ServiceName string
	Endpoint    string
	Enabled     bool
}

type Config struct {
	Environment string
	DatabaseURL string
	Auth        AuthConfig
	Telemetry   TelemetryConfig
	Port        int
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// UseMemoryStore reports whether the server should run against the in-memory
// store. Intended for local development and tests only.
func (c *Config) UseMemoryStore() bool {
	return c.DatabaseURL == ""
}

func Load() (*Config, error) {
	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Auth: AuthConfig{
			Secret:   os.Getenv("AUTH_SECRET"),
			TokenTTL: 24 * time.Hour,
		},
		Telemetry: TelemetryConfig{
			ServiceName: getEnv("OTEL_SERVICE_NAME", "planline-api"),
			Endpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			Enabled:     os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "",
		},
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("parsing PORT: %w", err)
	}
	cfg.Port = port

	if v := os.Getenv("AUTH_TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parsing AUTH_TOKEN_TTL: %w", err)
		}
		cfg.Auth.TokenTTL = ttl
	}

	if cfg.Auth.Secret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("AUTH_SECRET is required in production")
		}
		cfg.Auth.Secret = "dev-only-secret"
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

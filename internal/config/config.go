// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// MaxBodyBytes caps form and API request bodies.
	MaxBodyBytes int64

	// Valkey (Redis-compatible), optional. When ValkeyHost is empty the
	// rate limiter keeps its counters in process memory.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// Rate limiting: RateLimit requests per RateWindow per client IP.
	RateLimit  int
	RateWindow time.Duration
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error for malformed
// numeric or duration values and for unknown environments.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
	}

	switch cfg.Env {
	case "development", "production", "testing":
	default:
		return nil, fmt.Errorf("APP_ENV must be development, production or testing, got %q", cfg.Env)
	}

	limit, err := strconv.Atoi(envOrDefault("RATE_LIMIT", "120"))
	if err != nil || limit <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT must be a positive integer")
	}
	cfg.RateLimit = limit

	window, err := time.ParseDuration(envOrDefault("RATE_WINDOW", "1m"))
	if err != nil || window <= 0 {
		return nil, fmt.Errorf("RATE_WINDOW must be a positive duration such as 30s or 1m")
	}
	cfg.RateWindow = window

	maxBody, err := strconv.ParseInt(envOrDefault("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		return nil, fmt.Errorf("MAX_BODY_BYTES must be a positive integer")
	}
	cfg.MaxBodyBytes = maxBody

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// UseValkey reports whether a Valkey server is configured.
func (c *Config) UseValkey() bool {
	return c.ValkeyHost != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

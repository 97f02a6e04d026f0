// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"strings"
	"testing"
	"time"
)

// allEnvVars lists every variable Load reads.
var allEnvVars = []string{
	"APP_HOST", "APP_PORT", "APP_ENV", "MAX_BODY_BYTES",
	"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD",
	"RATE_LIMIT", "RATE_WINDOW",
}

// clearEnv sets every variable to "", which envOrDefault treats as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		t.Setenv(key, "")
	}
}

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "0.0.0.0")
	check("Port", cfg.Port, "8080")
	check("Env", cfg.Env, "development")
	check("ValkeyHost", cfg.ValkeyHost, "")
	check("ValkeyPort", cfg.ValkeyPort, "6379")
	check("ValkeyPassword", cfg.ValkeyPassword, "")

	if cfg.RateLimit != 120 {
		t.Errorf("RateLimit = %d, want 120", cfg.RateLimit)
	}
	if cfg.RateWindow != time.Minute {
		t.Errorf("RateWindow = %v, want 1m", cfg.RateWindow)
	}
	if cfg.MaxBodyBytes != 1<<20 {
		t.Errorf("MaxBodyBytes = %d, want %d", cfg.MaxBodyBytes, 1<<20)
	}
	if cfg.UseValkey() {
		t.Error("UseValkey() should be false without VALKEY_HOST")
	}
}

// TestLoad_EnvOverrides verifies that every environment variable properly
// overrides the default value.
func TestLoad_EnvOverrides(t *testing.T) {
	overrides := map[string]string{
		"APP_HOST":        "127.0.0.1",
		"APP_PORT":        "9090",
		"APP_ENV":         "testing",
		"MAX_BODY_BYTES":  "2048",
		"VALKEY_HOST":     "cache.example.com",
		"VALKEY_PORT":     "6380",
		"VALKEY_PASSWORD": "cachepass",
		"RATE_LIMIT":      "10",
		"RATE_WINDOW":     "30s",
	}
	for key, val := range overrides {
		t.Setenv(key, val)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Host != "127.0.0.1" || cfg.Port != "9090" || cfg.Env != "testing" {
		t.Errorf("server settings not overridden: %+v", cfg)
	}
	if cfg.ValkeyHost != "cache.example.com" || cfg.ValkeyPort != "6380" || cfg.ValkeyPassword != "cachepass" {
		t.Errorf("valkey settings not overridden: %+v", cfg)
	}
	if cfg.RateLimit != 10 || cfg.RateWindow != 30*time.Second {
		t.Errorf("rate limit: got %d per %v, want 10 per 30s", cfg.RateLimit, cfg.RateWindow)
	}
	if cfg.MaxBodyBytes != 2048 {
		t.Errorf("MaxBodyBytes = %d, want 2048", cfg.MaxBodyBytes)
	}
	if !cfg.UseValkey() {
		t.Error("UseValkey() should be true when VALKEY_HOST is set")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantMsg string
	}{
		{"unknown env", "APP_ENV", "staging", "APP_ENV"},
		{"non-numeric rate limit", "RATE_LIMIT", "lots", "RATE_LIMIT"},
		{"zero rate limit", "RATE_LIMIT", "0", "RATE_LIMIT"},
		{"bad window", "RATE_WINDOW", "soon", "RATE_WINDOW"},
		{"negative window", "RATE_WINDOW", "-1s", "RATE_WINDOW"},
		{"bad body size", "MAX_BODY_BYTES", "1MB", "MAX_BODY_BYTES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatalf("Load() should fail for %s=%q", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error should mention %s, got: %v", tt.wantMsg, err)
			}
		})
	}
}

func TestAddr(t *testing.T) {
	cfg := &Config{Host: "localhost", Port: "3000"}
	if got := cfg.Addr(); got != "localhost:3000" {
		t.Errorf("Addr() = %q, want %q", got, "localhost:3000")
	}
}

func TestIsDev(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"development", true},
		{"production", false},
		{"testing", false},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := &Config{Env: tt.env}
			if got := cfg.IsDev(); got != tt.want {
				t.Errorf("IsDev() with Env=%q = %v, want %v", tt.env, got, tt.want)
			}
		})
	}
}

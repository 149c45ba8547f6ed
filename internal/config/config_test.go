// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package config

import (
	"strings"
	"testing"
	"time"
)

// validConfig returns a config that passes validation, for tests to mutate
func validConfig() *Config {
	return defaultConfig()
}

// TestValidateDefaults ensures the out-of-the-box defaults are valid
func TestValidateDefaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid, got error: %v", err)
	}
}

// TestValidateDatabase tests database validation rules
func TestValidateDatabase(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "empty path",
			mutate:  func(c *Config) { c.Database.Path = "" },
			wantErr: "DUCKDB_PATH",
		},
		{
			name:    "negative threads",
			mutate:  func(c *Config) { c.Database.Threads = -1 },
			wantErr: "DUCKDB_THREADS",
		},
		{
			name:    "in-memory path is valid",
			mutate:  func(c *Config) { c.Database.Path = ":memory:" },
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			checkValidation(t, cfg, tt.wantErr)
		})
	}
}

// TestValidateServer tests server validation rules
func TestValidateServer(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "port too low",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "HTTP_PORT",
		},
		{
			name:    "port too high",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "HTTP_PORT",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Server.Timeout = 0 },
			wantErr: "HTTP_TIMEOUT",
		},
		{
			name:    "valid high port",
			mutate:  func(c *Config) { c.Server.Port = 65535 },
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			checkValidation(t, cfg, tt.wantErr)
		})
	}
}

// TestValidateSecurity tests security validation rules
func TestValidateSecurity(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "empty username",
			mutate:  func(c *Config) { c.Security.AdminUsername = "" },
			wantErr: "ADMIN_USERNAME",
		},
		{
			name:    "empty password",
			mutate:  func(c *Config) { c.Security.AdminPassword = "" },
			wantErr: "ADMIN_PASSWORD",
		},
		{
			name:    "short JWT secret",
			mutate:  func(c *Config) { c.Security.JWTSecret = "short" },
			wantErr: "JWT_SECRET must be at least 32 characters",
		},
		{
			name: "placeholder JWT secret",
			mutate: func(c *Config) {
				c.Security.JWTSecret = "CHANGEME-CHANGEME-CHANGEME-CHANGEME"
			},
			wantErr: "placeholder",
		},
		{
			name:    "empty JWT secret allowed in development",
			mutate:  func(c *Config) { c.Security.JWTSecret = "" },
			wantErr: "",
		},
		{
			name: "rate limit requests out of bounds",
			mutate: func(c *Config) {
				c.Security.RateLimitReqs = 0
			},
			wantErr: "RATE_LIMIT_REQUESTS",
		},
		{
			name: "rate limit window too small",
			mutate: func(c *Config) {
				c.Security.RateLimitWindow = 100 * time.Millisecond
			},
			wantErr: "RATE_LIMIT_WINDOW",
		},
		{
			name: "rate limit bounds skipped when disabled",
			mutate: func(c *Config) {
				c.Security.RateLimitDisabled = true
				c.Security.RateLimitReqs = 0
			},
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			checkValidation(t, cfg, tt.wantErr)
		})
	}
}

// TestValidateProductionGuards tests that insecure defaults are rejected in production
func TestValidateProductionGuards(t *testing.T) {
	// productionConfig returns a config that passes production validation
	productionConfig := func() *Config {
		cfg := validConfig()
		cfg.Server.Environment = "production"
		cfg.Security.JWTSecret = "0123456789abcdef0123456789abcdef"
		cfg.Security.AdminUsername = "captain"
		cfg.Security.AdminPassword = "a-real-password"
		cfg.Security.CORSOrigins = []string{"https://pavilion.example.com"}
		return cfg
	}

	t.Run("hardened production config is valid", func(t *testing.T) {
		if err := productionConfig().Validate(); err != nil {
			t.Fatalf("hardened production config should be valid, got: %v", err)
		}
	})

	t.Run("missing JWT secret rejected", func(t *testing.T) {
		cfg := productionConfig()
		cfg.Security.JWTSecret = ""
		checkValidation(t, cfg, "JWT_SECRET is required when ENVIRONMENT=production")
	})

	t.Run("demo credentials rejected", func(t *testing.T) {
		cfg := productionConfig()
		cfg.Security.AdminUsername = "test"
		cfg.Security.AdminPassword = "test"
		checkValidation(t, cfg, "demo credentials")
	})

	t.Run("wildcard CORS rejected", func(t *testing.T) {
		cfg := productionConfig()
		cfg.Security.CORSOrigins = []string{"*"}
		checkValidation(t, cfg, "wildcard")
	})

	t.Run("demo credentials allowed in development", func(t *testing.T) {
		cfg := validConfig()
		if !cfg.hasDemoCredentials() {
			t.Fatal("default config should carry demo credentials")
		}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("demo credentials should be valid in development, got: %v", err)
		}
	})
}

// TestValidateClustering tests k-means parameter validation
func TestValidateClustering(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero default k",
			mutate:  func(c *Config) { c.Clustering.DefaultK = 0 },
			wantErr: "CLUSTER_DEFAULT_K",
		},
		{
			name: "max k below default k",
			mutate: func(c *Config) {
				c.Clustering.DefaultK = 5
				c.Clustering.MaxK = 3
			},
			wantErr: "CLUSTER_MAX_K must be >= CLUSTER_DEFAULT_K",
		},
		{
			name:    "max k above hard limit",
			mutate:  func(c *Config) { c.Clustering.MaxK = 500 },
			wantErr: "CLUSTER_MAX_K must be at most",
		},
		{
			name:    "zero iterations",
			mutate:  func(c *Config) { c.Clustering.MaxIterations = 0 },
			wantErr: "CLUSTER_MAX_ITERATIONS",
		},
		{
			name:    "negative cache TTL",
			mutate:  func(c *Config) { c.Cache.TTL = -time.Second },
			wantErr: "CACHE_TTL",
		},
		{
			name:    "zero cache TTL disables caching",
			mutate:  func(c *Config) { c.Cache.TTL = 0 },
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			checkValidation(t, cfg, tt.wantErr)
		})
	}
}

// TestValidateLogging tests logging validation rules
func TestValidateLogging(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr string
	}{
		{"valid json", "info", "json", ""},
		{"valid console", "debug", "console", ""},
		{"empty format allowed", "warn", "", ""},
		{"invalid level", "verbose", "json", "LOG_LEVEL"},
		{"invalid format", "info", "xml", "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logging.Level = tt.level
			cfg.Logging.Format = tt.format
			checkValidation(t, cfg, tt.wantErr)
		})
	}
}

// TestEnvironmentHelpers tests IsProduction/IsDevelopment detection
func TestEnvironmentHelpers(t *testing.T) {
	tests := []struct {
		environment string
		production  bool
		development bool
	}{
		{"production", true, false},
		{"PRODUCTION", true, false},
		{"prod", true, false},
		{"development", false, true},
		{"dev", false, true},
		{"", false, true},
		{"staging", false, false},
	}

	for _, tt := range tests {
		t.Run("env="+tt.environment, func(t *testing.T) {
			cfg := validConfig()
			cfg.Server.Environment = tt.environment
			if got := cfg.IsProduction(); got != tt.production {
				t.Errorf("IsProduction() = %v, want %v", got, tt.production)
			}
			if got := cfg.IsDevelopment(); got != tt.development {
				t.Errorf("IsDevelopment() = %v, want %v", got, tt.development)
			}
		})
	}
}

// TestStartupWarningHelpers tests the helpers main uses for startup warnings
func TestStartupWarningHelpers(t *testing.T) {
	cfg := validConfig()
	if !cfg.ShouldWarnAboutCredentials() {
		t.Error("default config should warn about demo credentials")
	}
	if !cfg.ShouldWarnAboutCORS() {
		t.Error("default config should warn about wildcard CORS")
	}

	cfg.Security.AdminPassword = "a-real-password"
	cfg.Security.CORSOrigins = []string{"https://pavilion.example.com"}
	if cfg.ShouldWarnAboutCredentials() {
		t.Error("non-demo credentials should not warn")
	}
	if cfg.ShouldWarnAboutCORS() {
		t.Error("specific CORS origins should not warn")
	}
}

// TestContainsPlaceholder tests placeholder detection in secrets
func TestContainsPlaceholder(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"CHANGEME", true},
		{"please-replace-this-secret", true},
		{"your_password_here", true},
		{"todo-set-me", true},
		{"k9f2mx81qudk39slwnv8d72hfyr01pelz", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := containsPlaceholder(tt.value); got != tt.want {
				t.Errorf("containsPlaceholder(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

// checkValidation runs Validate and asserts the expected outcome.
// An empty wantErr means validation must pass; otherwise the error
// must contain the given substring.
func checkValidation(t *testing.T, cfg *Config, wantErr string) {
	t.Helper()
	err := cfg.Validate()
	if wantErr == "" {
		if err != nil {
			t.Fatalf("Validate() unexpected error: %v", err)
		}
		return
	}
	if err == nil {
		t.Fatalf("Validate() expected error containing %q, got nil", wantErr)
	}
	if !strings.Contains(err.Error(), wantErr) {
		t.Errorf("Validate() error = %v, want error containing %q", err, wantErr)
	}
}

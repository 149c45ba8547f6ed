// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package config

import (
	"time"
)

// Config holds all application configuration loaded from environment variables and config files.
// Provides centralized configuration management for all application components including the
// database, CSV data loading, server, API, security, caching, clustering, and logging.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Infrastructure:
//     - Database: DuckDB configuration (path, memory, threads)
//     - Data: CSV data directory and sample-data seeding
//     - Server: HTTP server configuration (port, host, timeout, environment)
//
//  2. Security:
//     - Security: Authentication, rate limiting, CORS
//
//  3. Analytics:
//     - Cache: TTL cache for computed clustering results
//     - Clustering: k-means parameters (default k, bounds, iterations, seed)
//
//  4. Observability:
//     - Logging: Log levels and output formats
//
// Example - Load configuration from environment:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	// cfg.Server.Port, cfg.Database.Path, etc. are now populated
//
// Example - Access configuration values:
//
//	db, err := database.New(cfg.Database)
//	server := http.Server{Addr: fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)}
//
// Validation:
// The Load() function validates all fields and returns an error if:
//   - Values are malformed (invalid port, negative k, unknown log level)
//   - Production mode is combined with insecure defaults (demo credentials, wildcard CORS)
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access from multiple goroutines.
type Config struct {
	Database   DatabaseConfig   `koanf:"database"`
	Data       DataConfig       `koanf:"data"`
	Server     ServerConfig     `koanf:"server"`
	Security   SecurityConfig   `koanf:"security"`
	Cache      CacheConfig      `koanf:"cache"`
	Clustering ClusteringConfig `koanf:"clustering"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// DatabaseConfig holds DuckDB settings
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // Number of DuckDB threads (0 = use NumCPU)
}

// DataConfig holds CSV data-loading settings.
// When Dir is empty (or Seed is true) a built-in sample dataset is loaded
// instead, so the dashboard works out of the box without any CSV files.
type DataConfig struct {
	Dir  string `koanf:"dir"`  // Directory containing venues.csv, games.csv, simulations.csv
	Seed bool   `koanf:"seed"` // Force sample-data seeding even when Dir is set
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // Environment mode: "development", "staging", "production" (default: "development")
}

// SecurityConfig holds authentication and rate-limiting settings.
// The default credentials (test/test) match the demo login the dashboard
// ships with; production mode refuses to start with them.
type SecurityConfig struct {
	JWTSecret         string        `koanf:"jwt_secret"` // Empty = ephemeral secret generated at startup
	SessionTimeout    time.Duration `koanf:"session_timeout"`
	AdminUsername     string        `koanf:"admin_username"`
	AdminPassword     string        `koanf:"admin_password"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
}

// CacheConfig holds TTL cache settings for computed analytics results
type CacheConfig struct {
	TTL time.Duration `koanf:"ttl"`
}

// ClusteringConfig holds k-means parameters for the simulation clustering endpoint.
// Defaults mirror the conventional k-means setup: k=3, 300 iterations, seed 42.
type ClusteringConfig struct {
	DefaultK      int   `koanf:"default_k"`      // k used when the request does not supply one
	MaxK          int   `koanf:"max_k"`          // Upper bound on caller-supplied k
	MaxIterations int   `koanf:"max_iterations"` // Iteration cap per clustering run
	Seed          int64 `koanf:"seed"`           // RNG seed for centroid initialization (determinism)
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// JSON is recommended for production (structured, machine-parseable).
	// Console is human-readable for development.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Adds slight performance overhead.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration using the Koanf v2 layered loading system.
// This supports config files (YAML), environment variables, and defaults
// with proper precedence: ENV > File > Defaults.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

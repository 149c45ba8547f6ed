// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

/*
Package config provides centralized configuration management for Pavilion.

This package handles loading, validation, and parsing of configuration for
all application components. It ensures consistent configuration across the
backend services and provides sensible defaults for optional settings.

# Configuration Sources

Configuration is loaded in layers with clear precedence (highest last):

  - Built-in defaults
  - Optional YAML config file (config.yaml, or CONFIG_PATH)
  - Environment variables

# Configuration Structure

The package organizes configuration into logical groups:

  - ServerConfig: HTTP server settings (host, port, timeout, environment)
  - DatabaseConfig: DuckDB connection and performance tuning
  - DataConfig: CSV data directory and sample-data seeding
  - SecurityConfig: JWT, credentials, rate limiting, CORS
  - CacheConfig: TTL cache for computed clustering results
  - ClusteringConfig: k-means parameters
  - LoggingConfig: Log level and output format

# Environment Variables

HTTP Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 1877, the year of the first Test match)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development or production (default: development)

Database:
  - DUCKDB_PATH: Database file path (default: /data/pavilion.duckdb, or :memory:)
  - DUCKDB_MAX_MEMORY: Memory limit (default: 1GB)
  - DUCKDB_THREADS: Thread count (default: CPU count)

Data Loading:
  - DATA_DIR: Directory with venues.csv, games.csv, simulations.csv
    (empty = seed the built-in sample dataset)
  - SEED_SAMPLE_DATA: Force sample-data seeding (default: false)

Authentication:
  - JWT_SECRET: JWT signing secret (min 32 chars; empty = ephemeral secret)
  - SESSION_TIMEOUT: Token expiration (default: 24h)
  - ADMIN_USERNAME: Login username (default: test)
  - ADMIN_PASSWORD: Login password (default: test)

Rate Limiting and CORS:
  - RATE_LIMIT_REQUESTS: Requests per window (default: 100)
  - RATE_LIMIT_WINDOW: Window duration (default: 1m)
  - DISABLE_RATE_LIMIT: Disable rate limiting (default: false)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - TRUSTED_PROXIES: Comma-separated trusted proxy IPs

Analytics:
  - CACHE_TTL: Clustering result cache TTL (default: 5m, 0 disables)
  - CLUSTER_DEFAULT_K: Cluster count when unspecified (default: 3)
  - CLUSTER_MAX_K: Upper bound on caller-supplied k (default: 10)
  - CLUSTER_MAX_ITERATIONS: k-means iteration cap (default: 300)
  - CLUSTER_SEED: RNG seed for deterministic clustering (default: 42)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

# Usage Example

Basic configuration loading:

	import "github.com/tomtom215/pavilion/internal/config"

	// Load configuration from defaults, file, and environment
	cfg, err := config.Load()
	if err != nil {
	    log.Fatalf("Failed to load config: %v", err)
	}

	// Access configuration values
	fmt.Printf("Starting server on %s:%d\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("Database: %s\n", cfg.Database.Path)

# Validation

The package performs comprehensive validation:

  - Numeric ranges: HTTP_PORT (1-65535), RATE_LIMIT_REQUESTS (1-100000)
  - Clustering bounds: CLUSTER_DEFAULT_K >= 1, CLUSTER_MAX_K >= CLUSTER_DEFAULT_K
  - String length: JWT_SECRET >= 32 chars when set
  - Production guards: demo credentials (test/test), wildcard CORS, and a
    missing JWT_SECRET are all rejected when ENVIRONMENT=production

# Defaults

The defaults are tuned so the dashboard runs out of the box with zero
configuration: an embedded sample dataset, demo credentials (test/test),
and an ephemeral JWT secret. Production deployments must override all
three.

# Thread Safety

The Config struct is immutable after Load() returns, making it safe for
concurrent access from multiple goroutines without synchronization.
*/
package config

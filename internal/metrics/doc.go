// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package implements application instrumentation using the Prometheus
client library, exposing metrics for monitoring performance, errors, and
system health.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - Database query performance (DuckDB)
  - CSV ingestion volume and skipped rows
  - Clustering invocations and latency
  - Cache hit/miss rates

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:1877/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Database Metrics:
  - duckdb_query_duration_seconds: Query execution time (histogram)
    Labels: operation, table
  - duckdb_query_errors_total: Failed queries (counter)
    Labels: operation, table, error_type

Ingestion Metrics:
  - ingest_duration_seconds: Dataset load duration (histogram)
  - ingest_rows_loaded_total: Rows loaded per entity (counter)
    Labels: entity (venues, teams, games, simulations)
  - ingest_rows_skipped_total: Rows skipped with reason (counter)
    Labels: reason (unmatched_team, duplicate_run)
  - ingest_last_success_timestamp: Unix timestamp of last successful load (gauge)

Clustering Metrics:
  - clustering_duration_seconds: k-means pipeline latency (histogram)
  - clustering_runs_total: Clustering invocations by k (counter)
    Labels: k
  - clustering_points: Comparable runs per invocation (histogram)

Cache Metrics:
  - cache_hits_total / cache_misses_total: Cache efficiency (counters)
    Labels: cache_type
  - cache_entries: Current cache size (gauge)
    Labels: cache_type
  - cache_evictions_total: TTL expiries (counter)
    Labels: cache_type

# Usage Example

Basic setup in main.go:

	import (
	    "github.com/tomtom215/pavilion/internal/metrics"
	    "github.com/prometheus/client_golang/prometheus/promhttp"
	)

	func main() {
	    http.Handle("/metrics", promhttp.Handler())

	    metrics.RecordAPIRequest("GET", "/api/v1/stats", "200", 23*time.Millisecond)
	    metrics.RecordDBQuery("SELECT", "games", 5*time.Millisecond, nil)
	    metrics.RecordClustering(3, 120, 800*time.Microsecond)
	}

# Prometheus Configuration

Example prometheus.yml configuration:

	scrape_configs:
	  - job_name: 'pavilion'
	    static_configs:
	      - targets: ['localhost:1877']
	    metrics_path: '/metrics'
	    scrape_interval: 15s

# Thread Safety

All metric recording functions are thread-safe and designed for concurrent use
from multiple goroutines. The Prometheus client library handles synchronization
internally.

# Cardinality Management

To prevent high cardinality issues:

  - Endpoint labels use route patterns, not raw paths with IDs
  - Error types are truncated to 50 characters
  - The clustering k label is bounded by the configured maximum k

# See Also

  - internal/middleware: HTTP middleware with metrics integration
  - internal/database: Database metrics recording
  - internal/ingest: Ingestion metrics recording
  - https://prometheus.io/docs/practices/naming/: Metric naming conventions
*/
package metrics

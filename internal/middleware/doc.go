// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

/*
Package middleware provides HTTP middleware components for the application.

This package implements infrastructure middleware for compression, performance
monitoring, and Prometheus metrics integration. These components work alongside
the router's CORS, request-ID, and rate-limit middleware to form the complete
request-processing stack.

Key Components:

  - Compression: Gzip compression for JSON responses
  - Performance Monitor: Request latency tracking with percentile calculations
  - Prometheus Metrics: HTTP request/response instrumentation

Middleware Stack:

The typical stack applied by the router to an endpoint is:

	Compression(           // Layer 1: Gzip
	    PrometheusMetrics( // Layer 2: Metrics
	        handler,       // Layer 3: Business logic
	    ),
	)

Usage Example - Compression:

	import "github.com/tomtom215/pavilion/internal/middleware"

	// Wrap handler with gzip compression
	http.HandleFunc("/api/v1/games",
	    middleware.Compression(handler),
	)

	// Accept-Encoding: gzip header is required for compression to apply

Usage Example - Performance Monitoring:

	// Create performance monitor
	perfMon := middleware.NewPerformanceMonitor(1000)

	// Wrap handler
	http.HandleFunc("/api/v1/stats",
	    perfMon.Middleware(handler).ServeHTTP,
	)

	// Get performance statistics
	stats := perfMon.GetStats()
	fmt.Printf("p50: %v, p95: %v, p99: %v\n",
	    stats[0].P50Duration, stats[0].P95Duration, stats[0].P99Duration)

Performance Characteristics:

  - Compression: 70-90% size reduction for the JSON score arrays
  - Compression overhead: ~1-2ms for typical responses
  - Metrics overhead: <0.1ms per request
  - Performance monitor: sliding window of recent latency samples

Thread Safety:

All middleware components are thread-safe:
  - Compression uses pooled per-request gzip writers
  - Performance monitor uses sync.RWMutex
  - Prometheus metrics use atomic operations

See Also:

  - internal/api: HTTP handlers wrapped by middleware
  - internal/metrics: Prometheus metrics definitions
*/
package middleware

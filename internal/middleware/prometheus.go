// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/pavilion/internal/metrics"
)

// PrometheusMetrics records per-request metrics: active-request gauge,
// per-endpoint counter, and latency histogram.
func PrometheusMetrics(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		start := time.Now()

		wrapper := &metricsResponseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next(wrapper, r)

		metrics.RecordAPIRequest(
			r.Method,
			normalizeEndpoint(r.URL.Path),
			strconv.Itoa(wrapper.statusCode),
			time.Since(start),
		)
	}
}

// normalizeEndpoint collapses game IDs in the path to a placeholder so
// the endpoint label stays bounded: /api/v1/games/42/clusters becomes
// /api/v1/games/{id}/clusters. Every game in the store would otherwise
// mint its own label value.
func normalizeEndpoint(path string) string {
	segments := strings.Split(path, "/")
	for i := 1; i < len(segments); i++ {
		if segments[i-1] == "games" && isAllDigits(segments[i]) {
			segments[i] = "{id}"
		}
	}
	return strings.Join(segments, "/")
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// metricsResponseWriter captures the status code for the request counter.
type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *metricsResponseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package middleware

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/tomtom215/pavilion/internal/logging"
)

// RequestMetrics is one observed request in the sliding window.
type RequestMetrics struct {
	Path       string
	Method     string
	DurationMS int64
	StatusCode int
	Timestamp  time.Time
}

// PerformanceMonitor tracks API latency over a sliding window of recent
// requests. It complements Prometheus: the monitor answers "what is slow
// right now" in-process, without a scrape pipeline. Game-detail and
// clustering paths are recorded under their {id} form so per-endpoint
// stats aggregate across games.
type PerformanceMonitor struct {
	mu         sync.RWMutex
	window     []RequestMetrics // ring buffer, valid up to count
	next       int
	count      int
	totalSeen  map[string]int64 // lifetime per-endpoint counts, beyond the window
	slowCutoff time.Duration
}

// EndpointStats contains aggregated statistics for one method+path.
type EndpointStats struct {
	Path         string
	RequestCount int64
	AvgDuration  float64
	P50Duration  int64
	P95Duration  int64
	P99Duration  int64
	MinDuration  int64
	MaxDuration  int64
}

// NewPerformanceMonitor creates a monitor keeping the last windowSize
// requests.
func NewPerformanceMonitor(windowSize int) *PerformanceMonitor {
	if windowSize < 1 {
		windowSize = 1000
	}
	return &PerformanceMonitor{
		window:     make([]RequestMetrics, windowSize),
		totalSeen:  make(map[string]int64),
		slowCutoff: time.Second,
	}
}

// RecordRequest adds one observation to the window. Oldest entries are
// overwritten once the window is full.
func (pm *PerformanceMonitor) RecordRequest(metric *RequestMetrics) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.window[pm.next] = *metric
	pm.next = (pm.next + 1) % len(pm.window)
	if pm.count < len(pm.window) {
		pm.count++
	}

	pm.totalSeen[metric.Method+" "+metric.Path]++
}

// GetStats aggregates the current window per endpoint, sorted by request
// count descending.
func (pm *PerformanceMonitor) GetStats() []EndpointStats {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	byEndpoint := make(map[string][]int64)
	for _, m := range pm.snapshotLocked() {
		key := m.Method + " " + m.Path
		byEndpoint[key] = append(byEndpoint[key], m.DurationMS)
	}

	stats := make([]EndpointStats, 0, len(byEndpoint))
	for endpoint, durations := range byEndpoint {
		sorted := make([]int64, len(durations))
		copy(sorted, durations)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		var sum int64
		for _, d := range sorted {
			sum += d
		}

		stats = append(stats, EndpointStats{
			Path:         endpoint,
			RequestCount: int64(len(sorted)),
			AvgDuration:  float64(sum) / float64(len(sorted)),
			P50Duration:  percentile(sorted, 0.50),
			P95Duration:  percentile(sorted, 0.95),
			P99Duration:  percentile(sorted, 0.99),
			MinDuration:  sorted[0],
			MaxDuration:  sorted[len(sorted)-1],
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].RequestCount != stats[j].RequestCount {
			return stats[i].RequestCount > stats[j].RequestCount
		}
		return stats[i].Path < stats[j].Path
	})

	return stats
}

// GetRecentMetrics returns up to n most recent observations, newest last.
func (pm *PerformanceMonitor) GetRecentMetrics(n int) []RequestMetrics {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	ordered := pm.snapshotLocked()
	if n < len(ordered) {
		ordered = ordered[len(ordered)-n:]
	}
	return ordered
}

// snapshotLocked returns window contents in arrival order. Caller holds
// at least a read lock.
func (pm *PerformanceMonitor) snapshotLocked() []RequestMetrics {
	ordered := make([]RequestMetrics, 0, pm.count)
	start := 0
	if pm.count == len(pm.window) {
		start = pm.next
	}
	for i := 0; i < pm.count; i++ {
		ordered = append(ordered, pm.window[(start+i)%len(pm.window)])
	}
	return ordered
}

// Middleware records every request passing through it and warns about
// requests slower than the cutoff (clustering on a large game is the
// usual suspect).
func (pm *PerformanceMonitor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapper, r)

		elapsed := time.Since(start)

		pm.RecordRequest(&RequestMetrics{
			Path:       normalizeEndpoint(r.URL.Path),
			Method:     r.Method,
			DurationMS: elapsed.Milliseconds(),
			StatusCode: wrapper.statusCode,
			Timestamp:  time.Now(),
		})

		if elapsed > pm.slowCutoff {
			logging.Warn().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int64("duration_ms", elapsed.Milliseconds()).
				Msg("Slow request detected")
		}
	})
}

// percentile reads the p-quantile from an ascending-sorted slice.
func percentile(sorted []int64, p float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	index := int(float64(len(sorted)-1) * p)
	return sorted[index]
}

// responseWriter captures the status code written by the handler.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

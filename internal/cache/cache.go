// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/pavilion/internal/metrics"
)

// sweepInterval is how often the background goroutine evicts expired
// entries. Expired entries are also evicted lazily on Get, so the sweep
// only bounds memory held by keys nobody asks for again.
const sweepInterval = 5 * time.Minute

// Entry is one cached value with its expiration instant.
type Entry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// Stats is a point-in-time snapshot of the cache counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// Cache is a thread-safe in-memory TTL cache.
//
// Clustering results are the main tenant: the k-means pipeline is
// deterministic for a given (game, k), so a cached result is exact,
// not approximate, until the dataset is reloaded.
type Cache struct {
	name string
	ttl  time.Duration

	mu      sync.RWMutex
	entries map[string]Entry

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64

	cleanupMu   sync.Mutex
	lastCleanup time.Time
}

// New creates a cache with the given default TTL and starts its sweep
// goroutine. The name labels the Prometheus cache metrics
// (cache_hits_total etc.) so multiple caches can share one dashboard.
//
//	c := cache.New("analytics", 5*time.Minute)
//	c.Set(cache.GenerateKey("clusters", params), result)
func New(name string, ttl time.Duration) *Cache {
	c := &Cache{
		name:        name,
		ttl:         ttl,
		entries:     make(map[string]Entry),
		lastCleanup: time.Now(),
	}

	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for range ticker.C {
			c.cleanup()
		}
	}()

	return c
}

// Get returns the value under key, or (nil, false) when the key is
// absent or expired. An expired entry is deleted on access, counted as
// both a miss and an eviction.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	switch {
	case !ok:
		c.misses.Add(1)
		metrics.RecordCacheMiss(c.name)
		return nil, false

	case time.Now().After(entry.ExpiresAt):
		c.mu.Lock()
		delete(c.entries, key)
		c.publishSize()
		c.mu.Unlock()

		c.misses.Add(1)
		c.evictions.Add(1)
		metrics.RecordCacheMiss(c.name)
		metrics.CacheEvictions.WithLabelValues(c.name).Inc()
		return nil, false

	default:
		c.hits.Add(1)
		metrics.RecordCacheHit(c.name)
		return entry.Data, true
	}
}

// Set stores value under key with the cache's default TTL. An existing
// entry is overwritten and its expiration reset.
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with an explicit TTL.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = Entry{Data: value, ExpiresAt: time.Now().Add(ttl)}
	c.publishSize()
	c.mu.Unlock()
}

// Delete removes key. Safe for absent keys; the eviction counter is
// incremented either way.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.publishSize()
	c.mu.Unlock()

	c.evictions.Add(1)
	metrics.CacheEvictions.WithLabelValues(c.name).Inc()
}

// Clear drops every entry in a single map swap. Called after a dataset
// reload: every cached clustering result is derived from the simulation
// table, so a reload invalidates everything at once.
func (c *Cache) Clear() {
	c.mu.Lock()
	dropped := int64(len(c.entries))
	c.entries = make(map[string]Entry)
	c.publishSize()
	c.mu.Unlock()

	c.evictions.Add(dropped)
	metrics.CacheEvictions.WithLabelValues(c.name).Add(float64(dropped))
}

// GetStats snapshots the counters. TotalKeys reflects the live map
// size at the time of the call.
func (c *Cache) GetStats() Stats {
	c.mu.RLock()
	keys := int64(len(c.entries))
	c.mu.RUnlock()

	c.cleanupMu.Lock()
	last := c.lastCleanup
	c.cleanupMu.Unlock()

	return Stats{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Evictions:   c.evictions.Load(),
		TotalKeys:   keys,
		LastCleanup: last,
	}
}

// HitRate returns hits as a percentage of all lookups, 0 when the
// cache has seen no traffic.
func (c *Cache) HitRate() float64 {
	hits, misses := c.hits.Load(), c.misses.Load()
	if hits+misses == 0 {
		return 0.0
	}
	return float64(hits) / float64(hits+misses) * 100.0
}

// cleanup evicts every expired entry.
func (c *Cache) cleanup() {
	now := time.Now()

	c.mu.Lock()
	var dropped int64
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			dropped++
		}
	}
	c.publishSize()
	c.mu.Unlock()

	c.evictions.Add(dropped)
	metrics.CacheEvictions.WithLabelValues(c.name).Add(float64(dropped))

	c.cleanupMu.Lock()
	c.lastCleanup = now
	c.cleanupMu.Unlock()
}

// publishSize pushes the current entry count to the size gauge.
// Callers must hold c.mu.
func (c *Cache) publishSize() {
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.entries)))
}

// GenerateKey builds a cache key from the method name and parameters.
// Parameters are serialized to JSON and hashed so that structurally
// equal filter or clustering requests map to the same key.
func GenerateKey(method string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, params)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}

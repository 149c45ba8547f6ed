// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

/*
Package cache provides the thread-safe in-memory TTL cache in front of
the clustering pipeline and filtered game queries.

Clustering is the expensive path: a single request intersects the
comparable run sets of both teams, standardizes the feature matrix and
runs up to 300 Lloyd iterations. The algorithm is seeded, so the result
for a given (game, k) never changes between dataset loads, which makes
it an ideal cache tenant. A dataset of a few hundred games with k
capped at 10 yields at most a few thousand small summary maps, so the
cache carries no size limit and no LRU policy, only TTLs.

Handler pattern:

	cacheKey := cache.GenerateKey("clusters", params)
	if cached, ok := h.cache.Get(cacheKey); ok {
	    h.respondJSON(w, r, http.StatusOK, cached)
	    return
	}
	result, err := h.computeClusters(r.Context(), gameID, k)
	...
	h.cache.Set(cacheKey, result)

GenerateKey serializes the parameter struct with goccy/go-json and
hashes it with SHA-256, so structurally equal requests share a key;
unmarshalable parameters fall back to fmt formatting rather than
failing the request.

Entries expire lazily on Get and via a background sweep every 5
minutes. Clear() drops everything after a dataset reload, since every
cached result is derived from the simulation table.

Each cache is created with a name that labels its Prometheus series
(cache_hits_total, cache_misses_total, cache_entries,
cache_evictions_total). GetStats() additionally returns a local
snapshot for the /api/v1/stats endpoint, and HitRate() derives the hit
percentage.
*/
package cache

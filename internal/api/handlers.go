// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package api

import (
	"time"

	"github.com/tomtom215/pavilion/internal/auth"
	"github.com/tomtom215/pavilion/internal/cache"
	"github.com/tomtom215/pavilion/internal/config"
	"github.com/tomtom215/pavilion/internal/database"
	"github.com/tomtom215/pavilion/internal/logging"
	"github.com/tomtom215/pavilion/internal/middleware"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct, constructor, cache control (this file)
//   - handlers_helpers.go: Shared helper functions
//   - handlers_core.go: Guards and the stats endpoint
//   - handlers_games.go: Games list, detail, and filter endpoints
//   - handlers_analytics.go: Clustering and feature endpoints
//   - handlers_auth.go: Login endpoint
//   - handlers_health.go: Health and probe endpoints
type Handler struct {
	db         *database.DB
	config     *config.Config
	jwtManager *auth.JWTManager
	cache      *cache.Cache
	perfMon    *middleware.PerformanceMonitor
	startTime  time.Time
}

// NewHandler creates a new API handler with all required dependencies.
//
// The handler initializes with:
//   - A TTL cache for clustering and filter results (TTL from config,
//     default 5 minutes)
//   - A performance monitor tracking the last 1000 requests
//   - Start time for uptime calculations
//
// Example:
//
//	handler := api.NewHandler(db, cfg, jwtManager)
//	router := api.NewRouter(handler, authMiddleware)
//	http.ListenAndServe(":1877", router.SetupChi())
func NewHandler(db *database.DB, cfg *config.Config, jwtManager *auth.JWTManager) *Handler {
	ttl := 5 * time.Minute
	if cfg != nil && cfg.Cache.TTL > 0 {
		ttl = cfg.Cache.TTL
	}

	return &Handler{
		db:         db,
		config:     cfg,
		jwtManager: jwtManager,
		cache:      cache.New("analytics", ttl),
		perfMon:    middleware.NewPerformanceMonitor(1000), // Keep last 1000 requests
		startTime:  time.Now(),
	}
}

// ClearCache invalidates all cached analytics data.
//
// Called after a dataset reload: every cached clustering result and
// filtered games list is derived from the simulation tables, so a
// reload invalidates everything at once.
//
// Thread Safety: Safe for concurrent access.
func (h *Handler) ClearCache() {
	if h.cache != nil {
		h.cache.Clear()
		logging.Info().Msg("Analytics cache cleared")
	}
}

// GetCacheStats returns cache performance statistics
func (h *Handler) GetCacheStats() cache.Stats {
	if h.cache != nil {
		return h.cache.GetStats()
	}
	return cache.Stats{}
}

// GetPerformanceStats returns performance monitoring statistics
func (h *Handler) GetPerformanceStats() []middleware.EndpointStats {
	if h.perfMon != nil {
		return h.perfMon.GetStats()
	}
	return nil
}

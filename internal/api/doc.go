// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

/*
Package api provides the HTTP REST API layer for Pavilion.

This package implements the dashboard endpoints for browsing cricket
games, filtering them by date, venue, and team, and computing per-game
simulation analytics (aligned run scores, win percentages, k-means
clustering). It is the interface between the frontend dashboard and the
DuckDB-backed data layer.

Key Components:

  - Router: Chi route configuration and middleware stack integration
  - Handler: Request handlers for all API endpoints
  - Response formatting: Standardized JSON responses with metadata
  - Error handling: Consistent error envelopes with machine-readable codes
  - Login: JWT issuance; data routes stay open, tokens are annotated
    (claims in context) but never required
  - Rate limiting: go-chi/httprate per-IP limits, tuned per route group
  - CORS: go-chi/cors with configurable origins

API Surface:

1. Core Endpoints (/api/v1/):
  - Statistics (stats)
  - Games list and detail (games, games/{id})
  - Filtered games (games/filter?start_date=&end_date=&venue=&team=)

2. Analytics Endpoints (/api/v1/games/{id}/):
  - clusters: k-means cluster labels per simulation run (?k=N)
  - features: per-game feature vector (mean scores, home win fraction)

3. Authentication (/api/v1/auth/):
  - login: JWT issuance with HTTP-only cookie

4. Health Endpoints (/health):
  - live: process liveness
  - ready: database connected and dataset loaded
  - "": combined health report

5. Metrics (/metrics): Prometheus exposition

Usage Example:

	import (
	    "github.com/tomtom215/pavilion/internal/api"
	    "github.com/tomtom215/pavilion/internal/auth"
	    "github.com/tomtom215/pavilion/internal/database"
	)

	db, _ := database.New(&cfg.Database)
	jwtManager, _ := auth.NewJWTManager(&cfg.Security)
	authMw := auth.NewMiddleware(jwtManager, cfg.Security.TrustedProxies)

	handler := api.NewHandler(db, cfg, jwtManager)
	router := api.NewRouter(handler, authMw)

	http.ListenAndServe(":1877", router.SetupChi())

Error Semantics:

Two outcomes that look similar on the wire are deliberately distinct:
an unknown game id yields 404 GAME_NOT_FOUND, while a known game whose
two sides share no simulation run indices yields 200 with an empty
clusters object (or null features). The second case is data, not an
error.

Performance Characteristics:

  - Clustering responses cached with a configurable TTL (default 5m)
  - Gzip compression for the repetitive JSON score arrays
  - ETag headers for client-side caching

See Also:

  - internal/auth: JWT authentication middleware
  - internal/database: DuckDB data access layer
  - internal/analytics: feature extraction and k-means
  - internal/models: request/response data structures
*/
package api

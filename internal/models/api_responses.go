// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
// It provides consistent structure for both successful and error responses, with metadata
// for observability and caching information.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Fields:
//   - Status: Response status ("success" or "error")
//   - Data: Response payload (any JSON-serializable type)
//   - Metadata: Query execution metadata (timing, caching, timestamp)
//   - Error: Error details (populated only when Status is "error")
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"games": [...], "total": 12},
//	  "metadata": {
//	    "timestamp": "2026-08-23T12:00:00Z",
//	    "query_time_ms": 4
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "INVALID_DATE",
//	    "message": "Invalid start_date format, expected YYYY-MM-DD",
//	    "details": {"field": "start_date"}
//	  },
//	  "metadata": {"timestamp": "2026-08-23T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability and performance tracking.
// All API responses include this metadata for monitoring query performance and
// cache effectiveness.
//
// Fields:
//   - Timestamp: Server time when response was generated (RFC3339 format)
//   - QueryTimeMS: Query/computation time in milliseconds (0 if cached)
//   - Cached: Whether response was served from cache (omitted if false)
//
// Query time tracking:
//   - Cached responses: QueryTimeMS is 0, Cached is true
//   - Fresh queries: QueryTimeMS shows actual execution time
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError represents an error response with structured error details.
// Provides consistent error format across all API endpoints for better client handling.
//
// Fields:
//   - Code: Machine-readable error code (e.g., "GAME_NOT_FOUND", "INVALID_DATE")
//   - Message: Human-readable error message
//   - Details: Additional context (field names, constraints, etc.)
//
// Error codes used by Pavilion:
//   - INVALID_REQUEST: Malformed request body or parameters
//   - VALIDATION_ERROR: Input failed struct validation
//   - INVALID_CREDENTIALS: Login username/password mismatch
//   - INVALID_DATE: Date parameter not in YYYY-MM-DD format
//   - INVALID_PARAMETER: Out-of-range parameter (e.g., cluster count k)
//   - GAME_NOT_FOUND: Referenced game id does not exist
//   - METHOD_NOT_ALLOWED: HTTP method not supported on route
//   - DATABASE_ERROR: Query execution failure
//   - INTERNAL_ERROR: Unexpected server-side failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// GamesResponse wraps the games list returned by the list and filter endpoints.
//
// Example response:
//
//	{
//	  "games": [
//	    {"id": 1, "home_team": "England", "away_team": "Australia",
//	     "date": "2026-07-08", "venue": "Lord's"},
//	    {"id": 2, "home_team": "India", "away_team": "Australia",
//	     "date": "2026-07-12", "venue": null}
//	  ],
//	  "total": 2
//	}
type GamesResponse struct {
	Games []Game `json:"games"`
	Total int    `json:"total"`
}

// ClusterAssignments maps a game's simulation runs to k-means cluster labels.
//
// Clusters is keyed by the run index (as a string, since JSON object keys
// are strings) with the cluster label as value. An empty map means the game
// exists but has no comparable simulation runs; that case is deliberately
// distinct from an unknown game id, which yields GAME_NOT_FOUND instead.
//
// Example response:
//
//	{
//	  "game_id": 3,
//	  "k": 3,
//	  "clusters": {"1": 0, "2": 2, "3": 0, "4": 1}
//	}
type ClusterAssignments struct {
	GameID   int64          `json:"game_id"`
	K        int            `json:"k"`
	Clusters map[string]int `json:"clusters"`
}

// GameFeatures carries the per-game performance feature vector.
// Features is null when the game lacks simulation data for either side
// (insufficient data is not an error).
type GameFeatures struct {
	GameID   int64          `json:"game_id"`
	Features *FeatureVector `json:"features"`
}

// FeatureVector is the per-game summary computed over comparable simulation
// runs: mean innings totals for each side plus the fraction (0-1) of runs
// the home side won.
type FeatureVector struct {
	AvgHomeScore    float64 `json:"avg_home_score"`
	AvgAwayScore    float64 `json:"avg_away_score"`
	HomeWinFraction float64 `json:"home_win_fraction"`
}

// LoginRequest represents a login request for JWT authentication.
//
// Fields:
//   - Username: User's login name
//   - Password: User's password (plaintext, transmitted over HTTPS)
//
// Example:
//
//	{
//	  "username": "test",
//	  "password": "test"
//	}
//
// Security:
//   - Password is transmitted in plaintext (HTTPS required)
//   - JWT tokens are HTTP-only cookies (XSS protection)
//   - Rate limited to 5 attempts per minute per IP
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login response with JWT token.
// Returns a signed JWT token for subsequent authenticated requests.
//
// Fields:
//   - Token: Signed JWT token (HS256 algorithm)
//   - Message: Human-readable confirmation ("Login successful")
//   - ExpiresAt: Token expiration timestamp
//
// Example:
//
//	{
//	  "token": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...",
//	  "message": "Login successful",
//	  "expires_at": "2026-08-24T12:00:00Z"
//	}
//
// Token usage:
//   - Set as HTTP-only cookie by server (XSS protection)
//   - OR sent as Authorization: Bearer <token> header
type LoginResponse struct {
	Token     string    `json:"token"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

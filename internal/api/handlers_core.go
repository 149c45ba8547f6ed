// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/pavilion/internal/models"
)

// This file contains the shared handler guards and the stats endpoint.
//
// All handlers follow a consistent pattern:
//  1. Method validation (GET/POST)
//  2. Parameter parsing and validation
//  3. Database query with request context
//  4. JSON response with metadata

// requireMethod validates HTTP method and returns true if valid, false if error was sent
func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return false
	}
	return true
}

// requireDB checks database availability and returns true if available, false if error was sent
func (h *Handler) requireDB(w http.ResponseWriter) bool {
	if h.db == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_ERROR", "Database not available", nil)
		return false
	}
	return true
}

// Stats returns dashboard statistics: venue, team, game, and simulation
// row counts, the last dataset load time, and the database size.
//
// Method: GET
// Path: /api/v1/stats
//
// Response:
//   - 200: Statistics retrieved successfully
//   - 405: Method not allowed (non-GET request)
//   - 500: Database error
//   - 503: Database not available
//
// The response includes query execution time in metadata for performance monitoring.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDB(w) {
		return
	}

	start := time.Now()

	stats, err := h.db.GetStats(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to retrieve statistics", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   stats,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

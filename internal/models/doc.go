// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

/*
Package models defines data structures for the Pavilion application.

This package contains all data models used throughout the application:
database entities, API request/response structures, and analytics results.
It serves as the single source of truth for data structure definitions.

Model Categories:

1. Database Models:
  - Venue: Cricket ground loaded from venues.csv
  - Team: Team registry entry (id + name)
  - Game: A match between two teams at a venue on a date
  - SimulationRun: One simulated innings total for one team in one game

2. API Request/Response Models:
  - APIResponse: Standard response wrapper
  - APIError: Error details
  - Metadata: Response metadata (timestamp, query time, cache flag)
  - GamesResponse, LoginRequest, LoginResponse

3. Analytics Models:
  - GameDetails: Aligned per-run scores plus home win percentage
  - ClusterAssignments: Run-index to k-means cluster-label mapping
  - GameFeatures / FeatureVector: Per-game performance summary

Usage Example - API Response:

	import "github.com/tomtom215/pavilion/internal/models"

	// Success response
	response := models.APIResponse{
	    Status: "success",
	    Data: models.GamesResponse{
	        Games: games,
	        Total: len(games),
	    },
	    Metadata: models.Metadata{
	        Timestamp:   time.Now(),
	        QueryTimeMS: 4,
	    },
	}

	json.NewEncoder(w).Encode(response)

	// Error response
	errorResponse := models.APIResponse{
	    Status: "error",
	    Error: &models.APIError{
	        Code:    "INVALID_DATE",
	        Message: "Invalid start_date format, expected YYYY-MM-DD",
	        Details: map[string]interface{}{
	            "field": "start_date",
	        },
	    },
	}

Run Pairing:

Simulation runs pair up by (game_id, run_index): the home and away rows
sharing a run index form one simulated match outcome. GameDetails,
ClusterAssignments, and FeatureVector are all computed over the comparable
runs only (indices present for both sides). The ingest package owns this
contract; see its documentation.

Thread Safety:

All models are:
  - Immutable after creation (pass-by-value or pointers)
  - Safe for concurrent read access
  - No internal mutexes needed (data structures only)

JSON Marshaling:

All models support JSON serialization:
  - Struct tags use snake_case field naming
  - Omitempty tags for optional fields
  - time.Time uses RFC3339 format
  - Game.Venue serializes as null (not omitted) for dangling venue refs

See Also:

  - internal/database: Database operations using these models
  - internal/api: API handlers returning these models
  - internal/analytics: Feature extraction and clustering over these models
*/
package models

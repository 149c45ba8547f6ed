// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/pavilion/internal/analytics"
	"github.com/tomtom215/pavilion/internal/cache"
	"github.com/tomtom215/pavilion/internal/database"
	"github.com/tomtom215/pavilion/internal/models"
)

// Games returns the full games list with duplicate fixtures collapsed.
//
// Method: GET
// Path: /api/v1/games
//
// Two CSV rows describing the same fixture (home team, away team,
// venue, date) appear once, keeping the lowest game id. Games with
// dangling venue refs are retained with a null venue.
//
// Response:
//   - 200: Games retrieved successfully ({"games": [...], "total": N})
//   - 405: Method not allowed
//   - 500: Database error
//   - 503: Database not available
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDB(w) {
		return
	}

	start := time.Now()

	games, err := h.db.ListGames(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to retrieve games", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.GamesResponse{
			Games: games,
			Total: len(games),
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// GameDetails returns one game with its aligned per-run simulation scores.
//
// Method: GET
// Path: /api/v1/games/{id}
//
// The simulation_runs array holds the sorted run indices present for
// BOTH sides; home_scores[i] and away_scores[i] are the innings totals
// for run simulation_runs[i]. Runs simulated for only one side are
// excluded. home_win_percentage is computed over those comparable runs
// (0 when there are none; ties are not wins).
//
// Response:
//   - 200: Game retrieved successfully
//   - 400: Invalid game id
//   - 404: Game does not exist (GAME_NOT_FOUND)
//   - 500: Database error
func (h *Handler) GameDetails(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDB(w) {
		return
	}

	id, err := getPathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", err.Error(), nil)
		return
	}

	start := time.Now()

	game, err := h.db.GetGame(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusNotFound, "GAME_NOT_FOUND", "Game not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to retrieve game", err)
		return
	}

	home, away, err := h.db.GetGameRunScores(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to retrieve simulation runs", err)
		return
	}

	runs, homeScores, awayScores := analytics.AlignScores(home, away)

	details := models.GameDetails{
		ID:             game.ID,
		HomeTeam:       game.HomeTeam,
		AwayTeam:       game.AwayTeam,
		Date:           game.Date,
		Venue:          game.Venue,
		SimulationRuns: runs,
		HomeScores:     homeScores,
		AwayScores:     awayScores,
	}
	if details.SimulationRuns == nil {
		// Serialize empty as [] rather than null
		details.SimulationRuns = []int{}
		details.HomeScores = []int{}
		details.AwayScores = []int{}
	}

	if summary, ok := analytics.Summarize(home, away); ok {
		details.HomeWinPercentage = summary.HomeWinFraction * 100
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   details,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// FilterGames returns games matching date, venue, and team filters.
//
// Method: GET
// Path: /api/v1/games/filter
//
// Query parameters (all optional, combined with AND):
//   - start_date: Games on or after this date (strict YYYY-MM-DD)
//   - end_date: Games on or before this date (strict YYYY-MM-DD)
//   - venue: Case-insensitive substring match on the venue name
//   - team: Case-insensitive substring match on either team name
//
// Unlike the list endpoint, no deduplication is applied: the filter
// view exposes every stored row.
//
// Response:
//   - 200: Games retrieved successfully
//   - 400: Malformed date (INVALID_DATE) or oversized filter value
//   - 405: Method not allowed
//   - 500: Database error
func (h *Handler) FilterGames(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDB(w) {
		return
	}

	q := r.URL.Query()

	startDate, err := parseDateParam(q.Get("start_date"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_DATE", err.Error(), nil)
		return
	}
	endDate, err := parseDateParam(q.Get("end_date"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_DATE", err.Error(), nil)
		return
	}

	req := FilterGamesRequest{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		Venue:     q.Get("venue"),
		Team:      q.Get("team"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	filter := database.GameFilter{
		StartDate: startDate,
		EndDate:   endDate,
		Venue:     req.Venue,
		Team:      req.Team,
	}

	// Filtered lists are cached by filter value; the key hash makes
	// structurally equal requests share an entry.
	cacheKey := cache.GenerateKey("games:filter", req)
	if cached, ok := h.cache.Get(cacheKey); ok {
		respondJSON(w, http.StatusOK, &models.APIResponse{
			Status: "success",
			Data:   cached,
			Metadata: models.Metadata{
				Timestamp: time.Now(),
				Cached:    true,
			},
		})
		return
	}

	start := time.Now()

	games, err := h.db.FilterGames(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to filter games", err)
		return
	}

	response := models.GamesResponse{
		Games: games,
		Total: len(games),
	}
	h.cache.Set(cacheKey, response)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   response,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

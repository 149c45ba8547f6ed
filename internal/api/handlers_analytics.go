// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/pavilion/internal/analytics"
	"github.com/tomtom215/pavilion/internal/cache"
	"github.com/tomtom215/pavilion/internal/database"
	"github.com/tomtom215/pavilion/internal/models"
)

// clusterCacheParams is the cache key payload for clustering results.
// Seed and iteration caps are process-wide config, so game id and k
// fully identify a result.
type clusterCacheParams struct {
	GameID int64 `json:"game_id"`
	K      int   `json:"k"`
}

// GameClusters partitions one game's simulation runs into k clusters.
//
// Method: GET
// Path: /api/v1/games/{id}/clusters
//
// Query parameters:
//   - k: Number of clusters (optional, default from config, bounded by max_k)
//
// Each comparable run (one with an innings total recorded for both
// sides) is a point (home_score, away_score); k-means with a fixed
// seed assigns it a cluster id in [0, k). The response maps run index
// to cluster id. An existing game with no comparable runs yields an
// empty clusters object, NOT a 404; only an unknown game id is a 404.
//
// Clustering is deterministic for a given dataset, k, and configured
// seed, so results are cached aggressively.
//
// Response:
//   - 200: Clusters computed successfully
//   - 400: Invalid game id or k out of range (INVALID_PARAMETER)
//   - 404: Game does not exist (GAME_NOT_FOUND)
//   - 500: Database error
func (h *Handler) GameClusters(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDB(w) {
		return
	}

	id, err := getPathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", err.Error(), nil)
		return
	}

	k := getIntParam(r, "k", h.config.Clustering.DefaultK)
	if k < 1 || k > h.config.Clustering.MaxK {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER",
			"k must be between 1 and "+strconv.Itoa(h.config.Clustering.MaxK), nil)
		return
	}

	cacheKey := cache.GenerateKey("clusters", clusterCacheParams{GameID: id, K: k})
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

	home, away, err := h.db.GetGameRunScores(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusNotFound, "GAME_NOT_FOUND", "Game not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to retrieve simulation runs", err)
		return
	}

	assignments := analytics.Cluster(home, away, analytics.Config{
		K:             k,
		MaxIterations: h.config.Clustering.MaxIterations,
		Seed:          h.config.Clustering.Seed,
	})

	clusters := make(map[string]int, len(assignments))
	for run, clusterID := range assignments {
		clusters[strconv.Itoa(run)] = clusterID
	}

	result := models.ClusterAssignments{
		GameID:   id,
		K:        k,
		Clusters: clusters,
	}
	h.cache.Set(cacheKey, result)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   result,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// GameFeatures returns the per-game aggregate feature vector used for
// cross-game comparison: average home score, average away score, and
// home win fraction over comparable runs.
//
// Method: GET
// Path: /api/v1/games/{id}/features
//
// A known game with no comparable runs returns a null features field
// rather than an error; an unknown game id returns 404.
//
// Response:
//   - 200: Features computed successfully
//   - 400: Invalid game id
//   - 404: Game does not exist (GAME_NOT_FOUND)
//   - 500: Database error
func (h *Handler) GameFeatures(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDB(w) {
		return
	}

	id, err := getPathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", err.Error(), nil)
		return
	}

	start := time.Now()

	home, away, err := h.db.GetGameRunScores(r.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusNotFound, "GAME_NOT_FOUND", "Game not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to retrieve simulation runs", err)
		return
	}

	result := models.GameFeatures{GameID: id}
	if summary, ok := analytics.Summarize(home, away); ok {
		result.Features = &models.FeatureVector{
			AvgHomeScore:    summary.AvgHomeScore,
			AvgAwayScore:    summary.AvgAwayScore,
			HomeWinFraction: summary.HomeWinFraction,
		}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   result,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

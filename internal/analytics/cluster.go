// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package analytics

import (
	"time"

	"github.com/tomtom215/pavilion/internal/metrics"
)

// Config holds the k-means parameters for one clustering invocation.
// Values come from ClusteringConfig with the request's k applied on top.
type Config struct {
	// K is the number of clusters to produce. Must be >= 1; the API layer
	// validates the caller-supplied value against the configured maximum.
	K int

	// MaxIterations bounds the assign/recompute loop. Default: 300.
	MaxIterations int

	// Seed drives the deterministic centroid initialization. The same
	// input with the same K and Seed always yields the same labels.
	// Default: 42.
	Seed int64
}

// DefaultConfig returns the conventional k-means setup: k=3, 300
// iterations, seed 42.
func DefaultConfig() Config {
	return Config{K: 3, MaxIterations: 300, Seed: 42}
}

// Cluster runs the full pipeline for one game (feature extraction,
// standardization, seeded k-means) and returns a map from run index to
// cluster label.
//
// The result is empty (never nil) when the two sides share no run
// indices; callers serialize that as an empty JSON object, which is the
// "no clusters available" outcome, distinct from game-not-found.
//
// The computation is deterministic, in-memory, and bounded by the number
// of simulation runs per game (tens to low hundreds), so there is no
// context, cancellation, or retry surface.
func Cluster(home, away map[int]int, cfg Config) map[int]int {
	if cfg.K < 1 {
		cfg.K = 1
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = 300
	}

	start := time.Now()

	runs, features := ExtractFeatures(home, away)
	assignments := make(map[int]int, len(runs))
	if len(runs) == 0 {
		return assignments
	}

	labels := kMeans(Standardize(features), cfg.K, cfg.MaxIterations, cfg.Seed)
	for i, r := range runs {
		assignments[r] = labels[i]
	}

	metrics.RecordClustering(cfg.K, len(runs), time.Since(start))

	return assignments
}

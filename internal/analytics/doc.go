// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

// Package analytics implements the simulation clustering pipeline for a
// single game: feature extraction over comparable runs, per-dimension
// standardization, and seeded k-means.
//
// The pipeline is a pure, single-shot computation. It consumes the two
// run-index → score maps the storage layer produces for one game and
// returns a run-index → cluster-label map; nothing is retained between
// calls and no I/O happens here.
//
// Pipeline stages:
//
//  1. ExtractFeatures: intersect the home and away run indices (the
//     comparable runs, sorted ascending) and emit one 2-D vector per run:
//     [(home+away)/2, home-away], average score and score differential.
//  2. Standardize: center each dimension and divide by its population
//     standard deviation so the differential dimension, which is usually
//     an order of magnitude larger, cannot dominate the distance metric.
//  3. Cluster: k-means with deterministic seeded initialization, Euclidean
//     distance, and an iteration bound.
//
// Insufficient data (either side empty or an empty intersection) yields
// an empty result from every stage. That is a valid outcome ("no clusters
// available"), not an error, and is deliberately distinct from the
// game-not-found failure the storage layer reports.
package analytics

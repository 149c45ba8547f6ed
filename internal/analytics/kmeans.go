// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package analytics

import (
	"math/rand"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// kMeans partitions points into k clusters by Lloyd's algorithm and
// returns one label in [0, k-1] per point, in input order.
//
// Initialization is deterministic for a given seed: k initial centroids
// are drawn without replacement from the DISTINCT points using a seeded
// permutation. Drawing from distinct points avoids the pathological start
// where two centroids coincide on duplicated data. When fewer distinct
// points than k exist, the distinct points are cycled, so some centroids
// coincide and the corresponding clusters stay empty, a degenerate but
// valid labeling; the algorithm still terminates.
//
// Iteration: assign each point to its nearest centroid by Euclidean
// distance (ties to the lower index), then recompute each centroid as the
// mean of its assigned points (empty clusters keep their centroid). Stops
// when no assignment changes or after maxIterations rounds.
func kMeans(points [][]float64, k, maxIterations int, seed int64) []int {
	if len(points) == 0 || k <= 0 {
		return nil
	}

	centroids := initialCentroids(points, k, seed)
	labels := make([]int, len(points))

	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if labels[i] != nearest {
				labels[i] = nearest
				changed = true
			}
		}
		// First pass always counts as changed so centroids get one update
		// even when the zero-valued initial labels happen to be correct.
		if !changed && iter > 0 {
			break
		}

		recomputeCentroids(points, labels, centroids)
	}

	return labels
}

// initialCentroids picks k starting centroids from the distinct points
// via a seeded permutation, cycling when fewer distinct points exist.
func initialCentroids(points [][]float64, k int, seed int64) [][]float64 {
	distinct := distinctPoints(points)
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- deterministic init, not security

	order := rng.Perm(len(distinct))
	centroids := make([][]float64, k)
	for i := 0; i < k; i++ {
		src := distinct[order[i%len(order)]]
		centroids[i] = append([]float64(nil), src...)
	}
	return centroids
}

// distinctPoints returns the unique points in first-occurrence order
func distinctPoints(points [][]float64) [][]float64 {
	seen := make(map[string]struct{}, len(points))
	distinct := make([][]float64, 0, len(points))
	for _, p := range points {
		key := pointKey(p)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		distinct = append(distinct, p)
	}
	return distinct
}

// pointKey builds an exact string key for deduplicating float vectors
func pointKey(p []float64) string {
	var b strings.Builder
	for i, v := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'b', -1, 64))
	}
	return b.String()
}

// nearestCentroid returns the index of the closest centroid by Euclidean
// distance, breaking ties toward the lower index.
func nearestCentroid(p []float64, centroids [][]float64) int {
	best := 0
	bestDist := floats.Distance(p, centroids[0], 2)
	for c := 1; c < len(centroids); c++ {
		if d := floats.Distance(p, centroids[c], 2); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

// recomputeCentroids replaces each centroid with the mean of its assigned
// points. Centroids with no assigned points are left unchanged.
func recomputeCentroids(points [][]float64, labels []int, centroids [][]float64) {
	dims := len(points[0])
	sums := make([][]float64, len(centroids))
	counts := make([]int, len(centroids))
	for c := range centroids {
		sums[c] = make([]float64, dims)
	}

	for i, p := range points {
		floats.Add(sums[labels[i]], p)
		counts[labels[i]]++
	}

	for c := range centroids {
		if counts[c] == 0 {
			continue
		}
		floats.Scale(1/float64(counts[c]), sums[c])
		centroids[c] = sums[c]
	}
}

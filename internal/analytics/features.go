// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package analytics

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ComparableRuns returns the run indices present for BOTH sides of a game,
// sorted ascending.
//
// The pairing is meaningful because the ingest layer guarantees that run
// index r for the home team and run index r for the away team of the same
// game describe the same simulated match realization. Runs simulated for
// only one side carry no score pair and are excluded from everything
// downstream: aligned scores, win percentage, and clustering.
func ComparableRuns(home, away map[int]int) []int {
	if len(home) == 0 || len(away) == 0 {
		return nil
	}

	runs := make([]int, 0, len(home))
	for r := range home {
		if _, ok := away[r]; ok {
			runs = append(runs, r)
		}
	}
	sort.Ints(runs)
	return runs
}

// AlignScores returns the comparable run indices with both sides' scores
// aligned by position: homeScores[i] and awayScores[i] belong to runs[i].
// All three slices are empty when there are no comparable runs.
func AlignScores(home, away map[int]int) (runs, homeScores, awayScores []int) {
	runs = ComparableRuns(home, away)
	if len(runs) == 0 {
		return nil, nil, nil
	}

	homeScores = make([]int, len(runs))
	awayScores = make([]int, len(runs))
	for i, r := range runs {
		homeScores[i] = home[r]
		awayScores[i] = away[r]
	}
	return runs, homeScores, awayScores
}

// ExtractFeatures builds one 2-D feature vector per comparable run:
// [(home+away)/2, home-away], the average score and the score
// differential of that simulated realization. The returned run list is
// aligned with the feature list (features[i] belongs to runs[i]).
//
// Either side empty, or an empty intersection, yields nil results; the
// caller treats "no features" as a valid no-clusters outcome.
func ExtractFeatures(home, away map[int]int) (runs []int, features [][]float64) {
	runs = ComparableRuns(home, away)
	if len(runs) == 0 {
		return nil, nil
	}

	features = make([][]float64, len(runs))
	for i, r := range runs {
		h := float64(home[r])
		a := float64(away[r])
		features[i] = []float64{(h + a) / 2, h - a}
	}
	return runs, features
}

// Summary is the per-game performance summary computed over comparable
// runs, served by the game features endpoint.
type Summary struct {
	AvgHomeScore    float64
	AvgAwayScore    float64
	HomeWinFraction float64
}

// Summarize computes the per-game summary: mean innings total for each
// side and the fraction of comparable runs the home side won outright
// (ties are not wins). Returns ok=false when there are no comparable runs.
func Summarize(home, away map[int]int) (Summary, bool) {
	runs, homeScores, awayScores := AlignScores(home, away)
	if len(runs) == 0 {
		return Summary{}, false
	}

	homeTotals := make([]float64, len(runs))
	awayTotals := make([]float64, len(runs))
	wins := 0
	for i := range runs {
		homeTotals[i] = float64(homeScores[i])
		awayTotals[i] = float64(awayScores[i])
		if homeScores[i] > awayScores[i] {
			wins++
		}
	}

	return Summary{
		AvgHomeScore:    stat.Mean(homeTotals, nil),
		AvgAwayScore:    stat.Mean(awayTotals, nil),
		HomeWinFraction: float64(wins) / float64(len(runs)),
	}, true
}

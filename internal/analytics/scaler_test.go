// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package analytics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestStandardizeMeanAndVariance(t *testing.T) {
	t.Parallel()

	features := [][]float64{{145, 10}, {185, -10}, {92.5, -5}}
	scaled := Standardize(features)

	if len(scaled) != len(features) {
		t.Fatalf("Standardize() length = %d, want %d", len(scaled), len(features))
	}

	for d := 0; d < 2; d++ {
		column := make([]float64, len(scaled))
		for i, row := range scaled {
			column[i] = row[d]
		}
		if mean := stat.Mean(column, nil); math.Abs(mean) > 1e-9 {
			t.Errorf("dimension %d mean = %v, want 0", d, mean)
		}
		if sd := stat.PopStdDev(column, nil); math.Abs(sd-1) > 1e-9 {
			t.Errorf("dimension %d population stddev = %v, want 1", d, sd)
		}
	}
}

func TestStandardizePreservesOrder(t *testing.T) {
	t.Parallel()

	features := [][]float64{{100, 0}, {200, 0}, {150, 0}}
	scaled := Standardize(features)

	// Ordering in each dimension must survive the affine transform
	if !(scaled[0][0] < scaled[2][0] && scaled[2][0] < scaled[1][0]) {
		t.Errorf("order not preserved: %v", scaled)
	}
}

func TestStandardizeZeroVariance(t *testing.T) {
	t.Parallel()

	// Constant second dimension must become all zeros, not NaN/Inf
	features := [][]float64{{100, 7}, {200, 7}}
	scaled := Standardize(features)

	for i, row := range scaled {
		if row[1] != 0 {
			t.Errorf("scaled[%d][1] = %v, want 0 for zero-variance dimension", i, row[1])
		}
		for d, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("scaled[%d][%d] = %v, want finite", i, d, v)
			}
		}
	}
}

func TestStandardizeSingleVector(t *testing.T) {
	t.Parallel()

	scaled := Standardize([][]float64{{145, 10}})

	if len(scaled) != 1 {
		t.Fatalf("Standardize() length = %d, want 1", len(scaled))
	}
	if scaled[0][0] != 0 || scaled[0][1] != 0 {
		t.Errorf("single vector standardizes to %v, want [0 0]", scaled[0])
	}
}

func TestStandardizeEmpty(t *testing.T) {
	t.Parallel()

	if scaled := Standardize(nil); scaled != nil {
		t.Errorf("Standardize(nil) = %v, want nil", scaled)
	}
}

func TestStandardizeDoesNotModifyInput(t *testing.T) {
	t.Parallel()

	features := [][]float64{{145, 10}, {185, -10}}
	Standardize(features)

	if features[0][0] != 145 || features[1][1] != -10 {
		t.Errorf("input mutated: %v", features)
	}
}

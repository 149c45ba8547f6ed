// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package analytics

import (
	"gonum.org/v1/gonum/stat"
)

// Standardize transforms feature vectors to zero mean and unit variance
// per dimension, using the population standard deviation. Without this
// the score-differential dimension (often an order of magnitude larger
// than the average-score dimension) would dominate Euclidean distances.
//
// The input is not modified; the result has the same length and order.
//
// Degenerate inputs are handled without division by zero: a dimension
// with zero variance (including the single-vector case) standardizes to
// all zeros, which keeps such points coincident rather than undefined.
func Standardize(features [][]float64) [][]float64 {
	if len(features) == 0 {
		return nil
	}

	dims := len(features[0])
	column := make([]float64, len(features))

	means := make([]float64, dims)
	stddevs := make([]float64, dims)
	for d := 0; d < dims; d++ {
		for i, f := range features {
			column[i] = f[d]
		}
		means[d] = stat.Mean(column, nil)
		stddevs[d] = stat.PopStdDev(column, nil)
	}

	scaled := make([][]float64, len(features))
	for i, f := range features {
		row := make([]float64, dims)
		for d := 0; d < dims; d++ {
			if stddevs[d] == 0 {
				// Zero variance: centering already maps every value to 0
				row[d] = 0
				continue
			}
			row[d] = (f[d] - means[d]) / stddevs[d]
		}
		scaled[i] = row
	}
	return scaled
}

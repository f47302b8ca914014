// Package pso - tour cost evaluation.
//
// Design:
//   - TourCost works directly on points; the swarm uses tourCostSym over a
//     precomputed gonum distance matrix. Both add the same float64 values in
//     the same order and therefore agree exactly.
//   - Stable summation: results are rounded to 1e-9 so rotations and
//     reversals of one tour compare equal. Costs too large to carry that
//     precision (|x| ≥ 2^53·1e-9) are returned unrounded, so huge but finite
//     coordinates never overflow to +Inf.
//   - No validation in the hot path: callers guarantee in-range indices.
package pso

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/psotsp/geom"
)

const (
	// roundScale controls cost stabilisation precision (1e-9).
	roundScale = 1e9
	// roundLimit is the magnitude above which x*roundScale no longer has a
	// fractional part to round.
	roundLimit = (1 << 53) / roundScale
)

// TourCost returns the length of the closed tour r over pts: the sum of
// distance(r[i-1], r[i]) for every i, including the edge from the last city
// back to the first. Routes of length 0 or 1 cost 0.
//
// Complexity: O(n).
func TourCost(r Route, pts []geom.Point) float64 {
	var n = len(r)
	if n < 2 {
		return 0
	}

	var (
		sum  float64
		i    int
		prev = r[n-1]
	)
	for i = 0; i < n; i++ {
		sum += geom.Distance(pts[prev], pts[r[i]])
		prev = r[i]
	}

	return round1e9(sum)
}

// tourCostSym is TourCost over a precomputed distance matrix.
//
// Complexity: O(n).
func tourCostSym(d *mat.SymDense, r Route) float64 {
	var n = len(r)
	if n < 2 {
		return 0
	}

	var (
		sum  float64
		i    int
		prev = r[n-1]
	)
	for i = 0; i < n; i++ {
		sum += d.At(prev, r[i])
		prev = r[i]
	}

	return round1e9(sum)
}

// round1e9 returns x rounded to 1e-9 absolute precision, or x itself when
// it is too large (or not finite) for the rounding to mean anything.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	if !(math.Abs(x) < roundLimit) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}

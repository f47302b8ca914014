// Package pso_test holds helpers shared across the *_test.go files.
package pso_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/psotsp/geom"
	"github.com/katalvlaran/psotsp/pso"
)

const (
	// epsCost tolerates summation-order noise between equivalent tours.
	epsCost = 1e-6

	// seedDet is the fixed seed used wherever a run must be reproducible.
	seedDet = int64(42)
)

// unitSquare returns the corners of the unit square in tour order; its
// optimal tour is the perimeter, cost 4.
func unitSquare() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

// randomPoints returns n points with float coordinates in [0,100).
func randomPoints(n int, seed int64) []geom.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: r.Float64() * 100, Y: r.Float64() * 100}
	}

	return pts
}

// testOptions returns small, fast options with invariant checks enabled.
func testOptions(iterations, population int, pb, gb float64) pso.Options {
	opts := pso.DefaultOptions()
	opts.Iterations = iterations
	opts.PopulationSize = population
	opts.PBestProbability = pb
	opts.GBestProbability = gb
	opts.Seed = seedDet

	return opts
}

// requirePermutation fails the test unless r is a permutation of 0..n-1.
func requirePermutation(t *testing.T, r pso.Route, n int) {
	t.Helper()
	require.NoError(t, pso.ValidatePermutation(r, n), "route %v", r)
}

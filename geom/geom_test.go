package geom_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/psotsp/geom"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, geom.Distance(geom.Point{X: 0, Y: 0}, geom.Point{X: 3, Y: 4}))
	assert.Equal(t, 0.0, geom.Distance(geom.Point{X: 2, Y: 2}, geom.Point{X: 2, Y: 2}))

	// Symmetric by construction.
	p, q := geom.Point{X: -1.5, Y: 7}, geom.Point{X: 4, Y: -2.25}
	assert.Equal(t, geom.Distance(p, q), geom.Distance(q, p))
}

func TestValidate(t *testing.T) {
	require.NoError(t, geom.Validate([]geom.Point{{X: 0, Y: 0}, {X: 0, Y: 0}}))

	require.ErrorIs(t, geom.Validate(nil), geom.ErrNoPoints)

	err := geom.Validate([]geom.Point{{X: 0, Y: 0}, {X: math.NaN(), Y: 1}})
	require.ErrorIs(t, err, geom.ErrNumericAnomaly)
	assert.Contains(t, err.Error(), "point 1")

	err = geom.Validate([]geom.Point{{X: 1, Y: math.Inf(-1)}})
	assert.True(t, errors.Is(err, geom.ErrNumericAnomaly))
}

func TestDistanceMatrix(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 6, Y: 8}}
	d := geom.DistanceMatrix(pts)
	require.NotNil(t, d)
	require.Equal(t, 3, d.SymmetricDim())

	for i := range pts {
		assert.Equal(t, 0.0, d.At(i, i), "diagonal must be zero")
		for j := range pts {
			assert.Equal(t, geom.Distance(pts[i], pts[j]), d.At(i, j))
		}
	}
	assert.Equal(t, 10.0, d.At(0, 2))

	assert.Nil(t, geom.DistanceMatrix(nil))
}

func TestRandomPoints(t *testing.T) {
	a := geom.RandomPoints(50, rand.New(rand.NewSource(7)))
	b := geom.RandomPoints(50, rand.New(rand.NewSource(7)))
	require.Len(t, a, 50)
	assert.Equal(t, a, b, "same seed must give the same instance")

	for _, p := range a {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, float64(geom.RandomExtent))
		assert.Equal(t, math.Trunc(p.Y), p.Y, "coordinates are integer-valued")
	}
	require.NoError(t, geom.Validate(a))

	assert.Nil(t, geom.RandomPoints(0, nil))
	assert.Len(t, geom.RandomPoints(3, nil), 3)
}

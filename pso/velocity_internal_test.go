package pso

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// indexScan is the O(n²) reference derivation: a linear search per position.
func indexScan(work, target Route, prob float64) []Swap {
	var vel []Swap
	for i := range work {
		if work[i] != target[i] {
			j := work.IndexOf(target[i])
			vel = append(vel, Swap{A: i, B: j, Probability: prob})
			work[i], work[j] = work[j], work[i]
		}
	}

	return vel
}

func TestDeriveVelocity_TwoStages(t *testing.T) {
	p := NewParticleWithCost(Route{1, 0, 2}, 0)
	p.best = Route{0, 1, 2}

	p.deriveVelocity(Route{2, 1, 0}, 0.9, 0.1)
	assert.Equal(t, []Swap{
		{A: 0, B: 1, Probability: 0.9}, // onto pbest
		{A: 0, B: 2, Probability: 0.1}, // then onto gbest
	}, p.velocity)
	assert.Equal(t, Route{1, 0, 2}, p.route, "derivation leaves the route alone")
	assert.Equal(t, Route{2, 1, 0}, p.work, "scratch ends on gbest")
}

// TestAlignTo_MatchesLinearScan checks that the inverse index records the
// same swaps as the naive search.
func TestAlignTo_MatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 100; trial++ {
		n := 1 + rng.Intn(30)
		start := identity(n)
		shuffleInPlace(start, rng)
		target := identity(n)
		shuffleInPlace(target, rng)

		work := start.Clone()
		pos := make([]int, n)
		for i, v := range work {
			pos[v] = i
		}
		got := alignTo(work, pos, target, 0.5, nil)
		want := indexScan(start.Clone(), target, 0.5)

		require.Equal(t, want, got)
		require.Equal(t, target, work)
		for i, v := range work {
			require.Equal(t, i, pos[v], "inverse index out of sync")
		}
	}
}

func TestApplyVelocity_ReachesTarget(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	start := Route{4, 2, 0, 3, 1}
	work := start.Clone()
	pos := make([]int, len(work))
	for i, v := range work {
		pos[v] = i
	}
	target := Route{0, 1, 2, 3, 4}
	vel := alignTo(work, pos, target, 1, nil)

	r := start.Clone()
	applyVelocity(r, vel, rng)
	assert.Equal(t, target, r)
}

func TestDeriveSeed_Streams(t *testing.T) {
	a := particleRNG(7, 0).Int63()
	b := particleRNG(7, 1).Int63()
	c := particleRNG(7, 0).Int63()
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, c)
	assert.Equal(t, particleRNG(0, 3).Int63(), particleRNG(defaultRNGSeed, 3).Int63())
}

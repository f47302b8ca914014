// Package pso - discrete velocity.
//
// A velocity is an ordered list of swaps. It is derived in two stages on a
// scratch copy of the route:
//
//	(a) walk the copy onto pbest, tagging swaps with the pbest probability;
//	(b) continue from the result onto gbest, tagging swaps with the gbest
//	    probability.
//
// It is then replayed on the untouched route, each swap kept with its own
// probability. With both probabilities at 1 the route therefore lands exactly
// on gbest; with both at 0 it does not move.
//
// Design:
//   - An inverse index pos[city] = position is kept in sync with every swap,
//     so locating a city is O(1) and each stage is O(n) instead of O(n²).
//     The recorded swaps are identical to those of a linear scan.
//   - Scratch buffers live on the particle and are reused across iterations.
package pso

import (
	"fmt"
	"math/rand"
)

// Swap is a candidate transposition of route positions A and B, applied with
// independent probability Probability.
type Swap struct {
	A           int
	B           int
	Probability float64
}

// Move derives the particle's velocity towards its pbest and gbest and
// applies it stochastically to the current route, drawing from rng. The
// route changes in place; costs are NOT refreshed, call UpdateCostAndBest
// afterwards.
//
// gbest is read only. It must have the same length as the route.
//
// Complexity: O(n) time; no allocations once scratch buffers are warm.
func (p *Particle) Move(gbest Route, pbestProb, gbestProb float64, rng *rand.Rand) {
	var n = len(p.route)
	if len(gbest) != n {
		panic(fmt.Sprintf("pso: gbest length %d != route length %d", len(gbest), n))
	}
	p.velocity = p.velocity[:0]
	if n <= 1 {
		return
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	p.deriveVelocity(gbest, pbestProb, gbestProb)
	applyVelocity(p.route, p.velocity, rng)
}

// deriveVelocity fills p.velocity with the pbest-stage swaps followed by the
// gbest-stage swaps.
func (p *Particle) deriveVelocity(gbest Route, pbestProb, gbestProb float64) {
	var n = len(p.route)
	if len(p.work) != n {
		p.work = make(Route, n)
		p.pos = make([]int, n)
	}
	copy(p.work, p.route)

	var i int
	for i = 0; i < n; i++ {
		p.pos[p.work[i]] = i
	}

	p.velocity = alignTo(p.work, p.pos, p.best, pbestProb, p.velocity)
	p.velocity = alignTo(p.work, p.pos, gbest, gbestProb, p.velocity)
}

// alignTo walks work onto target position by position. Whenever work[i]
// differs from target[i], the position j currently holding target[i] is
// swapped into i; the swap is recorded in vel and applied to work at once.
// pos must be the inverse of work on entry and stays so on exit.
//
// Complexity: O(n).
func alignTo(work Route, pos []int, target Route, prob float64, vel []Swap) []Swap {
	var i, j int
	for i = range work {
		if work[i] == target[i] {
			continue
		}
		j = pos[target[i]]
		vel = append(vel, Swap{A: i, B: j, Probability: prob})
		work[i], work[j] = work[j], work[i]
		pos[work[i]] = i
		pos[work[j]] = j
	}

	return vel
}

// applyVelocity replays vel on r in order. Every swap consumes exactly one
// draw u ∈ [0,1) and is applied iff u < Probability, so 1 always applies and
// 0 never does.
//
// Complexity: O(len(vel)).
func applyVelocity(r Route, vel []Swap, rng *rand.Rand) {
	var (
		k int
		s Swap
	)
	for k = range vel {
		s = vel[k]
		if rng.Float64() < s.Probability {
			r[s.A], r[s.B] = r[s.B], r[s.A]
		}
	}
}

package pso

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/psotsp/geom"
)

// Particle is one candidate tour plus the best tour it has seen.
//
// Invariants:
//   - bestCost == cost(best) and bestCost never increases.
//   - route and best never share backing arrays.
//
// A Particle is not safe for concurrent use; the swarm updates each particle
// from at most one goroutine at a time.
type Particle struct {
	route Route
	cost  float64

	best     Route
	bestCost float64

	// velocity holds the swaps derived in the last update.
	velocity []Swap

	// Scratch state reused across updates.
	work Route
	pos  []int

	// Random number generator. Each particle gets its own.
	rng *rand.Rand
}

// NewParticle wraps a copy of route and evaluates its cost over pts.
// The personal best starts equal to the route.
//
// Complexity: O(n).
func NewParticle(route Route, pts []geom.Point) *Particle {
	return NewParticleWithCost(route, TourCost(route, pts))
}

// NewParticleWithCost is NewParticle with a precomputed cost, for callers
// that already evaluated the route.
//
// Complexity: O(n).
func NewParticleWithCost(route Route, cost float64) *Particle {
	return &Particle{
		route:    route.Clone(),
		cost:     cost,
		best:     route.Clone(),
		bestCost: cost,
	}
}

// Route returns a copy of the current route.
func (p *Particle) Route() Route { return p.route.Clone() }

// Cost returns the cost of the current route.
func (p *Particle) Cost() float64 { return p.cost }

// BestRoute returns a copy of the personal best route.
func (p *Particle) BestRoute() Route { return p.best.Clone() }

// BestCost returns the personal best cost.
func (p *Particle) BestCost() float64 { return p.bestCost }

// Velocity returns a copy of the swaps derived in the last update.
func (p *Particle) Velocity() []Swap {
	if p.velocity == nil {
		return nil
	}
	out := make([]Swap, len(p.velocity))
	copy(out, p.velocity)

	return out
}

// UpdateCostAndBest recomputes the current cost over pts and promotes the
// route to personal best when it is strictly cheaper.
//
// Complexity: O(n).
func (p *Particle) UpdateCostAndBest(pts []geom.Point) {
	p.setCost(TourCost(p.route, pts))
}

// setCost records an externally computed cost for the current route and
// copies the route into best on strict improvement.
func (p *Particle) setCost(c float64) {
	p.cost = c
	if c < p.bestCost {
		// copy into the existing buffer; best never aliases route.
		if len(p.best) != len(p.route) {
			p.best = make(Route, len(p.route))
		}
		copy(p.best, p.route)
		p.bestCost = c
	}
}

// String implements fmt.Stringer.
func (p *Particle) String() string {
	return fmt.Sprintf("cost=%.4f route=%v best=%.4f bestRoute=%v swaps=%d",
		p.cost, p.route, p.bestCost, p.best, len(p.velocity))
}

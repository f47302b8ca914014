// Package pso - the swarm optimiser.
//
// Lifecycle: Uninitialized → Initialized (NewSwarm) → Running → Converged.
// Converged is reached exactly when the configured number of iterations has
// run; there is no cost-based early exit.
//
// One iteration:
//  1. gbest := particle with the lowest pbest cost (first one wins ties);
//     its route is snapshotted once and shared read-only.
//  2. The snapshot is reported to the sink and appended to the history.
//  3. Every particle moves towards its pbest and the snapshot, then refreshes
//     its cost and pbest. Particles updated later in the same iteration do
//     not see improvements found earlier in it.
//
// Concurrency: step 3 may fan out over Options.Workers goroutines. Steps 1-2
// finish before any particle moves, particles never share state, and each
// draws from its own random stream.
package pso

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/psotsp/geom"
)

// Swarm owns the particles of one optimisation run. It is not safe for
// concurrent use; Options.Workers parallelises inside a single Step.
type Swarm struct {
	pts  []geom.Point
	dist *mat.SymDense
	opts Options

	particles []*Particle
	state     State
	iter      int
	history   []float64

	// costs is scratch space for swarm statistics.
	costs []float64
}

// ParticleState is a read-only copy of one particle.
type ParticleState struct {
	Route     Route
	Cost      float64
	BestRoute Route
	BestCost  float64
}

// NewSwarm validates the inputs and builds the initial population.
//
// Errors: ErrPopulationSize, ErrNegativeIterations, ErrNegativeWorkers,
// ErrEmptyPoints (all wrap ErrInvalidConfiguration) and geom.ErrNumericAnomaly.
// No partial swarm is returned on error.
//
// Complexity: O(n² + P·n) for n points and P particles.
func NewSwarm(pts []geom.Point, opts Options) (*Swarm, error) {
	if err := validateAll(pts, opts); err != nil {
		return nil, err
	}

	// Own a private copy; callers may reuse their slice.
	own := make([]geom.Point, len(pts))
	copy(own, pts)

	routes, err := InitialPopulation(own, opts.PopulationSize, rngFromSeed(opts.Seed))
	if err != nil {
		return nil, err
	}

	s := &Swarm{
		pts:       own,
		dist:      geom.DistanceMatrix(own),
		opts:      opts,
		particles: make([]*Particle, len(routes)),
		state:     StateInitialized,
		costs:     make([]float64, len(routes)),
	}

	var (
		i int
		r Route
		p *Particle
	)
	for i, r = range routes {
		p = NewParticleWithCost(r, tourCostSym(s.dist, r))
		p.rng = particleRNG(opts.Seed, i)
		s.particles[i] = p
	}

	return s, nil
}

// State returns the lifecycle stage.
func (s *Swarm) State() State { return s.state }

// Iteration returns the number of completed iterations.
func (s *Swarm) Iteration() int { return s.iter }

// Len returns the number of particles.
func (s *Swarm) Len() int { return len(s.particles) }

// Snapshot returns copies of every particle, in population order.
//
// Complexity: O(P·n).
func (s *Swarm) Snapshot() []ParticleState {
	out := make([]ParticleState, len(s.particles))
	for i, p := range s.particles {
		out[i] = ParticleState{
			Route:     p.Route(),
			Cost:      p.cost,
			BestRoute: p.BestRoute(),
			BestCost:  p.bestCost,
		}
	}

	return out
}

// Best returns the current gbest: the lowest pbest cost across the swarm and
// a copy of its route.
//
// Complexity: O(P + n).
func (s *Swarm) Best() (float64, Route) {
	if len(s.particles) == 0 {
		return 0, nil
	}
	g := s.particles[s.bestIndex()]

	return g.bestCost, g.BestRoute()
}

// Run performs the remaining iterations and returns the result. ctx is
// checked between iterations only; on cancellation Run returns the
// best-so-far Result with an error wrapping ctx.Err(), and a later Run
// resumes from the next iteration. sink may be nil.
func (s *Swarm) Run(ctx context.Context, sink Sink) (Result, error) {
	if s.state == StateUninitialized {
		return Result{}, ErrUninitialized
	}

	for s.iter < s.opts.Iterations {
		if err := ctx.Err(); err != nil {
			return s.result(), fmt.Errorf("pso: stopped at iteration %d: %w", s.iter, err)
		}
		if err := s.Step(sink); err != nil {
			return s.result(), err
		}
	}
	s.state = StateConverged

	return s.result(), nil
}

// Step runs a single iteration, reporting to sink when it is non-nil.
//
// Errors: ErrUninitialized on a zero Swarm, ErrConverged once every
// configured iteration has run.
//
// Complexity: O(P·n).
func (s *Swarm) Step(sink Sink) error {
	if s.state == StateUninitialized {
		return ErrUninitialized
	}
	if s.iter >= s.opts.Iterations {
		s.state = StateConverged
		return ErrConverged
	}

	// 1) gbest snapshot, taken once for the whole iteration.
	g := s.particles[s.bestIndex()]
	gbest := g.BestRoute()
	gcost := g.bestCost

	// 2) report.
	s.history = append(s.history, gcost)
	if sink != nil {
		mean, std := s.stats()
		sink.Report(Progress{
			Iteration:      s.iter,
			BestCost:       gcost,
			BestRoute:      gbest.Clone(),
			MeanBestCost:   mean,
			StdDevBestCost: std,
		})
	}

	// 3) move every particle.
	s.moveAll(gbest)

	s.iter++
	if s.iter == s.opts.Iterations {
		s.state = StateConverged
	} else {
		s.state = StateRunning
	}

	return nil
}

// moveAll updates every particle against the same gbest snapshot, either
// sequentially or through a bounded errgroup.
func (s *Swarm) moveAll(gbest Route) {
	if s.opts.Workers <= 1 {
		for _, p := range s.particles {
			s.move(p, gbest)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(s.opts.Workers)
	for _, p := range s.particles {
		p := p
		g.Go(func() error {
			s.move(p, gbest)
			return nil
		})
	}
	_ = g.Wait() // move never fails
}

// move applies one particle update and refreshes its cost and pbest.
// A route that stops being a permutation means corrupted state: panic.
func (s *Swarm) move(p *Particle, gbest Route) {
	p.Move(gbest, s.opts.PBestProbability, s.opts.GBestProbability, p.rng)
	p.setCost(tourCostSym(s.dist, p.route))

	if s.opts.CheckInvariants {
		if err := ValidatePermutation(p.route, len(s.pts)); err != nil {
			panic(fmt.Sprintf("pso: corrupted particle state: %v", err))
		}
	}
}

// bestIndex returns the index of the particle with the lowest pbest cost.
// Strict "<" keeps the first one on ties.
//
// Complexity: O(P).
func (s *Swarm) bestIndex() int {
	var (
		best = 0
		i    int
	)
	for i = 1; i < len(s.particles); i++ {
		if s.particles[i].bestCost < s.particles[best].bestCost {
			best = i
		}
	}

	return best
}

// stats returns the mean and standard deviation of the pbest costs.
func (s *Swarm) stats() (mean, std float64) {
	for i, p := range s.particles {
		s.costs[i] = p.bestCost
	}
	if len(s.costs) < 2 {
		return s.costs[0], 0
	}

	return stat.MeanStdDev(s.costs, nil)
}

// result assembles a Result from the current state.
func (s *Swarm) result() Result {
	cost, route := s.Best()
	history := make([]float64, len(s.history))
	copy(history, s.history)

	return Result{
		BestCost:   cost,
		BestRoute:  route,
		Iterations: s.iter,
		History:    history,
	}
}

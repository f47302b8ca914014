package pso

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is the umbrella for every configuration problem
// detected before a run starts. The specific sentinels below wrap it, so
// errors.Is matches both the specific and the umbrella error.
var ErrInvalidConfiguration = errors.New("pso: invalid configuration")

var (
	// ErrEmptyPoints is returned when the point set has no points.
	ErrEmptyPoints = fmt.Errorf("%w: empty point set", ErrInvalidConfiguration)

	// ErrPopulationSize is returned when Options.PopulationSize < 1.
	ErrPopulationSize = fmt.Errorf("%w: population size must be at least 1", ErrInvalidConfiguration)

	// ErrNegativeIterations is returned when Options.Iterations < 0.
	ErrNegativeIterations = fmt.Errorf("%w: iteration count must be non-negative", ErrInvalidConfiguration)

	// ErrNegativeWorkers is returned when Options.Workers < 0.
	ErrNegativeWorkers = fmt.Errorf("%w: worker count must be non-negative", ErrInvalidConfiguration)
)

var (
	// ErrNotPermutation indicates that a route is not a permutation of 0..n-1.
	ErrNotPermutation = errors.New("pso: route is not a permutation")

	// ErrStartOutOfRange indicates that a start index is outside [0..n-1].
	ErrStartOutOfRange = errors.New("pso: start index out of range")

	// ErrUninitialized is returned by methods called on a zero Swarm.
	ErrUninitialized = errors.New("pso: swarm is not initialized")

	// ErrConverged is returned by Step once the configured number of
	// iterations has been run.
	ErrConverged = errors.New("pso: iteration budget exhausted")
)

// Result is the outcome of a run.
type Result struct {
	// BestCost is the pbest cost of the best particle.
	BestCost float64

	// BestRoute is an independent copy of the best particle's pbest route.
	BestRoute Route

	// Iterations is the number of iterations completed.
	Iterations int

	// History holds the global best cost reported at the start of every
	// completed iteration; it is non-increasing.
	History []float64
}

// State is the lifecycle stage of a Swarm.
type State int

const (
	// StateUninitialized is the zero value: no population exists yet.
	StateUninitialized State = iota

	// StateInitialized means the population is built and no iteration has run.
	StateInitialized

	// StateRunning means at least one iteration has run and more remain.
	StateRunning

	// StateConverged means the configured number of iterations has run.
	StateConverged
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateConverged:
		return "converged"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

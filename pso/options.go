package pso

// Defaults mirror a reasonable run on a few dozen cities.
const (
	// DefaultIterations is the default number of swarm iterations.
	DefaultIterations = 1200

	// DefaultPopulationSize is the default number of particles.
	DefaultPopulationSize = 300

	// DefaultPBestProbability keeps particles exploiting their own best tours.
	DefaultPBestProbability = 0.9

	// DefaultGBestProbability is low on purpose so the swarm keeps diversity.
	DefaultGBestProbability = 0.02
)

// Options configures a Swarm.
//
// PBestProbability and GBestProbability are acceptance probabilities for
// individual swaps. Values outside [0,1] are accepted: anything ≥ 1 always
// applies a swap, anything ≤ 0 never does.
type Options struct {
	// Iterations is the exact number of iterations Run performs (≥ 0).
	// There is no cost-based early exit.
	Iterations int

	// PopulationSize is the number of particles (≥ 1).
	PopulationSize int

	// PBestProbability tags the swaps that pull a particle towards its pbest.
	PBestProbability float64

	// GBestProbability tags the swaps that pull a particle towards gbest.
	GBestProbability float64

	// Seed drives every random decision of the run. 0 selects a fixed
	// default seed, so the zero value is still reproducible.
	Seed int64

	// Workers bounds the goroutines updating particles within an iteration.
	// 0 and 1 both mean sequential.
	Workers int

	// CheckInvariants re-validates every updated route and panics if it is no
	// longer a permutation. Such a failure is a bug, never a user error.
	CheckInvariants bool
}

// DefaultOptions returns the default configuration.
//
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		Iterations:       DefaultIterations,
		PopulationSize:   DefaultPopulationSize,
		PBestProbability: DefaultPBestProbability,
		GBestProbability: DefaultGBestProbability,
		Seed:             0,
		Workers:          1,
		CheckInvariants:  true,
	}
}

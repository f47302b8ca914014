// Package pso - validation performed once, before any particle exists.
//
// Design principles:
//   - Everything is checked eagerly in NewSwarm; the iteration loop never
//     re-validates user input.
//   - Only sentinel errors from types.go (and geom) are returned.
package pso

import "github.com/katalvlaran/psotsp/geom"

// validateAll verifies Options and the point set.
//
// Order: options first (cheap), then points (O(n)).
func validateAll(pts []geom.Point, opts Options) error {
	// Stage 1: Options-only sanity.
	if err := validateOptions(opts); err != nil {
		return err
	}

	// Stage 2: point set shape and finiteness.
	return validatePoints(pts)
}

// validateOptions checks Options without referencing the point set.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.PopulationSize < 1 {
		return ErrPopulationSize
	}
	if opts.Iterations < 0 {
		return ErrNegativeIterations
	}
	if opts.Workers < 0 {
		return ErrNegativeWorkers
	}

	// Probabilities are deliberately unrestricted; see Options.
	return nil
}

// validatePoints maps an empty set onto ErrEmptyPoints and forwards
// geom.ErrNumericAnomaly unchanged.
//
// Complexity: O(n).
func validatePoints(pts []geom.Point) error {
	if len(pts) == 0 {
		return ErrEmptyPoints
	}

	return geom.Validate(pts)
}

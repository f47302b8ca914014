// Package pso searches for short closed tours through 2-D points with a
// discrete Particle Swarm Optimisation.
//
// Every particle holds a route (a permutation of point indices) and the best
// route it has seen so far (pbest). The swarm-wide best (gbest) is the
// particle with the lowest pbest cost. Instead of a continuous velocity
// vector, a particle moves by a "velocity" made of position swaps:
//
//  1. Swaps that walk a working copy of the route onto pbest, tagged with
//     Options.PBestProbability.
//  2. Swaps that continue from there onto gbest, tagged with
//     Options.GBestProbability.
//
// The swaps are then replayed on the original route, each kept only when an
// independent uniform draw falls below its probability. This is the discrete
// counterpart of v = w·v + c1·r1·(pbest − x) + c2·r2·(gbest − x).
//
// Typical use:
//
//	sw, err := pso.NewSwarm(points, pso.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	res, err := sw.Run(ctx, pso.SinkFunc(func(p pso.Progress) { … }))
//
// Determinism: a run is fully determined by the points and Options.Seed.
// Each particle draws from its own derived random stream, so the outcome does
// not depend on Options.Workers.
//
// The population is seeded with Options.PopulationSize−1 uniformly random
// routes and one nearest-neighbour route starting at point 0.
package pso

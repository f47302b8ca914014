// Package psotsp is a discrete particle swarm optimiser for the symmetric
// Euclidean travelling salesman problem.
//
// A particle is a tour (a permutation of city indices); its velocity is a
// list of swap operators that pull the tour towards the particle's personal
// best and towards the swarm's global best, each swap accepted with a fixed
// probability.
//
// Subpackages:
//
//	geom/       points, Euclidean distance, distance matrix, random instances
//	pso/        routes, tour cost, initial population, particles, swarm loop
//	tsplib/     TSPLIB NODE_COORD_SECTION reader and writer
//	plotsink/   progress recording and gonum/plot charts
//	cmd/psotsp  command-line solver with JSON run reports
//
// Quick start:
//
//	sw, err := pso.NewSwarm(points, pso.DefaultOptions())
//	if err != nil { ... }
//	res, err := sw.Run(ctx, nil)
//	fmt.Println(res.BestCost, res.BestRoute)
package psotsp

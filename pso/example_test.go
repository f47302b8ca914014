// Package pso_test provides runnable, deterministic examples.
package pso_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/psotsp/geom"
	"github.com/katalvlaran/psotsp/pso"
)

// ExampleSwarm_Run solves the unit square; the perimeter is optimal.
func ExampleSwarm_Run() {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	opts := pso.DefaultOptions()
	opts.Iterations = 50
	opts.PopulationSize = 4
	opts.PBestProbability = 0.9
	opts.GBestProbability = 0.5
	opts.Seed = 7

	sw, err := pso.NewSwarm(pts, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := sw.Run(context.Background(), nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("cost=%.1f cities=%d iterations=%d state=%v\n",
		res.BestCost, len(res.BestRoute), res.Iterations, sw.State())

	// Output:
	// cost=4.0 cities=4 iterations=50 state=converged
}

// ExampleGreedyRoute builds the nearest-neighbour tour from city 0.
func ExampleGreedyRoute() {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	r, err := pso.GreedyRoute(pts, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(r, pso.TourCost(r, pts))

	// Output:
	// [0 1 2 3 | 0] 4
}

// ExampleParticle_Move pulls a particle fully onto a target tour.
func ExampleParticle_Move() {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	p := pso.NewParticle(pso.Route{0, 2, 1, 3}, pts)

	p.Move(pso.Route{0, 1, 2, 3}, 1, 1, nil)
	p.UpdateCostAndBest(pts)
	fmt.Println(p.Velocity(), p.Route(), p.BestCost())

	// Output:
	// [{1 2 1}] [0 1 2 3 | 0] 4
}

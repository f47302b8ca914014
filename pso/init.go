// Package pso - population initialisation.
//
// The starting population is PopulationSize−1 uniformly random routes plus a
// single nearest-neighbour route from city 0. The greedy route gives the
// swarm a decent gbest from the first iteration; the random ones keep it
// diverse.
package pso

import (
	"math/rand"

	"github.com/katalvlaran/psotsp/geom"
)

// greedyStart is the city the seeded nearest-neighbour route starts from.
const greedyStart = 0

// RandomRoute returns a uniformly random permutation of the indices of pts,
// drawn from rng. A nil rng uses the default deterministic stream.
//
// Complexity: O(n) time, O(n) space.
func RandomRoute(pts []geom.Point, rng *rand.Rand) Route {
	r := identity(len(pts))
	shuffleInPlace(r, rng)

	return r
}

// GreedyRoute builds a nearest-neighbour tour: starting at start, it keeps
// appending the unvisited point closest to the last one added. Ties go to
// the lowest index, so the result is fully determined by pts and start.
//
// Errors: ErrStartOutOfRange if start ∉ [0..len(pts)-1].
//
// Complexity: O(n²) time, O(n) space.
func GreedyRoute(pts []geom.Point, start int) (Route, error) {
	var n = len(pts)
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	// unvisited stays sorted ascending so a strict "<" keeps the lowest index on ties.
	unvisited := make([]int, 0, n-1)

	var i int
	for i = 0; i < n; i++ {
		if i != start {
			unvisited = append(unvisited, i)
		}
	}
	route := make(Route, 0, n)
	route = append(route, start)

	var (
		last    = start
		bestPos int
		bestD   float64
		d       float64
	)
	for len(unvisited) > 0 {
		bestPos = 0
		bestD = geom.Distance(pts[last], pts[unvisited[0]])
		for i = 1; i < len(unvisited); i++ {
			d = geom.Distance(pts[last], pts[unvisited[i]])
			if d < bestD {
				bestD = d
				bestPos = i
			}
		}
		last = unvisited[bestPos]
		route = append(route, last)
		unvisited = append(unvisited[:bestPos], unvisited[bestPos+1:]...)
	}

	return route, nil
}

// InitialPopulation returns size routes: size−1 random routes drawn from rng
// followed by the greedy route from city 0.
//
// Errors: ErrEmptyPoints, ErrPopulationSize (both wrap ErrInvalidConfiguration).
//
// Complexity: O(size·n + n²).
func InitialPopulation(pts []geom.Point, size int, rng *rand.Rand) ([]Route, error) {
	if len(pts) == 0 {
		return nil, ErrEmptyPoints
	}
	if size < 1 {
		return nil, ErrPopulationSize
	}
	var r = rng
	if r == nil {
		r = rngFromSeed(0)
	}
	routes := make([]Route, 0, size)

	var i int
	for i = 0; i < size-1; i++ {
		routes = append(routes, RandomRoute(pts, r))
	}

	greedy, err := GreedyRoute(pts, greedyStart)
	if err != nil {
		return nil, err
	}

	return append(routes, greedy), nil
}

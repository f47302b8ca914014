package geom

import "math/rand"

// RandomExtent is the exclusive upper bound of coordinates produced by
// RandomPoints.
const RandomExtent = 1000

// RandomPoints returns n points with integer-valued coordinates drawn
// uniformly from [0, RandomExtent). A nil rng falls back to a fixed seed so
// the result stays reproducible.
//
// Complexity: O(n).
func RandomPoints(n int, rng *rand.Rand) []Point {
	if n <= 0 {
		return nil
	}
	var r = rng
	if r == nil {
		r = rand.New(rand.NewSource(1))
	}
	pts := make([]Point, n)

	var i int
	for i = 0; i < n; i++ {
		pts[i] = Point{
			X: float64(r.Intn(RandomExtent)),
			Y: float64(r.Intn(RandomExtent)),
		}
	}

	return pts
}

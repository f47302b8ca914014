package geom

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoPoints is returned when a point set is empty.
	ErrNoPoints = errors.New("geom: empty point set")

	// ErrNumericAnomaly signals a NaN or ±Inf coordinate. Such a point would
	// poison every distance it takes part in.
	ErrNumericAnomaly = errors.New("geom: non-finite coordinate")
)

// Point is an immutable 2-D coordinate.
type Point struct {
	X float64
	Y float64
}

// String implements fmt.Stringer, e.g. "(1, 2.5)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Distance returns the Euclidean distance between p and q.
//
// Complexity: O(1).
func Distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Validate checks that pts is non-empty and every coordinate is finite.
// The returned error wraps ErrNumericAnomaly with the offending index so
// callers can report it.
//
// Complexity: O(n).
func Validate(pts []Point) error {
	if len(pts) == 0 {
		return ErrNoPoints
	}

	var (
		i int
		p Point
	)
	for i, p = range pts {
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("point %d %v: %w", i, p, ErrNumericAnomaly)
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

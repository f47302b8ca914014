// Package pso - route utilities.
//
// A Route is an open permutation of point indices; the closing edge from the
// last city back to the first is implicit. These helpers operate purely on
// index structure and never look at coordinates.
//
// Provided helpers:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - Route.Clone: independent copy (every ownership boundary uses it).
//   - Route.IndexOf: position of a city.
//   - RotateToStart: cyclic shift so a given city comes first.
//   - Reversed: the same closed tour walked the other way.
//   - EqualModuloRotation: equality of closed tours under rotation.
//
// Design:
//   - No panics on user input - only sentinel errors from types.go.
//   - O(n) time for every helper.
package pso

import (
	"fmt"
	"strings"
)

// Route is an ordered visit of every point index exactly once.
type Route []int

// Clone returns an independent copy of r (nil stays nil).
//
// Complexity: O(n).
func (r Route) Clone() Route {
	if r == nil {
		return nil
	}
	out := make(Route, len(r))
	copy(out, r)

	return out
}

// IndexOf returns the position holding city v, or -1.
//
// Complexity: O(n).
func (r Route) IndexOf(v int) int {
	var i int
	for i = range r {
		if r[i] == v {
			return i
		}
	}

	return -1
}

// String renders the closed tour, e.g. "[0 3 1 2 | 0]", where the bar marks
// the implicit return to the first city.
func (r Route) String() string {
	if len(r) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')

	var i int
	for i = range r {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", r[i])
	}
	fmt.Fprintf(&b, " | %d]", r[0])

	return b.String()
}

// ValidatePermutation checks that r is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(r Route, n int) error {
	if len(r) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrNotPermutation, len(r), n)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i, v = range r {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: value %d at position %d out of range", ErrNotPermutation, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: duplicate value %d at position %d", ErrNotPermutation, v, i)
		}
		seen[v] = true
	}

	return nil
}

// RotateToStart returns a fresh copy of r shifted cyclically so that
// out[0]==start.
//
// Complexity: O(n) time, O(n) space.
func RotateToStart(r Route, start int) (Route, error) {
	var pivot = r.IndexOf(start)
	if pivot == -1 {
		return nil, ErrStartOutOfRange
	}
	var n = len(r)
	out := make(Route, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = r[(pivot+i)%n]
	}

	return out, nil
}

// Reversed returns a fresh copy of r in reverse order.
//
// Complexity: O(n) time, O(n) space.
func Reversed(r Route) Route {
	var n = len(r)
	out := make(Route, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = r[n-1-i]
	}

	return out
}

// EqualModuloRotation reports whether a and b describe the same closed tour
// in the same direction, regardless of which city is listed first.
//
// Complexity: O(n).
func EqualModuloRotation(a, b Route) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	var p = b.IndexOf(a[0])
	if p == -1 {
		return false
	}

	var (
		n = len(a)
		i int
	)
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}

	return true
}

// identity returns the route [0 1 … n-1].
func identity(n int) Route {
	out := make(Route, n)

	var i int
	for i = range out {
		out[i] = i
	}

	return out
}

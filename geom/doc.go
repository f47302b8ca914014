// Package geom provides the 2-D point model shared by every TSP component.
//
// A Point is an immutable pair of float64 coordinates. Routes elsewhere in the
// module refer to points by their index in the caller's slice, never by value,
// so two points with equal coordinates stay two distinct cities.
//
// Provided helpers:
//   - Distance: Euclidean distance between two points.
//   - Validate: rejects empty inputs and non-finite coordinates up front, so
//     hot loops downstream may assume well-formed data.
//   - DistanceMatrix: dense symmetric matrix of all pairwise distances.
//   - RandomPoints: integer-valued random instances for demos and tests.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors.
//   - Deterministic given an explicit *rand.Rand; no global random state.
package geom

package geom

import "gonum.org/v1/gonum/mat"

// DistanceMatrix returns the symmetric n×n matrix of pairwise Euclidean
// distances, with a zero diagonal. For an empty input it returns nil.
//
// Each entry is computed with Distance, so sums taken over the matrix are
// bit-for-bit equal to sums taken over the points directly.
//
// Complexity: O(n²) time and space.
func DistanceMatrix(pts []Point) *mat.SymDense {
	var n = len(pts)
	if n == 0 {
		return nil
	}
	d := mat.NewSymDense(n, nil)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d.SetSym(i, j, Distance(pts[i], pts[j]))
		}
	}

	return d
}

package mat

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Col returns column j of the m-row column-major matrix x as a slice view.
// The view aliases x; writes through it are visible in the matrix.
func Col(x []float64, m, j int) []float64 {
	return x[j*m : (j+1)*m : (j+1)*m]
}

// ColMeans computes the arithmetic mean of each column of the m×n
// column-major matrix x into means. means must have length n.
func ColMeans(m, n int, x, means []float64) {
	checkDims(m, n, x)

	if len(means) < n {
		panic("mat: means buffer too short")
	}

	inv := 1 / float64(m)
	for j := range n {
		means[j] = vecmath.Sum(Col(x, m, j)) * inv
	}
}

// CenterColumns subtracts means[j] from every element of column j, in place.
// means must have length n.
func CenterColumns(m, n int, x, means []float64) {
	checkDims(m, n, x)

	if len(means) < n {
		panic("mat: means buffer too short")
	}

	for j := range n {
		col := Col(x, m, j)

		mean := means[j]
		for i := range col {
			col[i] -= mean
		}
	}
}

// StandardizeColumns centers every column of x to zero mean and scales it to
// unit sample standard deviation, in place. The column means and sample
// standard deviations are written to means and sds (both length n).
//
// A zero-variance column divides by zero and produces non-finite values,
// matching the usual correlation convention for constant columns.
func StandardizeColumns(m, n int, x, means, sds []float64) {
	checkDims(m, n, x)

	if len(means) < n || len(sds) < n {
		panic("mat: means/sds buffer too short")
	}

	ColMeans(m, n, x, means)
	CenterColumns(m, n, x, means)

	// Sample variance of a centered column is dot(col, col) / (m-1).
	inv := 1 / float64(m-1)
	for j := range n {
		col := Col(x, m, j)
		sds[j] = math.Sqrt(vecmath.DotProduct(col, col) * inv)

		vecmath.ScaleBlockInPlace(col, 1/sds[j])
	}
}

func checkDims(m, n int, x []float64) {
	if m <= 0 || n <= 0 {
		panic("mat: dimensions must be positive")
	}

	if len(x) < m*n {
		panic("mat: matrix buffer shorter than m*n")
	}
}

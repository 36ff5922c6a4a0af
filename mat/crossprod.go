package mat

import "github.com/cwbudde/algo-vecmath"

// Crossprod computes the lower triangle of alpha * Xᵀ·X for the m×n
// column-major matrix x, writing into the n×n column-major matrix c:
//
//	c[i + j*n] = alpha * dot(col_i, col_j)   for i >= j
//
// The strict upper triangle of c is left untouched; call [Symmetrize] to
// mirror the result into a full symmetric matrix.
func Crossprod(m, n int, alpha float64, x, c []float64) {
	checkDims(m, n, x)

	if len(c) < n*n {
		panic("mat: crossprod buffer shorter than n*n")
	}

	for j := range n {
		colj := Col(x, m, j)

		for i := j; i < n; i++ {
			c[i+j*n] = alpha * vecmath.DotProduct(Col(x, m, i), colj)
		}
	}
}

// Symmetrize mirrors the lower triangle of the n×n column-major matrix c
// onto the upper triangle, in place:
//
//	c[j + i*n] = c[i + j*n]   for all i > j
//
// Afterwards c is symmetric bit-for-bit, not merely within rounding error.
// Applying Symmetrize to an already-symmetric matrix is a no-op.
func Symmetrize(n int, c []float64) {
	if len(c) < n*n {
		panic("mat: symmetrize buffer shorter than n*n")
	}

	for j := range n {
		for i := j + 1; i < n; i++ {
			c[j+i*n] = c[i+j*n]
		}
	}
}

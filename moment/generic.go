package moment

import "github.com/cwbudde/algo-moment/mat"

// Covariance computes the classical (unbiased, 1/(m-1)) sample covariance
// matrix of the m×n column-major matrix x. Equivalent to
// [WeightedCovariance] with MethodUnbiased and uniform weights.
func Covariance(m, n int, x []float64, opts ...Option) ([]float64, error) {
	if err := checkShape(m, n, x); err != nil {
		return nil, err
	}

	means := make([]float64, n)

	cov := make([]float64, n*n)
	if err := WeightedCovarianceInto(MethodUnbiased, m, n, x, nil, means, cov, opts...); err != nil {
		return nil, err
	}

	return cov, nil
}

// Correlation computes the Pearson correlation matrix of the m×n
// column-major matrix x. The diagonal is exactly 1. Columns with zero
// variance produce non-finite entries.
func Correlation(m, n int, x []float64, opts ...Option) ([]float64, error) {
	cfg := applyOptions(opts...)

	if err := checkShape(m, n, x); err != nil {
		return nil, err
	}

	if m < 2 {
		return nil, ErrTooFewRows
	}

	// Standardize a working copy, then the cross-product over z-scores
	// divided by m-1 is the correlation.
	xc := make([]float64, m*n)
	mat.CopyInto(xc, x)

	means := make([]float64, n)
	sds := make([]float64, n)
	mat.StandardizeColumns(m, n, xc, means, sds)

	cor := make([]float64, n*n)
	weightedCrossprod(cfg, m, n, 1/float64(m-1), xc, []float64{1}, cor)

	for j := range n {
		cor[j+j*n] = 1
	}

	mat.Symmetrize(n, cor)

	return cor, nil
}

// Cosine computes the cosine-similarity matrix of the columns of the m×n
// column-major matrix x: the cross-product Xᵀ·X rescaled to unit diagonal.
// Columns are not centered. An all-zero column produces non-finite entries.
func Cosine(m, n int, x []float64, opts ...Option) ([]float64, error) {
	cfg := applyOptions(opts...)

	if err := checkShape(m, n, x); err != nil {
		return nil, err
	}

	cos := make([]float64, n*n)
	weightedCrossprod(cfg, m, n, 1, x, []float64{1}, cos)
	normalizeDiagonal(n, cos)

	return cos, nil
}

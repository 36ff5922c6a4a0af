package moment

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-moment/internal/kernels"
	"github.com/cwbudde/algo-moment/mat"
)

// WeightedCovariance computes the weighted covariance matrix of the m×n
// column-major matrix x and returns the weighted column means alongside the
// n×n covariance matrix.
//
// wt is either nil (uniform weighting), a length-1 slice (the uniform
// sentinel: its single value stands in for every row's weight), or one
// weight per row. Per-row weights must be non-negative and sum to exactly
// 1.0, otherwise [ErrBadWeights] is returned and no output is produced.
//
// x is never modified; the pipeline centers an internal working copy scoped
// to this call.
func WeightedCovariance(method Method, m, n int, x, wt []float64, opts ...Option) (colmeans, cov []float64, err error) {
	if err := checkShape(m, n, x); err != nil {
		return nil, nil, err
	}

	colmeans = make([]float64, n)
	cov = make([]float64, n*n)

	if err := WeightedCovarianceInto(method, m, n, x, wt, colmeans, cov, opts...); err != nil {
		return nil, nil, err
	}

	return colmeans, cov, nil
}

// WeightedCovarianceInto is the buffer-reusing form of [WeightedCovariance]:
// the weighted column means are written into colmeans (length >= n) and the
// covariance matrix into cov (length >= n*n).
//
// On any error the contents of colmeans and cov are unspecified and must not
// be interpreted as a partial result.
func WeightedCovarianceInto(method Method, m, n int, x, wt, colmeans, cov []float64, opts ...Option) error {
	cfg := applyOptions(opts...)

	if err := checkShape(m, n, x); err != nil {
		return err
	}

	if len(colmeans) < n || len(cov) < n*n {
		return ErrShortOutput
	}

	switch method {
	case MethodUnbiased, MethodML:
	default:
		return ErrUnknownMethod
	}

	if len(wt) == 0 {
		wt = uniformWeight(m)
	}

	switch len(wt) {
	case 1:
		// The sentinel satisfies the weight invariant by construction.
	case m:
		if err := checkWeights(wt); err != nil {
			return err
		}
	default:
		return ErrWeightLength
	}

	weightedColMeans(cfg, m, n, x, wt, colmeans)

	// Working copy scoped to this call; the caller keeps x unmodified.
	xc := make([]float64, m*n)
	mat.CopyInto(xc, x)
	mat.CenterColumns(m, n, xc, colmeans)

	weightedCrossprod(cfg, m, n, alphaFor(method, m, wt), xc, wt, cov)
	mat.Symmetrize(n, cov)

	return nil
}

// WeightedCorrelation computes the weighted Pearson correlation matrix: the
// weighted covariance rescaled to unit diagonal. The weighted column means
// are returned alongside the n×n correlation matrix.
func WeightedCorrelation(method Method, m, n int, x, wt []float64, opts ...Option) (colmeans, cor []float64, err error) {
	colmeans, cor, err = WeightedCovariance(method, m, n, x, wt, opts...)
	if err != nil {
		return nil, nil, err
	}

	normalizeDiagonal(n, cor)

	return colmeans, cor, nil
}

// weightedColMeans computes colmeans[j] = Σ_i wt[i]*x[i,j] for every column,
// fanning out across columns for large inputs. The length-1 sentinel is
// broadcast as a scalar factor, never indexed per row.
func weightedColMeans(cfg config, m, n int, x, wt, colmeans []float64) {
	if len(wt) == 1 {
		w0 := wt[0]

		cfg.forEachColumns(m*n, n, func(lo, hi int) {
			for j := lo; j < hi; j++ {
				colmeans[j] = w0 * vecmath.Sum(mat.Col(x, m, j))
			}
		})

		return
	}

	cfg.forEachColumns(m*n, n, func(lo, hi int) {
		for j := lo; j < hi; j++ {
			colmeans[j] = vecmath.DotProduct(wt, mat.Col(x, m, j))
		}
	})
}

// weightedCrossprod writes the lower triangle of alpha * Xᵀ·diag(wt)·X into
// the n×n matrix cov. For the uniform sentinel diag(wt) is w0·I, so w0 folds
// into the scale and the plain dot product applies.
//
// Workers own disjoint column ranges of cov; columns are contiguous in
// column-major order, so there is no false sharing on the output.
func weightedCrossprod(cfg config, m, n int, alpha float64, x, wt, cov []float64) {
	uniform := len(wt) == 1
	if uniform {
		alpha *= wt[0]
	}

	cfg.forEachColumns(m*n, n, func(lo, hi int) {
		for j := lo; j < hi; j++ {
			colj := mat.Col(x, m, j)

			for i := j; i < n; i++ {
				coli := mat.Col(x, m, i)

				var s float64
				if uniform {
					s = vecmath.DotProduct(coli, colj)
				} else {
					s = kernels.WeightedDot(wt, coli, colj)
				}

				cov[i+j*n] = alpha * s
			}
		}
	})
}

// normalizeDiagonal rescales a symmetric moment matrix to unit diagonal in
// place: c[i,j] /= sqrt(c[i,i]*c[j,j]). Only the lower triangle is touched
// before re-symmetrizing, so the result stays bit-for-bit symmetric. A zero
// diagonal entry (zero-variance column) yields non-finite values.
func normalizeDiagonal(n int, c []float64) {
	inv := make([]float64, n)
	for j := range n {
		inv[j] = 1 / math.Sqrt(c[j+j*n])
	}

	for j := range n {
		// Rows j..n-1 of column j are contiguous.
		lower := c[j+j*n : (j+1)*n]

		vecmath.ScaleBlockInPlace(lower, inv[j])
		vecmath.MulBlockInPlace(lower, inv[j:n])

		c[j+j*n] = 1
	}

	mat.Symmetrize(n, c)
}

func checkShape(m, n int, x []float64) error {
	if m <= 0 || n <= 0 {
		return ErrBadShape
	}

	if len(x) < m*n {
		return ErrShortInput
	}

	return nil
}

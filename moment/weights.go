package moment

import "github.com/cwbudde/algo-vecmath"

// uniformWeight returns the length-1 sentinel weight vector standing in for
// wt[i] = 1/m on every row.
func uniformWeight(m int) []float64 {
	return []float64{1 / float64(m)}
}

// checkWeights verifies that wt is a valid observation-weight vector:
// every entry non-negative and the entries summing to exactly 1.0.
//
// The summation order is fixed (plain left-to-right) so that the strict
// equality test behaves identically on every platform.
func checkWeights(wt []float64) error {
	var sum float64

	for _, w := range wt {
		if w < 0 {
			return ErrBadWeights
		}

		sum += w
	}

	if sum != 1.0 {
		return ErrBadWeights
	}

	return nil
}

// alphaFor computes the scale applied to the weighted cross-product.
//
// MethodML needs no correction. MethodUnbiased divides by one minus the sum
// of squared weights — the Kish effective-sample-size correction. For the
// uniform sentinel the sum of squares is m*w0².
func alphaFor(method Method, m int, wt []float64) float64 {
	if method != MethodUnbiased {
		return 1
	}

	if len(wt) == 1 {
		w0 := wt[0]
		return 1 / (1 - float64(m)*w0*w0)
	}

	return 1 / (1 - vecmath.DotProduct(wt, wt))
}

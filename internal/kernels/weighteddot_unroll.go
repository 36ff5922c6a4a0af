package kernels

// weightedDotUnrolled accumulates in four independent sums so the loop has no
// serial dependency chain and is amenable to auto-vectorization.
//
// Note: the reduction order differs from the scalar kernel, so results may
// differ by floating-point reassociation error. Callers that need a fixed
// summation order (e.g. exact-equality checks) must not go through dispatch.
func weightedDotUnrolled(w, a, b []float64) float64 {
	n := len(w)

	var s0, s1, s2, s3 float64

	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += w[i] * a[i] * b[i]
		s1 += w[i+1] * a[i+1] * b[i+1]
		s2 += w[i+2] * a[i+2] * b[i+2]
		s3 += w[i+3] * a[i+3] * b[i+3]
	}

	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		sum += w[i] * a[i] * b[i]
	}

	return sum
}

package kernels

// weightedDotScalar is the portable baseline implementation.
func weightedDotScalar(w, a, b []float64) float64 {
	var sum float64
	for i := range w {
		sum += w[i] * a[i] * b[i]
	}

	return sum
}

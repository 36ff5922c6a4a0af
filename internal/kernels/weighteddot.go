package kernels

import (
	"sync"

	"github.com/cwbudde/algo-moment/internal/cpu"
)

var (
	weightedDotImpl func(w, a, b []float64) float64
	weightedDotOnce sync.Once
)

// initWeightedDot selects the weighted-dot implementation for this CPU and
// caches the function pointer for all subsequent calls.
func initWeightedDot() {
	features := cpu.DetectFeatures()

	switch {
	case cpu.Supports(features, cpu.SIMDAVX2),
		cpu.Supports(features, cpu.SIMDSSE2),
		cpu.Supports(features, cpu.SIMDNEON):
		weightedDotImpl = weightedDotUnrolled
	default:
		weightedDotImpl = weightedDotScalar
	}
}

// WeightedDot returns sum(w[i] * a[i] * b[i]).
//
// All slices must have equal length. Panics if lengths differ.
// After the first call, dispatch is a direct function pointer call.
func WeightedDot(w, a, b []float64) float64 {
	if len(a) != len(w) || len(b) != len(w) {
		panic("kernels: slice length mismatch")
	}

	weightedDotOnce.Do(initWeightedDot)

	return weightedDotImpl(w, a, b)
}

package series

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var (
	ErrEmptyInput     = errors.New("series: input is empty")
	ErrLengthMismatch = errors.New("series: series must have equal length")
	ErrBadLag         = errors.New("series: max lag must be in [0, len-1]")
)

// directMaxLen is the series length up to which the direct per-lag dot
// product beats the FFT path.
const directMaxLen = 256

// CrossCovariance computes the lagged cross-covariance of a and b:
//
//	c[k] = (1/n) * Σ_t (a[t] - ā) * (b[t+k] - b̄)   for k = 0..maxLag
//
// Both series must have the same length n, and maxLag must be less than n.
func CrossCovariance(a, b []float64, maxLag int) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}

	if maxLag < 0 || maxLag >= len(a) {
		return nil, ErrBadLag
	}

	ac := demeaned(a)
	bc := demeaned(b)

	if len(a) <= directMaxLen {
		return crossCovDirect(ac, bc, maxLag), nil
	}

	return crossCovFFT(ac, bc, maxLag)
}

// AutoCovariance computes the lagged auto-covariance of a. The lag-0 value
// is the population variance of the series.
func AutoCovariance(a []float64, maxLag int) ([]float64, error) {
	return CrossCovariance(a, a, maxLag)
}

// AutoCorrelation computes the auto-correlation sequence of a: the
// auto-covariance normalized so the lag-0 value is 1. A constant series has
// zero variance; its raw (all-zero) sequence is returned unnormalized.
func AutoCorrelation(a []float64, maxLag int) ([]float64, error) {
	c, err := AutoCovariance(a, maxLag)
	if err != nil {
		return nil, err
	}

	c0 := c[0]
	if c0 == 0 {
		return c, nil
	}

	// Divide rather than multiply by the reciprocal so that the lag-0 value
	// is exactly 1.
	for k := range c {
		c[k] /= c0
	}

	return c, nil
}

// demeaned returns a copy of a with the sample mean removed.
func demeaned(a []float64) []float64 {
	mean := vecmath.Sum(a) / float64(len(a))

	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = v - mean
	}

	return out
}

// crossCovDirect computes each lag as a dot product of the overlapping
// portions of the centered series.
func crossCovDirect(ac, bc []float64, maxLag int) []float64 {
	n := len(ac)
	inv := 1 / float64(n)

	out := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		out[k] = vecmath.DotProduct(ac[:n-k], bc[k:]) * inv
	}

	return out
}

// crossCovFFT computes all lags at once via the correlation theorem:
// IFFT(FFT(b) * conj(FFT(a)))[k] = Σ_t a[t]*b[t+k] once both series are
// zero-padded far enough that the circular correlation is linear.
func crossCovFFT(ac, bc []float64, maxLag int) ([]float64, error) {
	n := len(ac)
	fftSize := nextPowerOf2(2 * n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("series: failed to create FFT plan: %w", err)
	}

	aPadded := make([]complex128, fftSize)
	bPadded := make([]complex128, fftSize)
	for i := range n {
		aPadded[i] = complex(ac[i], 0)
		bPadded[i] = complex(bc[i], 0)
	}

	aFreq := make([]complex128, fftSize)
	bFreq := make([]complex128, fftSize)

	if err := plan.Forward(aFreq, aPadded); err != nil {
		return nil, fmt.Errorf("series: forward FFT failed: %w", err)
	}

	if err := plan.Forward(bFreq, bPadded); err != nil {
		return nil, fmt.Errorf("series: forward FFT failed: %w", err)
	}

	spec := make([]complex128, fftSize)
	for i := range spec {
		aConj := complex(real(aFreq[i]), -imag(aFreq[i]))
		spec[i] = bFreq[i] * aConj
	}

	lags := make([]complex128, fftSize)
	if err := plan.Inverse(lags, spec); err != nil {
		return nil, fmt.Errorf("series: inverse FFT failed: %w", err)
	}

	inv := 1 / float64(n)

	out := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		out[k] = real(lags[k]) * inv
	}

	return out, nil
}

// nextPowerOf2 returns the smallest power of two >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

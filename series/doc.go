// Package series computes lagged second moments of equally spaced series:
// auto-covariance, cross-covariance, and auto-correlation sequences.
//
// All functions remove the sample mean and normalize by the series length
// (the maximum-likelihood convention), so the lag-0 auto-covariance equals
// the population variance of the series.
//
// Short inputs are handled with direct dot products; long inputs switch to
// an FFT-based path, which computes all lags at once in O(n log n).
// Both paths produce the same results up to floating-point rounding.
package series

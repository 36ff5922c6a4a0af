// Package moment computes second-moment matrices over dense column-major
// data: weighted and unweighted covariance, Pearson correlation, and cosine
// similarity.
//
// An m-row, n-column observation matrix is a []float64 of length m*n in
// column-major order (element (i, j) at index i + j*m); every operation
// produces an n×n symmetric matrix in the same layout summarizing pairwise
// column relationships.
//
// # Weighted covariance
//
// Each row may carry an observation weight. Weights must be non-negative and
// sum to exactly 1.0 — the sum is compared with strict floating-point
// equality, so callers are responsible for constructing exactly normalized
// vectors. A nil weight slice selects uniform weighting (every row weighted
// 1/m). Two estimator conventions are available: [MethodUnbiased] applies the
// effective-sample-size correction 1/(1-Σwᵢ²), and [MethodML] leaves the raw
// weighted cross-product unscaled.
//
//	means, cov, err := moment.WeightedCovariance(moment.MethodUnbiased, m, n, x, weights)
//
// The input matrix is never modified; the pipeline centers a working copy
// scoped to the call. Results are exactly symmetric: equal entries across the
// diagonal are bit-for-bit identical, not merely close.
//
// # Parallelism
//
// Column-independent stages fan out across a bounded set of goroutines once
// the element count m*n reaches a configurable threshold; below it everything
// runs sequentially to avoid fan-out overhead. See [WithMinParallelSize] and
// [WithWorkers]. Each worker owns whole output columns, so no locking is
// involved and results do not depend on the worker count.
package moment

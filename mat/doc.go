// Package mat provides dense column-major matrix services for moment
// computations: column statistics, centering and standardization,
// cross-products, and symmetrization.
//
// # Layout
//
// An m-row, n-column matrix is stored in a single []float64 of length m*n in
// column-major order: element (i, j) lives at index i + j*m. Columns are
// therefore contiguous, which keeps column reductions cache-friendly and lets
// parallel callers hand whole columns to workers without false sharing.
//
// # Contracts
//
// Functions in this package are low-level building blocks: they panic on
// dimension mismatches rather than returning errors. Validation with error
// returns belongs to the public API layer on top.
package mat

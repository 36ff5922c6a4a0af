// Package kernels contains specialized reduction kernels for weighted
// moment computations.
//
// The vector-math library covers plain block operations and two-operand
// reductions; this package adds the fused three-operand reduction
//
//	WeightedDot(w, a, b) = sum(w[i] * a[i] * b[i])
//
// used by the weighted cross-product. The implementation is selected once
// based on detected CPU features:
//
//   - SIMD-capable CPUs (SSE2, AVX2, NEON): multi-accumulator unrolled loop,
//     which the compiler vectorizes and which breaks the serial dependency
//     chain of a naive accumulation
//   - Otherwise (or with ForceGeneric): plain scalar loop
//
// All kernels are allocation-free and safe for concurrent use on disjoint
// or read-only slices.
package kernels

// SPDX-License-Identifier: MIT

// Package matrix provides the dense square-matrix primitives used by the
// parallel multiplication benchmark.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix stored in one flat slice.
//   - Random, a seeded factory producing reproducible integer-valued operands.
//   - Mul and MulRows, the BLAS-backed multiply primitives (gonum) used as the
//     sequential baseline and as the per-chunk kernel.
//   - MulRowsNaive, a dependency-free i-k-j kernel kept for cross-checks.
//   - Stack and SliceRows to split and reassemble row ranges.
//   - AllClose, MaxAbsDiff and Equal for result validation, Info for summary statistics.
//
// Operands handed to a kernel are read-only: no function in this package
// mutates its input matrices.
package matrix

// SPDX-License-Identifier: MIT

// Package matrix: kernel type shared by the sequential and chunked paths.
package matrix

// Kernel computes the product of rows [start, end) of left with the full right
// operand, returning an (end-start)×right.Cols() matrix.
//
// Implementations MUST NOT mutate left or right; the executor shares them
// between concurrent chunks.
type Kernel func(left, right *Dense, start, end int) (*Dense, error)

// KernelName identifies a built-in Kernel for configuration surfaces.
type KernelName string

const (
	// KernelBLAS names MulRows (gonum-backed).
	KernelBLAS KernelName = "blas"
	// KernelNaive names MulRowsNaive (pure Go i-k-j loop).
	KernelNaive KernelName = "naive"
)

// KernelByName resolves a built-in kernel; unknown names fall back to KernelBLAS.
func KernelByName(name KernelName) Kernel {
	if name == KernelNaive {
		return MulRowsNaive
	}

	return MulRows
}

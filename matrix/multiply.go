// SPDX-License-Identifier: MIT

// Package matrix - multiplication kernels.
//
// Purpose:
//   - Mul is the sequential reference product: one BLAS-backed gonum call, no partitioning.
//   - MulRows is the chunk kernel: the same primitive applied to a contiguous row block of
//     the left operand, so a single chunk covering [0, n) reproduces Mul bit for bit.
//   - MulRowsNaive keeps a dependency-free i-k-j loop for cross-checking the BLAS path.
//
// AI-Hints:
//   - gonum's mat.NewDense aliases the slice it is given; we only ever pass input
//     buffers as read-only operands and an owned output buffer as the receiver.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opMul      = "Mul"
	opMulRows  = "MulRows"
	opMulNaive = "MulRowsNaive"
)

// matrixErrorf wraps an error with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("matrix.%s: %w", tag, err)
}

// Mul returns a×b computed by gonum's dense multiply.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (via ValidateMulCompatible).
//
// Complexity:
//   - Time O(r*k*c) flops, Space O(r*c) for the result.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulBlock(a.data, a.r, a.c, b), nil
}

// MulRows returns rows [start, end) of left×right.
// The left operand is viewed, not copied.
func MulRows(left, right *Dense, start, end int) (*Dense, error) {
	if err := ValidateMulCompatible(left, right); err != nil {
		return nil, matrixErrorf(opMulRows, err)
	}
	raw, err := left.RawRows(start, end)
	if err != nil {
		return nil, matrixErrorf(opMulRows, err)
	}

	return mulBlock(raw, end-start, left.c, right), nil
}

// mulBlock multiplies an h×k row block (flat, row-major) by right (k×c).
func mulBlock(block []float64, h, k int, right *Dense) *Dense {
	out := &Dense{r: h, c: right.c, data: make([]float64, h*right.c)}
	av := mat.NewDense(h, k, block)
	bv := mat.NewDense(right.r, right.c, right.data)
	// Receiver wraps our own buffer so gonum writes the product in place.
	mat.NewDense(h, right.c, out.data).Mul(av, bv)

	return out
}

// MulRowsNaive returns rows [start, end) of left×right using a plain i-k-j loop.
//
// Implementation:
//   - row-major multiplication into out.data:
//     left layout i*k + p, right layout p*c + j.
//   - zero entries of left are skipped.
//
// Complexity:
//   - Time O((end-start)*k*c), Space O((end-start)*c).
func MulRowsNaive(left, right *Dense, start, end int) (*Dense, error) {
	if err := ValidateMulCompatible(left, right); err != nil {
		return nil, matrixErrorf(opMulNaive, err)
	}
	if err := ValidateRowRange(left, start, end); err != nil {
		return nil, matrixErrorf(opMulNaive, err)
	}

	k, c := left.c, right.c
	out := &Dense{r: end - start, c: c, data: make([]float64, (end-start)*c)}
	var (
		i, p, j            int
		av                 float64
		rowA, rowB, rowOut int
	)
	for i = start; i < end; i++ {
		rowA = i * k
		rowOut = (i - start) * c
		for p = 0; p < k; p++ {
			av = left.data[rowA+p]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = p * c
			for j = 0; j < c; j++ {
				out.data[rowOut+j] += av * right.data[rowB+j]
			}
		}
	}

	return out, nil
}

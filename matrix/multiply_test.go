// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matpar/matrix"
	"github.com/stretchr/testify/require"
)

func TestRandom_Reproducible(t *testing.T) {
	a1, err := matrix.Random(16, matrix.WithSeed(42))
	require.NoError(t, err)
	a2, err := matrix.Random(16, matrix.WithSeed(42))
	require.NoError(t, err)
	require.True(t, a1.Equal(a2)) // same seed → identical

	s, err := matrix.Info(a1)
	require.NoError(t, err)
	require.GreaterOrEqual(t, s.Min, 0.0)
	require.Less(t, s.Max, 100.0)

	_, err = matrix.Random(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Random(3, matrix.WithValueRange(5, 5))
	require.ErrorIs(t, err, matrix.ErrInvalidValueRange)
	require.Panics(t, func() { matrix.WithRand(nil) })
}

func TestRandomPair_DistinctOperands(t *testing.T) {
	a, b, err := matrix.RandomPair(8, 7, true)
	require.NoError(t, err)
	require.False(t, a.Equal(b)) // seed and seed+1 differ

	a2, b2, err := matrix.RandomPair(8, 7, true)
	require.NoError(t, err)
	require.True(t, a.Equal(a2))
	require.True(t, b.Equal(b2))

	u1, u2, err := matrix.RandomPair(8, 0, false)
	require.NoError(t, err)
	require.False(t, u1.Equal(u2))
}

func TestMul_Known(t *testing.T) {
	a := fromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := fromRows(t, [][]float64{{5, 6}, {7, 8}})
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, got.Equal(fromRows(t, [][]float64{{19, 22}, {43, 50}})), got.String())

	_, err = matrix.Mul(a, mustDense(t, 3, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulRows_FullRangeMatchesMul: one chunk covering every row is bit-identical.
func TestMulRows_FullRangeMatchesMul(t *testing.T) {
	a, b, err := matrix.RandomPair(33, 42, true)
	require.NoError(t, err)
	want, err := matrix.Mul(a, b)
	require.NoError(t, err)

	got, err := matrix.MulRows(a, b, 0, 33)
	require.NoError(t, err)
	require.True(t, got.Equal(want))
}

// TestMulRows_StackedChunks: concatenating row blocks reproduces the product.
func TestMulRows_StackedChunks(t *testing.T) {
	a, b, err := matrix.RandomPair(10, 3, true)
	require.NoError(t, err)
	want, err := matrix.Mul(a, b)
	require.NoError(t, err)

	for _, kernel := range []matrix.Kernel{matrix.MulRows, matrix.MulRowsNaive} {
		p1, err := kernel(a, b, 0, 4)
		require.NoError(t, err)
		p2, err := kernel(a, b, 4, 7)
		require.NoError(t, err)
		p3, err := kernel(a, b, 7, 10)
		require.NoError(t, err)
		got, err := matrix.Stack(p1, p2, p3)
		require.NoError(t, err)

		ok, err := matrix.AllClose(got, want, 1e-9, 0)
		require.NoError(t, err)
		require.True(t, ok)
	}

	_, err = matrix.MulRows(a, b, 5, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidRowRange)
	_, err = matrix.MulRowsNaive(a, b, 0, 11)
	require.ErrorIs(t, err, matrix.ErrInvalidRowRange)
}

func TestKernelByName(t *testing.T) {
	a, b, err := matrix.RandomPair(5, 1, true)
	require.NoError(t, err)
	for _, name := range []matrix.KernelName{matrix.KernelBLAS, matrix.KernelNaive} {
		got, err := matrix.KernelByName(name)(a, b, 1, 3)
		require.NoError(t, err)
		require.Equal(t, 2, got.Rows())
	}
}

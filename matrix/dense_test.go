// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matpar/matrix"
	"github.com/stretchr/testify/require"
)

// fromRows builds a Dense from a literal row slice.
func fromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	data := make([]float64, 0, len(rows)*len(rows[0]))
	for _, r := range rows {
		data = append(data, r...)
	}
	m, err := matrix.NewDenseFrom(len(rows), len(rows[0]), data)
	require.NoError(tb, err)

	return m
}

func TestNewDense_Dimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
}

func TestNewDenseFrom_BadLength(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrBadDataLength)
}

func TestDense_AtSet(t *testing.T) {
	m := mustDense(t, 2, 2)
	require.NoError(t, m.Set(1, 0, 7))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // row past end
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestDense_SliceRowsIsCopy(t *testing.T) {
	m := fromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	s, err := m.SliceRows(1, 3)
	require.NoError(t, err)
	require.Equal(t, 2, s.Rows())
	require.True(t, s.Equal(fromRows(t, [][]float64{{3, 4}, {5, 6}})))

	require.NoError(t, s.Set(0, 0, 99))
	v, _ := m.At(1, 0)
	require.Equal(t, 3.0, v) // source untouched

	_, err = m.SliceRows(2, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidRowRange)
}

func TestStack_RoundTrip(t *testing.T) {
	m := fromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}, {7, 8}, {9, 10}})
	top, err := m.SliceRows(0, 3)
	require.NoError(t, err)
	bottom, err := m.SliceRows(3, 5)
	require.NoError(t, err)

	got, err := matrix.Stack(top, bottom)
	require.NoError(t, err)
	require.True(t, got.Equal(m))
}

func TestStack_Errors(t *testing.T) {
	_, err := matrix.Stack()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Stack(mustDense(t, 1, 2), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Stack(mustDense(t, 1, 2), mustDense(t, 1, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_CloneEqualString(t *testing.T) {
	m := fromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.True(t, c.Equal(m))
	require.NoError(t, c.Set(0, 0, 0))
	require.False(t, c.Equal(m))
	require.False(t, m.Equal(mustDense(t, 2, 3)))
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

func TestAllClose(t *testing.T) {
	a := fromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := fromRows(t, [][]float64{{1, 2}, {3, 4.0000001}})

	ok, err := matrix.AllClose(a, b, 1e-6, 0)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, mustDense(t, 2, 3), 1e-6, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	d, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	require.InDelta(t, 1e-7, d, 1e-12)
}

// TestAllClose_NaN: a NaN entry on either side is a mismatch.
func TestAllClose_NaN(t *testing.T) {
	clean := fromRows(t, [][]float64{{1, 2}})
	dirty := fromRows(t, [][]float64{{math.NaN(), 2}})

	for _, pair := range [][2]*matrix.Dense{{dirty, clean}, {clean, dirty}, {dirty, dirty}} {
		ok, err := matrix.AllClose(pair[0], pair[1], 1e-9, 0)
		require.NoError(t, err)
		require.False(t, ok)

		d, err := matrix.MaxAbsDiff(pair[0], pair[1])
		require.NoError(t, err)
		require.True(t, math.IsNaN(d))
	}
}

func TestInfo(t *testing.T) {
	m := fromRows(t, [][]float64{{1, 2}, {3, 6}})
	s, err := matrix.Info(m)
	require.NoError(t, err)
	require.Equal(t, 4, s.Size)
	require.Equal(t, 1.0, s.Min)
	require.Equal(t, 6.0, s.Max)
	require.Equal(t, 3.0, s.Mean)
	require.InDelta(t, 32.0/(1024*1024), s.MemoryMB, 1e-12)

	_, err = matrix.Info(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

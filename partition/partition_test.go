// SPDX-License-Identifier: MIT
package partition_test

import (
	"testing"

	"github.com/katalvlaran/matpar/partition"
	"github.com/stretchr/testify/require"
)

// TestPartition_Properties sweeps (n, w) and checks coverage, disjointness,
// ordering and balance.
func TestPartition_Properties(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 40; n++ {
		for w := 1; w <= n; w++ {
			chunks, err := partition.Partition(n, w)
			require.NoError(t, err)
			require.Len(t, chunks, w)

			next, minLen, maxLen := 0, n+1, 0
			for i, c := range chunks {
				require.Equal(t, i, c.Index)
				require.Equal(t, next, c.Start, "gap or overlap at chunk %d (n=%d w=%d)", i, n, w)
				require.Greater(t, c.Len(), 0) // never empty
				if i > 0 {
					require.LessOrEqual(t, c.Len(), chunks[i-1].Len()) // larger first
				}
				minLen, maxLen = min(minLen, c.Len()), max(maxLen, c.Len())
				next = c.End
			}
			require.Equal(t, n, next) // union is [0, n)
			require.LessOrEqual(t, maxLen-minLen, 1)
		}
	}
}

func TestPartition_Known(t *testing.T) {
	chunks, err := partition.Partition(10, 4)
	require.NoError(t, err)
	require.Equal(t, []partition.Chunk{
		{Index: 0, Start: 0, End: 3},
		{Index: 1, Start: 3, End: 6},
		{Index: 2, Start: 6, End: 8},
		{Index: 3, Start: 8, End: 10},
	}, chunks)
	require.Equal(t, "[6, 8)", chunks[2].String())
}

func TestPartition_Deterministic(t *testing.T) {
	a, err := partition.Partition(1000, 16)
	require.NoError(t, err)
	b, err := partition.Partition(1000, 16)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestPartition_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		n, w int
	}{
		{"zero workers", 10, 0},
		{"negative workers", 10, -2},
		{"more workers than rows", 3, 4},
		{"empty matrix", 0, 1},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := partition.Partition(tc.n, tc.w)
			require.ErrorIs(t, err, partition.ErrInvalidPartition)
		})
	}
}

// SPDX-License-Identifier: MIT

// Package partition splits the rows of an n×n multiply into contiguous,
// disjoint, half-open chunks, one per worker.
//
// Contract:
//   - Partition(n, w) returns exactly w chunks, in row order, whose union is [0, n).
//   - Sizes are ⌊n/w⌋ or ⌈n/w⌉; the first n mod w chunks carry the extra row.
//   - A zero-row chunk is never produced; such requests fail with ErrInvalidPartition.
//   - Deterministic: identical (n, w) always yields identical chunks.
package partition

import "fmt"

// Chunk is the half-open row range [Start, End) of the left operand
// assigned to worker Index.
type Chunk struct {
	Index int `json:"index"`
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of rows in the chunk.
func (c Chunk) Len() int { return c.End - c.Start }

// String renders the row range as "[start, end)".
func (c Chunk) String() string {
	return fmt.Sprintf("[%d, %d)", c.Start, c.End)
}

// Partition splits n rows into w chunks.
//
// Implementation:
//   - Stage 1: validate 1 ≤ w ≤ n.
//   - Stage 2: base = n/w, extra = n%w; chunk i has base+1 rows when i < extra.
//
// Errors:
//   - ErrInvalidPartition (wrapped with n and w).
//
// Complexity:
//   - Time O(w), Space O(w).
func Partition(n, w int) ([]Chunk, error) {
	if n < 1 || w < 1 || w > n {
		return nil, fmt.Errorf("partition.Partition(n=%d, w=%d): %w", n, w, ErrInvalidPartition)
	}

	base, extra := n/w, n%w
	chunks := make([]Chunk, w)
	start := 0
	for i := range chunks {
		size := base
		if i < extra {
			size++
		}
		chunks[i] = Chunk{Index: i, Start: start, End: start + size}
		start += size
	}

	return chunks, nil
}

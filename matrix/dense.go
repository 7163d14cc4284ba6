// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Support copy-based row extraction (SliceRows) and reassembly (Stack) for chunked work.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); SliceRows: O(h*c); Stack: O(total).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxSlice = "SliceRows"
	ctxStack = "Stack"
	ctxFrom  = "NewDenseFrom"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom wraps data as an r×c matrix WITHOUT copying.
// The caller hands ownership of data to the returned matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//   - ErrBadDataLength when len(data) != rows*cols.
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): len=%d: %w", ctxFrom, rows, cols, len(data), ErrBadDataLength)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// RawRows returns the backing slice for rows [start, end) without copying.
// The returned slice aliases the matrix; callers MUST treat it as read-only.
//
// Errors:
//   - ErrInvalidRowRange when the range is empty or out of bounds.
func (m *Dense) RawRows(start, end int) ([]float64, error) {
	if err := ValidateRowRange(m, start, end); err != nil {
		return nil, err
	}

	return m.data[start*m.c : end*m.c], nil
}

// SliceRows copies rows [start, end) into a new (end-start)×cols matrix.
//
// Implementation:
//   - Stage 1: validate range via ValidateRowRange.
//   - Stage 2: single copy of the contiguous row block.
//
// Complexity:
//   - Time O((end-start)*c), Space O((end-start)*c).
func (m *Dense) SliceRows(start, end int) (*Dense, error) {
	raw, err := m.RawRows(start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxSlice, err)
	}
	buf := make([]float64, len(raw))
	copy(buf, raw)

	return &Dense{r: end - start, c: m.c, data: buf}, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// Equal reports exact element-wise equality (shape included).
// Use AllClose for tolerance-based comparison.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// Stack concatenates parts vertically, preserving argument order.
// Every part must be non-nil and have the same column count.
//
// Implementation:
//   - Stage 1: validate parts and sum row counts.
//   - Stage 2: one allocation; copy each part's flat buffer at its row offset.
//
// Errors:
//   - ErrNilMatrix for a nil part, ErrDimensionMismatch for width mismatch,
//     ErrInvalidDimensions when parts is empty.
//
// Complexity:
//   - Time O(total elements), Space O(total elements).
func Stack(parts ...*Dense) (*Dense, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxStack, ErrInvalidDimensions)
	}
	rows, cols := 0, -1
	for i, p := range parts {
		if p == nil {
			return nil, fmt.Errorf("%s: part %d: %w", ctxStack, i, ErrNilMatrix)
		}
		if cols >= 0 && p.c != cols {
			return nil, fmt.Errorf("%s: part %d has %d cols, want %d: %w", ctxStack, i, p.c, cols, ErrDimensionMismatch)
		}
		cols = p.c
		rows += p.r
	}

	out := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	offset := 0
	for _, p := range parts {
		offset += copy(out.data[offset:], p.data)
	}

	return out, nil
}

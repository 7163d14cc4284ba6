// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with %w and call-site
// context); tests and callers match them with errors.Is. Nothing in this
// package panics on user-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
// Context is attached by the caller with fmt.Errorf("ctx: %w", ErrX).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or Stack parts with different widths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where a finite value is required
	// (tolerances, value ranges).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrInvalidRowRange indicates a half-open row range [start, end) that is
	// empty or not contained in [0, rows).
	ErrInvalidRowRange = errors.New("matrix: invalid row range")

	// ErrInvalidValueRange indicates a random value range with lo >= hi.
	ErrInvalidValueRange = errors.New("matrix: invalid value range")

	// ErrBadDataLength indicates that a backing slice does not hold rows*cols values.
	ErrBadDataLength = errors.New("matrix: data length does not match shape")
)

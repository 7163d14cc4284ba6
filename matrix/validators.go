// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels and the executor minimal by delegating shape/nil/range checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil and holds at least
// one element.
// Returns ErrNilMatrix if m == nil; ErrInvalidDimensions for a zero-value
// Dense (no rows or no columns).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if m.r <= 0 || m.c <= 0 {
		return validatorErrorf(fmt.Sprintf("ValidateNotNil(%dx%d)", m.r, m.c), ErrInvalidDimensions)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b *Dense) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible checks a, b are non-nil and a.Cols == b.Rows.
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquarePair ensures both operands are square and of equal dimension,
// the precondition of every benchmarked multiplication.
func ValidateSquarePair(a, b *Dense) error {
	if err := ValidateSquare(a); err != nil {
		return err
	}
	if err := ValidateSquare(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateRowRange checks that [start, end) is a non-empty range within [0, m.Rows()).
func ValidateRowRange(m *Dense, start, end int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if start < 0 || end > m.Rows() || start >= end {
		return validatorErrorf(fmt.Sprintf("ValidateRowRange[%d,%d)", start, end), ErrInvalidRowRange)
	}

	return nil
}

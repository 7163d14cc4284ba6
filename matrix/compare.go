// SPDX-License-Identifier: MIT

package matrix

import "math"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - NaN/Inf tolerances are rejected with ErrNaNInf.
//   - A NaN element on either side is never close, as in numpy allclose.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	for idx, bv := range b.data {
		av := a.data[idx]
		// Check |a-b| ≤ atol + rtol*|b|; early exit on first violation.
		if math.IsNaN(av) || math.IsNaN(bv) || math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}

// MaxAbsDiff returns max |a-b| over all elements, for diagnostics when
// AllClose fails. It is NaN when any element on either side is NaN.
func MaxAbsDiff(a, b *Dense) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}
	var worst float64
	for idx, bv := range b.data {
		av := a.data[idx]
		if math.IsNaN(av) || math.IsNaN(bv) {
			return math.NaN(), nil
		}
		worst = math.Max(worst, math.Abs(av-bv))
	}

	return worst, nil
}

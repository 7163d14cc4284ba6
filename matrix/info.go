// SPDX-License-Identifier: MIT

// Package matrix - summary statistics for reporting surfaces.
//
// Purpose:
//   - Describe an operand (shape, size, memory footprint, min/max/mean) for the
//     CLI and result exports without exposing the backing buffer.

package matrix

import "math"

// bytesPerElement is the storage cost of one float64 entry.
const bytesPerElement = 8

// Summary describes a matrix for display.
type Summary struct {
	Rows     int     `json:"rows"`
	Cols     int     `json:"cols"`
	Size     int     `json:"size"`
	MemoryMB float64 `json:"memory_mb"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
}

// Info computes a Summary in one pass over the data.
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time, O(1) space.
func Info(m *Dense) (Summary, error) {
	if err := ValidateNotNil(m); err != nil {
		return Summary{}, matrixErrorf("Info", err)
	}

	lo, hi, sum := math.Inf(1), math.Inf(-1), 0.0
	for _, v := range m.data {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		sum += v
	}

	return Summary{
		Rows:     m.r,
		Cols:     m.c,
		Size:     len(m.data),
		MemoryMB: float64(len(m.data)*bytesPerElement) / (1024 * 1024),
		Min:      lo,
		Max:      hi,
		Mean:     sum / float64(len(m.data)),
	}, nil
}

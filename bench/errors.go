// SPDX-License-Identifier: MIT

package bench

import "errors"

var (
	// ErrInvalidSweep indicates a sweep configuration that cannot run
	// (no worker counts, no backends, size < 1).
	ErrInvalidSweep = errors.New("bench: invalid sweep configuration")

	// ErrProductMismatch indicates a parallel product that differs from the
	// sequential baseline beyond the configured tolerance.
	ErrProductMismatch = errors.New("bench: parallel product differs from baseline")
)

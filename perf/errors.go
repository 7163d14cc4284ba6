// SPDX-License-Identifier: MIT

package perf

import "errors"

var (
	// ErrInvalidParallelFraction indicates an Amdahl parallel fraction outside [0, 1]
	// (NaN included).
	ErrInvalidParallelFraction = errors.New("perf: parallel fraction must lie in [0, 1]")

	// ErrInvalidWorkerCount indicates a worker count below 1.
	ErrInvalidWorkerCount = errors.New("perf: worker count must be >= 1")

	// ErrNoObservations indicates Analyze was called without any observation.
	ErrNoObservations = errors.New("perf: no observations")
)

// SPDX-License-Identifier: MIT

package perf

import (
	"fmt"
	"math"
)

// AmdahlPoint is one predicted speedup.
type AmdahlPoint struct {
	Workers int     `json:"workers"`
	Speedup float64 `json:"speedup"`
}

// validFraction reports p ∈ [0, 1]; NaN fails both comparisons.
func validFraction(p float64) bool { return p >= 0 && p <= 1 }

// AmdahlSpeedup returns S(N) = 1 / ((1-P) + P/N).
//
// Errors:
//   - ErrInvalidParallelFraction when p ∉ [0, 1].
//   - ErrInvalidWorkerCount when n < 1.
//
// The denominator is ≥ 1/N > 0 for valid inputs, so the result is finite.
func AmdahlSpeedup(p float64, n int) (float64, error) {
	if !validFraction(p) {
		return 0, fmt.Errorf("perf.AmdahlSpeedup(p=%v): %w", p, ErrInvalidParallelFraction)
	}
	if n < 1 {
		return 0, fmt.Errorf("perf.AmdahlSpeedup(n=%d): %w", n, ErrInvalidWorkerCount)
	}

	return 1 / ((1 - p) + p/float64(n)), nil
}

// AmdahlAsymptote returns S(∞) = 1/(1-P); +Inf at P = 1.
func AmdahlAsymptote(p float64) (float64, error) {
	if !validFraction(p) {
		return 0, fmt.Errorf("perf.AmdahlAsymptote(p=%v): %w", p, ErrInvalidParallelFraction)
	}
	if p == 1 {
		return math.Inf(1), nil
	}

	return 1 / (1 - p), nil
}

// AmdahlCurve evaluates AmdahlSpeedup for every count, in the given order.
func AmdahlCurve(p float64, counts []int) ([]AmdahlPoint, error) {
	points := make([]AmdahlPoint, 0, len(counts))
	for _, n := range counts {
		s, err := AmdahlSpeedup(p, n)
		if err != nil {
			return nil, err
		}
		points = append(points, AmdahlPoint{Workers: n, Speedup: s})
	}

	return points, nil
}

// AmdahlRange evaluates the curve for 1..maxWorkers.
func AmdahlRange(p float64, maxWorkers int) ([]AmdahlPoint, error) {
	if maxWorkers < 1 {
		return nil, fmt.Errorf("perf.AmdahlRange(max=%d): %w", maxWorkers, ErrInvalidWorkerCount)
	}
	counts := make([]int, maxWorkers)
	for i := range counts {
		counts[i] = i + 1
	}

	return AmdahlCurve(p, counts)
}

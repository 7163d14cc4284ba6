// SPDX-License-Identifier: MIT

package perf

import "math"

// Speedup returns tSeq/tPar.
//
// Undefined when tPar <= 0, tSeq < 0, either input is non-finite, or the
// quotient overflows.
func Speedup(tSeq, tPar float64) Metric {
	if !finite(tSeq) || !finite(tPar) || tPar <= 0 || tSeq < 0 {
		return Undefined()
	}

	return Defined(tSeq / tPar)
}

// SpeedupFrom is Speedup against an optional baseline; a missing baseline
// gives an undefined result.
func SpeedupFrom(baseline Metric, tPar float64) Metric {
	tSeq, ok := baseline.Value()
	if !ok {
		return Undefined()
	}

	return Speedup(tSeq, tPar)
}

// Efficiency returns speedup/workers, undefined when speedup is undefined or
// workers < 1. Values above 1 are kept.
func Efficiency(speedup Metric, workers int) Metric {
	s, ok := speedup.Value()
	if !ok || workers < 1 {
		return Undefined()
	}

	return Defined(s / float64(workers))
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// SPDX-License-Identifier: MIT

// Package perf turns benchmark timings into speedup, efficiency and Amdahl
// figures.
//
// Numeric policy:
//   - Divisions that cannot produce a finite value yield an undefined Metric,
//     never a panic, NaN or ±Inf. Undefined is distinct from a defined zero.
//   - Efficiency is never clamped: a value above 1.0 is reported as measured.
//   - Amdahl inputs are validated; P outside [0, 1] is ErrInvalidParallelFraction.
package perf

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Metric is a tagged value: either a finite float64 or undefined.
// The zero Metric is undefined.
type Metric struct {
	v  float64
	ok bool
}

// Defined wraps v. A non-finite v yields an undefined Metric.
func Defined(v float64) Metric {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Metric{}
	}

	return Metric{v: v, ok: true}
}

// Undefined returns the undefined Metric.
func Undefined() Metric { return Metric{} }

// Value returns the value and whether it is defined.
func (m Metric) Value() (float64, bool) { return m.v, m.ok }

// IsDefined reports whether m carries a value.
func (m Metric) IsDefined() bool { return m.ok }

// String formats a defined value with three decimals, or "n/a".
func (m Metric) String() string {
	if !m.ok {
		return "n/a"
	}

	return strconv.FormatFloat(m.v, 'f', 3, 64)
}

// MarshalJSON encodes a defined Metric as a number and an undefined one as null.
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.ok {
		return []byte("null"), nil
	}

	return json.Marshal(m.v)
}

// UnmarshalJSON accepts a number or null.
func (m *Metric) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = Metric{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Defined(v)

	return nil
}

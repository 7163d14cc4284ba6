// SPDX-License-Identifier: MIT

package perf

import "fmt"

// FormatSeconds renders a duration for humans: microseconds below 1ms,
// milliseconds below 1s, otherwise seconds with four decimals.
func FormatSeconds(s float64) string {
	switch {
	case s < 0.001:
		return fmt.Sprintf("%.2f μs", s*1e6)
	case s < 1:
		return fmt.Sprintf("%.2f ms", s*1e3)
	default:
		return fmt.Sprintf("%.4f s", s)
	}
}

// Taxonomy is a Flynn classification with the reasoning that applies to
// this benchmark.
type Taxonomy struct {
	Classification string   `json:"classification"`
	FullName       string   `json:"full_name"`
	Description    string   `json:"description"`
	Examples       []string `json:"examples"`
	Justification  string   `json:"justification"`
}

// Flynn returns the classification of the process backends: MIMD.
func Flynn() Taxonomy {
	return Taxonomy{
		Classification: "MIMD",
		FullName:       "Multiple Instruction, Multiple Data",
		Description: "Several processors execute different instruction streams " +
			"over different data at the same time; the common model of modern parallel systems.",
		Examples: []string{
			"multiprocessor systems",
			"computer clusters",
			"multicore CPUs",
		},
		Justification: "Each worker process multiplies its own row chunk with its own " +
			"instruction stream and its own copy of the data, so every core runs " +
			"independent instructions over a separate slice of the operands.",
	}
}

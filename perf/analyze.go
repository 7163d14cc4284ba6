// SPDX-License-Identifier: MIT

package perf

import (
	"fmt"
	"math"
)

// Defaults carried over from the benchmark front-end.
const (
	DefaultEfficiencyThreshold = 0.7
)

// DefaultFractions are the parallel fractions predicted when none are given.
var DefaultFractions = []float64{0.6, 0.9}

// Observation is one measured (backend, workers) run. Failed runs carry no
// usable time.
type Observation struct {
	Backend string
	Workers int
	Seconds float64
	Failed  bool
}

// Record is an Observation with its derived metrics.
type Record struct {
	Backend    string  `json:"backend"`
	Workers    int     `json:"workers"`
	Seconds    float64 `json:"seconds"`
	Speedup    Metric  `json:"speedup"`
	Efficiency Metric  `json:"efficiency"`
	Failed     bool    `json:"failed,omitempty"`
}

// Prediction is an Amdahl curve for one parallel fraction.
// Unbounded marks P = 1, whose asymptote is +Inf (Asymptote is then 0).
type Prediction struct {
	Fraction  float64       `json:"fraction"`
	Asymptote float64       `json:"asymptote"`
	Unbounded bool          `json:"unbounded,omitempty"`
	Points    []AmdahlPoint `json:"points"`
}

// Analysis is the derived view of one sweep. MaxWorkers is the largest
// worker count that produced a measurement; failed cells never widen the
// prediction range.
type Analysis struct {
	Baseline    Metric       `json:"baseline_seconds"`
	MaxWorkers  int          `json:"max_workers"`
	Records     []Record     `json:"records"`
	Predictions []Prediction `json:"predictions"`
}

// NewRecord derives speedup and efficiency for one observation.
func NewRecord(baseline Metric, o Observation) Record {
	r := Record{Backend: o.Backend, Workers: o.Workers, Seconds: o.Seconds, Failed: o.Failed}
	if o.Failed {
		return r
	}
	r.Speedup = SpeedupFrom(baseline, o.Seconds)
	r.Efficiency = Efficiency(r.Speedup, o.Workers)

	return r
}

// Analyze derives a Record per observation (input order kept) and an Amdahl
// prediction over 1..MaxWorkers for each fraction (DefaultFractions when
// none are given). With no successful observation the predictions carry no
// points.
//
// Errors:
//   - ErrNoObservations, ErrInvalidParallelFraction, ErrInvalidWorkerCount.
func Analyze(baseline Metric, obs []Observation, fractions ...float64) (Analysis, error) {
	if len(obs) == 0 {
		return Analysis{}, fmt.Errorf("perf.Analyze: %w", ErrNoObservations)
	}
	if len(fractions) == 0 {
		fractions = DefaultFractions
	}

	a := Analysis{Baseline: baseline, Records: make([]Record, 0, len(obs))}
	for _, o := range obs {
		a.Records = append(a.Records, NewRecord(baseline, o))
		if !o.Failed {
			a.MaxWorkers = max(a.MaxWorkers, o.Workers)
		}
	}

	for _, p := range fractions {
		asym, err := AmdahlAsymptote(p)
		if err != nil {
			return Analysis{}, err
		}
		pred := Prediction{Fraction: p, Points: []AmdahlPoint{}}
		if a.MaxWorkers > 0 {
			if pred.Points, err = AmdahlRange(p, a.MaxWorkers); err != nil {
				return Analysis{}, err
			}
		}
		if math.IsInf(asym, 1) {
			pred.Unbounded = true
		} else {
			pred.Asymptote = asym
		}
		a.Predictions = append(a.Predictions, pred)
	}

	return a, nil
}

// OptimalWorkers returns the largest worker count whose efficiency is
// defined and at least threshold, or 1 when none qualifies.
func OptimalWorkers(records []Record, threshold float64) int {
	best := 1
	for _, r := range records {
		if e, ok := r.Efficiency.Value(); ok && e >= threshold && r.Workers > best {
			best = r.Workers
		}
	}

	return best
}

// Optimal is OptimalWorkers restricted to one backend.
func (a Analysis) Optimal(backend string, threshold float64) int {
	var rs []Record
	for _, r := range a.Records {
		if r.Backend == backend {
			rs = append(rs, r)
		}
	}

	return OptimalWorkers(rs, threshold)
}

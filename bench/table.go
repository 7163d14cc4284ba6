// SPDX-License-Identifier: MIT

package bench

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/matpar/perf"
)

// Table accumulates the runs of one session. It is owned by the caller and
// passed into Sweep; nothing in this package keeps results between calls.
//
// A Table is not safe for concurrent use.
type Table struct {
	ID        string
	Started   time.Time
	Size      int
	Seed      int64
	Seeded    bool
	Fractions []float64

	// GenerationSeconds is the time spent creating the operands; it is
	// excluded from every run.
	GenerationSeconds float64
	Baseline          perf.Metric
	Runs              []Run
}

// NewTable returns an empty table with a fresh session id.
func NewTable() *Table {
	return &Table{ID: uuid.NewString(), Started: time.Now()}
}

// matches reports whether cfg continues this table's session. Unseeded
// operands differ on every sweep, so an unseeded sweep never continues one.
func (t *Table) matches(cfg Config) bool {
	return len(t.Runs) > 0 && cfg.Seeded &&
		t.session() == cfg.session() && slices.Equal(t.Fractions, cfg.Fractions)
}

func (t *Table) session() session {
	return session{Size: t.Size, Seed: t.Seed, Seeded: t.Seeded}
}

// reset starts a new session for cfg.
func (t *Table) reset(cfg Config) {
	*t = Table{
		ID:        uuid.NewString(),
		Started:   time.Now(),
		Size:      cfg.Size,
		Seed:      cfg.Seed,
		Seeded:    cfg.Seeded,
		Fractions: append([]float64(nil), cfg.Fractions...),
	}
}

// observations converts runs into analyzer input, in run order.
func (t *Table) observations() []perf.Observation {
	obs := make([]perf.Observation, len(t.Runs))
	for i, r := range t.Runs {
		obs[i] = perf.Observation{
			Backend: r.Backend.String(),
			Workers: r.Workers,
			Seconds: r.Seconds,
			Failed:  r.Failed(),
		}
	}

	return obs
}

// Records derives speedup and efficiency for every run against the
// table's baseline.
func (t *Table) Records() []perf.Record {
	recs := make([]perf.Record, len(t.Runs))
	for i, o := range t.observations() {
		recs[i] = perf.NewRecord(t.Baseline, o)
	}

	return recs
}

// Analysis runs the full analyzer over the table.
func (t *Table) Analysis() (perf.Analysis, error) {
	return perf.Analyze(t.Baseline, t.observations(), t.Fractions...)
}

// Failed returns the failed cells, in run order.
func (t *Table) Failed() []Run {
	var out []Run
	for _, r := range t.Runs {
		if r.Failed() {
			out = append(out, r)
		}
	}

	return out
}

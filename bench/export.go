// SPDX-License-Identifier: MIT

package bench

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/matpar/perf"
)

// runView is the exported form of one run with its derived metrics.
type runView struct {
	ID         string      `json:"id"`
	Backend    string      `json:"backend"`
	Workers    int         `json:"workers"`
	Seconds    float64     `json:"seconds"`
	Speedup    perf.Metric `json:"speedup"`
	Efficiency perf.Metric `json:"efficiency"`
	Verified   bool        `json:"verified"`
	Error      string      `json:"error,omitempty"`
}

// report is the JSON document written by WriteJSON.
type report struct {
	Session           string         `json:"session"`
	Started           time.Time      `json:"started"`
	Size              int            `json:"size"`
	Seed              *int64         `json:"seed"`
	GenerationSeconds float64        `json:"generation_seconds"`
	Baseline          perf.Metric    `json:"baseline_seconds"`
	Runs              []runView      `json:"runs"`
	Analysis          *perf.Analysis `json:"analysis,omitempty"`
}

func (t *Table) views() []runView {
	recs := t.Records()
	views := make([]runView, len(t.Runs))
	for i, r := range t.Runs {
		v := runView{
			ID:         r.ID,
			Backend:    r.Backend.String(),
			Workers:    r.Workers,
			Seconds:    r.Seconds,
			Speedup:    recs[i].Speedup,
			Efficiency: recs[i].Efficiency,
			Verified:   r.Verified,
		}
		if r.Err != nil {
			v.Error = r.Err.Error()
		}
		views[i] = v
	}

	return views
}

// WriteJSON writes the table, its derived metrics and (when there are runs)
// the Amdahl analysis as one indented JSON document.
func (t *Table) WriteJSON(w io.Writer) error {
	rep := report{
		Session:           t.ID,
		Started:           t.Started,
		Size:              t.Size,
		GenerationSeconds: t.GenerationSeconds,
		Baseline:          t.Baseline,
		Runs:              t.views(),
	}
	if t.Seeded {
		seed := t.Seed
		rep.Seed = &seed
	}
	if a, err := t.Analysis(); err == nil {
		rep.Analysis = &a
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}

// csvHeader is the first CSV row. Undefined metrics are written as empty cells.
var csvHeader = []string{"run_id", "backend", "workers", "seconds", "speedup", "efficiency", "verified", "error"}

// WriteCSV writes one row per run.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, v := range t.views() {
		row := []string{
			v.ID,
			v.Backend,
			strconv.Itoa(v.Workers),
			strconv.FormatFloat(v.Seconds, 'f', -1, 64),
			csvMetric(v.Speedup),
			csvMetric(v.Efficiency),
			strconv.FormatBool(v.Verified),
			v.Error,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func csvMetric(m perf.Metric) string {
	v, ok := m.Value()
	if !ok {
		return ""
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteText renders a human-readable report: session header, one line per
// run, Amdahl predictions and the most efficient worker count per backend.
func (t *Table) WriteText(w io.Writer) error {
	seed := "none"
	if t.Seeded {
		seed = strconv.FormatInt(t.Seed, 10)
	}
	baseline := "n/a"
	if v, ok := t.Baseline.Value(); ok {
		baseline = perf.FormatSeconds(v)
	}
	if _, err := fmt.Fprintf(w, "session %s  size %dx%d  seed %s\ngeneration %s  sequential baseline %s\n\n",
		t.ID, t.Size, t.Size, seed, perf.FormatSeconds(t.GenerationSeconds), baseline); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BACKEND\tWORKERS\tTIME\tSPEEDUP\tEFFICIENCY\tSTATUS")
	for _, v := range t.views() {
		status := "ok"
		switch {
		case v.Error != "":
			status = "FAILED: " + v.Error
		case !v.Verified:
			status = "unverified"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n",
			v.Backend, v.Workers, perf.FormatSeconds(v.Seconds), v.Speedup, v.Efficiency, status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	a, err := t.Analysis()
	if err != nil {
		return nil // nothing measured yet
	}
	var sb strings.Builder
	sb.WriteString("\nAmdahl predictions\n")
	for _, p := range a.Predictions {
		fmt.Fprintf(&sb, "  P=%.2f ", p.Fraction)
		for _, pt := range p.Points {
			fmt.Fprintf(&sb, " %d:%.3f", pt.Workers, pt.Speedup)
		}
		if p.Unbounded {
			sb.WriteString("  (limit: unbounded)\n")
		} else {
			fmt.Fprintf(&sb, "  (limit: %.3f)\n", p.Asymptote)
		}
	}
	sb.WriteString("\nmost efficient worker count (efficiency ≥ 0.70)\n")
	for _, b := range t.backends() {
		fmt.Fprintf(&sb, "  %s: %d\n", b, a.Optimal(b, perf.DefaultEfficiencyThreshold))
	}
	_, err = io.WriteString(w, sb.String())

	return err
}

// backends lists the distinct backends in first-seen order.
func (t *Table) backends() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range t.Runs {
		if name := r.Backend.String(); !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	return out
}

// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/katalvlaran/matpar/perf"
	"github.com/spf13/cobra"
)

type amdahlOptions struct {
	fraction float64
	max      int
	workers  []int
	json     bool
}

func newAmdahlCmd() *cobra.Command {
	o := &amdahlOptions{}
	cmd := &cobra.Command{
		Use:   "amdahl",
		Short: "Print Amdahl-law speedup predictions",
		Long: `Print S(N) = 1 / ((1-P) + P/N) for N = 1..max (or the given --workers)
and the limit 1/(1-P) as N grows without bound.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				points []perf.AmdahlPoint
				err    error
			)
			if len(o.workers) > 0 {
				points, err = perf.AmdahlCurve(o.fraction, o.workers)
			} else {
				points, err = perf.AmdahlRange(o.fraction, o.max)
			}
			if err != nil {
				return err
			}
			limit, err := perf.AmdahlAsymptote(o.fraction)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if o.json {
				pred := perf.Prediction{Fraction: o.fraction, Points: points}
				if math.IsInf(limit, 1) {
					pred.Unbounded = true
				} else {
					pred.Asymptote = limit
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(pred)
			}

			fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Amdahl's law, P = %.2f", o.fraction)))
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "WORKERS\tSPEEDUP\tEFFICIENCY")
			for _, pt := range points {
				fmt.Fprintf(tw, "%d\t%.3f\t%.3f\n", pt.Workers, pt.Speedup, pt.Speedup/float64(pt.Workers))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if math.IsInf(limit, 1) {
				_, err = fmt.Fprintln(out, labelStyle.Render("limit: unbounded (fully parallel)"))
			} else {
				_, err = fmt.Fprintln(out, labelStyle.Render(fmt.Sprintf("limit: %.3f", limit)))
			}
			return err
		},
	}
	f := cmd.Flags()
	f.Float64Var(&o.fraction, "fraction", 0.9, "parallel fraction P in [0, 1]")
	f.IntVar(&o.max, "max", 16, "largest worker count")
	f.IntSliceVar(&o.workers, "workers", nil, "explicit worker counts instead of 1..max")
	f.BoolVar(&o.json, "json", false, "print JSON")

	return cmd
}

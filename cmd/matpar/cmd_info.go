// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matpar/perf"
	"github.com/katalvlaran/matpar/sysinfo"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Describe this host and what a sweep of --size would need",
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := sysinfo.Collect(cmd.Context())
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, titleStyle.Render("System"))
			for _, kv := range report.Lines() {
				fmt.Fprintf(out, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-17s", kv[0])), kv[1])
			}
			if err != nil {
				fmt.Fprintln(out, warnStyle.Render("  some probes failed: "+err.Error()))
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, titleStyle.Render("Sweep"))
			workers := sysinfo.RecommendedWorkers(report.LogicalCores)
			fmt.Fprintf(out, "  %s %s\n", labelStyle.Render("recommended workers"), joinInts(workers))
			fmt.Fprintf(out, "  %s %s for %dx%d\n", labelStyle.Render("memory estimate    "),
				sysinfo.FormatMemory(size), size, size)
			if !sysinfo.ConventionalSize(size) {
				fmt.Fprintln(out, warnStyle.Render(fmt.Sprintf("  sizes above %d are slow", sysinfo.ConventionalMaxSize)))
			}

			flynn := perf.Flynn()
			fmt.Fprintln(out)
			fmt.Fprintln(out, titleStyle.Render("Flynn's taxonomy: "+flynn.Classification+" ("+flynn.FullName+")"))
			fmt.Fprintf(out, "  %s\n  %s\n", flynn.Description, flynn.Justification)

			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 500, "matrix dimension n for the memory estimate")

	return cmd
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}

	return strings.Join(parts, ", ")
}

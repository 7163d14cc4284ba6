// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// rootOptions holds persistent flags.
type rootOptions struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "matpar",
		Short: "Benchmark parallel dense matrix multiplication",
		Long: `matpar multiplies two seeded n×n matrices sequentially and then with
several worker counts on three backends:

  process  one OS process per chunk, operands copied over pipes
  thread   goroutines over shared memory, serialized by an execution lock
  pool     long-lived worker processes reused between runs

and reports speedup, efficiency and Amdahl-law projections.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(
		newRunCmd(opts),
		newAmdahlCmd(),
		newInfoCmd(),
		newConfigCmd(),
		newWorkerCmd(),
	)

	return root
}

// newLogger builds a console logger on stderr at level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	if lvl.Level() > zap.DebugLevel {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "console"
	}
	cfg.Level = lvl

	return cfg.Build()
}

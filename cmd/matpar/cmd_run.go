// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/matpar/bench"
	"github.com/katalvlaran/matpar/config"
	"github.com/katalvlaran/matpar/executor"
	"github.com/katalvlaran/matpar/sysinfo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type runOptions struct {
	configPath  string
	size        int
	workers     []int
	backends    []string
	seed        int64
	noSeed      bool
	fractions   []float64
	kernel      string
	noLock      bool
	noVerify    bool
	format      string
	out         string
	metricsFile string
}

func newRunCmd(root *rootOptions) *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a benchmark sweep",
		Long: `Run one sweep: generate the operands, time the sequential baseline, then
time every worker count on every backend. Flags override values from --config.

Failed cells are reported in the output and do not stop the sweep.
Ctrl-C cancels the current run, kills its workers and prints what finished.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd, root)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "YAML sweep configuration")
	f.IntVar(&o.size, "size", 0, "matrix dimension n")
	f.IntSliceVar(&o.workers, "workers", nil, "worker counts, e.g. 1,2,4,8")
	f.StringSliceVar(&o.backends, "backend", nil, "backends: process, thread, pool")
	f.Int64Var(&o.seed, "seed", config.DefaultSeed, "random seed")
	f.BoolVar(&o.noSeed, "no-seed", false, "draw operands from a time-based seed")
	f.Float64SliceVar(&o.fractions, "fractions", nil, "Amdahl parallel fractions, e.g. 0.6,0.9")
	f.StringVar(&o.kernel, "kernel", "", "chunk kernel: blas or naive")
	f.BoolVar(&o.noLock, "no-lock", false, "let thread-backend chunks compute in parallel")
	f.BoolVar(&o.noVerify, "no-verify", false, "skip comparing products with the baseline")
	f.StringVar(&o.format, "format", "text", "output format: text, csv, json")
	f.StringVarP(&o.out, "out", "o", "", "write the report to this file instead of stdout")
	f.StringVar(&o.metricsFile, "metrics-file", "", "write Prometheus metrics in textfile format")

	return cmd
}

// resolve loads the config file (or defaults) and applies changed flags.
func (o *runOptions) resolve(cmd *cobra.Command, root *rootOptions) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
	}
	f := cmd.Flags()
	if f.Changed("size") {
		cfg.Size = o.size
	}
	if f.Changed("workers") {
		cfg.Workers = o.workers
	}
	if f.Changed("backend") {
		cfg.Backends = o.backends
	}
	if f.Changed("seed") {
		seed := o.seed
		cfg.Seed = &seed
	}
	if o.noSeed {
		cfg.Seed = nil
	}
	if f.Changed("fractions") {
		cfg.Fractions = o.fractions
	}
	if f.Changed("kernel") {
		cfg.Kernel = o.kernel
	}
	if o.noLock {
		cfg.ExecutionLock = false
	}
	if o.noVerify {
		cfg.Verify = false
	}
	if f.Changed("metrics-file") {
		cfg.MetricsFile = o.metricsFile
	}
	if f.Changed("log-level") {
		cfg.LogLevel = root.logLevel
	}

	return cfg, cfg.Validate()
}

func (o *runOptions) run(cmd *cobra.Command, root *rootOptions) error {
	switch o.format {
	case "text", "csv", "json":
	default:
		return fmt.Errorf("unknown format %q (text, csv, json)", o.format)
	}
	cfg, err := o.resolve(cmd, root)
	if err != nil {
		return err
	}
	sweep, err := cfg.Sweep()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	if !sysinfo.ConventionalSize(cfg.Size) {
		log.Warn("matrix size beyond the tuned range; runs may take long",
			zap.Int("size", cfg.Size), zap.Int("conventional_max", sysinfo.ConventionalMaxSize))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exec := executor.New(append([]executor.Option{executor.WithLogger(log)}, cfg.ExecutorOptions()...)...)
	defer func() {
		if err := exec.Close(); err != nil {
			log.Warn("closing executor", zap.Error(err))
		}
	}()

	reg := prometheus.NewRegistry()
	runner := bench.NewRunner(exec, bench.WithLogger(log), bench.WithCollector(bench.NewCollector(reg)))
	table, sweepErr := runner.Sweep(ctx, sweep, nil)
	if sweepErr != nil && len(table.Runs) == 0 {
		return sweepErr
	}

	if err := o.write(cmd.OutOrStdout(), table); err != nil {
		return errors.Join(sweepErr, err)
	}
	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			return errors.Join(sweepErr, fmt.Errorf("write metrics: %w", err))
		}
	}
	if failed := table.Failed(); len(failed) > 0 {
		log.Warn("sweep finished with failed cells", zap.Int("failed", len(failed)), zap.Int("total", len(table.Runs)))
	}

	return sweepErr
}

// write renders table in the chosen format to --out or stdout.
func (o *runOptions) write(stdout io.Writer, table *bench.Table) (err error) {
	w := stdout
	if o.out != "" {
		file, createErr := os.Create(o.out)
		if createErr != nil {
			return fmt.Errorf("create %s: %w", o.out, createErr)
		}
		defer func() { err = errors.Join(err, file.Close()) }()
		w = file
	}

	switch o.format {
	case "csv":
		return table.WriteCSV(w)
	case "json":
		return table.WriteJSON(w)
	default:
		if _, err := fmt.Fprintln(w, titleStyle.Render("matpar sweep")); err != nil {
			return err
		}
		return table.WriteText(w)
	}
}

// SPDX-License-Identifier: MIT

// Package bench orchestrates benchmark sweeps: generate operands, time a
// sequential baseline, then time every (workers, backend) cell in order.
//
// Contract:
//   - Cells never overlap; the sweep's duration is the sum of its cells.
//   - A failing cell is recorded (Run.Err) and the sweep moves on.
//   - Cancellation stops the sweep and returns the partial table with ctx.Err().
//   - Results live in a caller-owned *Table; Sweep resets it when the session
//     (size, seed) changes and appends to it otherwise.
package bench

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/matpar/executor"
	"github.com/katalvlaran/matpar/matrix"
	"github.com/katalvlaran/matpar/perf"
	"github.com/katalvlaran/matpar/timer"
	"go.uber.org/zap"
)

// Runner executes sweeps on one Executor.
type Runner struct {
	exec         *executor.Executor
	log          *zap.Logger
	metrics      *Collector
	keepProducts bool
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the structured logger (default zap.NewNop()).
func WithLogger(log *zap.Logger) RunnerOption {
	if log == nil {
		panic("bench: WithLogger(nil)")
	}

	return func(r *Runner) { r.log = log }
}

// WithCollector publishes every cell to c.
func WithCollector(c *Collector) RunnerOption {
	return func(r *Runner) { r.metrics = c }
}

// WithKeepProducts keeps each run's product matrix in the table.
func WithKeepProducts() RunnerOption {
	return func(r *Runner) { r.keepProducts = true }
}

// NewRunner builds a Runner over exec.
func NewRunner(exec *executor.Executor, opts ...RunnerOption) *Runner {
	r := &Runner{exec: exec, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// operands is the generated input pair.
type operands struct{ a, b *matrix.Dense }

// Sweep runs cfg and appends its cells to table (a new Table when nil).
//
// Implementation:
//   - Stage 1: validate cfg, reset table when the session changed.
//   - Stage 2: generate operands (timed separately, excluded from runs).
//   - Stage 3: time the sequential baseline.
//   - Stage 4: for each worker count, for each backend: one timed run,
//     verified against the baseline when cfg.Verify.
//
// Errors:
//   - ErrInvalidSweep; generation and baseline errors (nothing to compare to);
//   - ctx.Err() when cancelled, with the cells finished so far in table.
//
// Cell failures are not errors of Sweep; see Table.Failed.
func (r *Runner) Sweep(ctx context.Context, cfg Config, table *Table) (*Table, error) {
	if table == nil {
		table = NewTable()
	}
	if err := cfg.validate(); err != nil {
		return table, err
	}
	if !table.matches(cfg) {
		table.reset(cfg)
	}
	log := r.log.With(zap.String("session", table.ID), zap.Int("n", cfg.Size))

	ops, genSecs, err := timer.TimedErr(func() (operands, error) {
		a, b, err := matrix.RandomPair(cfg.Size, cfg.Seed, cfg.Seeded)
		return operands{a, b}, err
	})
	if err != nil {
		return table, fmt.Errorf("bench: generate operands: %w", err)
	}
	table.GenerationSeconds = genSecs

	baseline, baseSecs, err := timer.TimedErr(func() (*matrix.Dense, error) {
		return r.exec.ExecuteSequential(ops.a, ops.b)
	})
	if err != nil {
		return table, fmt.Errorf("bench: sequential baseline: %w", err)
	}
	table.Baseline = perf.Defined(baseSecs)
	r.metrics.observeBaseline(baseSecs)
	log.Info("baseline measured",
		zap.Float64("generation_seconds", genSecs), zap.Float64("baseline_seconds", baseSecs))

	var sw timer.Stopwatch
	sw.Start()
	for _, workers := range cfg.Workers {
		for _, kind := range cfg.Backends {
			if err := ctx.Err(); err != nil {
				return table, err
			}
			run := r.runCell(ctx, cfg, ops, baseline, workers, kind)
			sw.Lap()
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(run.Err, ctxErr) {
				// An aborted cell is not a measurement.
				return table, ctxErr
			}
			table.Runs = append(table.Runs, run)

			speedup := perf.SpeedupFrom(table.Baseline, run.Seconds)
			r.metrics.observeRun(run, speedup)
			if run.Failed() {
				log.Warn("cell failed", zap.String("run", run.ID), zap.Stringer("backend", kind),
					zap.Int("workers", workers), zap.Error(run.Err))
				continue
			}
			log.Info("cell measured", zap.String("run", run.ID), zap.Stringer("backend", kind),
				zap.Int("workers", workers), zap.Float64("seconds", run.Seconds),
				zap.Stringer("speedup", speedup), zap.Bool("verified", run.Verified))
		}
	}
	log.Info("sweep finished", zap.Int("cells", sw.Laps()), zap.Float64("elapsed_seconds", sw.Total()))

	return table, nil
}

// runCell times one parallel multiply and verifies it.
func (r *Runner) runCell(ctx context.Context, cfg Config, ops operands, baseline *matrix.Dense, workers int, kind executor.Kind) Run {
	run := Run{ID: uuid.NewString(), Backend: kind, Workers: workers}
	// Standing workers are part of the backend, not of the measured run.
	if err := r.exec.Warm(kind, cfg.Size, workers); err != nil {
		run.Err = err
		return run
	}

	product, secs, err := timer.TimedErr(func() (*matrix.Dense, error) {
		return r.exec.ExecuteParallel(ctx, ops.a, ops.b, workers, kind)
	})
	run.Seconds = secs
	if err != nil {
		run.Err = err
		return run
	}

	if cfg.Verify {
		ok, err := matrix.AllClose(product, baseline, cfg.tolerance(), 0)
		if err != nil {
			run.Err = fmt.Errorf("bench: verify: %w", err)
			return run
		}
		if !ok {
			diff, _ := matrix.MaxAbsDiff(product, baseline)
			run.Err = fmt.Errorf("%w: max |Δ| = %g", ErrProductMismatch, diff)
			return run
		}
		run.Verified = true
	}
	if r.keepProducts {
		run.Product = product
	}

	return run
}

// SPDX-License-Identifier: MIT

package executor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Pool keeps a set of worker processes alive between runs.
//
// Lifecycle:
//   - Created on the first Submit (or Warm) with W workers.
//   - Grow-only: a run with more chunks than live workers starts only the
//     missing ones; a smaller run leaves the extra workers idle.
//   - Discarded when a worker stream breaks or the run is cancelled; the next
//     Submit starts a fresh pool.
//
// Chunk i is sent to worker i, one submission per chunk.
type Pool struct {
	log *zap.Logger
	cmd Command

	mu      sync.Mutex
	workers []*worker
	spawned int
}

var (
	_ Backend = (*Pool)(nil)
	_ Warmer  = (*Pool)(nil)
)

// NewPool returns a pooled-process backend. No process starts until Submit.
func NewPool(log *zap.Logger, cmd Command) *Pool {
	return &Pool{log: log, cmd: cmd}
}

// Name implements Backend.
func (p *Pool) Name() Kind { return KindPool }

// Submit implements Backend.
func (p *Pool) Submit(ctx context.Context, job Job) ([]Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	results := make([]Result, len(job.Chunks))
	if err := ctx.Err(); err != nil {
		return results, err
	}
	if err := p.ensure(len(job.Chunks)); err != nil {
		return results, fmt.Errorf("%w: start pool: %w", ErrExecutionFailed, err)
	}

	ws := p.workers
	stop := context.AfterFunc(ctx, func() {
		for _, w := range ws {
			w.kill()
		}
	})

	var (
		g      errgroup.Group
		broken atomic.Bool
	)
	for i, c := range job.Chunks {
		i, c := i, c
		w := ws[i]
		g.Go(func() error {
			t, err := newTask(job, c)
			if err != nil {
				return &ExecutionError{Chunk: c, Err: err}
			}
			rp, err := w.roundTrip(t)
			if err != nil {
				broken.Store(true)
				return &ExecutionError{Chunk: c, Err: fmt.Errorf("worker pid %d: %w", w.pid(), err)}
			}
			rows, err := decodeReply(c, job.Right.Cols(), rp)
			if err != nil {
				return &ExecutionError{Chunk: c, Err: err}
			}
			results[i] = Result{Chunk: c, Rows: rows}
			return nil
		})
	}
	err := g.Wait()
	stop()

	if ctxErr := ctx.Err(); ctxErr != nil {
		p.discard("cancelled")
		return results, ctxErr
	}
	if broken.Load() {
		p.discard("worker failed")
	}

	return results, err
}

// Warm starts workers until at least n are live, so a later Submit of up to
// n chunks spawns nothing.
func (p *Pool) Warm(n int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ensure(n)
}

// ensure makes the pool hold at least n live workers. Caller holds mu.
func (p *Pool) ensure(n int) error {
	missing := n - len(p.workers)
	if missing <= 0 {
		return nil
	}
	for i := 0; i < missing; i++ {
		w, err := startWorker(context.Background(), p.cmd, false)
		if err != nil {
			p.discard("spawn failed")
			return err
		}
		p.workers = append(p.workers, w)
	}
	p.spawned += missing
	p.log.Debug("pool grown", zap.Int("workers", len(p.workers)), zap.Int("spawned_total", p.spawned))

	return nil
}

// discard kills and reaps every worker. Caller holds mu.
func (p *Pool) discard(reason string) {
	if len(p.workers) == 0 {
		return
	}
	for _, w := range p.workers {
		w.kill()
	}
	for _, w := range p.workers {
		_ = w.wait()
	}
	p.log.Debug("pool discarded", zap.String("reason", reason), zap.Int("workers", len(p.workers)))
	p.workers = nil
}

// PIDs returns the process ids of the live workers, in chunk order.
// A run of W chunks uses the first W of them.
func (p *Pool) PIDs() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	pids := make([]int, len(p.workers))
	for i, w := range p.workers {
		pids[i] = w.pid()
	}

	return pids
}

// Close lets every worker see EOF and exit, then reaps them.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	var errs []error
	for _, w := range p.workers {
		if err := w.wait(); err != nil {
			errs = append(errs, fmt.Errorf("worker pid %d: %w", w.pid(), err))
		}
	}
	p.workers = nil

	return errors.Join(errs...)
}

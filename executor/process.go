// SPDX-License-Identifier: MIT

package executor

import (
	"context"
	"fmt"

	"github.com/katalvlaran/matpar/matrix"
	"github.com/katalvlaran/matpar/partition"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Process spawns one worker process per chunk for the duration of a run.
type Process struct {
	log *zap.Logger
	cmd Command
}

var _ Backend = (*Process)(nil)

// NewProcess returns a process-per-chunk backend that starts workers with cmd.
func NewProcess(log *zap.Logger, cmd Command) *Process {
	return &Process{log: log, cmd: cmd}
}

// Name implements Backend.
func (p *Process) Name() Kind { return KindProcess }

// Submit implements Backend. Every child is reaped before Submit returns,
// including on cancellation, where exec kills them.
func (p *Process) Submit(ctx context.Context, job Job) ([]Result, error) {
	results := make([]Result, len(job.Chunks))
	var g errgroup.Group
	for i, c := range job.Chunks {
		i, c := i, c
		g.Go(func() error {
			rows, err := p.runChunk(ctx, job, c)
			if err != nil {
				return &ExecutionError{Chunk: c, Err: err}
			}
			results[i] = Result{Chunk: c, Rows: rows}
			return nil
		})
	}
	err := g.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return results, ctxErr
	}

	return results, err
}

// runChunk starts a worker, sends the chunk, reads the reply and reaps.
func (p *Process) runChunk(ctx context.Context, job Job, c partition.Chunk) (*matrix.Dense, error) {
	t, err := newTask(job, c)
	if err != nil {
		return nil, err
	}
	w, err := startWorker(ctx, p.cmd, true)
	if err != nil {
		return nil, fmt.Errorf("start worker: %w", err)
	}
	pid := w.pid()
	rp, rtErr := w.roundTrip(t)
	waitErr := w.wait()
	if rtErr != nil {
		if waitErr != nil {
			return nil, fmt.Errorf("worker pid %d exited: %w", pid, waitErr)
		}
		return nil, rtErr
	}
	p.log.Debug("chunk done", zap.Int("chunk", c.Index), zap.Int("pid", pid))

	return decodeReply(c, job.Right.Cols(), rp)
}

// Close implements Backend; workers never outlive a run.
func (p *Process) Close() error { return nil }

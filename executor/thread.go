// SPDX-License-Identifier: MIT

package executor

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/matpar/matrix"
	"github.com/katalvlaran/matpar/partition"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Thread runs one goroutine per chunk over shared operands.
//
// With the execution lock enabled (the default) chunks still start together
// but compute one at a time, the way CPU-bound code behaves under an
// interpreter-wide lock.
type Thread struct {
	log  *zap.Logger
	exec *sync.Mutex // nil → no serialization
}

var _ Backend = (*Thread)(nil)

// NewThread returns a thread backend. serialize enables the execution lock.
func NewThread(log *zap.Logger, serialize bool) *Thread {
	t := &Thread{log: log}
	if serialize {
		t.exec = &sync.Mutex{}
	}

	return t
}

// Name implements Backend.
func (t *Thread) Name() Kind { return KindThread }

// Submit implements Backend.
//
// A failing chunk does not cancel its siblings, so every Result that was
// produced stays in the returned slice.
func (t *Thread) Submit(ctx context.Context, job Job) ([]Result, error) {
	results := make([]Result, len(job.Chunks))
	var g errgroup.Group
	for i, c := range job.Chunks {
		i, c := i, c
		g.Go(func() error {
			rows, err := t.runChunk(ctx, job, c)
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

// runChunk computes one chunk, converting a panic into an error.
func (t *Thread) runChunk(ctx context.Context, job Job, c partition.Chunk) (rows *matrix.Dense, err error) {
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if t.exec != nil {
		t.exec.Lock()
		defer t.exec.Unlock()
		// Waiting for the lock may have outlived the caller.
		if err = ctx.Err(); err != nil {
			return nil, err
		}
	}
	defer func() {
		if r := recover(); r != nil {
			t.log.Warn("chunk panicked", zap.Int("chunk", c.Index), zap.Any("panic", r))
			rows, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	if job.faulty(c) {
		panic(errCrashRequested)
	}

	return matrix.KernelByName(job.Kernel)(job.Left, job.Right, c.Start, c.End)
}

// Close implements Backend; a thread backend holds no resources.
func (t *Thread) Close() error { return nil }

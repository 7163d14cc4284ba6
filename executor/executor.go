// SPDX-License-Identifier: MIT

package executor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/matpar/matrix"
	"github.com/katalvlaran/matpar/partition"
	"go.uber.org/zap"
)

// Executor dispatches partitioned multiplies to backends. Backends are
// created lazily and kept until Close, so a pool survives between runs.
//
// An Executor is safe for sequential use; runs are not meant to overlap.
type Executor struct {
	log         *zap.Logger
	kernel      matrix.KernelName
	cmd         *Command // nil → DefaultCommand
	serialize   bool
	injectFault bool
	faultIndex  int

	mu       sync.Mutex
	backends map[Kind]Backend
}

// New builds an Executor.
func New(opts ...Option) *Executor {
	e := &Executor{
		log:       zap.NewNop(),
		kernel:    matrix.KernelBLAS,
		serialize: true,
		backends:  make(map[Kind]Backend),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ExecuteSequential returns left×right with no partitioning.
func (e *Executor) ExecuteSequential(left, right *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateSquarePair(left, right); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOperandShape, err)
	}

	return matrix.Mul(left, right)
}

// ExecuteParallel multiplies left×right on workers chunks of the given
// backend and reassembles the product in row order.
//
// Implementation:
//   - Stage 1: validate operands (ErrOperandShape) and partition
//     (partition.ErrInvalidPartition).
//   - Stage 2: resolve the backend (ErrUnknownBackend) and Submit.
//   - Stage 3: stack the chunk results in chunk order.
//
// Errors:
//   - *ExecutionError (errors.Is ErrExecutionFailed) for a chunk fault.
//   - ctx.Err() on cancellation.
func (e *Executor) ExecuteParallel(ctx context.Context, left, right *matrix.Dense, workers int, kind Kind) (*matrix.Dense, error) {
	if err := matrix.ValidateSquarePair(left, right); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOperandShape, err)
	}
	chunks, err := partition.Partition(left.Rows(), workers)
	if err != nil {
		return nil, err
	}
	b, err := e.backend(kind)
	if err != nil {
		return nil, err
	}

	job := Job{
		Left:        left,
		Right:       right,
		Chunks:      chunks,
		Kernel:      e.kernel,
		InjectFault: e.injectFault,
		FaultIndex:  e.faultIndex,
	}
	results, err := b.Submit(ctx, job)
	if err != nil {
		e.log.Warn("parallel run failed",
			zap.Stringer("backend", kind), zap.Int("workers", workers), zap.Int("n", left.Rows()), zap.Error(err))
		return nil, err
	}

	parts := make([]*matrix.Dense, len(results))
	for i, r := range results {
		parts[i] = r.Rows
	}
	product, err := matrix.Stack(parts...)
	if err != nil {
		return nil, fmt.Errorf("executor: reassemble: %w", err)
	}
	e.log.Debug("parallel run done",
		zap.Stringer("backend", kind), zap.Int("workers", workers), zap.Int("n", left.Rows()))

	return product, nil
}

// Backend returns the backend for kind, creating it on first use.
func (e *Executor) Backend(kind Kind) (Backend, error) {
	return e.backend(kind)
}

// Warm readies the backend for kind to run an n-row multiply on workers
// chunks, so the first timed run does not pay for process startup. Backends
// without standing workers need nothing.
//
// Errors:
//   - partition.ErrInvalidPartition for a worker count n cannot be split into.
//   - ErrUnknownBackend; ErrExecutionFailed when a worker cannot start.
func (e *Executor) Warm(kind Kind, n, workers int) error {
	if _, err := partition.Partition(n, workers); err != nil {
		return err
	}
	b, err := e.backend(kind)
	if err != nil {
		return err
	}
	w, ok := b.(Warmer)
	if !ok {
		return nil
	}
	if err := w.Warm(workers); err != nil {
		return fmt.Errorf("%w: warm %s: %w", ErrExecutionFailed, kind, err)
	}

	return nil
}

func (e *Executor) backend(kind Kind) (Backend, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if b, ok := e.backends[kind]; ok {
		return b, nil
	}

	var b Backend
	switch kind {
	case KindThread:
		b = NewThread(e.log, e.serialize)
	case KindProcess, KindPool:
		cmd, err := e.command()
		if err != nil {
			return nil, err
		}
		if kind == KindProcess {
			b = NewProcess(e.log, cmd)
		} else {
			b = NewPool(e.log, cmd)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, kind)
	}
	e.backends[kind] = b

	return b, nil
}

func (e *Executor) command() (Command, error) {
	if e.cmd != nil {
		return *e.cmd, nil
	}

	return DefaultCommand()
}

// Close releases every backend (stopping any pool) and forgets them.
func (e *Executor) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	var errs []error
	for kind, b := range e.backends {
		if err := b.Close(); err != nil {
			errs = append(errs, fmt.Errorf("executor: close %s: %w", kind, err))
		}
		delete(e.backends, kind)
	}

	return errors.Join(errs...)
}

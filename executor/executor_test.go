// SPDX-License-Identifier: MIT
package executor_test

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/katalvlaran/matpar/executor"
	"github.com/katalvlaran/matpar/matrix"
	"github.com/katalvlaran/matpar/partition"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const rtol = 1e-9

// operands returns a seeded n×n pair and its sequential product.
func operands(tb testing.TB, n int) (a, b, want *matrix.Dense) {
	tb.Helper()
	a, b, err := matrix.RandomPair(n, 42, true)
	require.NoError(tb, err)
	want, err = matrix.Mul(a, b)
	require.NoError(tb, err)

	return a, b, want
}

func newExecutor(t *testing.T, opts ...executor.Option) *executor.Executor {
	t.Helper()
	e := executor.New(append([]executor.Option{executor.WithLogger(zaptest.NewLogger(t))}, opts...)...)
	t.Cleanup(func() { require.NoError(t, e.Close()) })

	return e
}

// TestExecuteParallel_MatchesSequential: every backend and worker count
// reproduces the sequential product.
func TestExecuteParallel_MatchesSequential(t *testing.T) {
	a, b, want := operands(t, 37)
	e := newExecutor(t)

	for _, kind := range executor.Kinds() {
		for _, w := range []int{1, 2, 3, 4, 7} {
			t.Run(fmt.Sprintf("%s/w=%d", kind, w), func(t *testing.T) {
				got, err := e.ExecuteParallel(context.Background(), a, b, w, kind)
				require.NoError(t, err)
				ok, err := matrix.AllClose(got, want, rtol, 0)
				require.NoError(t, err)
				require.True(t, ok)
				if w == 1 {
					require.True(t, got.Equal(want)) // exact at one worker
				}
			})
		}
	}
}

func TestExecuteParallel_NaiveKernelWithoutLock(t *testing.T) {
	a, b, want := operands(t, 20)
	e := newExecutor(t, executor.WithKernel(matrix.KernelNaive), executor.WithoutExecutionLock())

	for _, kind := range executor.Kinds() {
		got, err := e.ExecuteParallel(context.Background(), a, b, 4, kind)
		require.NoError(t, err, kind)
		ok, err := matrix.AllClose(got, want, rtol, 0)
		require.NoError(t, err)
		require.True(t, ok, kind)
	}
}

func TestExecuteParallel_DoesNotMutateOperands(t *testing.T) {
	a, b, _ := operands(t, 12)
	a0, b0 := a.Clone(), b.Clone()
	e := newExecutor(t)
	for _, kind := range executor.Kinds() {
		_, err := e.ExecuteParallel(context.Background(), a, b, 3, kind)
		require.NoError(t, err)
	}
	require.True(t, a.Equal(a0))
	require.True(t, b.Equal(b0))
}

func TestExecuteSequential(t *testing.T) {
	a, b, want := operands(t, 9)
	e := newExecutor(t)
	got, err := e.ExecuteSequential(a, b)
	require.NoError(t, err)
	require.True(t, got.Equal(want))

	_, err = e.ExecuteSequential(nil, b)
	require.ErrorIs(t, err, executor.ErrOperandShape)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestExecuteParallel_InvalidInput(t *testing.T) {
	a, b, _ := operands(t, 5)
	e := newExecutor(t)
	ctx := context.Background()

	_, err := e.ExecuteParallel(ctx, a, b, 0, executor.KindThread)
	require.ErrorIs(t, err, partition.ErrInvalidPartition)
	_, err = e.ExecuteParallel(ctx, a, b, 6, executor.KindProcess)
	require.ErrorIs(t, err, partition.ErrInvalidPartition) // more workers than rows
	_, err = e.ExecuteParallel(ctx, a, nil, 2, executor.KindThread)
	require.ErrorIs(t, err, executor.ErrOperandShape)

	rect, err := matrix.NewDense(5, 4)
	require.NoError(t, err)
	_, err = e.ExecuteParallel(ctx, rect, b, 2, executor.KindThread)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	other, _, _ := operands(t, 6)
	_, err = e.ExecuteParallel(ctx, other, b, 2, executor.KindThread)
	require.ErrorIs(t, err, executor.ErrOperandShape)

	_, err = e.ExecuteParallel(ctx, a, b, 2, executor.Kind("gpu"))
	require.ErrorIs(t, err, executor.ErrUnknownBackend)

	empty := &matrix.Dense{}
	_, err = e.ExecuteSequential(empty, empty)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = e.ExecuteParallel(ctx, empty, empty, 1, executor.KindThread)
	require.ErrorIs(t, err, executor.ErrOperandShape)
}

// TestExecuteParallel_Fault: a simulated fault reports the failing chunk's
// row range through every backend.
func TestExecuteParallel_Fault(t *testing.T) {
	a, b, _ := operands(t, 9)
	e := newExecutor(t, executor.WithFault(1))

	for _, kind := range executor.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			_, err := e.ExecuteParallel(context.Background(), a, b, 3, kind)
			require.ErrorIs(t, err, executor.ErrExecutionFailed)

			var execErr *executor.ExecutionError
			require.True(t, errors.As(err, &execErr))
			require.Equal(t, partition.Chunk{Index: 1, Start: 3, End: 6}, execErr.Chunk)
			require.Contains(t, err.Error(), "[3, 6)")
		})
	}
}

// TestSubmit_FaultKeepsSiblings: results of the healthy chunks survive.
func TestSubmit_FaultKeepsSiblings(t *testing.T) {
	a, b, want := operands(t, 9)
	e := newExecutor(t)
	chunks, err := partition.Partition(9, 3)
	require.NoError(t, err)

	for _, kind := range executor.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			backend, err := e.Backend(kind)
			require.NoError(t, err)
			job := executor.Job{
				Left: a, Right: b, Chunks: chunks, Kernel: matrix.KernelBLAS,
				InjectFault: true, FaultIndex: 1,
			}
			results, err := backend.Submit(context.Background(), job)
			require.ErrorIs(t, err, executor.ErrExecutionFailed)
			require.Len(t, results, 3)
			require.Nil(t, results[1].Rows)

			for _, i := range []int{0, 2} {
				c := chunks[i]
				expect, err := want.SliceRows(c.Start, c.End)
				require.NoError(t, err)
				require.Equal(t, c, results[i].Chunk)
				require.True(t, results[i].Rows.Equal(expect), "chunk %d corrupted", i)
			}
		})
	}
}

func TestExecuteParallel_PreCancelled(t *testing.T) {
	a, b, _ := operands(t, 8)
	e := newExecutor(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, kind := range executor.Kinds() {
		_, err := e.ExecuteParallel(ctx, a, b, 2, kind)
		require.ErrorIs(t, err, context.Canceled, kind)
	}
}

// TestExecuteParallel_CancelKillsWorkers uses workers that never answer and
// checks that cancellation returns promptly for both process backends.
func TestExecuteParallel_CancelKillsWorkers(t *testing.T) {
	sleep, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("sleep binary not available")
	}
	a, b, _ := operands(t, 4)
	e := newExecutor(t, executor.WithWorkerCommand(sleep, "30"))

	for _, kind := range []executor.Kind{executor.KindProcess, executor.KindPool} {
		t.Run(kind.String(), func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
			defer cancel()

			start := time.Now()
			_, err := e.ExecuteParallel(ctx, a, b, 2, kind)
			require.ErrorIs(t, err, context.DeadlineExceeded)
			require.Less(t, time.Since(start), 10*time.Second)
		})
	}

	backend, err := e.Backend(executor.KindPool)
	require.NoError(t, err)
	require.Empty(t, backend.(*executor.Pool).PIDs()) // discarded on cancel
}

// TestPool_Reuse: processes survive across runs and worker counts, a larger
// count only adds workers, and a crash discards the pool.
func TestPool_Reuse(t *testing.T) {
	a, b, want := operands(t, 10)
	e := newExecutor(t)
	backend, err := e.Backend(executor.KindPool)
	require.NoError(t, err)
	pool := backend.(*executor.Pool)
	require.Empty(t, pool.PIDs()) // lazy

	run := func(w int) {
		got, err := e.ExecuteParallel(context.Background(), a, b, w, executor.KindPool)
		require.NoError(t, err)
		require.True(t, got.Equal(want) || mustClose(t, got, want))
	}

	run(2)
	first := pool.PIDs()
	require.Len(t, first, 2)
	run(2)
	require.Equal(t, first, pool.PIDs())

	run(3)
	require.Len(t, pool.PIDs(), 3)
	require.Equal(t, first, pool.PIDs()[:2]) // grown, not replaced

	grown := pool.PIDs()
	run(1)
	require.Equal(t, grown, pool.PIDs()) // smaller run leaves workers idle

	chunks, err := partition.Partition(10, 3)
	require.NoError(t, err)
	_, err = pool.Submit(context.Background(), executor.Job{
		Left: a, Right: b, Chunks: chunks, InjectFault: true, FaultIndex: 0,
	})
	require.ErrorIs(t, err, executor.ErrExecutionFailed)
	require.Empty(t, pool.PIDs())

	run(3) // fresh pool after the crash
	require.Len(t, pool.PIDs(), 3)
}

func TestExecutor_Warm(t *testing.T) {
	a, b, want := operands(t, 8)
	e := newExecutor(t)

	require.NoError(t, e.Warm(executor.KindPool, 8, 4))
	backend, err := e.Backend(executor.KindPool)
	require.NoError(t, err)
	pool := backend.(*executor.Pool)
	warmed := pool.PIDs()
	require.Len(t, warmed, 4)

	got, err := e.ExecuteParallel(context.Background(), a, b, 4, executor.KindPool)
	require.NoError(t, err)
	require.True(t, mustClose(t, got, want))
	require.Equal(t, warmed, pool.PIDs()) // the run spawned nothing

	require.NoError(t, e.Warm(executor.KindThread, 8, 4))
	require.ErrorIs(t, e.Warm(executor.KindPool, 8, 9), partition.ErrInvalidPartition)
	require.Equal(t, warmed, pool.PIDs())
	require.ErrorIs(t, e.Warm(executor.Kind("gpu"), 8, 2), executor.ErrUnknownBackend)
}

func mustClose(tb testing.TB, got, want *matrix.Dense) bool {
	tb.Helper()
	ok, err := matrix.AllClose(got, want, rtol, 0)
	require.NoError(tb, err)

	return ok
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]executor.Kind{
		"process":         executor.KindProcess,
		"Multiprocessing": executor.KindProcess,
		" threading ":     executor.KindThread,
		"thread":          executor.KindThread,
		"executor":        executor.KindPool,
		"POOL":            executor.KindPool,
	} {
		got, err := executor.ParseKind(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
	}
	_, err := executor.ParseKind("gpu")
	require.ErrorIs(t, err, executor.ErrUnknownBackend)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { executor.WithLogger(nil) })
	require.Panics(t, func() { executor.WithBackend(nil) })
	require.Panics(t, func() { executor.WithWorkerCommand("") })
	require.Panics(t, func() { executor.WithFault(-1) })
}

// SPDX-License-Identifier: MIT

// Package executor runs a partitioned matrix multiply across a caller-chosen
// number of workers and reassembles the product in row order.
//
// Backends (one interface, three isolation models):
//   - KindThread: goroutines over shared memory. By default every chunk holds
//     one shared execution lock while it computes, so CPU-bound work is
//     serialized and the backend shows little or no speedup. WithoutExecutionLock
//     lifts the lock.
//   - KindProcess: one OS process per chunk, spawned for the run. The child
//     receives its left rows and the full right operand over stdin and writes
//     its sub-product to stdout (encoding/gob). Nothing is shared.
//   - KindPool: a long-lived, grow-only pool of worker processes reused by
//     every run; Executor.Warm starts them ahead of a timed run. A crash or
//     cancellation discards it.
//
// Worker processes are the current binary re-executed with MATPAR_WORKER=1.
// Every main (and every TestMain that exercises process backends) must call
// RunWorkerIfRequested before doing anything else.
//
// Correctness:
//   - ExecuteParallel(A, B, W, kind) equals ExecuteSequential(A, B) within
//     floating-point rounding for every W and kind; for W = 1 the result is
//     bit-identical because the chunk kernel is the same primitive.
//   - Source operands are never mutated.
//
// Failure:
//   - A fault inside one chunk surfaces as *ExecutionError carrying the chunk's
//     row range (errors.Is(err, ErrExecutionFailed)). Results already produced
//     by sibling chunks are left intact. Nothing is retried.
//   - Cancellation is cooperative through context.Context; every spawned
//     goroutine and process is joined or killed before Submit returns.
package executor

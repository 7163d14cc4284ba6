// SPDX-License-Identifier: MIT

// Package executor: functional options for New.
//
// Contract:
//   - Option constructors PANIC on meaningless inputs (programmer error);
//     Executor methods return errors, never panic.
//   - Later options override earlier ones.
package executor

import (
	"github.com/katalvlaran/matpar/matrix"
	"go.uber.org/zap"
)

const (
	panicNilLogger     = "executor: WithLogger(nil)"
	panicNilBackend    = "executor: WithBackend(nil)"
	panicEmptyCommand  = "executor: WithWorkerCommand(\"\")"
	panicNegativeFault = "executor: WithFault(<0)"
)

// Option customizes an Executor.
type Option func(*Executor)

// WithLogger sets the structured logger (default zap.NewNop()).
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic(panicNilLogger)
	}

	return func(e *Executor) { e.log = log }
}

// WithKernel selects the chunk kernel (default matrix.KernelBLAS).
func WithKernel(name matrix.KernelName) Option {
	return func(e *Executor) { e.kernel = name }
}

// WithBackend registers b under b.Name(), replacing the built-in backend of
// that kind. The Executor takes ownership and closes b in Close.
func WithBackend(b Backend) Option {
	if b == nil {
		panic(panicNilBackend)
	}

	return func(e *Executor) { e.backends[b.Name()] = b }
}

// WithWorkerCommand sets how process and pool workers are started
// (default: this binary with WorkerEnv=1).
func WithWorkerCommand(path string, args ...string) Option {
	if path == "" {
		panic(panicEmptyCommand)
	}

	return func(e *Executor) { e.cmd = &Command{Path: path, Args: args} }
}

// WithoutExecutionLock lets thread-backend chunks compute in parallel.
func WithoutExecutionLock() Option {
	return func(e *Executor) { e.serialize = false }
}

// WithFault makes chunk index fail on purpose in every parallel run:
// the thread backend panics inside the chunk, process workers exit
// non-zero before replying.
func WithFault(index int) Option {
	if index < 0 {
		panic(panicNegativeFault)
	}

	return func(e *Executor) {
		e.injectFault = true
		e.faultIndex = index
	}
}

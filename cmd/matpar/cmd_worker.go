// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/katalvlaran/matpar/executor"
	"github.com/spf13/cobra"
)

// newWorkerCmd serves the worker protocol on stdin/stdout. Executors started
// with WithWorkerCommand(path, "worker") use it instead of MATPAR_WORKER.
func newWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "worker",
		Short:  "Serve multiplication chunks on stdin/stdout",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return executor.ServeWorker(os.Stdin, os.Stdout)
		},
	}
}

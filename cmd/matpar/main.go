// SPDX-License-Identifier: MIT

// Command matpar benchmarks parallel dense matrix multiplication.
//
//	matpar run --size 800 --workers 1,2,4,8 --backend process,thread,pool
//	matpar amdahl --fraction 0.9 --max 16
//	matpar info --size 800
package main

import (
	"os"

	"github.com/katalvlaran/matpar/executor"
)

func main() {
	// Worker processes are this binary re-executed; they never reach cobra.
	executor.RunWorkerIfRequested()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

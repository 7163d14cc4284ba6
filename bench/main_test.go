// SPDX-License-Identifier: MIT
package bench_test

import (
	"os"
	"testing"

	"github.com/katalvlaran/matpar/executor"
)

// TestMain lets the test binary serve the process backends' workers.
func TestMain(m *testing.M) {
	executor.RunWorkerIfRequested()
	os.Exit(m.Run())
}

// Package matpar benchmarks dense square-matrix multiplication under several
// parallel-execution strategies and turns the timings into speedup,
// efficiency and Amdahl-law figures.
//
// 🚀 What is in the box?
//
//	• matrix/     row-major Dense storage, seeded factory, gonum-backed kernels
//	• partition/  row-range chunking: exactly W disjoint chunks, larger first
//	• executor/   one Backend interface, three isolation models:
//	              process-per-chunk, goroutines under an execution lock,
//	              and a reusable worker-process pool
//	• timer/      monotonic wall-clock measurement around exactly one call
//	• perf/       tagged Metric, Speedup, Efficiency, Amdahl curves, analysis
//	• bench/      sweep orchestration, caller-owned results Table, exports,
//	              Prometheus collectors
//	• config/     YAML sweep files validated with go-playground/validator
//	• sysinfo/    host report (gopsutil), recommended worker counts
//	• cmd/matpar  the CLI: run, amdahl, info, config
//
// ✨ Guarantees
//
//   - ExecuteParallel(A, B, W, backend) equals the sequential product within
//     1e-9 relative tolerance; at W = 1 it is bit-identical.
//   - Source operands are never mutated; chunk results are reassembled in row
//     order whatever order workers finish in.
//   - A fault in one chunk reports that chunk's row range and aborts only its
//     sweep cell.
//   - Undefined metrics are values, not errors: Speedup with a zero parallel
//     time is perf.Undefined(), distinct from a defined zero.
//
// Quick example:
//
//	a, b, _ := matrix.RandomPair(500, 42, true)
//	exec := executor.New()
//	defer exec.Close()
//	seq, tSeq, _ := timer.TimedErr(func() (*matrix.Dense, error) { return exec.ExecuteSequential(a, b) })
//	par, tPar, _ := timer.TimedErr(func() (*matrix.Dense, error) {
//		return exec.ExecuteParallel(ctx, a, b, 4, executor.KindProcess)
//	})
//	s := perf.Speedup(tSeq, tPar)
//	fmt.Println(s, perf.Efficiency(s, 4))
//
// Binaries that use the process backends must call
// executor.RunWorkerIfRequested first thing in main.
package matpar

// SPDX-License-Identifier: MIT

package sysinfo

import "github.com/dustin/go-humanize"

// ConventionalMaxSize is the largest matrix dimension the benchmark is tuned
// for. Larger sizes run, they are just slow.
const ConventionalMaxSize = 2000

// operandsPerRun counts A, B and the product.
const operandsPerRun = 3

// bytesPerElement is the size of one float64 entry.
const bytesPerElement = 8

// RecommendedWorkers returns the worker counts worth sweeping on a host with
// the given number of logical CPUs.
func RecommendedWorkers(logical int) []int {
	switch {
	case logical <= 2:
		return []int{1, 2}
	case logical <= 4:
		return []int{1, 2, 4}
	case logical <= 8:
		return []int{1, 2, 4, 8}
	default:
		return []int{1, 2, 4, 8, 16}
	}
}

// EstimateMemory returns the bytes held by one n×n run (both operands and
// the product). Process backends copy operands per worker on top of this.
func EstimateMemory(n int) uint64 {
	if n < 1 {
		return 0
	}

	return uint64(operandsPerRun) * uint64(n) * uint64(n) * bytesPerElement
}

// FormatMemory renders EstimateMemory(n) for humans (IEC units).
func FormatMemory(n int) string {
	return humanize.IBytes(EstimateMemory(n))
}

// ConventionalSize reports whether n lies in [1, ConventionalMaxSize].
func ConventionalSize(n int) bool {
	return n >= 1 && n <= ConventionalMaxSize
}

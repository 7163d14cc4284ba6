// SPDX-License-Identifier: MIT

package partition

import "errors"

// ErrInvalidPartition indicates a worker count that cannot split n rows into
// non-empty chunks: w < 1, w > n, or n < 1.
var ErrInvalidPartition = errors.New("partition: invalid worker count for matrix size")

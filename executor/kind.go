// SPDX-License-Identifier: MIT

package executor

import (
	"fmt"
	"strings"
)

// Kind names a backend.
type Kind string

const (
	KindProcess Kind = "process"
	KindThread  Kind = "thread"
	KindPool    Kind = "pool"
)

// kindAliases accepts the names used by older benchmark front-ends.
var kindAliases = map[string]Kind{
	"process":         KindProcess,
	"multiprocessing": KindProcess,
	"thread":          KindThread,
	"threading":       KindThread,
	"pool":            KindPool,
	"executor":        KindPool,
}

// Kinds returns the built-in backends in sweep order.
func Kinds() []Kind { return []Kind{KindProcess, KindThread, KindPool} }

// ParseKind resolves a case-insensitive backend name or alias.
func ParseKind(s string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}

	return k, nil
}

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }

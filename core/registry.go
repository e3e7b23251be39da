// SPDX-License-Identifier: MIT
// Package core: process-wide kind registries.
// Registration is the Go rendition of definition-time self-registration:
// every concrete variable kind installs a no-argument constructor exactly
// once, and generic machinery synthesizes placeholder instances by kind name
// without ever importing the concrete package. The registry is written at
// init/first-construction time and read-only thereafter; a sync.RWMutex
// keeps concurrent lookups cheap.

package core

import (
	"fmt"
	"sync"
)

// variableRegistry maps a variable kind to its placeholder constructor.
var (
	variableMu       sync.RWMutex
	variableRegistry = make(map[string]func() Variable)
)

// RegisterVariable installs a placeholder constructor for a variable kind.
// Re-registering the same kind is tolerated only to keep per-dimension kinds
// idempotent (the registry keeps the first constructor); callers must never
// reuse one kind name for two distinct variable types.
// Returns ErrEmptyKind for an empty name and never overwrites.
func RegisterVariable(kind string, ctor func() Variable) error {
	if kind == "" {
		return ErrEmptyKind
	}
	if ctor == nil {
		panic(fmt.Sprintf("core: RegisterVariable(%q) with nil constructor", kind))
	}
	variableMu.Lock()
	defer variableMu.Unlock()
	if _, ok := variableRegistry[kind]; ok {
		return nil // idempotent: first registration wins
	}
	variableRegistry[kind] = ctor

	return nil
}

// NewVariable synthesizes a placeholder variable of the given kind.
// The instance carries type identity only — no state from any original
// variable. Returns ErrUnknownVariableKind when the kind was never
// registered; that failure is fatal for unflattening.
func NewVariable(kind string) (Variable, error) {
	variableMu.RLock()
	ctor, ok := variableRegistry[kind]
	variableMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("NewVariable(%q): %w", kind, ErrUnknownVariableKind)
	}

	return ctor(), nil
}

// RegisteredVariableKinds returns the sorted-free snapshot of known kinds.
// Intended for diagnostics and tests; order is unspecified.
func RegisteredVariableKinds() []string {
	variableMu.RLock()
	defer variableMu.RUnlock()
	kinds := make([]string, 0, len(variableRegistry))
	for k := range variableRegistry {
		kinds = append(kinds, k)
	}

	return kinds
}

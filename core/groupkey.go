// SPDX-License-Identifier: MIT
// Package core: GroupKey, the shape/type signature that classifies factors
// into numerically stackable groups. A GroupKey is a pure function of static
// type metadata — never of numeric data — so two factors with equal keys have
// the same residual function shape and the same operand shapes even when
// every stored number differs.

package core

import (
	"fmt"
	"strings"
)

// GroupKey identifies the set of factors that can be evaluated as one
// stacked batch: same factor kind, same per-variable (kind, parameter dim)
// sequence, same error dimension. GroupKey is comparable and usable
// directly as a map key; equality is value equality.
type GroupKey struct {
	factorKind string
	signature  string // encoded per-variable "kind/dim" pairs, order-sensitive
	errorDim   int
}

// NewGroupKey derives the key for a factor of the given kind connected to
// the given variables with the given error dimension.
// The variable sequence is order-sensitive: swapping two differently-shaped
// variables changes the key, because it changes the stacked operand layout.
// Complexity: O(len(variables)).
func NewGroupKey(factorKind string, variables []Variable, errorDim int) GroupKey {
	var b strings.Builder
	for i, v := range variables {
		if i > 0 {
			b.WriteByte('|')
		}
		fmt.Fprintf(&b, "%s/%d", v.Kind(), v.ParameterDim())
	}

	return GroupKey{factorKind: factorKind, signature: b.String(), errorDim: errorDim}
}

// FactorKind returns the factor kind component of the key.
func (k GroupKey) FactorKind() string { return k.factorKind }

// ErrorDim returns the error dimension component of the key.
func (k GroupKey) ErrorDim() int { return k.errorDim }

// String renders the key for diagnostics, e.g. "linear[vector2/2|so2/2]:2".
func (k GroupKey) String() string {
	return fmt.Sprintf("%s[%s]:%d", k.factorKind, k.signature, k.errorDim)
}

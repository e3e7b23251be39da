// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the tensor
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions; panics
// are reserved for programmer errors in private helpers.

package tensor

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (no dimensions, or any dimension <= 0).
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates an index outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Add/Sub on different shapes, or MatVec where cols != len(x).
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value encountered where finite values
	// are required (ingestion via FromSlice/Set and kernel inputs).
	ErrNaNInf = errors.New("tensor: NaN or Inf encountered")

	// ErrNilTensor indicates that a nil *Dense (receiver or argument) was used.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrNotMatrix signals that a 2-D tensor was required but the input
	// had a different rank.
	ErrNotMatrix = errors.New("tensor: operand is not a matrix")

	// ErrEmptyStack is returned when Stack is called with no operands.
	ErrEmptyStack = errors.New("tensor: nothing to stack")
)

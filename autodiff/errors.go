// SPDX-License-Identifier: MIT
// Package autodiff: sentinel error set, matched via errors.Is.

package autodiff

import "errors"

var (
	// ErrLengthMismatch indicates vector operands of different lengths.
	ErrLengthMismatch = errors.New("autodiff: vector length mismatch")

	// ErrNilInput indicates a nil tensor or nil function argument.
	ErrNilInput = errors.New("autodiff: nil input")

	// ErrNotVector signals that a 1-D tensor was required.
	ErrNotVector = errors.New("autodiff: operand is not a vector")

	// ErrBadDims is returned when a Jacobian request carries a non-positive
	// or empty dimension list.
	ErrBadDims = errors.New("autodiff: invalid perturbation dimensions")
)

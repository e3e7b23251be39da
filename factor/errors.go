// SPDX-License-Identifier: MIT
// Package factor: sentinel error set.
// All package functions return these sentinels (possibly wrapped with
// context via %w) and tests match them via errors.Is. Every condition here
// is a construction-time or configuration contract violation: fatal,
// propagated immediately, never retried.

package factor

import "errors"

var (
	// ErrNilFactor indicates a nil Factor passed to a package function.
	ErrNilFactor = errors.New("factor: nil factor")

	// ErrNoVariables indicates a factor constructed with an empty variable
	// sequence. A factor must connect at least one variable.
	ErrNoVariables = errors.New("factor: no connected variables")

	// ErrArityMismatch indicates that the number of variable values passed
	// to an evaluation differs from the number of connected variables.
	// This is a programming error at the call site, not user input.
	ErrArityMismatch = errors.New("factor: variable value count mismatch")

	// ErrShapeInconsistent indicates that a whitening matrix, coefficient,
	// or residual shape disagrees with the declared error dimension.
	ErrShapeInconsistent = errors.New("factor: shape inconsistent with error dimension")

	// ErrFieldCountMismatch indicates that Unflatten received a numeric
	// value count different from the recorded field-name count.
	ErrFieldCountMismatch = errors.New("factor: numeric field count mismatch")

	// ErrGroupKeyMismatch indicates an attempt to stack factors whose
	// group keys differ — they are not numerically stackable.
	ErrGroupKeyMismatch = errors.New("factor: group key mismatch")

	// ErrEmptyGroup indicates a stacking request with no factors.
	ErrEmptyGroup = errors.New("factor: empty factor group")

	// ErrNonTrivialTangent indicates a prior factor constructed over a
	// variable whose local parameterization differs from its ambient one;
	// the ambient-difference prior is only valid for trivial tangents.
	ErrNonTrivialTangent = errors.New("factor: prior requires ambient == local parameterization")
)

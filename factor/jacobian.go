// SPDX-License-Identifier: MIT
// Package factor: error evaluation and local Jacobian computation.
// Jacobians are taken with respect to each variable's local tangent
// perturbation, not its ambient representation: the composite
// retract-then-error function is differentiated by forward mode at the
// all-zero perturbation. For manifold-valued variables this is the only
// well-conditioned choice — ambient differentiation of a constrained
// representation is rank-deficient.

package factor

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/autodiff"
	"github.com/katalvlaran/lvlopt/tensor"
)

// AnalyticJacobians is the optional override a factor kind implements when
// it can produce its Jacobian blocks in closed form. The override must be
// numerically equivalent to the forward-mode default (within 1e-6 relative
// tolerance); the equivalence is a test obligation of the overriding kind,
// not a runtime guard.
type AnalyticJacobians interface {
	// ErrorJacobians returns one (ErrorDim × LocalParameterDim) block per
	// connected variable, linearized at the given values.
	ErrorJacobians(values ...*tensor.Dense) ([]*tensor.Dense, error)
}

// Error evaluates a factor's residual at plain (non-dual) variable values.
// Stage 1 (Validate): arity; Stage 2 (Lift + Evaluate); Stage 3 (Check):
// the residual length must equal ErrorDim, else ErrShapeInconsistent —
// the evaluation-time shape guard.
func Error(f Factor, values ...*tensor.Dense) (*tensor.Dense, error) {
	if f == nil {
		return nil, ErrNilFactor
	}
	lifted, err := liftAll(f, values)
	if err != nil {
		return nil, err
	}
	out, err := f.ComputeError(lifted...)
	if err != nil {
		return nil, err
	}
	if len(out) != f.ErrorDim() {
		return nil, fmt.Errorf("Error(%s): residual length %d, error dim %d: %w",
			f.Kind(), len(out), f.ErrorDim(), ErrShapeInconsistent)
	}

	return autodiff.Values(out)
}

// ComputeErrorJacobians is the forward-mode default Jacobian computation,
// usable by any factor.
//
// Implementation:
//   - Stage 1 (Validate): one value per connected variable.
//   - Stage 2 (Compose): define the perturbation function — retract a local
//     delta onto each value via the variable's AddLocal, then evaluate the
//     factor's residual on the perturbed values.
//   - Stage 3 (Differentiate): autodiff.JacobianAtZero seeds all local
//     deltas jointly at zero and returns one exact block per variable of
//     shape (ErrorDim × LocalParameterDim).
//
// Derivatives are exact (dual numbers), never finite differences.
// Complexity: one residual evaluation on duals of width Σ local dims.
func ComputeErrorJacobians(f Factor, values ...*tensor.Dense) ([]*tensor.Dense, error) {
	if f == nil {
		return nil, ErrNilFactor
	}
	vars := f.Variables()
	lifted, err := liftAll(f, values)
	if err != nil {
		return nil, err
	}
	dims := make([]int, len(vars))
	for i, v := range vars {
		dims[i] = v.LocalParameterDim()
	}

	composite := func(deltas []autodiff.Vector) (autodiff.Vector, error) {
		perturbed := make([]autodiff.Vector, len(vars))
		for i, v := range vars {
			p, err := v.AddLocal(lifted[i], deltas[i])
			if err != nil {
				return nil, err
			}
			perturbed[i] = p
		}

		return f.ComputeError(perturbed...)
	}

	return autodiff.JacobianAtZero(composite, dims)
}

// Jacobians computes the per-variable Jacobian blocks of a factor's error,
// dispatching to the factor's analytic override when it implements
// AnalyticJacobians and to the forward-mode default otherwise.
func Jacobians(f Factor, values ...*tensor.Dense) ([]*tensor.Dense, error) {
	if f == nil {
		return nil, ErrNilFactor
	}
	if a, ok := f.(AnalyticJacobians); ok {
		return a.ErrorJacobians(values...)
	}

	return ComputeErrorJacobians(f, values...)
}

// liftAll checks arity and lifts each plain value into a constant dual
// vector. Shared by Error and ComputeErrorJacobians.
func liftAll(f Factor, values []*tensor.Dense) ([]autodiff.Vector, error) {
	vars := f.Variables()
	if len(values) != len(vars) {
		return nil, fmt.Errorf("%s: got %d values for %d variables: %w",
			f.Kind(), len(values), len(vars), ErrArityMismatch)
	}
	lifted := make([]autodiff.Vector, len(values))
	for i, v := range values {
		lv, err := autodiff.Lift(v)
		if err != nil {
			return nil, fmt.Errorf("%s: value %d: %w", f.Kind(), i, err)
		}
		lifted[i] = lv
	}

	return lifted, nil
}

// Package core: the Variable capability.
// This file declares the Variable interface and its sentinel errors.
// Concrete implementations live in the variable package; generic machinery
// in the factor package consumes only this interface.

package core

import (
	"errors"

	"github.com/katalvlaran/lvlopt/autodiff"
)

// Sentinel errors for core registry and variable operations.
var (
	// ErrUnknownVariableKind indicates that no constructor is registered
	// for the requested variable kind. Fatal for unflattening: a recorded
	// kind that cannot be synthesized is a configuration error.
	ErrUnknownVariableKind = errors.New("core: unknown variable kind")

	// ErrUnknownFactorKind indicates that no unflattener is registered
	// for the requested factor kind.
	ErrUnknownFactorKind = errors.New("core: unknown factor kind")

	// ErrEmptyKind indicates that a kind name is the empty string.
	ErrEmptyKind = errors.New("core: empty kind name")

	// ErrLocalDimMismatch indicates that a retraction received a local
	// delta whose length differs from LocalParameterDim.
	ErrLocalDimMismatch = errors.New("core: local delta dimension mismatch")

	// ErrParamDimMismatch indicates that a retraction received a value
	// whose length differs from ParameterDim.
	ErrParamDimMismatch = errors.New("core: parameter dimension mismatch")
)

// Variable is an unknown quantity in a least-squares problem.
//
// A variable has an ambient parameterization of ParameterDim values (the
// representation factors evaluate against) and a minimal local (tangent)
// parameterization of LocalParameterDim values. AddLocal retracts a local
// perturbation onto an ambient value; for manifold-valued variables the two
// dimensions differ and AddLocal is where the manifold structure lives.
//
// AddLocal operates on dual vectors so that retraction composes with factor
// residuals under forward-mode differentiation. Plain values enter via
// autodiff.Lift. Implementations must be stateless or immutable: the same
// instance may serve concurrent evaluations.
type Variable interface {
	// Kind returns the registry name identifying this variable's concrete
	// type. Equal kinds imply equal parameter dimensions.
	Kind() string

	// ParameterDim returns the ambient parameter count.
	ParameterDim() int

	// LocalParameterDim returns the tangent-space dimension.
	LocalParameterDim() int

	// AddLocal retracts delta onto value and returns the perturbed value.
	// len(value) must equal ParameterDim and len(delta) must equal
	// LocalParameterDim; violations return ErrParamDimMismatch or
	// ErrLocalDimMismatch.
	AddLocal(value, delta autodiff.Vector) (autodiff.Vector, error)
}

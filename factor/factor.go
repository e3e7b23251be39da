// Package factor: the Factor contract and the embeddable Base.
// This file declares the interface every concrete residual model implements
// and the immutable (variables, scale_tril_inv) pair they all embed.

package factor

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/autodiff"
	"github.com/katalvlaran/lvlopt/core"
	"github.com/katalvlaran/lvlopt/tensor"
)

// NumericField is one named, stackable numeric component of a factor.
// The declared order of fields is the decomposition order: it must be
// deterministic per factor kind so that same-keyed factors stack
// field-by-field.
type NumericField struct {
	// Name identifies the field within its factor kind.
	Name string

	// Value is the field's numeric payload.
	Value *tensor.Dense
}

// Factor is a differentiable residual model over a fixed set of connected
// variables, weighted by a whitening transform.
//
// Implementations embed Base for the variables/whitening plumbing and add
// their residual state. All methods must be pure: no call may mutate the
// factor or its inputs, so independent factors evaluate concurrently.
type Factor interface {
	// Kind returns the registry name of the concrete factor type.
	Kind() string

	// Variables returns the connected variables in evaluation order.
	// The returned slice is a copy; the underlying sequence never changes.
	Variables() []core.Variable

	// ScaleTrilInv returns the inverse lower-triangular covariance square
	// root (the whitening transform). Trailing dimension defines ErrorDim.
	ScaleTrilInv() *tensor.Dense

	// ErrorDim returns the residual dimensionality.
	ErrorDim() int

	// ComputeError evaluates the residual at the given variable values,
	// one dual vector per connected variable in Variables order. The result
	// has length ErrorDim. Must return ErrArityMismatch when the value
	// count differs from the variable count.
	ComputeError(values ...autodiff.Vector) (autodiff.Vector, error)

	// NumericFields returns the stackable numeric components in the fixed
	// decomposition order, scale_tril_inv included.
	NumericFields() []NumericField

	// StaticFields returns the non-numeric auxiliary state excluded from
	// stacking, or nil when the factor kind has none.
	StaticFields() map[string]any
}

// Base carries the state shared by every factor: the connected variables and
// the whitening matrix. Both are fixed at construction — NewBase copies the
// variable slice and clones the whitening tensor, so no mutation path exists
// afterward.
type Base struct {
	variables    []core.Variable
	scaleTrilInv *tensor.Dense
}

// NewBase validates and freezes the shared factor state.
// Stage 1 (Validate): at least one variable, none nil; whitening non-nil,
// rank ≥ 2, square in its trailing two dimensions (leading batch dimensions
// are tolerated for stacked factors), finite by tensor construction.
// Stage 2 (Freeze): deep-copy the variable slice, clone the whitening.
// Complexity: O(len(variables) + len(scaleTrilInv)).
func NewBase(variables []core.Variable, scaleTrilInv *tensor.Dense) (Base, error) {
	if len(variables) == 0 {
		return Base{}, ErrNoVariables
	}
	for i, v := range variables {
		if v == nil {
			return Base{}, fmt.Errorf("NewBase: variable %d is nil: %w", i, ErrNoVariables)
		}
	}
	if scaleTrilInv == nil {
		return Base{}, fmt.Errorf("NewBase: scale_tril_inv: %w", tensor.ErrNilTensor)
	}
	shape := scaleTrilInv.Shape()
	if len(shape) < 2 || shape[len(shape)-1] != shape[len(shape)-2] {
		return Base{}, fmt.Errorf("NewBase: scale_tril_inv shape %v: %w", shape, ErrShapeInconsistent)
	}

	return Base{
		variables:    append([]core.Variable(nil), variables...),
		scaleTrilInv: scaleTrilInv.Clone(),
	}, nil
}

// Variables returns a copy of the connected variable sequence.
func (b *Base) Variables() []core.Variable {
	return append([]core.Variable(nil), b.variables...)
}

// ScaleTrilInv returns a clone of the whitening matrix.
func (b *Base) ScaleTrilInv() *tensor.Dense {
	return b.scaleTrilInv.Clone()
}

// ErrorDim returns the trailing dimension of the whitening matrix.
// Stacked factors carry a leading batch dimension; the trailing dimension
// reports the same error dim either way.
func (b *Base) ErrorDim() int {
	return b.scaleTrilInv.TrailingDim()
}

// StaticFields returns nil: a factor kind with static state overrides this.
func (b *Base) StaticFields() map[string]any { return nil }

// CheckArity returns ErrArityMismatch unless got equals the connected
// variable count. Concrete ComputeError implementations call this first.
func (b *Base) CheckArity(got int) error {
	if got != len(b.variables) {
		return fmt.Errorf("got %d values for %d variables: %w", got, len(b.variables), ErrArityMismatch)
	}

	return nil
}

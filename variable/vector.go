// Package variable: Vector, the trivial-tangent unknown in R^n.

package variable

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlopt/autodiff"
	"github.com/katalvlaran/lvlopt/core"
)

// ErrBadDimension is returned when a variable dimension is not positive.
var ErrBadDimension = errors.New("variable: dimension must be > 0")

// Vector is an unknown in R^n. Its ambient and local parameterizations
// coincide, and retraction is plain vector addition.
// A Vector is immutable: the dimension is fixed at construction.
type Vector struct {
	dim int
}

// vectorKind encodes one registry kind per dimension, so placeholder
// synthesis recovers the dimension from the kind name alone.
func vectorKind(dim int) string {
	return fmt.Sprintf("vector%d", dim)
}

// NewVector creates an n-dimensional vector variable and registers its kind.
// Stage 1 (Validate): dim > 0 or ErrBadDimension.
// Stage 2 (Register): install the per-dimension placeholder constructor
// (idempotent; first registration wins, and all registrations for one
// dimension are identical).
// Stage 3 (Finalize): return the immutable instance.
func NewVector(dim int) (*Vector, error) {
	if dim <= 0 {
		return nil, ErrBadDimension
	}
	d := dim // capture by value for the constructor closure
	if err := core.RegisterVariable(vectorKind(d), func() core.Variable {
		return &Vector{dim: d}
	}); err != nil {
		return nil, err
	}

	return &Vector{dim: dim}, nil
}

// Kind returns the per-dimension registry name, e.g. "vector3".
func (v *Vector) Kind() string { return vectorKind(v.dim) }

// ParameterDim returns n.
func (v *Vector) ParameterDim() int { return v.dim }

// LocalParameterDim returns n: the tangent space of R^n is R^n itself.
func (v *Vector) LocalParameterDim() int { return v.dim }

// AddLocal retracts delta onto value by elementwise addition.
// Returns core.ErrParamDimMismatch / core.ErrLocalDimMismatch on bad lengths.
// Complexity: O(n).
func (v *Vector) AddLocal(value, delta autodiff.Vector) (autodiff.Vector, error) {
	if len(value) != v.dim {
		return nil, fmt.Errorf("Vector.AddLocal: value length %d, want %d: %w", len(value), v.dim, core.ErrParamDimMismatch)
	}
	if len(delta) != v.dim {
		return nil, fmt.Errorf("Vector.AddLocal: delta length %d, want %d: %w", len(delta), v.dim, core.ErrLocalDimMismatch)
	}

	return autodiff.AddVec(value, delta)
}

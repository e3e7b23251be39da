// SPDX-License-Identifier: MIT
// Package variable: SO2, the planar-rotation unknown.
// Ambient representation is a unit complex (cos θ, sin θ); the local tangent
// is a single angle. Retraction is complex multiplication, which keeps the
// result on the unit circle for unit inputs and stays differentiable through
// dual arithmetic.

package variable

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlopt/autodiff"
	"github.com/katalvlaran/lvlopt/core"
	"github.com/katalvlaran/lvlopt/tensor"
)

// KindSO2 is the registry name of the planar-rotation variable.
const KindSO2 = "so2"

// so2ParamDim is the ambient dimension: (cos θ, sin θ).
const so2ParamDim = 2

// so2LocalDim is the tangent dimension: one angle.
const so2LocalDim = 1

func init() {
	// Definition-time self-registration, the registry analogue of a
	// subclass hook: SO2 becomes synthesizable by kind name process-wide.
	if err := core.RegisterVariable(KindSO2, func() core.Variable { return &SO2{} }); err != nil {
		panic(err)
	}
}

// SO2 is a planar rotation stored as the unit complex (cos θ, sin θ).
// The zero value is ready to use; all instances are interchangeable.
type SO2 struct{}

// NewSO2 returns a planar-rotation variable.
func NewSO2() *SO2 { return &SO2{} }

// Kind returns "so2".
func (*SO2) Kind() string { return KindSO2 }

// ParameterDim returns 2: the ambient (cos θ, sin θ) pair.
func (*SO2) ParameterDim() int { return so2ParamDim }

// LocalParameterDim returns 1: a single tangent angle.
func (*SO2) LocalParameterDim() int { return so2LocalDim }

// AddLocal rotates value by the tangent angle delta[0]:
//
//	(c, s) ⟼ (c·cos δ − s·sin δ, s·cos δ + c·sin δ)
//
// which is the complex product value·e^{iδ}. Exact under dual arithmetic,
// so local Jacobians of rotation-valued residuals come out analytic.
func (*SO2) AddLocal(value, delta autodiff.Vector) (autodiff.Vector, error) {
	if len(value) != so2ParamDim {
		return nil, fmt.Errorf("SO2.AddLocal: value length %d, want %d: %w", len(value), so2ParamDim, core.ErrParamDimMismatch)
	}
	if len(delta) != so2LocalDim {
		return nil, fmt.Errorf("SO2.AddLocal: delta length %d, want %d: %w", len(delta), so2LocalDim, core.ErrLocalDimMismatch)
	}
	c, s := value[0], value[1]
	cosD, sinD := delta[0].Cos(), delta[0].Sin()

	return autodiff.Vector{
		c.Mul(cosD).Sub(s.Mul(sinD)), // cos(θ+δ)
		s.Mul(cosD).Add(c.Mul(sinD)), // sin(θ+δ)
	}, nil
}

// SO2Params builds the ambient (cos θ, sin θ) value for an angle.
// Convenience for constructing evaluation points and test fixtures.
func SO2Params(theta float64) (*tensor.Dense, error) {
	return tensor.Vector([]float64{math.Cos(theta), math.Sin(theta)})
}

// Package factor: PriorFactor, an anchor on a single trivial-tangent
// variable with residual r = x − mu. Carries the analytic Jacobian
// override (the identity block), the reference case for override-vs-
// forward-mode equivalence.

package factor

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/autodiff"
	"github.com/katalvlaran/lvlopt/core"
	"github.com/katalvlaran/lvlopt/tensor"
)

// KindPrior is the registry name of the prior factor.
const KindPrior = "prior"

func init() {
	if err := RegisterFactor(KindPrior, unflattenPrior); err != nil {
		panic(err)
	}
}

// PriorFactor anchors one variable to a target value mu in ambient
// coordinates. Valid only for variables whose local parameterization equals
// their ambient one (plain vectors): for those, the ambient difference is
// the tangent difference and the Jacobian is exactly the identity.
type PriorFactor struct {
	Base
	mu *tensor.Dense // anchor value, length errorDim
}

// NewPriorFactor validates and freezes a prior on a single variable.
// Stage 1 (Validate): exactly one variable (ErrArityMismatch); trivial
// tangent (ErrNonTrivialTangent); mu trailing dim must equal both the
// variable's parameter dim and the error dim (ErrShapeInconsistent);
// leading batch dimensions tolerated.
// Stage 2 (Freeze): clone mu.
func NewPriorFactor(v core.Variable, mu, scaleTrilInv *tensor.Dense) (*PriorFactor, error) {
	if v == nil {
		return nil, ErrNoVariables
	}
	if v.ParameterDim() != v.LocalParameterDim() {
		return nil, fmt.Errorf("NewPriorFactor: %s: %w", v.Kind(), ErrNonTrivialTangent)
	}
	base, err := NewBase([]core.Variable{v}, scaleTrilInv)
	if err != nil {
		return nil, err
	}
	if mu == nil {
		return nil, fmt.Errorf("NewPriorFactor: mu: %w", tensor.ErrNilTensor)
	}
	if mu.TrailingDim() != base.ErrorDim() || mu.TrailingDim() != v.ParameterDim() {
		return nil, fmt.Errorf("NewPriorFactor: mu trailing dim %d, error dim %d, parameter dim %d: %w",
			mu.TrailingDim(), base.ErrorDim(), v.ParameterDim(), ErrShapeInconsistent)
	}

	return &PriorFactor{Base: base, mu: mu.Clone()}, nil
}

// Kind returns "prior".
func (*PriorFactor) Kind() string { return KindPrior }

// Mu returns a clone of the anchor value.
func (p *PriorFactor) Mu() *tensor.Dense { return p.mu.Clone() }

// ComputeError evaluates r = x − mu on dual values.
func (p *PriorFactor) ComputeError(values ...autodiff.Vector) (autodiff.Vector, error) {
	if err := p.CheckArity(len(values)); err != nil {
		return nil, err
	}
	target, err := autodiff.Lift(p.mu)
	if err != nil {
		return nil, fmt.Errorf("PriorFactor.ComputeError: %w", err)
	}

	return autodiff.SubVec(values[0], target)
}

// ErrorJacobians is the analytic override: d(x − mu)/dx is the identity,
// and the trivial tangent makes the local block identical to the ambient
// one. Must match the forward-mode default exactly — covered by tests.
func (p *PriorFactor) ErrorJacobians(values ...*tensor.Dense) ([]*tensor.Dense, error) {
	if err := p.CheckArity(len(values)); err != nil {
		return nil, err
	}
	eye, err := tensor.Identity(p.ErrorDim())
	if err != nil {
		return nil, fmt.Errorf("PriorFactor.ErrorJacobians: %w", err)
	}

	return []*tensor.Dense{eye}, nil
}

// NumericFields returns mu, scale_tril_inv — the fixed decomposition order
// of the prior kind.
func (p *PriorFactor) NumericFields() []NumericField {
	return []NumericField{
		{Name: "mu", Value: p.mu.Clone()},
		{Name: "scale_tril_inv", Value: p.ScaleTrilInv()},
	}
}

// unflattenPrior rebuilds a prior factor from (mu, scale_tril_inv).
func unflattenPrior(meta Metadata, numeric []*tensor.Dense, variables []core.Variable) (Factor, error) {
	if len(numeric) != 2 {
		return nil, fmt.Errorf("unflatten %s: %d fields, want 2: %w", KindPrior, len(numeric), ErrFieldCountMismatch)
	}
	if len(variables) != 1 {
		return nil, fmt.Errorf("unflatten %s: %d variables, want 1: %w", KindPrior, len(variables), ErrArityMismatch)
	}

	return NewPriorFactor(variables[0], numeric[0], numeric[1])
}

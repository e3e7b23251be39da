// Package factor: LinearFactor, the reference concrete residual model
//
//	r = Σ_i A_i·x_i − b
//
// The simplest factor: linear in every connected variable, no static
// fields, fully decomposable. Serves as the minimal correctness example
// and the stacking fixture.

package factor

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/autodiff"
	"github.com/katalvlaran/lvlopt/core"
	"github.com/katalvlaran/lvlopt/tensor"
)

// KindLinear is the registry name of the linear factor.
const KindLinear = "linear"

func init() {
	if err := RegisterFactor(KindLinear, unflattenLinear); err != nil {
		panic(err)
	}
}

// LinearFactor models the residual r = Σ A_i·x_i − b with one coefficient
// matrix per connected variable. Immutable after construction.
type LinearFactor struct {
	Base
	a []*tensor.Dense // coefficient matrices, one per variable, (errorDim × paramDim)
	b *tensor.Dense   // target vector, length errorDim
}

// NewLinearFactor validates and freezes a linear factor.
//
// Implementation:
//   - Stage 1 (Validate): one coefficient matrix per variable
//     (ErrArityMismatch); base validation of variables and whitening;
//     b and every A_i must agree with the error dimension and each
//     variable's parameter dimension in their trailing axes
//     (ErrShapeInconsistent). Trailing-axis checks deliberately tolerate a
//     leading batch dimension so stacked factors reconstruct through the
//     same constructor.
//   - Stage 2 (Freeze): clone all numeric inputs.
//
// Complexity: O(total numeric payload).
func NewLinearFactor(variables []core.Variable, a []*tensor.Dense, b, scaleTrilInv *tensor.Dense) (*LinearFactor, error) {
	if len(a) != len(variables) {
		return nil, fmt.Errorf("NewLinearFactor: %d matrices for %d variables: %w", len(a), len(variables), ErrArityMismatch)
	}
	base, err := NewBase(variables, scaleTrilInv)
	if err != nil {
		return nil, err
	}
	errDim := base.ErrorDim()
	if b == nil {
		return nil, fmt.Errorf("NewLinearFactor: b: %w", tensor.ErrNilTensor)
	}
	if b.TrailingDim() != errDim {
		return nil, fmt.Errorf("NewLinearFactor: b trailing dim %d, error dim %d: %w", b.TrailingDim(), errDim, ErrShapeInconsistent)
	}
	cloned := make([]*tensor.Dense, len(a))
	for i, ai := range a {
		if ai == nil {
			return nil, fmt.Errorf("NewLinearFactor: A%d: %w", i, tensor.ErrNilTensor)
		}
		shape := ai.Shape()
		if len(shape) < 2 || shape[len(shape)-1] != variables[i].ParameterDim() || shape[len(shape)-2] != errDim {
			return nil, fmt.Errorf("NewLinearFactor: A%d shape %v vs (%d × %d): %w",
				i, shape, errDim, variables[i].ParameterDim(), ErrShapeInconsistent)
		}
		cloned[i] = ai.Clone()
	}

	return &LinearFactor{Base: base, a: cloned, b: b.Clone()}, nil
}

// Kind returns "linear".
func (*LinearFactor) Kind() string { return KindLinear }

// A returns a clone of the i-th coefficient matrix.
func (l *LinearFactor) A(i int) *tensor.Dense { return l.a[i].Clone() }

// B returns a clone of the target vector.
func (l *LinearFactor) B() *tensor.Dense { return l.b.Clone() }

// ComputeError evaluates r = Σ A_i·x_i − b on dual values.
// Returns ErrArityMismatch on a wrong value count; length mismatches inside
// the products surface as autodiff errors. Not defined for stacked
// (batched) instances — unstack first.
func (l *LinearFactor) ComputeError(values ...autodiff.Vector) (autodiff.Vector, error) {
	if err := l.CheckArity(len(values)); err != nil {
		return nil, err
	}
	target, err := autodiff.Lift(l.b)
	if err != nil {
		return nil, fmt.Errorf("LinearFactor.ComputeError: %w", err)
	}
	acc := make(autodiff.Vector, len(target))
	for i := range acc {
		acc[i] = autodiff.Const(0)
	}
	for i, value := range values {
		term, err := autodiff.MatVec(l.a[i], value)
		if err != nil {
			return nil, fmt.Errorf("LinearFactor.ComputeError: A%d: %w", i, err)
		}
		if acc, err = autodiff.AddVec(acc, term); err != nil {
			return nil, fmt.Errorf("LinearFactor.ComputeError: A%d: %w", i, err)
		}
	}

	return autodiff.SubVec(acc, target)
}

// NumericFields returns A0..Ak, b, scale_tril_inv — the fixed decomposition
// order of the linear kind.
func (l *LinearFactor) NumericFields() []NumericField {
	fields := make([]NumericField, 0, len(l.a)+2)
	for i, ai := range l.a {
		fields = append(fields, NumericField{Name: fmt.Sprintf("A%d", i), Value: ai.Clone()})
	}
	fields = append(fields, NumericField{Name: "b", Value: l.b.Clone()})
	fields = append(fields, NumericField{Name: "scale_tril_inv", Value: l.ScaleTrilInv()})

	return fields
}

// unflattenLinear rebuilds a linear factor from its decomposition order:
// one matrix per placeholder variable, then b, then scale_tril_inv.
func unflattenLinear(meta Metadata, numeric []*tensor.Dense, variables []core.Variable) (Factor, error) {
	want := len(variables) + 2
	if len(numeric) != want {
		return nil, fmt.Errorf("unflatten %s: %d fields, want %d: %w", KindLinear, len(numeric), want, ErrFieldCountMismatch)
	}
	k := len(variables)

	return NewLinearFactor(variables, numeric[:k], numeric[k], numeric[k+1])
}

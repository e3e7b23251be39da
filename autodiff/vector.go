// Package autodiff: Vector, the dual-valued counterpart of a 1-D tensor,
// with lifting, extraction, and the vector kernels factor residuals need.

package autodiff

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/tensor"
)

// Vector is a slice of dual scalars, the differentiable counterpart of a
// 1-D tensor.Dense.
type Vector []Dual

// Lift embeds a 1-D tensor as a constant vector (nil gradient rows).
// Returns ErrNilInput for nil and ErrNotVector for non-1-D tensors.
func Lift(t *tensor.Dense) (Vector, error) {
	if t == nil {
		return nil, ErrNilInput
	}
	if t.Rank() != 1 {
		return nil, fmt.Errorf("Lift: rank %d: %w", t.Rank(), ErrNotVector)
	}
	data := t.Data()
	out := make(Vector, len(data))
	for i, v := range data {
		out[i] = Const(v)
	}

	return out, nil
}

// Values extracts the primal values of a vector into a 1-D tensor.
func Values(v Vector) (*tensor.Dense, error) {
	data := make([]float64, len(v))
	for i, d := range v {
		data[i] = d.Val
	}

	return tensor.Vector(data)
}

// AddVec returns the elementwise sum a + b.
// Returns ErrLengthMismatch when the operands differ in length.
func AddVec(a, b Vector) (Vector, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("AddVec: %d vs %d: %w", len(a), len(b), ErrLengthMismatch)
	}
	out := make(Vector, len(a))
	for i := range a {
		out[i] = a[i].Add(b[i])
	}

	return out, nil
}

// SubVec returns the elementwise difference a − b.
// Returns ErrLengthMismatch when the operands differ in length.
func SubVec(a, b Vector) (Vector, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("SubVec: %d vs %d: %w", len(a), len(b), ErrLengthMismatch)
	}
	out := make(Vector, len(a))
	for i := range a {
		out[i] = a[i].Sub(b[i])
	}

	return out, nil
}

// MatVec computes A·x for a constant 2-D matrix A and a dual vector x.
// The gradient of each output coordinate is the A-weighted combination of the
// input gradients, so linear maps stay exact under differentiation.
// Complexity: O(rows·cols·width).
func MatVec(a *tensor.Dense, x Vector) (Vector, error) {
	if a == nil {
		return nil, ErrNilInput
	}
	if a.Rank() != 2 {
		return nil, fmt.Errorf("MatVec: rank %d: %w", a.Rank(), tensor.ErrNotMatrix)
	}
	shape := a.Shape()
	rows, cols := shape[0], shape[1]
	if cols != len(x) {
		return nil, fmt.Errorf("MatVec: %d cols vs %d values: %w", cols, len(x), ErrLengthMismatch)
	}
	flat := a.Data()
	out := make(Vector, rows)
	for i := 0; i < rows; i++ {
		acc := Const(0)
		for j := 0; j < cols; j++ {
			acc = acc.Add(x[j].Scale(flat[i*cols+j]))
		}
		out[i] = acc
	}

	return out, nil
}

// SPDX-License-Identifier: MIT
// Package autodiff: JacobianAtZero, the forward-mode driver used by the
// factor core to differentiate retract-then-error composites.

package autodiff

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/tensor"
)

// VectorFunc is a differentiable multi-input vector function.
// It receives one dual vector per input and returns a dual output vector.
type VectorFunc func(inputs []Vector) (Vector, error)

// JacobianAtZero evaluates f once at all-zero inputs of the given dimensions
// and returns one Jacobian block per input.
//
// Implementation:
//   - Stage 1 (Validate): f non-nil, dims non-empty, every dim > 0.
//   - Stage 2 (Seed): build dual inputs seeded jointly — coordinate k of
//     input i gets derivative 1 in direction offset(i)+k out of sum(dims).
//   - Stage 3 (Execute): evaluate f once; chain-rule propagation fills the
//     combined gradient of every output coordinate.
//   - Stage 4 (Finalize): slice the combined gradient into per-input blocks
//     of shape (len(out), dims[i]).
//
// Derivatives are exact: no step sizes, no truncation error.
// Complexity: one evaluation of f on duals of width sum(dims).
func JacobianAtZero(f VectorFunc, dims []int) ([]*tensor.Dense, error) {
	if f == nil {
		return nil, ErrNilInput
	}
	if len(dims) == 0 {
		return nil, ErrBadDims
	}
	total := 0
	for _, d := range dims {
		if d <= 0 {
			return nil, fmt.Errorf("JacobianAtZero: dim %d: %w", d, ErrBadDims)
		}
		total += d
	}

	// Seed one unit epsilon per coordinate, jointly across all inputs.
	inputs := make([]Vector, len(dims))
	offset := 0
	for i, d := range dims {
		inputs[i] = make(Vector, d)
		for k := 0; k < d; k++ {
			inputs[i][k] = Var(0, total, offset+k)
		}
		offset += d
	}

	out, err := f(inputs)
	if err != nil {
		return nil, err
	}

	// Slice the combined gradient into one (outDim × dims[i]) block per input.
	blocks := make([]*tensor.Dense, len(dims))
	offset = 0
	for i, d := range dims {
		flat := make([]float64, len(out)*d)
		for r, o := range out {
			for c := 0; c < d; c++ {
				flat[r*d+c] = o.Partial(offset + c)
			}
		}
		block, err := tensor.FromSlice([]int{len(out), d}, flat)
		if err != nil {
			return nil, fmt.Errorf("JacobianAtZero: %w", err)
		}
		blocks[i] = block
		offset += d
	}

	return blocks, nil
}

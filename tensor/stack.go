// SPDX-License-Identifier: MIT
// Package tensor: batch stacking along a new leading axis.
// Stack/Unstack are the numeric basis for grouping same-shaped factor fields
// into one batched array: stacking the i-th field of N factors produces a
// tensor whose leading axis indexes the factor instance.

package tensor

import "fmt"

// Stack concatenates same-shaped tensors along a new leading axis.
// Stage 1 (Validate): at least one operand, none nil, all shapes equal.
// Stage 2 (Execute): copy each operand's flat data into one backing slice.
// Stage 3 (Finalize): result shape is (N, shape...).
// Complexity: O(N·len) time and memory.
func Stack(ts ...*Dense) (*Dense, error) {
	if len(ts) == 0 {
		return nil, ErrEmptyStack
	}
	first := ts[0]
	if first == nil {
		return nil, ErrNilTensor
	}
	for i, t := range ts[1:] {
		if t == nil {
			return nil, ErrNilTensor
		}
		if !sameShape(first, t) {
			return nil, fmt.Errorf("Stack: operand %d shape %v vs %v: %w", i+1, t.shape, first.shape, ErrDimensionMismatch)
		}
	}
	shape := append([]int{len(ts)}, first.shape...)
	data := make([]float64, 0, len(ts)*len(first.data))
	for _, t := range ts {
		data = append(data, t.data...)
	}

	return &Dense{shape: shape, data: data}, nil
}

// Unstack splits a tensor along its leading axis, inverting Stack.
// A rank-1 tensor unstacks into scalars represented as 1-element vectors is
// not supported: the input must have rank ≥ 2 so every slice keeps a shape.
// Complexity: O(len) time and memory.
func Unstack(t *Dense) ([]*Dense, error) {
	if t == nil {
		return nil, ErrNilTensor
	}
	if t.Rank() < 2 {
		return nil, fmt.Errorf("Unstack: rank %d: %w", t.Rank(), ErrBadShape)
	}
	n := t.shape[0]
	inner := append([]int(nil), t.shape[1:]...)
	step := len(t.data) / n
	out := make([]*Dense, n)
	for i := 0; i < n; i++ {
		out[i] = &Dense{
			shape: append([]int(nil), inner...),
			data:  append([]float64(nil), t.data[i*step:(i+1)*step]...),
		}
	}

	return out, nil
}

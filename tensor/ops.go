// SPDX-License-Identifier: MIT
// Package tensor: linear-algebra and elementwise kernels on Dense operands.
// All kernels perform strict fail-fast validation and return sentinel errors
// on shape mismatches. Operands are never mutated; results are fresh tensors.

package tensor

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd    = "Add"
	opSub    = "Sub"
	opScale  = "Scale"
	opMatVec = "MatVec"
	opMatMul = "MatMul"
	opTrans  = "Transpose"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkPair validates both operands of a binary kernel.
// Returns ErrNilTensor for nil operands and ErrDimensionMismatch on shape inequality.
func checkPair(tag string, a, b *Dense) error {
	if a == nil || b == nil {
		return opErrorf(tag, ErrNilTensor)
	}
	if !sameShape(a, b) {
		return opErrorf(tag, ErrDimensionMismatch)
	}

	return nil
}

// Add computes the elementwise sum a + b.
// Inputs must share a shape. Complexity: O(len).
func Add(a, b *Dense) (*Dense, error) {
	if err := checkPair(opAdd, a, b); err != nil {
		return nil, err
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] += b.data[i]
	}

	return out, nil
}

// Sub computes the elementwise difference a − b.
// Inputs must share a shape. Complexity: O(len).
func Sub(a, b *Dense) (*Dense, error) {
	if err := checkPair(opSub, a, b); err != nil {
		return nil, err
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] -= b.data[i]
	}

	return out, nil
}

// Scale computes the scalar product s·a.
// Complexity: O(len).
func Scale(s float64, a *Dense) (*Dense, error) {
	if a == nil {
		return nil, opErrorf(opScale, ErrNilTensor)
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] *= s
	}

	return out, nil
}

// MatVec computes the matrix-vector product A·x for a 2-D A and 1-D x.
// Stage 1 (Validate): A is 2-D, x is 1-D, A.cols == len(x).
// Stage 2 (Execute): accumulate row dot products into a fresh vector.
// Complexity: O(rows·cols).
func MatVec(a, x *Dense) (*Dense, error) {
	if a == nil || x == nil {
		return nil, opErrorf(opMatVec, ErrNilTensor)
	}
	if a.Rank() != 2 {
		return nil, opErrorf(opMatVec, ErrNotMatrix)
	}
	if x.Rank() != 1 || a.shape[1] != x.shape[0] {
		return nil, opErrorf(opMatVec, ErrDimensionMismatch)
	}
	rows, cols := a.shape[0], a.shape[1]
	out := &Dense{shape: []int{rows}, data: make([]float64, rows)}
	for i := 0; i < rows; i++ {
		sum := 0.0
		for j := 0; j < cols; j++ {
			sum += a.data[i*cols+j] * x.data[j]
		}
		out.data[i] = sum
	}

	return out, nil
}

// MatMul computes the matrix product A·B for 2-D operands.
// Requires A.cols == B.rows. Complexity: O(n·m·p).
func MatMul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, opErrorf(opMatMul, ErrNilTensor)
	}
	if a.Rank() != 2 || b.Rank() != 2 {
		return nil, opErrorf(opMatMul, ErrNotMatrix)
	}
	if a.shape[1] != b.shape[0] {
		return nil, opErrorf(opMatMul, ErrDimensionMismatch)
	}
	n, m, p := a.shape[0], a.shape[1], b.shape[1]
	out := &Dense{shape: []int{n, p}, data: make([]float64, n*p)}
	for i := 0; i < n; i++ {
		for k := 0; k < m; k++ {
			aik := a.data[i*m+k]
			if aik == 0 {
				continue // skip zero rows cheaply; result is already zeroed
			}
			for j := 0; j < p; j++ {
				out.data[i*p+j] += aik * b.data[k*p+j]
			}
		}
	}

	return out, nil
}

// Transpose returns the transpose of a 2-D tensor.
// Complexity: O(rows·cols).
func Transpose(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, opErrorf(opTrans, ErrNilTensor)
	}
	if a.Rank() != 2 {
		return nil, opErrorf(opTrans, ErrNotMatrix)
	}
	rows, cols := a.shape[0], a.shape[1]
	out := &Dense{shape: []int{cols, rows}, data: make([]float64, rows*cols)}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[j*rows+i] = a.data[i*cols+j]
		}
	}

	return out, nil
}

// Package tensor: Dense is the concrete row-major array type.
// This file declares the type, constructors, and element-level accessors.
// Linear-algebra kernels live in ops.go; batch stacking lives in stack.go.

package tensor

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a row-major N-dimensional array of float64 values.
// shape holds the dimension sizes; data holds prod(shape) elements with the
// last axis varying fastest. Dense values are treated as immutable by every
// kernel in this package: operations allocate fresh results.
type Dense struct {
	shape []int     // dimension sizes, all > 0
	data  []float64 // flat backing storage, length == prod(shape)
}

// New creates a zero-initialized tensor of the given shape.
// Stage 1 (Validate): at least one dimension, all dimensions > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(prod(shape)) time and memory.
func New(shape ...int) (*Dense, error) {
	if len(shape) == 0 {
		return nil, ErrBadShape
	}
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return nil, ErrBadShape
		}
		n *= d
	}

	return &Dense{shape: append([]int(nil), shape...), data: make([]float64, n)}, nil
}

// FromSlice creates a tensor of the given shape backed by a copy of data.
// The data length must equal prod(shape); all values must be finite.
// Returns ErrBadShape, ErrDimensionMismatch, or ErrNaNInf on violation.
func FromSlice(shape []int, data []float64) (*Dense, error) {
	t, err := New(shape...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(t.data) {
		return nil, fmt.Errorf("FromSlice: want %d values, got %d: %w", len(t.data), len(data), ErrDimensionMismatch)
	}
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNaNInf
		}
	}
	copy(t.data, data)

	return t, nil
}

// FromRows creates a 2-D tensor from a rectangular slice of rows.
// Returns ErrBadShape on an empty or ragged input, ErrNaNInf on non-finite values.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: ragged row: %w", ErrBadShape)
		}
		flat = append(flat, row...)
	}

	return FromSlice([]int{len(rows), cols}, flat)
}

// Vector creates a 1-D tensor backed by a copy of data.
// An empty slice yields ErrBadShape; non-finite values yield ErrNaNInf.
func Vector(data []float64) (*Dense, error) {
	return FromSlice([]int{len(data)}, data)
}

// Identity creates the n×n identity matrix.
// Complexity: O(n²) time and memory.
func Identity(n int) (*Dense, error) {
	t, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		t.data[i*n+i] = 1
	}

	return t, nil
}

// Shape returns a copy of the dimension sizes.
// Complexity: O(rank).
func (t *Dense) Shape() []int {
	return append([]int(nil), t.shape...)
}

// Rank returns the number of dimensions.
func (t *Dense) Rank() int { return len(t.shape) }

// Len returns the total number of elements.
func (t *Dense) Len() int { return len(t.data) }

// TrailingDim returns the size of the last axis.
// For batch-stacked tensors this skips any leading batch dimensions, which is
// exactly the tolerance the factor core needs for stacked whitening arrays.
func (t *Dense) TrailingDim() int { return t.shape[len(t.shape)-1] }

// offset computes the flat index for a full index tuple or returns ErrOutOfRange.
// Stage 1 (Validate): len(idx) == rank and 0 ≤ idx[k] < shape[k] for all k.
// Stage 2 (Execute): accumulate row-major offset.
// Complexity: O(rank).
func (t *Dense) offset(idx ...int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, fmt.Errorf("index rank %d vs tensor rank %d: %w", len(idx), len(t.shape), ErrOutOfRange)
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= t.shape[k] {
			return 0, fmt.Errorf("index %d on axis %d (size %d): %w", i, k, t.shape[k], ErrOutOfRange)
		}
		off = off*t.shape[k] + i
	}

	return off, nil
}

// At retrieves the element at the given full index tuple.
// Returns ErrOutOfRange on a bad index or rank mismatch.
func (t *Dense) At(idx ...int) (float64, error) {
	off, err := t.offset(idx...)
	if err != nil {
		return 0, err
	}

	return t.data[off], nil
}

// Set assigns value v at the given full index tuple.
// Returns ErrOutOfRange on a bad index and ErrNaNInf on a non-finite value.
func (t *Dense) Set(v float64, idx ...int) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	off, err := t.offset(idx...)
	if err != nil {
		return err
	}
	t.data[off] = v

	return nil
}

// Data returns a copy of the flat backing storage in row-major order.
// The copy keeps Dense values immutable from the caller's perspective.
func (t *Dense) Data() []float64 {
	return append([]float64(nil), t.data...)
}

// Clone returns a deep copy.
// Complexity: O(len) time and memory.
func (t *Dense) Clone() *Dense {
	return &Dense{shape: append([]int(nil), t.shape...), data: append([]float64(nil), t.data...)}
}

// Equal reports exact shape and value equality.
func (t *Dense) Equal(other *Dense) bool {
	return t.EqualApprox(other, 0)
}

// EqualApprox reports shape equality and per-element |a-b| ≤ eps.
func (t *Dense) EqualApprox(other *Dense, eps float64) bool {
	if other == nil || len(t.shape) != len(other.shape) {
		return false
	}
	for k := range t.shape {
		if t.shape[k] != other.shape[k] {
			return false
		}
	}
	for i := range t.data {
		if math.Abs(t.data[i]-other.data[i]) > eps {
			return false
		}
	}

	return true
}

// sameShape reports whether two tensors have identical shapes.
// Internal helper shared by elementwise kernels.
func sameShape(a, b *Dense) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for k := range a.shape {
		if a.shape[k] != b.shape[k] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// 1-D tensors print as "[a, b]"; higher ranks print shape plus flat data.
func (t *Dense) String() string {
	var b strings.Builder
	if len(t.shape) == 2 {
		for i := 0; i < t.shape[0]; i++ { // iterate over rows
			b.WriteString("[")
			for j := 0; j < t.shape[1]; j++ {
				if j > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "%g", t.data[i*t.shape[1]+j])
			}
			b.WriteString("]\n")
		}

		return b.String()
	}
	fmt.Fprintf(&b, "%v%v", t.shape, t.data)

	return b.String()
}

// Package tensor_test contains unit tests for the Dense type:
// construction, indexing, cloning, and equality.
package tensor_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlopt/tensor"
	"github.com/stretchr/testify/require"
)

// TestNewBadShape ensures that New rejects empty and non-positive shapes.
func TestNewBadShape(t *testing.T) {
	_, err := tensor.New()                     // no dimensions at all
	require.ErrorIs(t, err, tensor.ErrBadShape) // expect ErrBadShape

	_, err = tensor.New(3, 0)                   // zero-sized axis
	require.ErrorIs(t, err, tensor.ErrBadShape) // expect ErrBadShape

	_, err = tensor.New(-1)                     // negative axis
	require.ErrorIs(t, err, tensor.ErrBadShape) // expect ErrBadShape
}

// TestNewZeroInitialized verifies that New yields an all-zero tensor of the right shape.
func TestNewZeroInitialized(t *testing.T) {
	m, err := tensor.New(2, 3)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, m.Shape()) // shape preserved
	require.Equal(t, 2, m.Rank())
	require.Equal(t, 6, m.Len())
	require.Equal(t, 3, m.TrailingDim())
	for _, v := range m.Data() {
		require.Zero(t, v) // all elements start at zero
	}
}

// TestFromSliceValidation covers length mismatch and non-finite ingestion.
func TestFromSliceValidation(t *testing.T) {
	_, err := tensor.FromSlice([]int{2, 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, tensor.ErrDimensionMismatch) // 3 values for a 4-slot shape

	_, err = tensor.FromSlice([]int{2}, []float64{1, math.NaN()})
	require.ErrorIs(t, err, tensor.ErrNaNInf) // NaN rejected at ingestion

	_, err = tensor.FromSlice([]int{2}, []float64{1, math.Inf(1)})
	require.ErrorIs(t, err, tensor.ErrNaNInf) // +Inf rejected at ingestion
}

// TestFromRows verifies rectangular construction and ragged rejection.
func TestFromRows(t *testing.T) {
	m, err := tensor.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, []int{2, 2}, m.Shape())
	require.Equal(t, []float64{1, 2, 3, 4}, m.Data()) // row-major layout

	_, err = tensor.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, tensor.ErrBadShape) // ragged rows rejected

	_, err = tensor.FromRows(nil)
	require.ErrorIs(t, err, tensor.ErrBadShape) // empty input rejected
}

// TestIdentity verifies the identity constructor.
func TestIdentity(t *testing.T) {
	eye, err := tensor.Identity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := eye.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, 1.0, v) // diagonal is one
			} else {
				require.Zero(t, v) // off-diagonal is zero
			}
		}
	}
}

// TestAtSetBounds ensures At/Set return ErrOutOfRange rather than panicking.
func TestAtSetBounds(t *testing.T) {
	m, err := tensor.New(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)                           // row out of range
	require.ErrorIs(t, err, tensor.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0)                              // rank mismatch
	require.ErrorIs(t, err, tensor.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(1.5, 0, -1)                       // negative column
	require.ErrorIs(t, err, tensor.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(math.NaN(), 0, 0)             // non-finite write
	require.ErrorIs(t, err, tensor.ErrNaNInf) // expect ErrNaNInf
}

// TestSetGet validates Set followed by At on valid indices.
func TestSetGet(t *testing.T) {
	m, err := tensor.New(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(7.89, 1, 2)) // write element

	v, err := m.At(1, 2) // read it back
	require.NoError(t, err)
	require.Equal(t, 7.89, v)
}

// TestCloneIndependence ensures Clone returns a deep copy with no shared storage.
func TestCloneIndependence(t *testing.T) {
	m, err := tensor.FromRows([][]float64{{1, 0}, {0, 2}})
	require.NoError(t, err)

	clone := m.Clone()
	require.NoError(t, clone.Set(9, 0, 0)) // mutate the clone only

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig) // original unchanged
}

// TestEqualApprox covers exact and tolerant comparison plus shape inequality.
func TestEqualApprox(t *testing.T) {
	a, err := tensor.Vector([]float64{1, 2})
	require.NoError(t, err)
	b, err := tensor.Vector([]float64{1, 2 + 1e-9})
	require.NoError(t, err)
	c, err := tensor.New(2, 1)
	require.NoError(t, err)

	require.False(t, a.Equal(b))              // exact comparison fails
	require.True(t, a.EqualApprox(b, 1e-8))   // tolerant comparison passes
	require.False(t, a.EqualApprox(c, 1e-8))  // different shapes never equal
	require.False(t, a.EqualApprox(nil, 1e-8)) // nil never equal
}

// TestStringMatrix checks the 2-D debug formatting.
func TestStringMatrix(t *testing.T) {
	m, err := tensor.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// Package autodiff_test contains unit tests for the Dual scalar:
// chain-rule arithmetic and constant/seeded gradient handling.
package autodiff_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlopt/autodiff"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

// TestConstHasNoGradient ensures constants carry a nil gradient row.
func TestConstHasNoGradient(t *testing.T) {
	c := autodiff.Const(3.5)
	require.Equal(t, 3.5, c.Val)
	require.Nil(t, c.Grad)           // constants allocate nothing
	require.Zero(t, c.Partial(0))    // and report zero partials
}

// TestVarSeeding verifies the unit seed placement.
func TestVarSeeding(t *testing.T) {
	x := autodiff.Var(2, 3, 1)
	require.Equal(t, 2.0, x.Val)
	require.Equal(t, []float64{0, 1, 0}, x.Grad) // derivative 1 in direction 1

	require.Panics(t, func() { autodiff.Var(0, 2, 5) }) // bad seed index is a programmer error
}

// TestAddSubGradients checks linearity of Add and Sub.
func TestAddSubGradients(t *testing.T) {
	x := autodiff.Var(1, 2, 0)
	y := autodiff.Var(2, 2, 1)

	s := x.Add(y)
	require.Equal(t, 3.0, s.Val)
	require.Equal(t, []float64{1, 1}, s.Grad) // d(x+y) = dx + dy

	d := x.Sub(y)
	require.Equal(t, -1.0, d.Val)
	require.Equal(t, []float64{1, -1}, d.Grad) // d(x−y) = dx − dy

	// Constant + seeded keeps the seeded gradient untouched.
	c := autodiff.Const(10).Add(x)
	require.Equal(t, 11.0, c.Val)
	require.Equal(t, []float64{1, 0}, c.Grad)
}

// TestMulProductRule verifies d(x·y) = y·dx + x·dy.
func TestMulProductRule(t *testing.T) {
	x := autodiff.Var(3, 2, 0)
	y := autodiff.Var(4, 2, 1)

	p := x.Mul(y)
	require.Equal(t, 12.0, p.Val)
	require.Equal(t, []float64{4, 3}, p.Grad) // product rule
}

// TestScaleNeg verifies scalar multiplication and negation.
func TestScaleNeg(t *testing.T) {
	x := autodiff.Var(2, 1, 0)

	s := x.Scale(-3)
	require.Equal(t, -6.0, s.Val)
	require.Equal(t, []float64{-3}, s.Grad)

	n := x.Neg()
	require.Equal(t, -2.0, n.Val)
	require.Equal(t, []float64{-1}, n.Grad)
}

// TestSinCosChainRule verifies the trigonometric derivatives at a known angle.
func TestSinCosChainRule(t *testing.T) {
	theta := math.Pi / 6
	x := autodiff.Var(theta, 1, 0)

	s := x.Sin()
	require.InDelta(t, math.Sin(theta), s.Val, eps)
	require.InDelta(t, math.Cos(theta), s.Grad[0], eps) // d sin = cos

	c := x.Cos()
	require.InDelta(t, math.Cos(theta), c.Val, eps)
	require.InDelta(t, -math.Sin(theta), c.Grad[0], eps) // d cos = −sin
}

// TestMixedWidthPanics ensures mixing gradient widths is caught loudly.
func TestMixedWidthPanics(t *testing.T) {
	x := autodiff.Var(1, 2, 0)
	y := autodiff.Var(1, 3, 0)
	require.Panics(t, func() { x.Add(y) }) // mismatched seed widths
}

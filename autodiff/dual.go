// Package autodiff: the Dual scalar and its chain-rule arithmetic.
// A nil Grad means "constant": zero derivative in every seed direction.
// Gradient rows of two non-constant operands must share a width; mixing
// widths is a programmer error and panics in the private combiner.

package autodiff

import (
	"fmt"
	"math"
)

// Dual is a forward-mode scalar: a value plus its partial derivatives with
// respect to the active seed directions. The zero value is the constant 0.
type Dual struct {
	// Val is the primal value.
	Val float64

	// Grad holds one partial derivative per seed direction.
	// nil represents a constant (all partials zero).
	Grad []float64
}

// Const returns a constant dual with no gradient row.
func Const(v float64) Dual {
	return Dual{Val: v}
}

// Var returns a seeded dual: value v, derivative 1 in direction index out of
// width total directions. Panics if index is outside [0, width).
func Var(v float64, width, index int) Dual {
	if index < 0 || index >= width {
		panic(fmt.Sprintf("autodiff: seed index %d out of width %d", index, width))
	}
	g := make([]float64, width)
	g[index] = 1

	return Dual{Val: v, Grad: g}
}

// combine computes sa·a.Grad + sb·b.Grad, treating nil as zero.
// Returns nil when both operands are constants.
func combine(a, b []float64, sa, sb float64) []float64 {
	if a == nil && b == nil {
		return nil
	}
	width := len(a)
	if b != nil {
		if a != nil && len(b) != len(a) {
			panic("autodiff: mixed gradient widths")
		}
		width = len(b)
	}
	out := make([]float64, width)
	for i := range a {
		out[i] = sa * a[i]
	}
	for i := range b {
		out[i] += sb * b[i]
	}

	return out
}

// Add returns a + b.
func (a Dual) Add(b Dual) Dual {
	return Dual{Val: a.Val + b.Val, Grad: combine(a.Grad, b.Grad, 1, 1)}
}

// Sub returns a − b.
func (a Dual) Sub(b Dual) Dual {
	return Dual{Val: a.Val - b.Val, Grad: combine(a.Grad, b.Grad, 1, -1)}
}

// Mul returns a·b with the product rule applied to the gradient rows.
func (a Dual) Mul(b Dual) Dual {
	return Dual{Val: a.Val * b.Val, Grad: combine(a.Grad, b.Grad, b.Val, a.Val)}
}

// Scale returns s·a for a plain scalar s.
func (a Dual) Scale(s float64) Dual {
	return Dual{Val: s * a.Val, Grad: combine(a.Grad, nil, s, 0)}
}

// Neg returns −a.
func (a Dual) Neg() Dual {
	return a.Scale(-1)
}

// Sin returns sin(a) with gradient cos(a)·a'.
func (a Dual) Sin() Dual {
	return Dual{Val: math.Sin(a.Val), Grad: combine(a.Grad, nil, math.Cos(a.Val), 0)}
}

// Cos returns cos(a) with gradient −sin(a)·a'.
func (a Dual) Cos() Dual {
	return Dual{Val: math.Cos(a.Val), Grad: combine(a.Grad, nil, -math.Sin(a.Val), 0)}
}

// Partial returns the derivative in seed direction i, zero for constants.
func (a Dual) Partial(i int) float64 {
	if a.Grad == nil || i < 0 || i >= len(a.Grad) {
		return 0
	}

	return a.Grad[i]
}

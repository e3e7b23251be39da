// Package variable provides concrete Variable implementations for lvlopt:
// real vectors with a trivial tangent space and planar rotations (SO2) with
// a one-dimensional tangent space.
//
// 🚀 What is variable?
//
//	Concrete unknowns for factor graphs:
//	  • Vector — R^n; ambient dim == local dim == n; retraction is addition
//	  • SO2    — planar rotation stored as a unit complex (cos θ, sin θ);
//	    ambient dim 2, local dim 1; retraction composes rotations
//
// Each kind registers a placeholder constructor in core at definition time
// (SO2 in init, Vector once per dimension at first construction), so the
// decomposition machinery can synthesize type-only placeholders by name.
//
// SO2 is the minimal manifold-valued variable: differentiating a residual in
// its ambient (cos, sin) coordinates would be constrained and rank-deficient,
// while the local 1-D tangent keeps Jacobians exact and well-conditioned.
package variable

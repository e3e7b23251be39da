// Package autodiff implements forward-mode automatic differentiation with
// dual numbers, producing exact (non-finite-difference) derivatives.
//
// 🚀 What is autodiff?
//
//	A dual number carries a value together with its partial derivatives with
//	respect to a fixed set of seed directions. Arithmetic on duals applies
//	the chain rule alongside the value computation, so evaluating a function
//	once on seeded duals yields its full Jacobian — exactly, in one pass.
//
// ✨ Key features:
//   - Dual scalar with value + gradient row (Add/Sub/Mul/Scale/Neg/Sin/Cos)
//   - Vector form with Lift (constant embedding) and Values (extraction)
//   - MatVec against constant tensor.Dense matrices
//   - JacobianAtZero: jointly differentiate a multi-input vector function
//     at all-zero inputs, returning one Jacobian block per input
//
// ⚙️ Usage:
//
//	f := func(deltas []autodiff.Vector) (autodiff.Vector, error) {
//	  return autodiff.AddVec(x, deltas[0]) // x is a lifted constant
//	}
//	blocks, err := autodiff.JacobianAtZero(f, []int{3})
//
// Constants carry a nil gradient and cost nothing to combine; only seeded
// coordinates allocate gradient rows. All operations are pure.
package autodiff

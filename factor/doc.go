// Package factor implements the factor abstraction for nonlinear
// least-squares factor graphs: differentiable residual models over small
// sets of variables, decomposable into stackable numeric fields.
//
// 🚀 What is factor?
//
//	The single-factor core of an optimizer:
//	  • Factor — the contract every concrete residual model implements
//	  • Base — immutable variables + whitening matrix, embedded by
//	    concrete factors; error dimension derived from the whitening shape
//	  • Flatten / Unflatten — lossless split into ordered numeric fields
//	    plus non-numeric metadata, and its inverse (placeholder variables
//	    carry type identity only)
//	  • GroupKeyOf — the shape/type signature: equal keys ⇔ stackable
//	  • Jacobians — error derivatives w.r.t. each variable's local tangent
//	    perturbation, forward-mode exact by default, analytic on override
//	  • Stack / UnstackFactors — batch same-keyed factors field-by-field
//	  • LinearFactor, PriorFactor — reference residual models
//
// ✨ Key properties:
//   - Pure and stateless per call: ComputeError and Jacobians are
//     side-effect-free and safe to run concurrently across factors
//   - Fail fast: arity and shape violations are construction or
//     decomposition errors, never silent recoveries
//   - Jacobians are taken in each variable's minimal tangent space, which
//     keeps manifold-valued variables (rotations) exact and well-conditioned
//
// ⚙️ Usage:
//
//	x, _ := variable.NewVector(2)
//	A, _ := tensor.Identity(2)
//	b, _ := tensor.Vector([]float64{1, 1})
//	f, _ := factor.NewLinearFactor([]core.Variable{x}, []*tensor.Dense{A}, b, A)
//	err, _ := factor.Error(f, point)          // residual at point
//	J, _ := factor.Jacobians(f, point)        // one block per variable
//
// Whitening (scale_tril_inv) is carried, not applied: the optimizer whitens
// residuals when it assembles the global system.
//
// Errors:
//
//	ErrNilFactor          - nil factor passed to a package function.
//	ErrNoVariables        - factor constructed with no variables.
//	ErrArityMismatch      - value count differs from variable count.
//	ErrShapeInconsistent  - whitening/field shapes disagree with error_dim.
//	ErrFieldCountMismatch - unflatten given wrong numeric field count.
//	ErrGroupKeyMismatch   - stacking factors with unequal group keys.
//	ErrEmptyGroup         - stacking an empty factor list.
//	ErrNonTrivialTangent  - prior factor over a manifold-valued variable.
package factor

// Package lvlopt is the factor core for nonlinear least-squares factor-graph
// optimization — the single-factor kernel under problems like pose-graph
// SLAM and bundle adjustment.
//
// 🚀 What is lvlopt?
//
//	A modern, zero-cgo library that brings together:
//		• Factor abstraction: differentiable residual models over small
//		  sets of unknown variables, weighted by a whitening transform
//		• Decomposition: lossless flatten/unflatten into stackable numeric
//		  fields plus non-numeric metadata
//		• Group keys: shape/type signatures — equal keys mean "stack these
//		  factors into one batched array and evaluate them together"
//		• Local Jacobians: exact forward-mode derivatives with respect to
//		  each variable's minimal tangent space, manifold-safe by design
//		• Reference models: LinearFactor (r = Σ Aᵢxᵢ − b) and PriorFactor
//
// ✨ Why choose lvlopt?
//
//   - Exact derivatives – dual-number forward mode, no finite differences
//   - Rock-solid guarantees – immutable factors, fail-fast validation,
//     sentinel errors matched via errors.Is
//   - Pure Go – no cgo, no BLAS, no hidden deps
//   - Concurrent by construction – evaluation is pure and stateless per call
//
// Under the hood, everything is organized under five subpackages:
//
//	tensor/   — dense N-D float64 arrays, 2-D kernels, batch stacking
//	autodiff/ — dual numbers and the Jacobian-at-zero driver
//	core/     — Variable capability, kind registries, GroupKey
//	variable/ — concrete variables: Vector (R^n) and SO2 (planar rotation)
//	factor/   — Factor, Base, flatten/unflatten, group keys, Jacobians,
//	            LinearFactor, PriorFactor, Stack/Unstack
//
// Quick ASCII example:
//
//	    x₀ ──[prior]        x₀ ──[linear]── x₁
//
//	a prior anchors x₀; a linear factor relates x₀ and x₁.
//
// The optimizer loop (graph assembly, whitening, sparse linearization, the
// linear solve) lives above this library: lvlopt supplies the per-factor
// contract it consumes.
//
//	go get github.com/katalvlaran/lvlopt
package lvlopt

// Package tensor provides dense N-dimensional float64 arrays and the small
// linear-algebra kernel set used across lvlopt.
//
// 🚀 What is tensor?
//
//	A zero-dependency, row-major dense array type with:
//	  • N-D shapes — vectors, matrices, and batch-stacked arrays
//	  • 2-D kernels: MatVec, MatMul, Transpose
//	  • Elementwise kernels: Add, Sub, Scale
//	  • Stack / Unstack along a new leading batch axis
//	  • Strict fail-fast shape validation with sentinel errors
//
// ✨ Why hand-rolled?
//
//   - Pure Go — no cgo, no BLAS, no hidden deps
//   - Deterministic — identical inputs yield identical bit patterns
//   - Small — only the kernels the factor core actually needs
//
// ⚙️ Usage:
//
//	A, _ := tensor.FromRows([][]float64{{1, 0}, {0, 1}})
//	x := tensor.Vector([]float64{1, 1})
//	y, err := tensor.MatVec(A, x)
//	if err != nil {
//	  // handle ErrDimensionMismatch
//	}
//
// All operations return fresh tensors; operands are never mutated.
// Errors are package-level sentinels matched via errors.Is.
package tensor

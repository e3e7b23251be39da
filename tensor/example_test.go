package tensor_test

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/tensor"
)

// ExampleMatVec multiplies a 2×2 matrix by a vector.
func ExampleMatVec() {
	a, _ := tensor.FromRows([][]float64{{1, 2}, {3, 4}})
	x, _ := tensor.Vector([]float64{5, 6})

	y, _ := tensor.MatVec(a, x)
	fmt.Println(y.Data())
	// Output: [17 39]
}

// ExampleStack batches two matrices along a new leading axis: the trailing
// dimension is unchanged, which is what keeps stacked whitening matrices
// reporting the same error dimension as their members.
func ExampleStack() {
	a, _ := tensor.Identity(2)
	b, _ := tensor.Identity(2)

	s, _ := tensor.Stack(a, b)
	fmt.Println("shape:", s.Shape())
	fmt.Println("trailing:", s.TrailingDim())
	// Output:
	// shape: [2 2 2]
	// trailing: 2
}

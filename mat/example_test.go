package mat_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmath/mat"
	"github.com/katalvlaran/lvlmath/vec"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleMat2_Inverse
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Invert a 2×2 matrix and undo its action on a vector.
//
// Use case:
//
//	Mapping points back from a transformed space.
//
// Complexity: O(1).
func ExampleMat2_Inverse() {
	m := mat.M2(vec.V2(4.0, 5.0), vec.V2(6.0, 7.0))
	inv := m.Inverse()

	p := m.MulVec(vec.V2(1.0, 1.0)) // forward
	q := inv.MulVec(p)              // and back

	fmt.Printf("det=%v\n", m.Det())
	fmt.Printf("p=(%v, %v)\n", p.X, p.Y)
	fmt.Printf("q=(%v, %v)\n", q.X, q.Y)
	// Output:
	// det=-2
	// p=(10, 12)
	// q=(1, 1)
}

// ExampleMat3x2_Transpose shows shape-flipping on a non-square matrix.
func ExampleMat3x2_Transpose() {
	m := mat.M3x2(vec.V3(1.0, 2.0, 3.0), vec.V3(4.0, 5.0, 6.0))
	tr := m.Transpose()

	fmt.Printf("m is 3x2, At(2,1)=%v\n", m.At(2, 1))
	fmt.Printf("tr is 2x3, At(1,2)=%v\n", tr.At(1, 2))
	// Output:
	// m is 3x2, At(2,1)=6
	// tr is 2x3, At(1,2)=6
}

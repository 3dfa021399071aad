package vec_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmath/vec"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleVec3_Normalize
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Normalize a direction vector and confirm the unit-length invariant,
//	then project another vector onto it with Dot.
//
// Use case:
//
//	Lighting-style math: surface normal dotted with a light direction.
//
// Complexity: O(1) per operation.
func ExampleVec3_Normalize() {
	n := vec.V3(1.0, 2.0, 2.0).Normalize()
	light := vec.V3(0.0, 0.0, 3.0)

	fmt.Printf("n=(%.4f, %.4f, %.4f)\n", n.X, n.Y, n.Z)
	fmt.Printf("len=%.4f\n", n.Length())
	fmt.Printf("n·light=%.4f\n", n.Dot(light))
	// Output:
	// n=(0.3333, 0.6667, 0.6667)
	// len=1.0000
	// n·light=2.0000
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleVec3_Cross
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Build an orthogonal frame from two axes using the right-handed cross
//	product.
func ExampleVec3_Cross() {
	x := vec.V3(1.0, 0.0, 0.0)
	y := vec.V3(0.0, 1.0, 0.0)
	z := x.Cross(y)

	fmt.Printf("z=(%v, %v, %v)\n", z.X, z.Y, z.Z)
	fmt.Printf("orthogonal=%v\n", z.Dot(x) == 0 && z.Dot(y) == 0)
	// Output:
	// z=(0, 0, 1)
	// orthogonal=true
}

// ExampleVec2_Mix interpolates halfway between two points.
func ExampleVec2_Mix() {
	a := vec.V2(0.0, 0.0)
	b := vec.V2(10.0, -4.0)
	m := a.Mix(b, 0.5)

	fmt.Printf("m=(%v, %v)\n", m.X, m.Y)
	// Output:
	// m=(5, -2)
}

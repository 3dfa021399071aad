// Package mat provides fixed-size column-major matrices — 2×2 through 4×4,
// square and non-square — generic over the scalar contract.
//
// 🚀 What is mat?
//
//	A Matrix with R rows and C columns is stored as an array of C column
//	vectors of length R, representing a linear map from R^C to R^R. The
//	package covers:
//	  • all nine shapes MatRxC with R,C ∈ {2,3,4} (MatN for the squares)
//	  • matrix×vector and the full conforming matrix×matrix product set
//	  • Transpose (shape-flipping), componentwise Add/Sub/MulS
//	  • Det and Inverse for the square shapes (cofactor / adjugate)
//
// ✨ Guarantees:
//   - Shapes are types: non-conforming products cannot compile
//   - Value semantics — copied, never shared, componentwise ==
//   - Total operations: inverting a singular matrix divides by a zero
//     determinant and propagates ±Inf/NaN, it does not fail — matching the
//     no-error numeric style of the rest of the kernel
//
// ⚙️ Usage:
//
//	import (
//		"github.com/katalvlaran/lvlmath/mat"
//		"github.com/katalvlaran/lvlmath/vec"
//	)
//
//	m := mat.M2(vec.V2(4.0, 5.0), vec.V2(6.0, 7.0)) // columns
//	inv := m.Inverse()
//	id := m.Mul(inv)                                // ≈ Identity2
//
// Naming: MulVec maps a Vec<C>; Mul multiplies same-shape squares;
// MulM{RxC} names the right operand's shape for every other pairing.
// At(r, c) reads row r of column c and panics outside the shape, mirroring
// slice semantics.
//
// Every operation is O(1) with no allocation and safe for unlimited
// concurrent callers.
package mat

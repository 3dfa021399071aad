// Package vec provides fixed-arity vectors of 2, 3 and 4 components,
// generic over the scalar contract, with the algebra the noise and matrix
// kernels are built on.
//
// 🚀 What is vec?
//
//	Value-semantic containers — copied, never shared — with:
//	  • componentwise arithmetic against vectors (Add, Sub, Mul, Div)
//	    and against scalars (AddS, SubS, MulS, DivS)
//	  • Dot, Cross (3-component only), Length, LengthSq, Normalize
//	  • linear interpolation: Mix (scalar weight), MixV (per-component)
//	  • componentwise Floor, Fract, Abs, Neg
//
// ✨ Guarantees:
//   - Arity is part of the type: mismatched lengths cannot compile
//   - Equality is componentwise, directly via ==
//   - All operations are pure and total; the one documented degenerate case
//     is Normalize on a zero-length vector, which yields NaN components —
//     callers guard degenerate input, the kernel does not
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlmath/vec"
//
//	a := vec.V3(1.0, 2.0, 2.0)
//	u := a.Normalize()          // length 1
//	c := a.Cross(vec.V3(0.0, 0.0, 1.0))
//
// Positional access is available through At(i); an index outside 0..N-1
// panics, mirroring slice semantics.
//
// Every operation is O(1) with no allocation and is safe for unlimited
// concurrent callers.
package vec

// Package scalar defines the floating-point capability contract that every
// other lvlmath package is generic over, together with the elementary
// functions the algebra and noise kernels consume.
//
// 🚀 What is the scalar contract?
//
//	A type T satisfies the contract when it is one of the two common binary
//	floating-point widths (float32, float64) and therefore supports
//	total-ordered comparison, the four arithmetic operators, and the
//	elementary functions Abs, Floor, Fract, Sqrt and Pow. The Float
//	constraint encodes exactly that, so every formula in vec, mat and noise
//	compiles once and monomorphizes per width with no runtime dispatch.
//
// ✨ Key properties:
//   - Total – every function is defined for every input; no error returns
//   - IEEE faithful – NaN and ±Inf propagate per IEEE-754, never special-cased
//   - Width-native – float32 instantiations use float32-native math
//     (github.com/chewxy/math32), avoiding double-rounding through float64
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlmath/scalar"
//
//	func halfway[T scalar.Float](a, b T) T {
//		return scalar.Mix(a, b, 0.5)
//	}
//
// All functions are O(1), pure and safe for unlimited concurrent callers.
package scalar

package vec_test

import (
	"testing"

	"github.com/katalvlaran/lvlmath/vec"
)

// sink prevents the compiler from optimizing benchmarked ops away.
var sink float64

// BenchmarkVec3_Dot measures the dot product hot path.
func BenchmarkVec3_Dot(b *testing.B) {
	u := vec.V3(1.0, 2.0, 3.0)
	w := vec.V3(4.0, 5.0, 6.0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = u.Dot(w)
	}
}

// BenchmarkVec3_Normalize measures normalize (one sqrt + one divide).
func BenchmarkVec3_Normalize(b *testing.B) {
	u := vec.V3(1.0, 2.0, 3.0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = u.Normalize().X
	}
}

// BenchmarkVec4_Add measures plain componentwise arithmetic.
func BenchmarkVec4_Add(b *testing.B) {
	u := vec.V4(1.0, 2.0, 3.0, 4.0)
	w := vec.V4(5.0, 6.0, 7.0, 8.0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = u.Add(w).X
	}
}

// BenchmarkVec3_Cross measures the 3-component cross product.
func BenchmarkVec3_Cross(b *testing.B) {
	u := vec.V3(1.0, 2.0, 3.0)
	w := vec.V3(-3.0, 2.0, -1.0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = u.Cross(w).Z
	}
}

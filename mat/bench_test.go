package mat_test

import (
	"testing"

	"github.com/katalvlaran/lvlmath/mat"
	"github.com/katalvlaran/lvlmath/vec"
)

var sink float64

// BenchmarkMat4_Mul measures the 4×4 product hot path.
func BenchmarkMat4_Mul(b *testing.B) {
	m := m4Sample()
	n := m.Transpose()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = m.Mul(n).At(0, 0)
	}
}

// BenchmarkMat4_Inverse measures the adjugate inverse.
func BenchmarkMat4_Inverse(b *testing.B) {
	m := m4Sample()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = m.Inverse().At(0, 0)
	}
}

// BenchmarkMat3_MulVec measures matrix-vector application.
func BenchmarkMat3_MulVec(b *testing.B) {
	m := mat.Identity3[float64]().MulS(2.0)
	v := vec.V3(1.0, 2.0, 3.0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = m.MulVec(v).X
	}
}

// BenchmarkMat4_Det measures cofactor-expansion determinant cost.
func BenchmarkMat4_Det(b *testing.B) {
	m := m4Sample()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = m.Det()
	}
}

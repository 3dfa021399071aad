package mat

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/vec"
)

// Mat2 is a 2×2 column-major matrix: two column vectors of length 2.
type Mat2[T scalar.Float] [2]vec.Vec2[T]

// M2 constructs a Mat2 from its two columns.
func M2[T scalar.Float](c0, c1 vec.Vec2[T]) Mat2[T] {
	return Mat2[T]{c0, c1}
}

// Identity2 returns the 2×2 identity matrix.
func Identity2[T scalar.Float]() Mat2[T] {
	return Mat2[T]{
		vec.V2[T](1, 0),
		vec.V2[T](0, 1),
	}
}

// At returns the element at row r, column c.
func (m Mat2[T]) At(r, c int) T {
	return m[c].At(r)
}

// Add returns the componentwise sum m + n.
func (m Mat2[T]) Add(n Mat2[T]) Mat2[T] {
	return Mat2[T]{m[0].Add(n[0]), m[1].Add(n[1])}
}

// Sub returns the componentwise difference m − n.
func (m Mat2[T]) Sub(n Mat2[T]) Mat2[T] {
	return Mat2[T]{m[0].Sub(n[0]), m[1].Sub(n[1])}
}

// MulS scales every element by s.
func (m Mat2[T]) MulS(s T) Mat2[T] {
	return Mat2[T]{m[0].MulS(s), m[1].MulS(s)}
}

// MulVec applies the linear map to v: the columns of m weighted by the
// components of v.
func (m Mat2[T]) MulVec(v vec.Vec2[T]) vec.Vec2[T] {
	return m[0].MulS(v.X).Add(m[1].MulS(v.Y))
}

// Mul returns the matrix product m · n.
func (m Mat2[T]) Mul(n Mat2[T]) Mat2[T] {
	return Mat2[T]{m.MulVec(n[0]), m.MulVec(n[1])}
}

// MulM2x3 returns the 2×2 · 2×3 product.
func (m Mat2[T]) MulM2x3(n Mat2x3[T]) Mat2x3[T] {
	return Mat2x3[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2])}
}

// MulM2x4 returns the 2×2 · 2×4 product.
func (m Mat2[T]) MulM2x4(n Mat2x4[T]) Mat2x4[T] {
	return Mat2x4[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2]), m.MulVec(n[3])}
}

// Transpose returns mᵀ.
func (m Mat2[T]) Transpose() Mat2[T] {
	return Mat2[T]{
		vec.V2(m[0].X, m[1].X),
		vec.V2(m[0].Y, m[1].Y),
	}
}

// Det returns the determinant.
func (m Mat2[T]) Det() T {
	return m[0].X*m[1].Y - m[0].Y*m[1].X
}

// Inverse returns m⁻¹ via the adjugate/determinant method. A zero
// determinant propagates ±Inf/NaN components; it is not an error.
func (m Mat2[T]) Inverse() Mat2[T] {
	invDet := 1 / m.Det()
	return Mat2[T]{
		vec.V2(m[1].Y*invDet, -m[0].Y*invDet),
		vec.V2(-m[1].X*invDet, m[0].X*invDet),
	}
}

package mat

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/vec"
)

// Mat3 is a 3×3 column-major matrix: three column vectors of length 3.
type Mat3[T scalar.Float] [3]vec.Vec3[T]

// M3 constructs a Mat3 from its three columns.
func M3[T scalar.Float](c0, c1, c2 vec.Vec3[T]) Mat3[T] {
	return Mat3[T]{c0, c1, c2}
}

// Identity3 returns the 3×3 identity matrix.
func Identity3[T scalar.Float]() Mat3[T] {
	return Mat3[T]{
		vec.V3[T](1, 0, 0),
		vec.V3[T](0, 1, 0),
		vec.V3[T](0, 0, 1),
	}
}

// At returns the element at row r, column c.
func (m Mat3[T]) At(r, c int) T {
	return m[c].At(r)
}

// Add returns the componentwise sum m + n.
func (m Mat3[T]) Add(n Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Add(n[0]), m[1].Add(n[1]), m[2].Add(n[2])}
}

// Sub returns the componentwise difference m − n.
func (m Mat3[T]) Sub(n Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Sub(n[0]), m[1].Sub(n[1]), m[2].Sub(n[2])}
}

// MulS scales every element by s.
func (m Mat3[T]) MulS(s T) Mat3[T] {
	return Mat3[T]{m[0].MulS(s), m[1].MulS(s), m[2].MulS(s)}
}

// MulVec applies the linear map to v.
func (m Mat3[T]) MulVec(v vec.Vec3[T]) vec.Vec3[T] {
	return m[0].MulS(v.X).Add(m[1].MulS(v.Y)).Add(m[2].MulS(v.Z))
}

// Mul returns the matrix product m · n.
func (m Mat3[T]) Mul(n Mat3[T]) Mat3[T] {
	return Mat3[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2])}
}

// MulM3x2 returns the 3×3 · 3×2 product.
func (m Mat3[T]) MulM3x2(n Mat3x2[T]) Mat3x2[T] {
	return Mat3x2[T]{m.MulVec(n[0]), m.MulVec(n[1])}
}

// MulM3x4 returns the 3×3 · 3×4 product.
func (m Mat3[T]) MulM3x4(n Mat3x4[T]) Mat3x4[T] {
	return Mat3x4[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2]), m.MulVec(n[3])}
}

// Transpose returns mᵀ.
func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{
		vec.V3(m[0].X, m[1].X, m[2].X),
		vec.V3(m[0].Y, m[1].Y, m[2].Y),
		vec.V3(m[0].Z, m[1].Z, m[2].Z),
	}
}

// Det returns the determinant by cofactor expansion along the first row.
func (m Mat3[T]) Det() T {
	return m[0].X*(m[1].Y*m[2].Z-m[2].Y*m[1].Z) -
		m[1].X*(m[0].Y*m[2].Z-m[2].Y*m[0].Z) +
		m[2].X*(m[0].Y*m[1].Z-m[1].Y*m[0].Z)
}

// Inverse returns m⁻¹ via the adjugate/determinant method. A zero
// determinant propagates ±Inf/NaN components; it is not an error.
func (m Mat3[T]) Inverse() Mat3[T] {
	invDet := 1 / m.Det()

	r11 := m[1].Y*m[2].Z - m[2].Y*m[1].Z
	r12 := m[2].X*m[1].Z - m[1].X*m[2].Z
	r13 := m[1].X*m[2].Y - m[2].X*m[1].Y
	r21 := m[2].Y*m[0].Z - m[0].Y*m[2].Z
	r22 := m[0].X*m[2].Z - m[2].X*m[0].Z
	r23 := m[2].X*m[0].Y - m[0].X*m[2].Y
	r31 := m[0].Y*m[1].Z - m[1].Y*m[0].Z
	r32 := m[1].X*m[0].Z - m[0].X*m[1].Z
	r33 := m[0].X*m[1].Y - m[1].X*m[0].Y

	return Mat3[T]{
		vec.V3(r11*invDet, r21*invDet, r31*invDet),
		vec.V3(r12*invDet, r22*invDet, r32*invDet),
		vec.V3(r13*invDet, r23*invDet, r33*invDet),
	}
}

package mat

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/vec"
)

// Mat4 is a 4×4 column-major matrix: four column vectors of length 4.
type Mat4[T scalar.Float] [4]vec.Vec4[T]

// M4 constructs a Mat4 from its four columns.
func M4[T scalar.Float](c0, c1, c2, c3 vec.Vec4[T]) Mat4[T] {
	return Mat4[T]{c0, c1, c2, c3}
}

// Identity4 returns the 4×4 identity matrix.
func Identity4[T scalar.Float]() Mat4[T] {
	return Mat4[T]{
		vec.V4[T](1, 0, 0, 0),
		vec.V4[T](0, 1, 0, 0),
		vec.V4[T](0, 0, 1, 0),
		vec.V4[T](0, 0, 0, 1),
	}
}

// At returns the element at row r, column c.
func (m Mat4[T]) At(r, c int) T {
	return m[c].At(r)
}

// Add returns the componentwise sum m + n.
func (m Mat4[T]) Add(n Mat4[T]) Mat4[T] {
	return Mat4[T]{m[0].Add(n[0]), m[1].Add(n[1]), m[2].Add(n[2]), m[3].Add(n[3])}
}

// Sub returns the componentwise difference m − n.
func (m Mat4[T]) Sub(n Mat4[T]) Mat4[T] {
	return Mat4[T]{m[0].Sub(n[0]), m[1].Sub(n[1]), m[2].Sub(n[2]), m[3].Sub(n[3])}
}

// MulS scales every element by s.
func (m Mat4[T]) MulS(s T) Mat4[T] {
	return Mat4[T]{m[0].MulS(s), m[1].MulS(s), m[2].MulS(s), m[3].MulS(s)}
}

// MulVec applies the linear map to v.
func (m Mat4[T]) MulVec(v vec.Vec4[T]) vec.Vec4[T] {
	return m[0].MulS(v.X).Add(m[1].MulS(v.Y)).Add(m[2].MulS(v.Z)).Add(m[3].MulS(v.W))
}

// Mul returns the matrix product m · n.
func (m Mat4[T]) Mul(n Mat4[T]) Mat4[T] {
	return Mat4[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2]), m.MulVec(n[3])}
}

// MulM4x2 returns the 4×4 · 4×2 product.
func (m Mat4[T]) MulM4x2(n Mat4x2[T]) Mat4x2[T] {
	return Mat4x2[T]{m.MulVec(n[0]), m.MulVec(n[1])}
}

// MulM4x3 returns the 4×4 · 4×3 product.
func (m Mat4[T]) MulM4x3(n Mat4x3[T]) Mat4x3[T] {
	return Mat4x3[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2])}
}

// Transpose returns mᵀ.
func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{
		vec.V4(m[0].X, m[1].X, m[2].X, m[3].X),
		vec.V4(m[0].Y, m[1].Y, m[2].Y, m[3].Y),
		vec.V4(m[0].Z, m[1].Z, m[2].Z, m[3].Z),
		vec.V4(m[0].W, m[1].W, m[2].W, m[3].W),
	}
}

// Det returns the determinant by cofactor expansion along the first row.
func (m Mat4[T]) Det() T {
	return m[0].X*(m[1].Y*m[2].Z*m[3].W+
		m[2].Y*m[3].Z*m[1].W+
		m[3].Y*m[1].Z*m[2].W-
		m[3].Y*m[2].Z*m[1].W-
		m[1].Y*m[3].Z*m[2].W-
		m[2].Y*m[1].Z*m[3].W) -
		m[1].X*(m[0].Y*m[2].Z*m[3].W+
			m[2].Y*m[3].Z*m[0].W+
			m[3].Y*m[0].Z*m[2].W-
			m[3].Y*m[2].Z*m[0].W-
			m[0].Y*m[3].Z*m[2].W-
			m[2].Y*m[0].Z*m[3].W) +
		m[2].X*(m[0].Y*m[1].Z*m[3].W+
			m[1].Y*m[3].Z*m[0].W+
			m[3].Y*m[0].Z*m[1].W-
			m[3].Y*m[1].Z*m[0].W-
			m[0].Y*m[3].Z*m[1].W-
			m[1].Y*m[0].Z*m[3].W) -
		m[3].X*(m[0].Y*m[1].Z*m[2].W+
			m[1].Y*m[2].Z*m[0].W+
			m[2].Y*m[0].Z*m[1].W-
			m[2].Y*m[1].Z*m[0].W-
			m[0].Y*m[2].Z*m[1].W-
			m[1].Y*m[0].Z*m[2].W)
}

// dropRow removes component j from a column vector, producing the length-3
// column used when taking 3×3 minors.
func dropRow[T scalar.Float](v vec.Vec4[T], j int) vec.Vec3[T] {
	switch j {
	case 0:
		return vec.V3(v.Y, v.Z, v.W)
	case 1:
		return vec.V3(v.X, v.Z, v.W)
	case 2:
		return vec.V3(v.X, v.Y, v.W)
	default:
		return vec.V3(v.X, v.Y, v.Z)
	}
}

// Inverse returns m⁻¹ via signed 3×3 minors of the transpose (the adjugate
// method). A zero determinant propagates ±Inf/NaN components; it is not an
// error.
func (m Mat4[T]) Inverse() Mat4[T] {
	invDet := 1 / m.Det()
	tr := m.Transpose()

	cf := func(i, j int) T {
		var minor Mat3[T]
		switch i {
		case 0:
			minor = Mat3[T]{dropRow(tr[1], j), dropRow(tr[2], j), dropRow(tr[3], j)}
		case 1:
			minor = Mat3[T]{dropRow(tr[0], j), dropRow(tr[2], j), dropRow(tr[3], j)}
		case 2:
			minor = Mat3[T]{dropRow(tr[0], j), dropRow(tr[1], j), dropRow(tr[3], j)}
		default:
			minor = Mat3[T]{dropRow(tr[0], j), dropRow(tr[1], j), dropRow(tr[2], j)}
		}
		d := minor.Det() * invDet
		if (i+j)&1 == 1 {
			return -d
		}
		return d
	}

	return Mat4[T]{
		vec.V4(cf(0, 0), cf(0, 1), cf(0, 2), cf(0, 3)),
		vec.V4(cf(1, 0), cf(1, 1), cf(1, 2), cf(1, 3)),
		vec.V4(cf(2, 0), cf(2, 1), cf(2, 2), cf(2, 3)),
		vec.V4(cf(3, 0), cf(3, 1), cf(3, 2), cf(3, 3)),
	}
}

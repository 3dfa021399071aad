package mat

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/vec"
)

// The six non-square shapes. MatRxC has R rows and C columns, stored as C
// column vectors of length R; a MatRxC maps R^C to R^R. Multiplication is
// defined for every conforming pairing; determinant and inverse exist only
// on the square shapes.

// Mat2x3 is a 2-row, 3-column matrix.
type Mat2x3[T scalar.Float] [3]vec.Vec2[T]

// Mat2x4 is a 2-row, 4-column matrix.
type Mat2x4[T scalar.Float] [4]vec.Vec2[T]

// Mat3x2 is a 3-row, 2-column matrix.
type Mat3x2[T scalar.Float] [2]vec.Vec3[T]

// Mat3x4 is a 3-row, 4-column matrix.
type Mat3x4[T scalar.Float] [4]vec.Vec3[T]

// Mat4x2 is a 4-row, 2-column matrix.
type Mat4x2[T scalar.Float] [2]vec.Vec4[T]

// Mat4x3 is a 4-row, 3-column matrix.
type Mat4x3[T scalar.Float] [3]vec.Vec4[T]

// M2x3 constructs a Mat2x3 from its columns.
func M2x3[T scalar.Float](c0, c1, c2 vec.Vec2[T]) Mat2x3[T] {
	return Mat2x3[T]{c0, c1, c2}
}

// M2x4 constructs a Mat2x4 from its columns.
func M2x4[T scalar.Float](c0, c1, c2, c3 vec.Vec2[T]) Mat2x4[T] {
	return Mat2x4[T]{c0, c1, c2, c3}
}

// M3x2 constructs a Mat3x2 from its columns.
func M3x2[T scalar.Float](c0, c1 vec.Vec3[T]) Mat3x2[T] {
	return Mat3x2[T]{c0, c1}
}

// M3x4 constructs a Mat3x4 from its columns.
func M3x4[T scalar.Float](c0, c1, c2, c3 vec.Vec3[T]) Mat3x4[T] {
	return Mat3x4[T]{c0, c1, c2, c3}
}

// M4x2 constructs a Mat4x2 from its columns.
func M4x2[T scalar.Float](c0, c1 vec.Vec4[T]) Mat4x2[T] {
	return Mat4x2[T]{c0, c1}
}

// M4x3 constructs a Mat4x3 from its columns.
func M4x3[T scalar.Float](c0, c1, c2 vec.Vec4[T]) Mat4x3[T] {
	return Mat4x3[T]{c0, c1, c2}
}

// ---------------------------------------------------------------------------
// Mat2x3

// At returns the element at row r, column c.
func (m Mat2x3[T]) At(r, c int) T { return m[c].At(r) }

// Add returns the componentwise sum m + n.
func (m Mat2x3[T]) Add(n Mat2x3[T]) Mat2x3[T] {
	return Mat2x3[T]{m[0].Add(n[0]), m[1].Add(n[1]), m[2].Add(n[2])}
}

// Sub returns the componentwise difference m − n.
func (m Mat2x3[T]) Sub(n Mat2x3[T]) Mat2x3[T] {
	return Mat2x3[T]{m[0].Sub(n[0]), m[1].Sub(n[1]), m[2].Sub(n[2])}
}

// MulS scales every element by s.
func (m Mat2x3[T]) MulS(s T) Mat2x3[T] {
	return Mat2x3[T]{m[0].MulS(s), m[1].MulS(s), m[2].MulS(s)}
}

// MulVec applies the linear map to v (length 3 in, length 2 out).
func (m Mat2x3[T]) MulVec(v vec.Vec3[T]) vec.Vec2[T] {
	return m[0].MulS(v.X).Add(m[1].MulS(v.Y)).Add(m[2].MulS(v.Z))
}

// MulM3 returns the 2×3 · 3×3 product.
func (m Mat2x3[T]) MulM3(n Mat3[T]) Mat2x3[T] {
	return Mat2x3[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2])}
}

// MulM3x2 returns the 2×3 · 3×2 product.
func (m Mat2x3[T]) MulM3x2(n Mat3x2[T]) Mat2[T] {
	return Mat2[T]{m.MulVec(n[0]), m.MulVec(n[1])}
}

// MulM3x4 returns the 2×3 · 3×4 product.
func (m Mat2x3[T]) MulM3x4(n Mat3x4[T]) Mat2x4[T] {
	return Mat2x4[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2]), m.MulVec(n[3])}
}

// Transpose returns the 3×2 transpose.
func (m Mat2x3[T]) Transpose() Mat3x2[T] {
	return Mat3x2[T]{
		vec.V3(m[0].X, m[1].X, m[2].X),
		vec.V3(m[0].Y, m[1].Y, m[2].Y),
	}
}

// ---------------------------------------------------------------------------
// Mat2x4

// At returns the element at row r, column c.
func (m Mat2x4[T]) At(r, c int) T { return m[c].At(r) }

// Add returns the componentwise sum m + n.
func (m Mat2x4[T]) Add(n Mat2x4[T]) Mat2x4[T] {
	return Mat2x4[T]{m[0].Add(n[0]), m[1].Add(n[1]), m[2].Add(n[2]), m[3].Add(n[3])}
}

// Sub returns the componentwise difference m − n.
func (m Mat2x4[T]) Sub(n Mat2x4[T]) Mat2x4[T] {
	return Mat2x4[T]{m[0].Sub(n[0]), m[1].Sub(n[1]), m[2].Sub(n[2]), m[3].Sub(n[3])}
}

// MulS scales every element by s.
func (m Mat2x4[T]) MulS(s T) Mat2x4[T] {
	return Mat2x4[T]{m[0].MulS(s), m[1].MulS(s), m[2].MulS(s), m[3].MulS(s)}
}

// MulVec applies the linear map to v (length 4 in, length 2 out).
func (m Mat2x4[T]) MulVec(v vec.Vec4[T]) vec.Vec2[T] {
	return m[0].MulS(v.X).Add(m[1].MulS(v.Y)).Add(m[2].MulS(v.Z)).Add(m[3].MulS(v.W))
}

// MulM4 returns the 2×4 · 4×4 product.
func (m Mat2x4[T]) MulM4(n Mat4[T]) Mat2x4[T] {
	return Mat2x4[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2]), m.MulVec(n[3])}
}

// MulM4x2 returns the 2×4 · 4×2 product.
func (m Mat2x4[T]) MulM4x2(n Mat4x2[T]) Mat2[T] {
	return Mat2[T]{m.MulVec(n[0]), m.MulVec(n[1])}
}

// MulM4x3 returns the 2×4 · 4×3 product.
func (m Mat2x4[T]) MulM4x3(n Mat4x3[T]) Mat2x3[T] {
	return Mat2x3[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2])}
}

// Transpose returns the 4×2 transpose.
func (m Mat2x4[T]) Transpose() Mat4x2[T] {
	return Mat4x2[T]{
		vec.V4(m[0].X, m[1].X, m[2].X, m[3].X),
		vec.V4(m[0].Y, m[1].Y, m[2].Y, m[3].Y),
	}
}

// ---------------------------------------------------------------------------
// Mat3x2

// At returns the element at row r, column c.
func (m Mat3x2[T]) At(r, c int) T { return m[c].At(r) }

// Add returns the componentwise sum m + n.
func (m Mat3x2[T]) Add(n Mat3x2[T]) Mat3x2[T] {
	return Mat3x2[T]{m[0].Add(n[0]), m[1].Add(n[1])}
}

// Sub returns the componentwise difference m − n.
func (m Mat3x2[T]) Sub(n Mat3x2[T]) Mat3x2[T] {
	return Mat3x2[T]{m[0].Sub(n[0]), m[1].Sub(n[1])}
}

// MulS scales every element by s.
func (m Mat3x2[T]) MulS(s T) Mat3x2[T] {
	return Mat3x2[T]{m[0].MulS(s), m[1].MulS(s)}
}

// MulVec applies the linear map to v (length 2 in, length 3 out).
func (m Mat3x2[T]) MulVec(v vec.Vec2[T]) vec.Vec3[T] {
	return m[0].MulS(v.X).Add(m[1].MulS(v.Y))
}

// MulM2 returns the 3×2 · 2×2 product.
func (m Mat3x2[T]) MulM2(n Mat2[T]) Mat3x2[T] {
	return Mat3x2[T]{m.MulVec(n[0]), m.MulVec(n[1])}
}

// MulM2x3 returns the 3×2 · 2×3 product.
func (m Mat3x2[T]) MulM2x3(n Mat2x3[T]) Mat3[T] {
	return Mat3[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2])}
}

// MulM2x4 returns the 3×2 · 2×4 product.
func (m Mat3x2[T]) MulM2x4(n Mat2x4[T]) Mat3x4[T] {
	return Mat3x4[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2]), m.MulVec(n[3])}
}

// Transpose returns the 2×3 transpose.
func (m Mat3x2[T]) Transpose() Mat2x3[T] {
	return Mat2x3[T]{
		vec.V2(m[0].X, m[1].X),
		vec.V2(m[0].Y, m[1].Y),
		vec.V2(m[0].Z, m[1].Z),
	}
}

// ---------------------------------------------------------------------------
// Mat3x4

// At returns the element at row r, column c.
func (m Mat3x4[T]) At(r, c int) T { return m[c].At(r) }

// Add returns the componentwise sum m + n.
func (m Mat3x4[T]) Add(n Mat3x4[T]) Mat3x4[T] {
	return Mat3x4[T]{m[0].Add(n[0]), m[1].Add(n[1]), m[2].Add(n[2]), m[3].Add(n[3])}
}

// Sub returns the componentwise difference m − n.
func (m Mat3x4[T]) Sub(n Mat3x4[T]) Mat3x4[T] {
	return Mat3x4[T]{m[0].Sub(n[0]), m[1].Sub(n[1]), m[2].Sub(n[2]), m[3].Sub(n[3])}
}

// MulS scales every element by s.
func (m Mat3x4[T]) MulS(s T) Mat3x4[T] {
	return Mat3x4[T]{m[0].MulS(s), m[1].MulS(s), m[2].MulS(s), m[3].MulS(s)}
}

// MulVec applies the linear map to v (length 4 in, length 3 out).
func (m Mat3x4[T]) MulVec(v vec.Vec4[T]) vec.Vec3[T] {
	return m[0].MulS(v.X).Add(m[1].MulS(v.Y)).Add(m[2].MulS(v.Z)).Add(m[3].MulS(v.W))
}

// MulM4 returns the 3×4 · 4×4 product.
func (m Mat3x4[T]) MulM4(n Mat4[T]) Mat3x4[T] {
	return Mat3x4[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2]), m.MulVec(n[3])}
}

// MulM4x2 returns the 3×4 · 4×2 product.
func (m Mat3x4[T]) MulM4x2(n Mat4x2[T]) Mat3x2[T] {
	return Mat3x2[T]{m.MulVec(n[0]), m.MulVec(n[1])}
}

// MulM4x3 returns the 3×4 · 4×3 product.
func (m Mat3x4[T]) MulM4x3(n Mat4x3[T]) Mat3[T] {
	return Mat3[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2])}
}

// Transpose returns the 4×3 transpose.
func (m Mat3x4[T]) Transpose() Mat4x3[T] {
	return Mat4x3[T]{
		vec.V4(m[0].X, m[1].X, m[2].X, m[3].X),
		vec.V4(m[0].Y, m[1].Y, m[2].Y, m[3].Y),
		vec.V4(m[0].Z, m[1].Z, m[2].Z, m[3].Z),
	}
}

// ---------------------------------------------------------------------------
// Mat4x2

// At returns the element at row r, column c.
func (m Mat4x2[T]) At(r, c int) T { return m[c].At(r) }

// Add returns the componentwise sum m + n.
func (m Mat4x2[T]) Add(n Mat4x2[T]) Mat4x2[T] {
	return Mat4x2[T]{m[0].Add(n[0]), m[1].Add(n[1])}
}

// Sub returns the componentwise difference m − n.
func (m Mat4x2[T]) Sub(n Mat4x2[T]) Mat4x2[T] {
	return Mat4x2[T]{m[0].Sub(n[0]), m[1].Sub(n[1])}
}

// MulS scales every element by s.
func (m Mat4x2[T]) MulS(s T) Mat4x2[T] {
	return Mat4x2[T]{m[0].MulS(s), m[1].MulS(s)}
}

// MulVec applies the linear map to v (length 2 in, length 4 out).
func (m Mat4x2[T]) MulVec(v vec.Vec2[T]) vec.Vec4[T] {
	return m[0].MulS(v.X).Add(m[1].MulS(v.Y))
}

// MulM2 returns the 4×2 · 2×2 product.
func (m Mat4x2[T]) MulM2(n Mat2[T]) Mat4x2[T] {
	return Mat4x2[T]{m.MulVec(n[0]), m.MulVec(n[1])}
}

// MulM2x3 returns the 4×2 · 2×3 product.
func (m Mat4x2[T]) MulM2x3(n Mat2x3[T]) Mat4x3[T] {
	return Mat4x3[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2])}
}

// MulM2x4 returns the 4×2 · 2×4 product.
func (m Mat4x2[T]) MulM2x4(n Mat2x4[T]) Mat4[T] {
	return Mat4[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2]), m.MulVec(n[3])}
}

// Transpose returns the 2×4 transpose.
func (m Mat4x2[T]) Transpose() Mat2x4[T] {
	return Mat2x4[T]{
		vec.V2(m[0].X, m[1].X),
		vec.V2(m[0].Y, m[1].Y),
		vec.V2(m[0].Z, m[1].Z),
		vec.V2(m[0].W, m[1].W),
	}
}

// ---------------------------------------------------------------------------
// Mat4x3

// At returns the element at row r, column c.
func (m Mat4x3[T]) At(r, c int) T { return m[c].At(r) }

// Add returns the componentwise sum m + n.
func (m Mat4x3[T]) Add(n Mat4x3[T]) Mat4x3[T] {
	return Mat4x3[T]{m[0].Add(n[0]), m[1].Add(n[1]), m[2].Add(n[2])}
}

// Sub returns the componentwise difference m − n.
func (m Mat4x3[T]) Sub(n Mat4x3[T]) Mat4x3[T] {
	return Mat4x3[T]{m[0].Sub(n[0]), m[1].Sub(n[1]), m[2].Sub(n[2])}
}

// MulS scales every element by s.
func (m Mat4x3[T]) MulS(s T) Mat4x3[T] {
	return Mat4x3[T]{m[0].MulS(s), m[1].MulS(s), m[2].MulS(s)}
}

// MulVec applies the linear map to v (length 3 in, length 4 out).
func (m Mat4x3[T]) MulVec(v vec.Vec3[T]) vec.Vec4[T] {
	return m[0].MulS(v.X).Add(m[1].MulS(v.Y)).Add(m[2].MulS(v.Z))
}

// MulM3 returns the 4×3 · 3×3 product.
func (m Mat4x3[T]) MulM3(n Mat3[T]) Mat4x3[T] {
	return Mat4x3[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2])}
}

// MulM3x2 returns the 4×3 · 3×2 product.
func (m Mat4x3[T]) MulM3x2(n Mat3x2[T]) Mat4x2[T] {
	return Mat4x2[T]{m.MulVec(n[0]), m.MulVec(n[1])}
}

// MulM3x4 returns the 4×3 · 3×4 product.
func (m Mat4x3[T]) MulM3x4(n Mat3x4[T]) Mat4[T] {
	return Mat4[T]{m.MulVec(n[0]), m.MulVec(n[1]), m.MulVec(n[2]), m.MulVec(n[3])}
}

// Transpose returns the 3×4 transpose.
func (m Mat4x3[T]) Transpose() Mat3x4[T] {
	return Mat3x4[T]{
		vec.V3(m[0].X, m[1].X, m[2].X),
		vec.V3(m[0].Y, m[1].Y, m[2].Y),
		vec.V3(m[0].Z, m[1].Z, m[2].Z),
		vec.V3(m[0].W, m[1].W, m[2].W),
	}
}

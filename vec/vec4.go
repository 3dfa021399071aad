package vec

import "github.com/katalvlaran/lvlmath/scalar"

// Vec4 is an ordered quadruple of scalars. Value type, componentwise ==.
type Vec4[T scalar.Float] struct {
	X, Y, Z, W T
}

// V4 constructs a Vec4 from four scalars.
func V4[T scalar.Float](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// Splat4 constructs a Vec4 with all components set to s.
func Splat4[T scalar.Float](s T) Vec4[T] {
	return Vec4[T]{X: s, Y: s, Z: s, W: s}
}

// At returns the component at position i (0 = X … 3 = W).
// It panics when i is outside 0..3.
func (v Vec4[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic("vec: Vec4 index out of range")
}

// Add returns the componentwise sum v + w.
func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z, W: v.W + w.W}
}

// Sub returns the componentwise difference v − w.
func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z, W: v.W - w.W}
}

// Mul returns the componentwise product v · w.
func (v Vec4[T]) Mul(w Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z, W: v.W * w.W}
}

// Div returns the componentwise quotient v / w.
func (v Vec4[T]) Div(w Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X / w.X, Y: v.Y / w.Y, Z: v.Z / w.Z, W: v.W / w.W}
}

// AddS adds s to every component.
func (v Vec4[T]) AddS(s T) Vec4[T] {
	return Vec4[T]{X: v.X + s, Y: v.Y + s, Z: v.Z + s, W: v.W + s}
}

// SubS subtracts s from every component.
func (v Vec4[T]) SubS(s T) Vec4[T] {
	return Vec4[T]{X: v.X - s, Y: v.Y - s, Z: v.Z - s, W: v.W - s}
}

// MulS scales every component by s.
func (v Vec4[T]) MulS(s T) Vec4[T] {
	return Vec4[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// DivS divides every component by s.
func (v Vec4[T]) DivS(s T) Vec4[T] {
	return Vec4[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s, W: v.W / s}
}

// Neg returns the componentwise negation.
func (v Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Dot returns the dot product Σ vᵢ·wᵢ.
func (v Vec4[T]) Dot(w Vec4[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// Length returns √(v·v).
func (v Vec4[T]) Length() T {
	return scalar.Sqrt(v.Dot(v))
}

// LengthSq returns v·v.
func (v Vec4[T]) LengthSq() T {
	return v.Dot(v)
}

// Normalize returns v scaled to unit length. A zero-length input yields
// NaN components.
func (v Vec4[T]) Normalize() Vec4[T] {
	return v.DivS(v.Length())
}

// Mix linearly interpolates toward w: v + t·(w−v).
func (v Vec4[T]) Mix(w Vec4[T], t T) Vec4[T] {
	return Vec4[T]{
		X: scalar.Mix(v.X, w.X, t),
		Y: scalar.Mix(v.Y, w.Y, t),
		Z: scalar.Mix(v.Z, w.Z, t),
		W: scalar.Mix(v.W, w.W, t),
	}
}

// MixV is Mix with a per-component weight.
func (v Vec4[T]) MixV(w, t Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: scalar.Mix(v.X, w.X, t.X),
		Y: scalar.Mix(v.Y, w.Y, t.Y),
		Z: scalar.Mix(v.Z, w.Z, t.Z),
		W: scalar.Mix(v.W, w.W, t.W),
	}
}

// Floor applies scalar.Floor componentwise.
func (v Vec4[T]) Floor() Vec4[T] {
	return Vec4[T]{
		X: scalar.Floor(v.X), Y: scalar.Floor(v.Y),
		Z: scalar.Floor(v.Z), W: scalar.Floor(v.W),
	}
}

// Fract applies scalar.Fract componentwise.
func (v Vec4[T]) Fract() Vec4[T] {
	return Vec4[T]{
		X: scalar.Fract(v.X), Y: scalar.Fract(v.Y),
		Z: scalar.Fract(v.Z), W: scalar.Fract(v.W),
	}
}

// Abs applies scalar.Abs componentwise.
func (v Vec4[T]) Abs() Vec4[T] {
	return Vec4[T]{
		X: scalar.Abs(v.X), Y: scalar.Abs(v.Y),
		Z: scalar.Abs(v.Z), W: scalar.Abs(v.W),
	}
}

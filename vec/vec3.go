package vec

import "github.com/katalvlaran/lvlmath/scalar"

// Vec3 is an ordered triple of scalars. Value type, componentwise ==.
type Vec3[T scalar.Float] struct {
	X, Y, Z T
}

// V3 constructs a Vec3 from three scalars.
func V3[T scalar.Float](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Splat3 constructs a Vec3 with all components set to s.
func Splat3[T scalar.Float](s T) Vec3[T] {
	return Vec3[T]{X: s, Y: s, Z: s}
}

// At returns the component at position i (0 = X, 1 = Y, 2 = Z).
// It panics when i is outside 0..2.
func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("vec: Vec3 index out of range")
}

// Add returns the componentwise sum v + w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the componentwise difference v − w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the componentwise product v · w.
func (v Vec3[T]) Mul(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z}
}

// Div returns the componentwise quotient v / w.
func (v Vec3[T]) Div(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X / w.X, Y: v.Y / w.Y, Z: v.Z / w.Z}
}

// AddS adds s to every component.
func (v Vec3[T]) AddS(s T) Vec3[T] {
	return Vec3[T]{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

// SubS subtracts s from every component.
func (v Vec3[T]) SubS(s T) Vec3[T] {
	return Vec3[T]{X: v.X - s, Y: v.Y - s, Z: v.Z - s}
}

// MulS scales every component by s.
func (v Vec3[T]) MulS(s T) Vec3[T] {
	return Vec3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// DivS divides every component by s.
func (v Vec3[T]) DivS(s T) Vec3[T] {
	return Vec3[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Neg returns the componentwise negation.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product Σ vᵢ·wᵢ.
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the right-handed cross product v × w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns √(v·v).
func (v Vec3[T]) Length() T {
	return scalar.Sqrt(v.Dot(v))
}

// LengthSq returns v·v.
func (v Vec3[T]) LengthSq() T {
	return v.Dot(v)
}

// Normalize returns v scaled to unit length. A zero-length input yields
// NaN components.
func (v Vec3[T]) Normalize() Vec3[T] {
	return v.DivS(v.Length())
}

// Mix linearly interpolates toward w: v + t·(w−v).
func (v Vec3[T]) Mix(w Vec3[T], t T) Vec3[T] {
	return Vec3[T]{
		X: scalar.Mix(v.X, w.X, t),
		Y: scalar.Mix(v.Y, w.Y, t),
		Z: scalar.Mix(v.Z, w.Z, t),
	}
}

// MixV is Mix with a per-component weight.
func (v Vec3[T]) MixV(w, t Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: scalar.Mix(v.X, w.X, t.X),
		Y: scalar.Mix(v.Y, w.Y, t.Y),
		Z: scalar.Mix(v.Z, w.Z, t.Z),
	}
}

// Floor applies scalar.Floor componentwise.
func (v Vec3[T]) Floor() Vec3[T] {
	return Vec3[T]{X: scalar.Floor(v.X), Y: scalar.Floor(v.Y), Z: scalar.Floor(v.Z)}
}

// Fract applies scalar.Fract componentwise.
func (v Vec3[T]) Fract() Vec3[T] {
	return Vec3[T]{X: scalar.Fract(v.X), Y: scalar.Fract(v.Y), Z: scalar.Fract(v.Z)}
}

// Abs applies scalar.Abs componentwise.
func (v Vec3[T]) Abs() Vec3[T] {
	return Vec3[T]{X: scalar.Abs(v.X), Y: scalar.Abs(v.Y), Z: scalar.Abs(v.Z)}
}

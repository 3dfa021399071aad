package vec

import "github.com/katalvlaran/lvlmath/scalar"

// Vec2 is an ordered pair of scalars. It is a value type: assignment and
// argument passing copy it, and == compares componentwise.
type Vec2[T scalar.Float] struct {
	X, Y T
}

// V2 constructs a Vec2 from two scalars.
func V2[T scalar.Float](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Splat2 constructs a Vec2 with both components set to s.
func Splat2[T scalar.Float](s T) Vec2[T] {
	return Vec2[T]{X: s, Y: s}
}

// At returns the component at position i (0 = X, 1 = Y).
// It panics when i is outside 0..1.
func (v Vec2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic("vec: Vec2 index out of range")
}

// Add returns the componentwise sum v + w.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the componentwise difference v − w.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the componentwise product v · w.
func (v Vec2[T]) Mul(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X * w.X, Y: v.Y * w.Y}
}

// Div returns the componentwise quotient v / w.
func (v Vec2[T]) Div(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X / w.X, Y: v.Y / w.Y}
}

// AddS adds s to every component.
func (v Vec2[T]) AddS(s T) Vec2[T] {
	return Vec2[T]{X: v.X + s, Y: v.Y + s}
}

// SubS subtracts s from every component.
func (v Vec2[T]) SubS(s T) Vec2[T] {
	return Vec2[T]{X: v.X - s, Y: v.Y - s}
}

// MulS scales every component by s.
func (v Vec2[T]) MulS(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// DivS divides every component by s.
func (v Vec2[T]) DivS(s T) Vec2[T] {
	return Vec2[T]{X: v.X / s, Y: v.Y / s}
}

// Neg returns the componentwise negation.
func (v Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product Σ vᵢ·wᵢ.
func (v Vec2[T]) Dot(w Vec2[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// Length returns √(v·v).
func (v Vec2[T]) Length() T {
	return scalar.Sqrt(v.Dot(v))
}

// LengthSq returns v·v, avoiding the square root when only comparisons
// are needed.
func (v Vec2[T]) LengthSq() T {
	return v.Dot(v)
}

// Normalize returns v scaled to unit length. A zero-length input yields
// NaN components; guarding degenerate input is the caller's job.
func (v Vec2[T]) Normalize() Vec2[T] {
	return v.DivS(v.Length())
}

// Mix linearly interpolates toward w: v + t·(w−v).
func (v Vec2[T]) Mix(w Vec2[T], t T) Vec2[T] {
	return Vec2[T]{
		X: scalar.Mix(v.X, w.X, t),
		Y: scalar.Mix(v.Y, w.Y, t),
	}
}

// MixV is Mix with a per-component weight.
func (v Vec2[T]) MixV(w, t Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: scalar.Mix(v.X, w.X, t.X),
		Y: scalar.Mix(v.Y, w.Y, t.Y),
	}
}

// Floor applies scalar.Floor componentwise.
func (v Vec2[T]) Floor() Vec2[T] {
	return Vec2[T]{X: scalar.Floor(v.X), Y: scalar.Floor(v.Y)}
}

// Fract applies scalar.Fract componentwise.
func (v Vec2[T]) Fract() Vec2[T] {
	return Vec2[T]{X: scalar.Fract(v.X), Y: scalar.Fract(v.Y)}
}

// Abs applies scalar.Abs componentwise.
func (v Vec2[T]) Abs() Vec2[T] {
	return Vec2[T]{X: scalar.Abs(v.X), Y: scalar.Abs(v.Y)}
}

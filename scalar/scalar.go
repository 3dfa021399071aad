package scalar

import (
	"math"

	"github.com/chewxy/math32"
)

// Float is the scalar capability contract: exactly the two common binary
// floating-point widths. Deliberately not ~float32|~float64 — the contract
// promises width-exact elementary functions, which named types would route
// through the wrong intrinsic set.
type Float interface {
	float32 | float64
}

// Abs returns |x|.
func Abs[T Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Abs(v))
	default:
		return T(math.Abs(float64(x)))
	}
}

// Floor returns the largest integer value not greater than x.
func Floor[T Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Floor(v))
	default:
		return T(math.Floor(float64(x)))
	}
}

// Fract returns the fractional part x − Floor(x), always in [0, 1).
func Fract[T Float](x T) T {
	return x - Floor(x)
}

// Sqrt returns the square root of x. Negative inputs yield NaN.
func Sqrt[T Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sqrt(v))
	default:
		return T(math.Sqrt(float64(x)))
	}
}

// Pow returns x raised to the power y.
func Pow[T Float](x, y T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Pow(v, float32(y)))
	default:
		return T(math.Pow(float64(x), float64(y)))
	}
}

// Min returns the smaller of a and b.
func Min[T Float](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to the closed interval [lo, hi].
func Clamp[T Float](x, lo, hi T) T {
	return Min(Max(x, lo), hi)
}

// Mix linearly interpolates between a and b: a + t·(b−a).
// t=0 returns a, t=1 returns b; t outside [0,1] extrapolates.
func Mix[T Float](a, b, t T) T {
	return a + t*(b-a)
}

// Step returns 0 when x < edge and 1 otherwise.
func Step[T Float](edge, x T) T {
	if x < edge {
		return 0
	}
	return 1
}

// Mod returns the floored modulo x − y·Floor(x/y), matching the shading
// language mod(): the result has the sign of y.
func Mod[T Float](x, y T) T {
	return x - y*Floor(x/y)
}

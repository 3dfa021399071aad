package vec_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlmath/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVec2_Arithmetic covers the componentwise operator set on Vec2.
func TestVec2_Arithmetic(t *testing.T) {
	a := vec.V2(1.0, 2.0)
	b := vec.V2(3.0, 5.0)

	assert.Equal(t, vec.V2(4.0, 7.0), a.Add(b))
	assert.Equal(t, vec.V2(-2.0, -3.0), a.Sub(b))
	assert.Equal(t, vec.V2(3.0, 10.0), a.Mul(b))
	assert.Equal(t, vec.V2(2.0, 4.0), a.MulS(2.0))
	assert.Equal(t, vec.V2(0.5, 1.0), a.DivS(2.0))
	assert.Equal(t, vec.V2(-1.0, -2.0), a.Neg())
	assert.Equal(t, vec.V2(2.0, 3.0), a.AddS(1.0))
}

// TestVec_Equality documents that value semantics give componentwise ==.
func TestVec_Equality(t *testing.T) {
	assert.True(t, vec.V3(1.0, 2.0, 3.0) == vec.V3(1.0, 2.0, 3.0))
	assert.False(t, vec.V3(1.0, 2.0, 3.0) == vec.V3(1.0, 2.0, 3.5))
}

// TestVec_At verifies positional access and its out-of-range panic.
func TestVec_At(t *testing.T) {
	v := vec.V4(10.0, 20.0, 30.0, 40.0)
	for i, want := range []float64{10, 20, 30, 40} {
		assert.Equal(t, want, v.At(i))
	}
	require.Panics(t, func() { _ = v.At(4) }, "At(4) on a Vec4 must panic")
	require.Panics(t, func() { _ = vec.V2(1.0, 2.0).At(-1) }, "negative index must panic")
}

// TestDot_KnownValues checks Dot on hand-computed inputs across arities.
func TestDot_KnownValues(t *testing.T) {
	assert.Equal(t, 32.0, vec.V3(1.0, 2.0, 3.0).Dot(vec.V3(4.0, 5.0, 6.0)))
	assert.Equal(t, 11.0, vec.V2(1.0, 2.0).Dot(vec.V2(3.0, 4.0)))
	assert.Equal(t, 70.0, vec.V4(1.0, 2.0, 3.0, 4.0).Dot(vec.V4(5.0, 6.0, 7.0, 8.0)))
}

// TestNormalize_UnitLength asserts the core property:
// length(normalize(v)) == 1 for nonzero v, at both scalar widths.
func TestNormalize_UnitLength(t *testing.T) {
	cases64 := []vec.Vec3[float64]{
		vec.V3(1.0, 0.0, 0.0),
		vec.V3(1.0, 2.0, 2.0),
		vec.V3(-4.5, 3.25, 0.125),
		vec.V3(1e-3, 2e-3, -7e-3),
	}
	for _, v := range cases64 {
		assert.InDelta(t, 1.0, v.Normalize().Length(), 1e-12, "float64 %v", v)
	}

	v32 := vec.V2(float32(3), float32(4)).Normalize()
	assert.InDelta(t, float32(1), v32.Length(), 1e-6)
	assert.InDelta(t, float32(0.6), v32.X, 1e-6)
	assert.InDelta(t, float32(0.8), v32.Y, 1e-6)
}

// TestNormalize_ZeroLength documents the accepted degenerate behavior:
// NaN components instead of an error.
func TestNormalize_ZeroLength(t *testing.T) {
	n := vec.V2(0.0, 0.0).Normalize()
	assert.True(t, math.IsNaN(n.X) && math.IsNaN(n.Y), "zero vector must normalize to NaN")
}

// TestCross_Orthogonality asserts dot(cross(a,b), a) == 0 == dot(cross(a,b), b)
// for a spread of input pairs.
func TestCross_Orthogonality(t *testing.T) {
	pairs := [][2]vec.Vec3[float64]{
		{vec.V3(1.0, 0.0, 0.0), vec.V3(0.0, 1.0, 0.0)},
		{vec.V3(1.0, 2.0, 3.0), vec.V3(-4.0, 5.0, 0.5)},
		{vec.V3(0.3, -0.7, 2.1), vec.V3(1.1, 1.1, -0.2)},
	}
	for _, p := range pairs {
		c := p[0].Cross(p[1])
		assert.InDelta(t, 0.0, c.Dot(p[0]), 1e-12, "cross ⊥ a for %v", p)
		assert.InDelta(t, 0.0, c.Dot(p[1]), 1e-12, "cross ⊥ b for %v", p)
	}
}

// TestCross_RightHanded pins the handedness convention.
func TestCross_RightHanded(t *testing.T) {
	x := vec.V3(1.0, 0.0, 0.0)
	y := vec.V3(0.0, 1.0, 0.0)
	assert.Equal(t, vec.V3(0.0, 0.0, 1.0), x.Cross(y), "x × y must be +z")
	assert.Equal(t, vec.V3(0.0, 0.0, -1.0), y.Cross(x), "y × x must be -z")
}

// TestMix_Endpoints verifies interpolation endpoints and midpoints,
// including the per-component weight form.
func TestMix_Endpoints(t *testing.T) {
	a := vec.V2(0.0, 10.0)
	b := vec.V2(4.0, 20.0)

	assert.Equal(t, a, a.Mix(b, 0.0))
	assert.Equal(t, b, a.Mix(b, 1.0))
	assert.Equal(t, vec.V2(2.0, 15.0), a.Mix(b, 0.5))
	assert.Equal(t, vec.V2(4.0, 10.0), a.MixV(b, vec.V2(1.0, 0.0)))
}

// TestFloorFract checks the componentwise lattice helpers, negatives included.
func TestFloorFract(t *testing.T) {
	v := vec.V3(1.25, -0.25, 3.0)
	assert.Equal(t, vec.V3(1.0, -1.0, 3.0), v.Floor())
	f := v.Fract()
	assert.InDelta(t, 0.25, f.X, 1e-12)
	assert.InDelta(t, 0.75, f.Y, 1e-12)
	assert.Equal(t, 0.0, f.Z)
}

// TestSplat verifies the uniform constructors.
func TestSplat(t *testing.T) {
	assert.Equal(t, vec.V2(7.0, 7.0), vec.Splat2(7.0))
	assert.Equal(t, vec.V3(7.0, 7.0, 7.0), vec.Splat3(7.0))
	assert.Equal(t, vec.V4(7.0, 7.0, 7.0, 7.0), vec.Splat4(7.0))
}

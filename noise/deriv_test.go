package noise_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmath/noise"
	"github.com/katalvlaran/lvlmath/vec"
)

// Central finite differences validate the analytic gradients. The step and
// tolerance account for the curvature of the quartic falloff.
const (
	fdStep = 1e-5
	fdTol  = 5e-4
)

func TestSimplexDeriv1_MatchesValueAndFiniteDifference(t *testing.T) {
	for _, x := range []float64{0.3, 0.71, 1.62, -2.41, 5.13, -0.27} {
		v, d := noise.SimplexDeriv1(x)
		require.InDelta(t, noise.Simplex1(x), v, 1e-12, "value drift at %v", x)

		fd := (noise.Simplex1(x+fdStep) - noise.Simplex1(x-fdStep)) / (2 * fdStep)
		assert.InDelta(t, fd, d, fdTol, "derivative at %v", x)
	}
}

func TestSimplexDeriv2_MatchesValueAndFiniteDifference(t *testing.T) {
	points := []vec.Vec2[float64]{
		vec.V2(0.3, 0.7),
		vec.V2(1.63, -2.41),
		vec.V2(12.345, 4.2),
		vec.V2(-0.57, 0.92),
		vec.V2(3.21, 3.22),
	}
	for _, p := range points {
		v, g := noise.SimplexDeriv2(p)
		require.InDelta(t, noise.Simplex2(p), v, 1e-12, "value drift at %v", p)

		fdx := (noise.Simplex2(vec.V2(p.X+fdStep, p.Y)) - noise.Simplex2(vec.V2(p.X-fdStep, p.Y))) / (2 * fdStep)
		fdy := (noise.Simplex2(vec.V2(p.X, p.Y+fdStep)) - noise.Simplex2(vec.V2(p.X, p.Y-fdStep))) / (2 * fdStep)
		assert.InDelta(t, fdx, g.X, fdTol, "∂/∂x at %v", p)
		assert.InDelta(t, fdy, g.Y, fdTol, "∂/∂y at %v", p)
	}
}

func TestSimplexDeriv3_MatchesValueAndFiniteDifference(t *testing.T) {
	// Interior points only: central differences straddle a cell face when
	// the skewed coordinate sum lands on an integer (see the boundary test).
	points := []vec.Vec3[float64]{
		vec.V3(0.31, 0.7, 1.1),
		vec.V3(-1.42, 2.77, 0.13),
		vec.V3(4.9, -3.6, 2.2),
	}
	for _, p := range points {
		v, g := noise.SimplexDeriv3(p)
		require.InDelta(t, noise.Simplex3(p), v, 1e-12, "value drift at %v", p)

		fdx := (noise.Simplex3(vec.V3(p.X+fdStep, p.Y, p.Z)) - noise.Simplex3(vec.V3(p.X-fdStep, p.Y, p.Z))) / (2 * fdStep)
		fdy := (noise.Simplex3(vec.V3(p.X, p.Y+fdStep, p.Z)) - noise.Simplex3(vec.V3(p.X, p.Y-fdStep, p.Z))) / (2 * fdStep)
		fdz := (noise.Simplex3(vec.V3(p.X, p.Y, p.Z+fdStep)) - noise.Simplex3(vec.V3(p.X, p.Y, p.Z-fdStep))) / (2 * fdStep)
		assert.InDelta(t, fdx, g.X, fdTol, "∂/∂x at %v", p)
		assert.InDelta(t, fdy, g.Y, fdTol, "∂/∂y at %v", p)
		assert.InDelta(t, fdz, g.Z, fdTol, "∂/∂z at %v", p)
	}
}

func TestSimplexDeriv4_MatchesValueAndFiniteDifference(t *testing.T) {
	points := []vec.Vec4[float64]{
		vec.V4(0.3, 0.7, 1.1, -0.4),
		vec.V4(2.13, -1.07, 0.55, 3.31),
	}
	for _, p := range points {
		v, g := noise.SimplexDeriv4(p)
		require.InDelta(t, noise.Simplex4(p), v, 1e-12, "value drift at %v", p)

		fdx := (noise.Simplex4(vec.V4(p.X+fdStep, p.Y, p.Z, p.W)) - noise.Simplex4(vec.V4(p.X-fdStep, p.Y, p.Z, p.W))) / (2 * fdStep)
		fdy := (noise.Simplex4(vec.V4(p.X, p.Y+fdStep, p.Z, p.W)) - noise.Simplex4(vec.V4(p.X, p.Y-fdStep, p.Z, p.W))) / (2 * fdStep)
		fdz := (noise.Simplex4(vec.V4(p.X, p.Y, p.Z+fdStep, p.W)) - noise.Simplex4(vec.V4(p.X, p.Y, p.Z-fdStep, p.W))) / (2 * fdStep)
		fdw := (noise.Simplex4(vec.V4(p.X, p.Y, p.Z, p.W+fdStep)) - noise.Simplex4(vec.V4(p.X, p.Y, p.Z, p.W-fdStep))) / (2 * fdStep)
		assert.InDelta(t, fdx, g.X, fdTol, "∂/∂x at %v", p)
		assert.InDelta(t, fdy, g.Y, fdTol, "∂/∂y at %v", p)
		assert.InDelta(t, fdz, g.Z, fdTol, "∂/∂z at %v", p)
		assert.InDelta(t, fdw, g.W, fdTol, "∂/∂w at %v", p)
	}
}

func TestSimplexDeriv3_OneSidedAtCellBoundary(t *testing.T) {
	// (0.3, 0.7, 1.1) skews onto a simplex-cell face: x+y+z = 2.1, so
	// x + (x+y+z)/3 = 1.0. With the 3D falloff radius 0.6 the corner
	// contributions do not vanish on the face, so the field has a gradient
	// kink there and a central difference straddling it is meaningless.
	// The analytic gradient belongs to the cell the point resolves into,
	// so it must match the forward difference, which steps into that same
	// cell along every axis.
	p := vec.V3(0.3, 0.7, 1.1)
	v, g := noise.SimplexDeriv3(p)
	require.InDelta(t, noise.Simplex3(p), v, 1e-12)

	fwd := func(q vec.Vec3[float64]) float64 {
		return (noise.Simplex3(q) - noise.Simplex3(p)) / fdStep
	}
	assert.InDelta(t, fwd(vec.V3(p.X+fdStep, p.Y, p.Z)), g.X, 1e-3)
	assert.InDelta(t, fwd(vec.V3(p.X, p.Y+fdStep, p.Z)), g.Y, 1e-3)
	assert.InDelta(t, fwd(vec.V3(p.X, p.Y, p.Z+fdStep)), g.Z, 1e-3)
}

func TestSimplexDeriv2_Float32(t *testing.T) {
	p := vec.V2[float32](0.3, 0.7)
	v, g := noise.SimplexDeriv2(p)
	v64, g64 := noise.SimplexDeriv2(vec.V2(0.3, 0.7))
	assert.InDelta(t, v64, float64(v), 1e-3)
	assert.InDelta(t, g64.X, float64(g.X), 1e-2)
	assert.InDelta(t, g64.Y, float64(g.Y), 1e-2)
}

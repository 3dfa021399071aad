package noise

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/vec"
)

// Periodic variants tile the noise field by wrapping corner lattice indices
// modulo the per-axis period before the gradient lookup. A period ≤ 0
// disables tiling on that axis, so PerlinPeriodic2(p, 0, 0) ≡ Perlin2(p).
// Periods 1…256 tile without aliasing; larger periods are accepted but fold
// through the 256-entry permutation table.
//
// Classic periodic noise satisfies f(p + per·eᵢ) = f(p) exactly for every
// coordinate axis i with a positive period. Simplex periodic noise wraps
// indices of the skewed simplex lattice, so its exact repeat vectors are the
// unskewed lattice basis eᵢ − G·(1,…,1), not the coordinate axes.

// PerlinPeriodic1 evaluates classic 1D noise repeating every px units.
func PerlinPeriodic1[T scalar.Float](x T, px int) T {
	return perlin1(x, px)
}

// PerlinPeriodic2 evaluates classic 2D noise repeating every px units
// along x and every py units along y.
func PerlinPeriodic2[T scalar.Float](p vec.Vec2[T], px, py int) T {
	return perlin2(p.X, p.Y, px, py)
}

// PerlinPeriodic3 evaluates classic 3D noise with per-axis periods.
func PerlinPeriodic3[T scalar.Float](p vec.Vec3[T], px, py, pz int) T {
	return perlin3(p.X, p.Y, p.Z, px, py, pz)
}

// PerlinPeriodic4 evaluates classic 4D noise with per-axis periods.
func PerlinPeriodic4[T scalar.Float](p vec.Vec4[T], px, py, pz, pw int) T {
	return perlin4(p.X, p.Y, p.Z, p.W, px, py, pz, pw)
}

// SimplexPeriodic1 evaluates 1D simplex noise with lattice-index period px.
func SimplexPeriodic1[T scalar.Float](x T, px int) T {
	return simplex1(x, px)
}

// SimplexPeriodic2 evaluates 2D simplex noise with lattice-index periods.
func SimplexPeriodic2[T scalar.Float](p vec.Vec2[T], px, py int) T {
	return simplex2(p.X, p.Y, px, py)
}

// SimplexPeriodic3 evaluates 3D simplex noise with lattice-index periods.
func SimplexPeriodic3[T scalar.Float](p vec.Vec3[T], px, py, pz int) T {
	return simplex3(p.X, p.Y, p.Z, px, py, pz)
}

// SimplexPeriodic4 evaluates 4D simplex noise with lattice-index periods.
func SimplexPeriodic4[T scalar.Float](p vec.Vec4[T], px, py, pz, pw int) T {
	return simplex4(p.X, p.Y, p.Z, p.W, px, py, pz, pw)
}

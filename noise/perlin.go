package noise

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/vec"
)

// Output scales for classic noise, chosen so the blended gradient sums land
// inside [-1, 1] for the gradient sets above.
const (
	perlinScale1 = 0.188
	perlinScale2 = 0.507
	perlinScale3 = 0.936
	perlinScale4 = 0.87
)

// Perlin1 evaluates classic 1D gradient noise at x.
// The result is 0 at every integer x.
func Perlin1[T scalar.Float](x T) T {
	return perlin1(x, 0)
}

// Perlin2 evaluates classic 2D gradient noise at p.
// The result is 0 whenever both coordinates are integers.
func Perlin2[T scalar.Float](p vec.Vec2[T]) T {
	return perlin2(p.X, p.Y, 0, 0)
}

// Perlin3 evaluates classic 3D gradient noise at p.
func Perlin3[T scalar.Float](p vec.Vec3[T]) T {
	return perlin3(p.X, p.Y, p.Z, 0, 0, 0)
}

// Perlin4 evaluates classic 4D gradient noise at p.
func Perlin4[T scalar.Float](p vec.Vec4[T]) T {
	return perlin4(p.X, p.Y, p.Z, p.W, 0, 0, 0, 0)
}

func perlin1[T scalar.Float](x T, px int) T {
	ix0 := fastFloor(x)
	fx0 := x - T(ix0)
	fx1 := fx0 - 1
	ix1 := ix0 + 1

	s := fade(fx0)

	n0 := gradient1[T](hash1(ix0, px)) * fx0
	n1 := gradient1[T](hash1(ix1, px)) * fx1
	return perlinScale1 * lerp(s, n0, n1)
}

func perlin2[T scalar.Float](x, y T, px, py int) T {
	ix0 := fastFloor(x)
	iy0 := fastFloor(y)
	fx0 := x - T(ix0)
	fy0 := y - T(iy0)
	fx1 := fx0 - 1
	fy1 := fy0 - 1
	ix1 := ix0 + 1
	iy1 := iy0 + 1

	t := fade(fy0)
	s := fade(fx0)

	dot2 := func(h uint8, dx, dy T) T {
		gx, gy := gradient2[T](h)
		return gx*dx + gy*dy
	}
	h := func(i, j int) uint8 {
		return hash2(i, j, px, py)
	}

	nx0 := dot2(h(ix0, iy0), fx0, fy0)
	nx1 := dot2(h(ix0, iy1), fx0, fy1)
	n0 := lerp(t, nx0, nx1)

	nx0 = dot2(h(ix1, iy0), fx1, fy0)
	nx1 = dot2(h(ix1, iy1), fx1, fy1)
	n1 := lerp(t, nx0, nx1)

	return perlinScale2 * lerp(s, n0, n1)
}

func perlin3[T scalar.Float](x, y, z T, px, py, pz int) T {
	ix0 := fastFloor(x)
	iy0 := fastFloor(y)
	iz0 := fastFloor(z)
	fx0 := x - T(ix0)
	fy0 := y - T(iy0)
	fz0 := z - T(iz0)
	fx1 := fx0 - 1
	fy1 := fy0 - 1
	fz1 := fz0 - 1
	ix1 := ix0 + 1
	iy1 := iy0 + 1
	iz1 := iz0 + 1

	r := fade(fz0)
	t := fade(fy0)
	s := fade(fx0)

	dot3 := func(h uint8, dx, dy, dz T) T {
		gx, gy, gz := gradient3[T](h)
		return gx*dx + gy*dy + gz*dz
	}
	h := func(i, j, k int) uint8 {
		return hash3(i, j, k, px, py, pz)
	}

	nxy0 := dot3(h(ix0, iy0, iz0), fx0, fy0, fz0)
	nxy1 := dot3(h(ix0, iy0, iz1), fx0, fy0, fz1)
	nx0 := lerp(r, nxy0, nxy1)

	nxy0 = dot3(h(ix0, iy1, iz0), fx0, fy1, fz0)
	nxy1 = dot3(h(ix0, iy1, iz1), fx0, fy1, fz1)
	nx1 := lerp(r, nxy0, nxy1)

	n0 := lerp(t, nx0, nx1)

	nxy0 = dot3(h(ix1, iy0, iz0), fx1, fy0, fz0)
	nxy1 = dot3(h(ix1, iy0, iz1), fx1, fy0, fz1)
	nx0 = lerp(r, nxy0, nxy1)

	nxy0 = dot3(h(ix1, iy1, iz0), fx1, fy1, fz0)
	nxy1 = dot3(h(ix1, iy1, iz1), fx1, fy1, fz1)
	nx1 = lerp(r, nxy0, nxy1)

	n1 := lerp(t, nx0, nx1)

	return perlinScale3 * lerp(s, n0, n1)
}

func perlin4[T scalar.Float](x, y, z, w T, px, py, pz, pw int) T {
	ix0 := fastFloor(x)
	iy0 := fastFloor(y)
	iz0 := fastFloor(z)
	iw0 := fastFloor(w)
	fx0 := x - T(ix0)
	fy0 := y - T(iy0)
	fz0 := z - T(iz0)
	fw0 := w - T(iw0)
	fx1 := fx0 - 1
	fy1 := fy0 - 1
	fz1 := fz0 - 1
	fw1 := fw0 - 1
	ix1 := ix0 + 1
	iy1 := iy0 + 1
	iz1 := iz0 + 1
	iw1 := iw0 + 1

	q := fade(fw0)
	r := fade(fz0)
	t := fade(fy0)
	s := fade(fx0)

	dot4 := func(h uint8, dx, dy, dz, dw T) T {
		gx, gy, gz, gw := gradient4[T](h)
		return gx*dx + gy*dy + gz*dz + gw*dw
	}
	h := func(i, j, k, l int) uint8 {
		return hash4(i, j, k, l, px, py, pz, pw)
	}

	// Blend the 16 hypercube corners: w innermost, then z, y, x.
	corner := func(i, j, k int, dx, dy, dz T) T {
		nw0 := dot4(h(i, j, k, iw0), dx, dy, dz, fw0)
		nw1 := dot4(h(i, j, k, iw1), dx, dy, dz, fw1)
		return lerp(q, nw0, nw1)
	}
	edge := func(i, j int, dx, dy T) T {
		nz0 := corner(i, j, iz0, dx, dy, fz0)
		nz1 := corner(i, j, iz1, dx, dy, fz1)
		return lerp(r, nz0, nz1)
	}
	face := func(i int, dx T) T {
		ny0 := edge(i, iy0, dx, fy0)
		ny1 := edge(i, iy1, dx, fy1)
		return lerp(t, ny0, ny1)
	}

	return perlinScale4 * lerp(s, face(ix0, fx0), face(ix1, fx1))
}

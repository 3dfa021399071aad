package noise

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/vec"
)

// Skew/unskew factors per dimension: F = (√(N+1)−1)/N maps the simplex
// lattice onto the integer grid, G = (1−1/√(N+1))/N maps back.
const (
	skew2   = 0.36602540378443864676
	unskew2 = 0.21132486540518711775
	skew3   = 1.0 / 3.0
	unskew3 = 1.0 / 6.0
	skew4   = 0.30901699437494742410
	unskew4 = 0.13819660112501051518
)

// Falloff radii (squared) and output scales per dimension. The falloff
// radius bounds each corner's influence inside its simplex neighbourhood;
// the scale normalizes the summed contributions to ≈[-1, 1].
const (
	radius1 = 1.0
	radius2 = 0.5
	radius3 = 0.6
	radius4 = 0.6

	simplexScale1 = 0.395
	simplexScale2 = 40.0
	simplexScale3 = 32.0
	simplexScale4 = 27.0
)

// Simplex1 evaluates 1D simplex noise at x.
func Simplex1[T scalar.Float](x T) T {
	return simplex1(x, 0)
}

// Simplex2 evaluates 2D simplex noise at p.
func Simplex2[T scalar.Float](p vec.Vec2[T]) T {
	return simplex2(p.X, p.Y, 0, 0)
}

// Simplex3 evaluates 3D simplex noise at p.
func Simplex3[T scalar.Float](p vec.Vec3[T]) T {
	return simplex3(p.X, p.Y, p.Z, 0, 0, 0)
}

// Simplex4 evaluates 4D simplex noise at p.
func Simplex4[T scalar.Float](p vec.Vec4[T]) T {
	return simplex4(p.X, p.Y, p.Z, p.W, 0, 0, 0, 0)
}

func simplex1[T scalar.Float](x T, px int) T {
	i0 := fastFloor(x)
	i1 := i0 + 1
	x0 := x - T(i0)
	x1 := x0 - 1

	// x0 ∈ [0,1), so both falloffs are non-negative without clamping.
	t0 := radius1 - x0*x0
	t0 *= t0
	n0 := t0 * t0 * gradient1[T](hash1(i0, px)) * x0

	t1 := radius1 - x1*x1
	t1 *= t1
	n1 := t1 * t1 * gradient1[T](hash1(i1, px)) * x1

	return simplexScale1 * (n0 + n1)
}

func simplex2[T scalar.Float](x, y T, px, py int) T {
	// Skew into lattice space to find the containing cell.
	s := (x + y) * skew2
	i := fastFloor(x + s)
	j := fastFloor(y + s)

	t := T(i+j) * unskew2
	x0 := x - (T(i) - t)
	y0 := y - (T(j) - t)

	// The cell splits into two triangles along its diagonal; on the
	// diagonal itself the lower-axis corner wins.
	var i1, j1 int
	if x0 >= y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - T(i1) + unskew2
	y1 := y0 - T(j1) + unskew2
	x2 := x0 - 1 + 2*unskew2
	y2 := y0 - 1 + 2*unskew2

	h := func(di, dj int) uint8 {
		return hash2(i+di, j+dj, px, py)
	}
	corner := func(h uint8, dx, dy T) T {
		t := radius2 - dx*dx - dy*dy
		if t < 0 {
			return 0
		}
		t *= t
		gx, gy := gradient2[T](h)
		return t * t * (gx*dx + gy*dy)
	}

	n := corner(h(0, 0), x0, y0)
	n += corner(h(i1, j1), x1, y1)
	n += corner(h(1, 1), x2, y2)
	return simplexScale2 * n
}

func simplex3[T scalar.Float](x, y, z T, px, py, pz int) T {
	s := (x + y + z) * skew3
	i := fastFloor(x + s)
	j := fastFloor(y + s)
	k := fastFloor(z + s)

	t := T(i+j+k) * unskew3
	x0 := x - (T(i) - t)
	y0 := y - (T(j) - t)
	z0 := z - (T(k) - t)

	// Rank the offsets to pick one of the six tetrahedra that tile the
	// cell; ties rank the lower axis first.
	var i1, j1, k1, i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0: // x ≥ y ≥ z
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
		case x0 >= z0: // x ≥ z > y
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
		default: // z > x ≥ y
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
		}
	} else {
		switch {
		case y0 < z0: // z > y > x
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
		case x0 < z0: // y ≥ z > x
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
		default: // y > x ≥ z
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
		}
	}

	x1 := x0 - T(i1) + unskew3
	y1 := y0 - T(j1) + unskew3
	z1 := z0 - T(k1) + unskew3
	x2 := x0 - T(i2) + 2*unskew3
	y2 := y0 - T(j2) + 2*unskew3
	z2 := z0 - T(k2) + 2*unskew3
	x3 := x0 - 1 + 3*unskew3
	y3 := y0 - 1 + 3*unskew3
	z3 := z0 - 1 + 3*unskew3

	h := func(di, dj, dk int) uint8 {
		return hash3(i+di, j+dj, k+dk, px, py, pz)
	}
	corner := func(h uint8, dx, dy, dz T) T {
		t := radius3 - dx*dx - dy*dy - dz*dz
		if t < 0 {
			return 0
		}
		t *= t
		gx, gy, gz := gradient3[T](h)
		return t * t * (gx*dx + gy*dy + gz*dz)
	}

	n := corner(h(0, 0, 0), x0, y0, z0)
	n += corner(h(i1, j1, k1), x1, y1, z1)
	n += corner(h(i2, j2, k2), x2, y2, z2)
	n += corner(h(1, 1, 1), x3, y3, z3)
	return simplexScale3 * n
}

func simplex4[T scalar.Float](x, y, z, w T, px, py, pz, pw int) T {
	s := (x + y + z + w) * skew4
	i := fastFloor(x + s)
	j := fastFloor(y + s)
	k := fastFloor(z + s)
	l := fastFloor(w + s)

	t := T(i+j+k+l) * unskew4
	x0 := x - (T(i) - t)
	y0 := y - (T(j) - t)
	z0 := z - (T(k) - t)
	w0 := w - (T(l) - t)

	// Pairwise rank counting orders the four offsets; an axis beaten by
	// fewer than 4−m others joins the simplex path at step m.
	var rx, ry, rz, rw int
	if x0 >= y0 {
		rx++
	} else {
		ry++
	}
	if x0 >= z0 {
		rx++
	} else {
		rz++
	}
	if x0 >= w0 {
		rx++
	} else {
		rw++
	}
	if y0 >= z0 {
		ry++
	} else {
		rz++
	}
	if y0 >= w0 {
		ry++
	} else {
		rw++
	}
	if z0 >= w0 {
		rz++
	} else {
		rw++
	}

	step := func(rank, threshold int) int {
		if rank >= threshold {
			return 1
		}
		return 0
	}
	i1, j1, k1, l1 := step(rx, 3), step(ry, 3), step(rz, 3), step(rw, 3)
	i2, j2, k2, l2 := step(rx, 2), step(ry, 2), step(rz, 2), step(rw, 2)
	i3, j3, k3, l3 := step(rx, 1), step(ry, 1), step(rz, 1), step(rw, 1)

	x1 := x0 - T(i1) + unskew4
	y1 := y0 - T(j1) + unskew4
	z1 := z0 - T(k1) + unskew4
	w1 := w0 - T(l1) + unskew4
	x2 := x0 - T(i2) + 2*unskew4
	y2 := y0 - T(j2) + 2*unskew4
	z2 := z0 - T(k2) + 2*unskew4
	w2 := w0 - T(l2) + 2*unskew4
	x3 := x0 - T(i3) + 3*unskew4
	y3 := y0 - T(j3) + 3*unskew4
	z3 := z0 - T(k3) + 3*unskew4
	w3 := w0 - T(l3) + 3*unskew4
	x4 := x0 - 1 + 4*unskew4
	y4 := y0 - 1 + 4*unskew4
	z4 := z0 - 1 + 4*unskew4
	w4 := w0 - 1 + 4*unskew4

	h := func(di, dj, dk, dl int) uint8 {
		return hash4(i+di, j+dj, k+dk, l+dl, px, py, pz, pw)
	}
	corner := func(h uint8, dx, dy, dz, dw T) T {
		t := radius4 - dx*dx - dy*dy - dz*dz - dw*dw
		if t < 0 {
			return 0
		}
		t *= t
		gx, gy, gz, gw := gradient4[T](h)
		return t * t * (gx*dx + gy*dy + gz*dz + gw*dw)
	}

	n := corner(h(0, 0, 0, 0), x0, y0, z0, w0)
	n += corner(h(i1, j1, k1, l1), x1, y1, z1, w1)
	n += corner(h(i2, j2, k2, l2), x2, y2, z2, w2)
	n += corner(h(i3, j3, k3, l3), x3, y3, z3, w3)
	n += corner(h(1, 1, 1, 1), x4, y4, z4, w4)
	return simplexScale4 * n
}

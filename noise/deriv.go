package noise

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/vec"
)

// SimplexDeriv evaluators return the same value as the plain Simplex
// functions together with the exact analytic gradient of the field.
// Each corner contributes n = t⁴·(g·d) with t = max(0, r²−|d|²); by the
// product rule its gradient is t³·(t·g − 8·(g·d)·d). Summing the per-corner
// gradients and applying the shared output scale gives a derivative that is
// consistent with the value to the last bit, with no finite-difference step.

// SimplexDeriv1 evaluates 1D simplex noise at x and returns the value and
// its derivative d/dx.
func SimplexDeriv1[T scalar.Float](x T) (T, T) {
	i0 := fastFloor(x)
	i1 := i0 + 1
	x0 := x - T(i0)
	x1 := x0 - 1

	var n, dn T
	corner := func(h uint8, dx T) {
		t := radius1 - dx*dx
		t2 := t * t
		g := gradient1[T](h)
		n += t2 * t2 * g * dx
		dn += t2 * t * g * (t - 8*dx*dx)
	}
	corner(hash1(i0, 0), x0)
	corner(hash1(i1, 0), x1)
	return simplexScale1 * n, simplexScale1 * dn
}

// SimplexDeriv2 evaluates 2D simplex noise at p and returns the value and
// its gradient (∂/∂x, ∂/∂y).
func SimplexDeriv2[T scalar.Float](p vec.Vec2[T]) (T, vec.Vec2[T]) {
	x, y := p.X, p.Y
	s := (x + y) * skew2
	i := fastFloor(x + s)
	j := fastFloor(y + s)

	t := T(i+j) * unskew2
	x0 := x - (T(i) - t)
	y0 := y - (T(j) - t)

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

	var n T
	var grad vec.Vec2[T]
	corner := func(h uint8, dx, dy T) {
		t := radius2 - dx*dx - dy*dy
		if t < 0 {
			return
		}
		t2 := t * t
		gx, gy := gradient2[T](h)
		gd := gx*dx + gy*dy
		n += t2 * t2 * gd
		t3 := t2 * t
		grad.X += t3 * (t*gx - 8*gd*dx)
		grad.Y += t3 * (t*gy - 8*gd*dy)
	}
	hh := func(di, dj int) uint8 {
		return hash2(i+di, j+dj, 0, 0)
	}
	corner(hh(0, 0), x0, y0)
	corner(hh(i1, j1), x1, y1)
	corner(hh(1, 1), x2, y2)
	return simplexScale2 * n, grad.MulS(simplexScale2)
}

// SimplexDeriv3 evaluates 3D simplex noise at p and returns the value and
// its gradient.
func SimplexDeriv3[T scalar.Float](p vec.Vec3[T]) (T, vec.Vec3[T]) {
	x, y, z := p.X, p.Y, p.Z
	s := (x + y + z) * skew3
	i := fastFloor(x + s)
	j := fastFloor(y + s)
	k := fastFloor(z + s)

	t := T(i+j+k) * unskew3
	x0 := x - (T(i) - t)
	y0 := y - (T(j) - t)
	z0 := z - (T(k) - t)

	var i1, j1, k1, i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
		case x0 >= z0:
			i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
		default:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
		}
	} else {
		switch {
		case y0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
		case x0 < z0:
			i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
		default:
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

	var n T
	var grad vec.Vec3[T]
	corner := func(h uint8, dx, dy, dz T) {
		t := radius3 - dx*dx - dy*dy - dz*dz
		if t < 0 {
			return
		}
		t2 := t * t
		gx, gy, gz := gradient3[T](h)
		gd := gx*dx + gy*dy + gz*dz
		n += t2 * t2 * gd
		t3 := t2 * t
		grad.X += t3 * (t*gx - 8*gd*dx)
		grad.Y += t3 * (t*gy - 8*gd*dy)
		grad.Z += t3 * (t*gz - 8*gd*dz)
	}
	hh := func(di, dj, dk int) uint8 {
		return hash3(i+di, j+dj, k+dk, 0, 0, 0)
	}
	corner(hh(0, 0, 0), x0, y0, z0)
	corner(hh(i1, j1, k1), x1, y1, z1)
	corner(hh(i2, j2, k2), x2, y2, z2)
	corner(hh(1, 1, 1), x3, y3, z3)
	return simplexScale3 * n, grad.MulS(simplexScale3)
}

// SimplexDeriv4 evaluates 4D simplex noise at p and returns the value and
// its gradient.
func SimplexDeriv4[T scalar.Float](p vec.Vec4[T]) (T, vec.Vec4[T]) {
	x, y, z, w := p.X, p.Y, p.Z, p.W
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

	var n T
	var grad vec.Vec4[T]
	corner := func(h uint8, dx, dy, dz, dw T) {
		t := radius4 - dx*dx - dy*dy - dz*dz - dw*dw
		if t < 0 {
			return
		}
		t2 := t * t
		gx, gy, gz, gw := gradient4[T](h)
		gd := gx*dx + gy*dy + gz*dz + gw*dw
		n += t2 * t2 * gd
		t3 := t2 * t
		grad.X += t3 * (t*gx - 8*gd*dx)
		grad.Y += t3 * (t*gy - 8*gd*dy)
		grad.Z += t3 * (t*gz - 8*gd*dz)
		grad.W += t3 * (t*gw - 8*gd*dw)
	}
	hh := func(di, dj, dk, dl int) uint8 {
		return hash4(i+di, j+dj, k+dk, l+dl, 0, 0, 0, 0)
	}
	corner(hh(0, 0, 0, 0), x0, y0, z0, w0)
	corner(hh(i1, j1, k1, l1), x1, y1, z1, w1)
	corner(hh(i2, j2, k2, l2), x2, y2, z2, w2)
	corner(hh(i3, j3, k3, l3), x3, y3, z3, w3)
	corner(hh(1, 1, 1, 1), x4, y4, z4, w4)
	return simplexScale4 * n, grad.MulS(simplexScale4)
}

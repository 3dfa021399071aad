package noise

import "github.com/katalvlaran/lvlmath/scalar"

// perm is the classic 256-entry pseudo-random permutation of 0…255,
// doubled to 512 so that chained lookups perm[i+perm[j]] never need a
// second mask. Every evaluator in this package reads from this one table;
// it is never mutated after initialization.
var perm = [512]uint8{
	151, 160, 137, 91, 90, 15,
	131, 13, 201, 95, 96, 53, 194, 233, 7, 225, 140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23,
	190, 6, 148, 247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32, 57, 177, 33,
	88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175, 74, 165, 71, 134, 139, 48, 27, 166,
	77, 146, 158, 231, 83, 111, 229, 122, 60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244,
	102, 143, 54, 65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169, 200, 196,
	135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64, 52, 217, 226, 250, 124, 123,
	5, 202, 38, 147, 118, 126, 255, 82, 85, 212, 207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42,
	223, 183, 170, 213, 119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104, 218, 246, 97, 228,
	251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241, 81, 51, 145, 235, 249, 14, 239, 107,
	49, 192, 214, 31, 181, 199, 106, 157, 184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254,
	138, 236, 205, 93, 222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
	151, 160, 137, 91, 90, 15,
	131, 13, 201, 95, 96, 53, 194, 233, 7, 225, 140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23,
	190, 6, 148, 247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32, 57, 177, 33,
	88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175, 74, 165, 71, 134, 139, 48, 27, 166,
	77, 146, 158, 231, 83, 111, 229, 122, 60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244,
	102, 143, 54, 65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169, 200, 196,
	135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64, 52, 217, 226, 250, 124, 123,
	5, 202, 38, 147, 118, 126, 255, 82, 85, 212, 207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42,
	223, 183, 170, 213, 119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104, 218, 246, 97, 228,
	251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241, 81, 51, 145, 235, 249, 14, 239, 107,
	49, 192, 214, 31, 181, 199, 106, 157, 184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254,
	138, 236, 205, 93, 222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// Gradient sets, one per dimension. A hash drawn from perm is masked down
// to an index into the set for that dimension. The 2D/3D/4D gradients point
// at edge midpoints of the surrounding hypercube (no axis-aligned vectors),
// which avoids the axis bias of purely random directions. Lengths are not
// unit; the per-dimension output scales account for that.

// grad1lut: 16 non-zero slopes ±1…±8.
var grad1lut = [16]int8{1, 2, 3, 4, 5, 6, 7, 8, -1, -2, -3, -4, -5, -6, -7, -8}

// grad2lut: 8 directions at ±(1,2) and ±(2,1) mixes.
var grad2lut = [8][2]int8{
	{1, 2}, {-1, 2}, {1, -2}, {-1, -2},
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
}

// grad3lut: the 12 cube-edge midpoints, padded to 16 with four repeats so
// the hash mask stays a cheap &15.
var grad3lut = [16][3]int8{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
	{1, 1, 0}, {0, -1, 1}, {-1, 1, 0}, {0, -1, -1},
}

// grad4lut: the 32 vertices of the 4D cross-polytope expansion (one zero
// component, the rest ±1).
var grad4lut = [32][4]int8{
	{0, 1, 1, 1}, {0, 1, 1, -1}, {0, 1, -1, 1}, {0, 1, -1, -1},
	{0, -1, 1, 1}, {0, -1, 1, -1}, {0, -1, -1, 1}, {0, -1, -1, -1},
	{1, 0, 1, 1}, {1, 0, 1, -1}, {1, 0, -1, 1}, {1, 0, -1, -1},
	{-1, 0, 1, 1}, {-1, 0, 1, -1}, {-1, 0, -1, 1}, {-1, 0, -1, -1},
	{1, 1, 0, 1}, {1, 1, 0, -1}, {1, -1, 0, 1}, {1, -1, 0, -1},
	{-1, 1, 0, 1}, {-1, 1, 0, -1}, {-1, -1, 0, 1}, {-1, -1, 0, -1},
	{1, 1, 1, 0}, {1, 1, -1, 0}, {1, -1, 1, 0}, {1, -1, -1, 0},
	{-1, 1, 1, 0}, {-1, 1, -1, 0}, {-1, -1, 1, 0}, {-1, -1, -1, 0},
}

// fastFloor rounds toward negative infinity. Plain int(x) truncates toward
// zero, which is one too high for negative non-integers.
func fastFloor[T scalar.Float](x T) int {
	i := int(x)
	if x < T(i) {
		i--
	}
	return i
}

// wrap reduces a lattice index into [0, per) with floored-modulo semantics,
// so negative indices land on the same residues as their positive images.
// A period ≤ 0 means "not periodic on this axis" and passes i through.
func wrap(i, per int) int {
	if per <= 0 {
		return i
	}
	r := i % per
	if r < 0 {
		r += per
	}
	return r
}

// hash1 … hash4 fold (possibly wrapped) lattice coordinates into the
// permutation table, one chained lookup per axis. Period 0 on an axis means
// no wrapping there; all evaluators — value and derivative alike — share
// these, so the two paths stay structurally identical.

func hash1(i, per int) uint8 {
	return perm[wrap(i, per)&255]
}

func hash2(i, j, px, py int) uint8 {
	return perm[wrap(i, px)&255+int(hash1(j, py))]
}

func hash3(i, j, k, px, py, pz int) uint8 {
	return perm[wrap(i, px)&255+int(hash2(j, k, py, pz))]
}

func hash4(i, j, k, l, px, py, pz, pw int) uint8 {
	return perm[wrap(i, px)&255+int(hash3(j, k, l, py, pz, pw))]
}

// fade is the quintic interpolant 6t⁵ − 15t⁴ + 10t³. Its first and second
// derivatives vanish at t = 0 and t = 1, which is what makes classic noise
// C² across cell boundaries.
func fade[T scalar.Float](t T) T {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp[T scalar.Float](t, a, b T) T {
	return a + t*(b-a)
}

// gradient1 … gradient4 map a permutation hash to the gradient components
// for that dimension. Callers form the dot product with the corner offset
// themselves, since the derivative evaluators also need the raw components.

func gradient1[T scalar.Float](h uint8) T {
	return T(grad1lut[h&15])
}

func gradient2[T scalar.Float](h uint8) (gx, gy T) {
	g := &grad2lut[h&7]
	return T(g[0]), T(g[1])
}

func gradient3[T scalar.Float](h uint8) (gx, gy, gz T) {
	g := &grad3lut[h&15]
	return T(g[0]), T(g[1]), T(g[2])
}

func gradient4[T scalar.Float](h uint8) (gx, gy, gz, gw T) {
	g := &grad4lut[h&31]
	return T(g[0]), T(g[1]), T(g[2]), T(g[3])
}

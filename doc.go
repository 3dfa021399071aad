// Package lvlmath is a fixed-size vector & matrix algebra kernel with a
// library of deterministic, reproducible procedural-noise generators —
// shader-style math for host code, generic over float32 and float64.
//
// 🚀 What is lvlmath?
//
//	A pure-Go numeric core that brings together:
//		• Scalar contract: one generic constraint, two precisions, zero dispatch cost
//		• Vector algebra: Vec2/Vec3/Vec4 with dot, cross, length, normalize, mix
//		• Matrix algebra: Mat2…Mat4 (square & non-square), mul, transpose, det, inverse
//		• Classic Perlin noise: 1–4D lattice-gradient noise + periodic tiling
//		• Simplex noise: 1–4D, periodic tiling, and exact analytic derivatives
//
// ✨ Why choose lvlmath?
//
//   - Deterministic – same inputs, same values, on every platform, forever
//   - Value-semantic – no shared ownership, no locks, safe from any goroutine
//   - Total – no error returns; degenerate inputs follow IEEE-754, documented
//   - Generic – every formula written once, instantiated per float width
//
// Everything is organized under four subpackages:
//
//	scalar/ — the floating-point capability contract and elementary functions
//	vec/    — fixed-arity vectors (2, 3, 4 components)
//	mat/    — fixed-size column-major matrices (2×2 through 4×4)
//	noise/  — permutation/gradient tables, classic and simplex noise
//
// Quick sketch:
//
//	p := vec.V2(0.5, 0.5)
//	v := noise.Perlin2(p)               // v ∈ ≈[-1,1], exactly repeatable
//	t := noise.PerlinPeriodic2(p, 8, 8) // tiles every 8 units on both axes
//
// Noise evaluators are O(2^N) (classic) or O(N+1) (simplex) per sample with
// N ≤ 4, hence unconditionally fast, allocation-free and non-blocking.
//
//	go get github.com/katalvlaran/lvlmath
package lvlmath

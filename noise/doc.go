// Package noise provides deterministic gradient-noise generators over 1 to
// 4 dimensions: classic (Perlin) lattice noise, simplex noise, periodic
// (tileable) variants of both, and simplex evaluators that also return the
// exact analytic derivative of the field.
//
// 🚀 What is in here?
//
//	  • Perlin1…Perlin4         — classic noise on the unit hypercube lattice:
//	    2^N corner gradients blended with the quintic fade 6t⁵−15t⁴+10t³
//	  • PerlinPeriodic1…4       — same field, repeating exactly every per
//	    units along each axis
//	  • Simplex1…Simplex4       — simplex-lattice noise: N+1 corners, radial
//	    falloff max(0, r²−d²)⁴ · (gradient · offset)
//	  • SimplexPeriodic1…4      — simplex with lattice-index tiling
//	  • SimplexDeriv1…4         — simplex value plus its analytic gradient,
//	    exact by construction (product rule), not a finite difference
//
// ✨ Guarantees:
//   - Deterministic and reproducible: all state is two immutable constant
//     tables (a 256-entry permutation doubled to 512, and per-dimension
//     gradient sets), so every call is referentially transparent and safe
//     from any number of goroutines
//   - Bounded output: values stay within ≈[-1, 1]; classic noise is exactly
//     0 at integer lattice points
//   - Generic over float32 and float64 through the scalar contract
//
// ⚙️ Usage:
//
//	import (
//		"github.com/katalvlaran/lvlmath/noise"
//		"github.com/katalvlaran/lvlmath/vec"
//	)
//
//	v := noise.Perlin2(vec.V2(0.5, 0.5))
//	w := noise.PerlinPeriodic2(vec.V2(0.5, 0.5), 8, 8) // tiles every 8 units
//	s, g := noise.SimplexDeriv2(vec.V2(0.5, 0.5))      // value + gradient
//
// 📐 Tiling:
//
//	A period ≤ 0 disables tiling on that axis. Periods 1…256 tile without
//	aliasing; larger periods are accepted but alias through the permutation
//	table (repeating artifacts, never an error). Classic periodic noise
//	repeats exactly under translation by one period along any coordinate
//	axis. Simplex periodic noise wraps corner lattice indices before
//	gradient lookup, so its exact repeat runs along the simplex lattice
//	basis directions eᵢ − G·(1,…,1) rather than the coordinate axes.
//
// The per-dimension evaluators are deliberately separate code paths — the
// corner/gradient combinatorics differ per dimension, and keeping them flat
// keeps the math traceable against the reference derivations.
//
// Every evaluator is O(2^N) (classic) or O(N+1) (simplex) with N ≤ 4,
// allocation-free and non-blocking.
package noise

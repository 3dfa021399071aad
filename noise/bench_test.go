package noise_test

import (
	"testing"

	perlin "github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/lvlmath/noise"
	"github.com/katalvlaran/lvlmath/vec"
)

var sink float64

func benchCoord(i int) float64 {
	return float64(i%1024) * 0.017
}

func BenchmarkPerlin2(b *testing.B) {
	for i := 0; i < b.N; i++ {
		x := benchCoord(i)
		sink = noise.Perlin2(vec.V2(x, x*0.7))
	}
}

func BenchmarkPerlin3(b *testing.B) {
	for i := 0; i < b.N; i++ {
		x := benchCoord(i)
		sink = noise.Perlin3(vec.V3(x, x*0.7, x*0.3))
	}
}

func BenchmarkSimplex2(b *testing.B) {
	for i := 0; i < b.N; i++ {
		x := benchCoord(i)
		sink = noise.Simplex2(vec.V2(x, x*0.7))
	}
}

func BenchmarkSimplex3(b *testing.B) {
	for i := 0; i < b.N; i++ {
		x := benchCoord(i)
		sink = noise.Simplex3(vec.V3(x, x*0.7, x*0.3))
	}
}

func BenchmarkSimplex4(b *testing.B) {
	for i := 0; i < b.N; i++ {
		x := benchCoord(i)
		sink = noise.Simplex4(vec.V4(x, x*0.7, x*0.3, x*1.1))
	}
}

func BenchmarkSimplexDeriv3(b *testing.B) {
	for i := 0; i < b.N; i++ {
		x := benchCoord(i)
		v, _ := noise.SimplexDeriv3(vec.V3(x, x*0.7, x*0.3))
		sink = v
	}
}

// Baselines from neighbouring noise libraries, for a like-for-like sense of
// cost per sample. They implement different noise families (fractal Perlin
// sums, OpenSimplex), so compare shapes of numbers, not exact timings.

func BenchmarkBaselineGoPerlin2(b *testing.B) {
	gen := perlin.NewPerlin(2, 2, 3, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x := benchCoord(i)
		sink = gen.Noise2D(x, x*0.7)
	}
}

func BenchmarkBaselineOpenSimplex2(b *testing.B) {
	gen := opensimplex.New(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x := benchCoord(i)
		sink = gen.Eval2(x, x*0.7)
	}
}

func BenchmarkBaselineOpenSimplex3(b *testing.B) {
	gen := opensimplex.New(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x := benchCoord(i)
		sink = gen.Eval3(x, x*0.7, x*0.3)
	}
}

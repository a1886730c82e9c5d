package presets

import (
	"fmt"
	"math"

	"github.com/VoidMesh/noise"
	"github.com/VoidMesh/noise/internal/reference"
)

func init() {
	registerDim[[1]float64]([]int{100}, 0.013, 0.003, gaussian[[1]float64])
	registerDim[[2]float64]([]int{1000, 1000}, 0.013, 0.003, gaussian[[2]float64])
	registerDim[[3]float64]([]int{200, 200, 200}, 0.013, 0.007, gaussian[[3]float64])
	registerDim[[4]float64]([]int{60, 60, 60, 60}, 0.033, 0.021, gaussian4)

	register(define[[2]float64]("chaining", []int{1000, 1000}, chaining))

	registerReference[[2]float64]([]int{1000, 1000}, 0.013)
	registerReference[[3]float64]([]int{200, 200, 200}, 0.013)
}

// registerReference adds the third-party implementations at the same
// frequency as the native sources for side-by-side rendering.
func registerReference[P interface {
	[2]float64 | [3]float64
}](shape []int, freq float64) {
	dim := noise.Dim[P]()
	scale := uniform[P](freq)

	register(define[P](fmt.Sprintf("opensimplex_%dd", dim), shape, func(seed uint64) noise.Generator[P] {
		return noise.From[P](reference.NewOpenSimplex[P](int64(seed))).Scale(scale)
	}))
	register(define[P](fmt.Sprintf("goperlin_%dd", dim), shape, func(seed uint64) noise.Generator[P] {
		return noise.From[P](reference.NewPerlin[P](int64(seed))).Scale(scale)
	}))
}

// registerDim adds the source, fractal and custom presets of one dimension.
// freq is the sampling frequency of the plain sources and the fractals.
func registerDim[P noise.Point](shape []int, freq, customScale float64, custom func(P) float64) {
	src := noise.Source[P]{}
	scale := uniform[P](freq)
	dim := noise.Dim[P]()
	named := func(kind string) string {
		return fmt.Sprintf("%s_%dd", kind, dim)
	}

	register(define[P](named("simplex"), shape, func(seed uint64) noise.Generator[P] {
		return src.Simplex(seed).Scale(scale)
	}))
	register(define[P](named("perlin"), shape, func(seed uint64) noise.Generator[P] {
		return src.Perlin(seed).Scale(scale)
	}))
	register(define[P](named("improved_perlin"), shape, func(seed uint64) noise.Generator[P] {
		return src.ImprovedPerlin(seed).Scale(scale)
	}))
	register(define[P](named("value"), shape, func(seed uint64) noise.Generator[P] {
		return src.Value(seed).Scale(scale)
	}))
	register(define[P](named("worley"), shape, func(seed uint64) noise.Generator[P] {
		return src.Worley(seed).Scale(scale)
	}))
	register(define[P](named("checkerboard"), shape, func(uint64) noise.Generator[P] {
		return src.Checkerboard().Scale(scale)
	}))
	register(define[P](named("custom"), shape, func(uint64) noise.Generator[P] {
		return src.Custom(custom).Scale(uniform[P](customScale))
	}))

	register(define[P](named("fbm_simplex"), shape, func(seed uint64) noise.Generator[P] {
		return src.Simplex(seed).Fbm(3, freq, 2.0, 0.5)
	}))
	register(define[P](named("billow_simplex"), shape, func(seed uint64) noise.Generator[P] {
		return src.Simplex(seed).Billow(3, freq, 2.0, 0.5)
	}))
	register(define[P](named("ridgedmulti_simplex"), shape, func(seed uint64) noise.Generator[P] {
		return src.Simplex(seed).RidgedMulti(3, freq, 2.0, 2.0)
	}))
}

// chaining exercises most adapters in one 2D pipeline. The displacement
// and blend inputs use seeds offset from the main one.
func chaining(seed uint64) noise.Generator[[2]float64] {
	src := noise.Source[[2]float64]{}

	displacement := src.Worley(seed+1).
		Scale([2]float64{0.005, 0.005}).
		Fbm(3, 1.0, 2.0, 0.5).
		Mul(5.0)

	base := src.Simplex(seed).
		Fbm(3, 0.013, 2.0, 0.5).
		Abs().
		Mul(2.0).
		Lambda(func(x float64) float64 { return 1.0 - math.Exp(x)/2.8 }).
		DisplaceX(displacement)

	return noise.From[[2]float64](noise.Rotate2D(base, [1]float64{0.5})).Blend(
		src.Worley(seed+3).Scale([2]float64{0.033, 0.033}),
		src.Perlin(seed+3).Scale([2]float64{0.033, 0.033}).Add(0.3),
	)
}

// gaussian is a bell centred on the origin, mapped to [-1, 1].
func gaussian[P noise.Point](p P) float64 {
	var s float64
	for i := 0; i < len(p); i++ {
		s -= p[i] * p[i]
	}
	return math.Exp(s)*2 - 1
}

// gaussian4 is flattened along w so the animation fades in and out.
func gaussian4(p [4]float64) float64 {
	x, y, z, w := p[0], p[1], p[2], p[3]
	return math.Exp(-(x*x)-(y*y)-(z*z)-(w*w)*2-1)*2 - 1
}

func uniform[P noise.Point](v float64) P {
	var p P
	for i := 0; i < len(p); i++ {
		p[i] = v
	}
	return p
}

// Package reference adapts third-party noise implementations to
// noise.Generator so they can be rendered, benchmarked and compared
// against the sources in package noise.
package reference

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"

	"github.com/VoidMesh/noise"
)

// Octave settings for go-perlin: alpha 2, beta 2 and 3 iterations give
// terrain-like noise.
const (
	perlinAlpha = 2
	perlinBeta  = 2
	perlinN     = 3
)

// PerlinPoint is the subset of dimensions go-perlin implements.
type PerlinPoint interface {
	[1]float64 | [2]float64 | [3]float64
}

// Perlin wraps go-perlin's multi-octave gradient noise.
type Perlin[P PerlinPoint] struct {
	noise *perlin.Perlin
	seed  int64
}

// NewPerlin creates a go-perlin generator seeded through math/rand.
func NewPerlin[P PerlinPoint](seed int64) Perlin[P] {
	return Perlin[P]{
		noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed),
		seed:  seed,
	}
}

func (g Perlin[P]) Sample(point P) float64 {
	c := pad(point)
	switch len(point) {
	case 1:
		return g.noise.Noise1D(c[0])
	case 2:
		return g.noise.Noise2D(c[0], c[1])
	default:
		// go-perlin falls back to 2D for negative z
		return g.noise.Noise3D(c[0], c[1], c[2])
	}
}

func (g Perlin[P]) Seed() int64 {
	return g.seed
}

// OpenSimplexPoint is the subset of dimensions opensimplex-go implements.
type OpenSimplexPoint interface {
	[2]float64 | [3]float64 | [4]float64
}

// OpenSimplex wraps opensimplex-go, rescaled from its [0, 1) normalized
// output to [-1, 1).
type OpenSimplex[P OpenSimplexPoint] struct {
	noise opensimplex.Noise
	seed  int64
}

func NewOpenSimplex[P OpenSimplexPoint](seed int64) OpenSimplex[P] {
	return OpenSimplex[P]{
		noise: opensimplex.NewNormalized(seed),
		seed:  seed,
	}
}

func (g OpenSimplex[P]) Sample(point P) float64 {
	c := pad(point)
	var v float64
	switch len(point) {
	case 2:
		v = g.noise.Eval2(c[0], c[1])
	case 3:
		v = g.noise.Eval3(c[0], c[1], c[2])
	default:
		v = g.noise.Eval4(c[0], c[1], c[2], c[3])
	}
	return v*2 - 1
}

func (g OpenSimplex[P]) Seed() int64 {
	return g.seed
}

func pad[P noise.Point](point P) (c [4]float64) {
	for i := 0; i < len(point); i++ {
		c[i] = point[i]
	}
	return c
}

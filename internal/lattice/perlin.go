package lattice

import "github.com/VoidMesh/noise/internal/ptable"

// Perlin is classic gradient noise: cubic fade, hypercube corner gradients.
// len(p) selects the dimension.
func Perlin(t *ptable.Table, p []float64) float64 {
	dim := len(p)
	if dim == 1 {
		return gradient1D(t, p[0], smoothstep3) * perlinNorm1
	}

	cell, d := origin(t, p)
	var v [1 << maxDim]float64
	for c := 0; c < 1<<dim; c++ {
		x := cornerOffset(&d, c, dim)
		v[c] = cornerDot(hashCorner(t, &cell, c, dim), &x, dim)
	}

	var w [maxDim]float64
	for k := 0; k < dim; k++ {
		w[k] = smoothstep3(d[k])
	}

	switch dim {
	case 2:
		return interpolate(&v, &w, dim) * perlinNorm2
	case 3:
		return interpolate(&v, &w, dim) * perlinNorm3
	default:
		return interpolate(&v, &w, dim) * perlinNorm4
	}
}

// ImprovedPerlin uses the quintic fade and edge-midpoint gradients.
func ImprovedPerlin(t *ptable.Table, p []float64) float64 {
	dim := len(p)
	if dim == 1 {
		return gradient1D(t, p[0], smoothstep5) * improvedPerlinNorm1
	}

	cell, d := origin(t, p)
	var v [1 << maxDim]float64
	for c := 0; c < 1<<dim; c++ {
		x := cornerOffset(&d, c, dim)
		v[c] = midpointDot(hashCorner(t, &cell, c, dim), &x, dim)
	}

	var w [maxDim]float64
	for k := 0; k < dim; k++ {
		w[k] = smoothstep5(d[k])
	}

	switch dim {
	case 2:
		return interpolate(&v, &w, dim) * improvedPerlinNorm2
	case 3:
		return interpolate(&v, &w, dim) * improvedPerlinNorm3
	default:
		return interpolate(&v, &w, dim) * improvedPerlinNorm4
	}
}

// gradient1D picks a hashed sign per lattice point and fades between the
// two linear ramps.
func gradient1D(t *ptable.Table, x float64, fade func(float64) float64) float64 {
	cell, d := origin(t, []float64{x})
	sign0 := gradient1[t.Hash1(cell[0])%2]
	sign1 := gradient1[t.Hash1(cell[0]+1)%2]
	return lerp(sign0*d[0], sign1*(d[0]-1), fade(d[0]))
}

func cornerDot(h int, x *[maxDim]float64, dim int) float64 {
	switch dim {
	case 2:
		g := &cornerGradient2[h%len(cornerGradient2)]
		return g[0]*x[0] + g[1]*x[1]
	case 3:
		g := &cornerGradient3[h%len(cornerGradient3)]
		return g[0]*x[0] + g[1]*x[1] + g[2]*x[2]
	default:
		g := &cornerGradient4[h%len(cornerGradient4)]
		return g[0]*x[0] + g[1]*x[1] + g[2]*x[2] + g[3]*x[3]
	}
}

func midpointDot(h int, x *[maxDim]float64, dim int) float64 {
	switch dim {
	case 2:
		g := &midpointGradient2[h%len(midpointGradient2)]
		return g[0]*x[0] + g[1]*x[1]
	case 3:
		g := &midpointGradient3[h%len(midpointGradient3)]
		return g[0]*x[0] + g[1]*x[1] + g[2]*x[2]
	default:
		g := &midpointGradient4[h%len(midpointGradient4)]
		return g[0]*x[0] + g[1]*x[1] + g[2]*x[2] + g[3]*x[3]
	}
}

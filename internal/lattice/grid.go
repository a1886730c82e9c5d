package lattice

import (
	"math"

	"github.com/VoidMesh/noise/internal/ptable"
)

// maxDim is the highest supported dimension; 1<<maxDim corners.
const maxDim = 4

// origin splits p into its wrapped lattice cell and the offset from it.
func origin(t *ptable.Table, p []float64) (cell [maxDim]int, d [maxDim]float64) {
	for k, v := range p {
		f := math.Floor(v)
		cell[k] = t.Wrap(int(f))
		d[k] = v - f
	}
	return cell, d
}

// hashCorner folds the coordinates of one hypercube corner through the
// table. Bit k of corner selects the +1 neighbour along axis k.
func hashCorner(t *ptable.Table, cell *[maxDim]int, corner, dim int) int {
	h := t.Hash1(cell[0] + corner&1)
	for k := 1; k < dim; k++ {
		h = t.Hash1(cell[k] + (corner>>k)&1 + h)
	}
	return h
}

// interpolate collapses the 2^dim corner values one axis at a time,
// starting with x.
func interpolate(v *[1 << maxDim]float64, w *[maxDim]float64, dim int) float64 {
	n := 1 << dim
	for k := 0; k < dim; k++ {
		n >>= 1
		for c := 0; c < n; c++ {
			v[c] = lerp(v[2*c], v[2*c+1], w[k])
		}
	}
	return v[0]
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func smoothstep3(t float64) float64 {
	return t * t * (t*-2 + 3)
}

func smoothstep5(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// cornerOffset is the vector from the given corner to the sample point.
func cornerOffset(d *[maxDim]float64, corner, dim int) (x [maxDim]float64) {
	for k := 0; k < dim; k++ {
		x[k] = d[k] - float64((corner>>k)&1)
	}
	return x
}

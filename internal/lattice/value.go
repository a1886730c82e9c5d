package lattice

import (
	"math"

	"github.com/VoidMesh/noise/internal/ptable"
)

// Value interpolates hashed lattice values with the cubic fade.
func Value(t *ptable.Table, p []float64) float64 {
	dim := len(p)
	cell, d := origin(t, p)

	var v [1 << maxDim]float64
	for c := 0; c < 1<<dim; c++ {
		v[c] = float64(hashCorner(t, &cell, c, dim))
	}

	var w [maxDim]float64
	for k := 0; k < dim; k++ {
		w[k] = smoothstep3(d[k])
	}
	return 2/float64(ptable.Size)*interpolate(&v, &w, dim) - 1
}

// Worley returns the distance to the nearest feature point, searching only
// the 3^D cells around the sample, clamped to [0, 1] and mapped to [-1, 1].
// A feature point nearer than the clamp but outside the neighbourhood is
// not found.
func Worley(t *ptable.Table, p []float64) float64 {
	dim := len(p)
	var base [maxDim]int
	var d [maxDim]float64
	for k, v := range p {
		f := math.Floor(v)
		base[k] = int(f)
		d[k] = v - f
	}

	neighbours := 1
	for k := 0; k < dim; k++ {
		neighbours *= 3
	}

	minDistSq := math.Inf(1)
	for n := 0; n < neighbours; n++ {
		var offset [maxDim]int
		var cell [maxDim]int
		for k, r := 0, n; k < dim; k, r = k+1, r/3 {
			offset[k] = r%3 - 1
			cell[k] = t.Wrap(base[k] + offset[k])
		}

		feature := featurePoint(t, &cell, dim)
		var distSq float64
		for k := 0; k < dim; k++ {
			delta := feature[k] + float64(offset[k]) - d[k]
			distSq += delta * delta
		}
		minDistSq = math.Min(minDistSq, distSq)
	}

	return math.Min(math.Max(math.Sqrt(minDistSq), 0), 1)*2 - 1
}

// featurePoint derives a point inside the cell: the first coordinate is the
// cell hash, each further coordinate rehashes the previous one.
func featurePoint(t *ptable.Table, cell *[maxDim]int, dim int) (f [maxDim]float64) {
	h := hashCorner(t, cell, 0, dim)
	f[0] = float64(h) / float64(ptable.Size)
	for k := 1; k < dim; k++ {
		h = t.Hash1(h)
		f[k] = float64(h) / float64(ptable.Size)
	}
	return f
}

// Checkerboard alternates -1 and 1 between neighbouring unit cells.
func Checkerboard(p []float64) float64 {
	parity := 0
	for _, v := range p {
		parity ^= int(int64(math.Floor(v))) & 1
	}
	return float64(parity)*2 - 1
}

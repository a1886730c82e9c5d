// Package lattice implements the per-dimension lattice noise kernels. Every
// function is pure: it reads only the permutation table it is given.
package lattice

import (
	"math"

	"github.com/VoidMesh/noise/internal/ptable"
)

// Simplex dispatches to the kernel for len(p) dimensions.
func Simplex(t *ptable.Table, p []float64) float64 {
	switch len(p) {
	case 1:
		return Simplex1(t, p[0])
	case 2:
		return Simplex2(t, p[0], p[1])
	case 3:
		return Simplex3(t, p[0], p[1], p[2])
	default:
		return Simplex4(t, p[0], p[1], p[2], p[3])
	}
}

func Simplex1(t *ptable.Table, x float64) float64 {
	i0 := math.Floor(x)
	x0 := x - i0
	x1 := x0 - 1

	c := t.Wrap(int(i0))
	g0 := t.Hash1(c) % len(gradient1)
	g1 := t.Hash1(c+1) % len(gradient1)

	n0 := simplexContribution1(x0, g0)
	n1 := simplexContribution1(x1, g1)
	return (n0 + n1) * simplexNorm1
}

func simplexContribution1(x float64, gi int) float64 {
	if math.Abs(x) >= math.Sqrt2/2 {
		return 0
	}
	s := rSquared - x*x
	s *= s
	return s * s * gradient1[gi] * x
}

func Simplex2(t *ptable.Table, x, y float64) float64 {
	s := (x + y) * skew2
	i := math.Floor(x + s)
	j := math.Floor(y + s)

	u := (i + j) * unskew2
	x0 := x - i + u
	y0 := y - j + u

	// middle corner of the triangle containing the point
	i1, j1 := 1, 0
	if x0 < y0 {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + unskew2
	y1 := y0 - float64(j1) + unskew2
	x2 := x0 - 1 + 2*unskew2
	y2 := y0 - 1 + 2*unskew2

	ci, cj := t.Wrap(int(i)), t.Wrap(int(j))
	g0 := t.Hash2(ci, cj) % len(midpointGradient2)
	g1 := t.Hash2(ci+i1, cj+j1) % len(midpointGradient2)
	g2 := t.Hash2(ci+1, cj+1) % len(midpointGradient2)

	n0 := simplexContribution2(x0, y0, g0)
	n1 := simplexContribution2(x1, y1, g1)
	n2 := simplexContribution2(x2, y2, g2)
	return (n0 + n1 + n2) * simplexNorm2
}

func simplexContribution2(x, y float64, gi int) float64 {
	s := rSquared - x*x - y*y
	if s <= 0 {
		return 0
	}
	g := &midpointGradient2[gi]
	s *= s
	return s * s * (g[0]*x + g[1]*y)
}

func Simplex3(t *ptable.Table, x, y, z float64) float64 {
	s := (x + y + z) * skew3
	i := math.Floor(x + s)
	j := math.Floor(y + s)
	k := math.Floor(z + s)

	u := (i + j + k) * unskew3
	x0 := x - i + u
	y0 := y - j + u
	z0 := z - k + u

	idx := b2i(x0 > y0)<<2 | b2i(y0 > z0)<<1 | b2i(x0 > z0)
	m := &traversal3[idx]

	x1 := x0 - float64(m[0]) + unskew3
	y1 := y0 - float64(m[1]) + unskew3
	z1 := z0 - float64(m[2]) + unskew3
	x2 := x0 - float64(m[3]) + 2*unskew3
	y2 := y0 - float64(m[4]) + 2*unskew3
	z2 := z0 - float64(m[5]) + 2*unskew3
	x3 := x0 - 1 + 3*unskew3
	y3 := y0 - 1 + 3*unskew3
	z3 := z0 - 1 + 3*unskew3

	ci, cj, ck := t.Wrap(int(i)), t.Wrap(int(j)), t.Wrap(int(k))
	n := len(midpointGradient3)
	g0 := t.Hash3(ci, cj, ck) % n
	g1 := t.Hash3(ci+m[0], cj+m[1], ck+m[2]) % n
	g2 := t.Hash3(ci+m[3], cj+m[4], ck+m[5]) % n
	g3 := t.Hash3(ci+1, cj+1, ck+1) % n

	n0 := simplexContribution3(x0, y0, z0, g0)
	n1 := simplexContribution3(x1, y1, z1, g1)
	n2 := simplexContribution3(x2, y2, z2, g2)
	n3 := simplexContribution3(x3, y3, z3, g3)
	return (n0 + n1 + n2 + n3) * simplexNorm3
}

func simplexContribution3(x, y, z float64, gi int) float64 {
	s := rSquared - x*x - y*y - z*z
	if s <= 0 {
		return 0
	}
	g := &midpointGradient3[gi]
	s *= s
	return s * s * (g[0]*x + g[1]*y + g[2]*z)
}

func Simplex4(t *ptable.Table, x, y, z, w float64) float64 {
	s := (x + y + z + w) * skew4
	i := math.Floor(x + s)
	j := math.Floor(y + s)
	k := math.Floor(z + s)
	l := math.Floor(w + s)

	u := (i + j + k + l) * unskew4
	x0 := x - i + u
	y0 := y - j + u
	z0 := z - k + u
	w0 := w - l + u

	idx := b2i(x0 > y0)<<5 | b2i(x0 > z0)<<4 | b2i(y0 > z0)<<3 |
		b2i(x0 > w0)<<2 | b2i(y0 > w0)<<1 | b2i(z0 > w0)
	m := &traversal4[idx]

	ci, cj, ck, cl := t.Wrap(int(i)), t.Wrap(int(j)), t.Wrap(int(k)), t.Wrap(int(l))
	n := len(midpointGradient4)

	sum := simplexContribution4(x0, y0, z0, w0, t.Hash4(ci, cj, ck, cl)%n)
	for c := 0; c < 3; c++ {
		o := c * 4
		off := float64(c+1) * unskew4
		gi := t.Hash4(ci+m[o], cj+m[o+1], ck+m[o+2], cl+m[o+3]) % n
		sum += simplexContribution4(
			x0-float64(m[o])+off,
			y0-float64(m[o+1])+off,
			z0-float64(m[o+2])+off,
			w0-float64(m[o+3])+off,
			gi,
		)
	}
	off := 4 * unskew4
	sum += simplexContribution4(x0-1+off, y0-1+off, z0-1+off, w0-1+off, t.Hash4(ci+1, cj+1, ck+1, cl+1)%n)
	return sum * simplexNorm4
}

func simplexContribution4(x, y, z, w float64, gi int) float64 {
	s := rSquared - x*x - y*y - z*z - w*w
	if s <= 0 {
		return 0
	}
	g := &midpointGradient4[gi]
	s *= s
	return s * s * (g[0]*x + g[1]*y + g[2]*z + g[3]*w)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

package noise

import (
	"github.com/VoidMesh/noise/internal/lattice"
	"github.com/VoidMesh/noise/internal/ptable"
)

// Simplex is simplex gradient noise in [-1, 1].
type Simplex[P Point] struct {
	perm *ptable.Table
}

// NewSimplex creates a simplex source for the seed.
func NewSimplex[P Point](seed Seed) Simplex[P] {
	return Simplex[P]{perm: ptable.NewDefault(seed)}
}

func (s Simplex[P]) Sample(point P) float64 {
	c := coords(point)
	switch len(point) {
	case 1:
		return lattice.Simplex1(s.perm, c[0])
	case 2:
		return lattice.Simplex2(s.perm, c[0], c[1])
	case 3:
		return lattice.Simplex3(s.perm, c[0], c[1], c[2])
	default:
		return lattice.Simplex4(s.perm, c[0], c[1], c[2], c[3])
	}
}

// Perlin is classic gradient noise in [-1, 1].
type Perlin[P Point] struct {
	perm *ptable.Table
}

// NewPerlin creates a classic Perlin source for the seed.
func NewPerlin[P Point](seed Seed) Perlin[P] {
	return Perlin[P]{perm: ptable.NewDefault(seed)}
}

func (s Perlin[P]) Sample(point P) float64 {
	c := coords(point)
	return lattice.Perlin(s.perm, c[:len(point)])
}

// ImprovedPerlin is gradient noise with a quintic fade, in [-1, 1].
type ImprovedPerlin[P Point] struct {
	perm *ptable.Table
}

// NewImprovedPerlin creates an improved Perlin source for the seed.
func NewImprovedPerlin[P Point](seed Seed) ImprovedPerlin[P] {
	return ImprovedPerlin[P]{perm: ptable.NewDefault(seed)}
}

func (s ImprovedPerlin[P]) Sample(point P) float64 {
	c := coords(point)
	return lattice.ImprovedPerlin(s.perm, c[:len(point)])
}

// Value is interpolated lattice value noise in [-1, 1].
type Value[P Point] struct {
	perm *ptable.Table
}

// NewValue creates a value noise source for the seed.
func NewValue[P Point](seed Seed) Value[P] {
	return Value[P]{perm: ptable.NewDefault(seed)}
}

func (s Value[P]) Sample(point P) float64 {
	c := coords(point)
	return lattice.Value(s.perm, c[:len(point)])
}

// Worley is cellular noise: distance to the nearest feature point, in [-1, 1].
// Only the immediately neighbouring cells are searched.
type Worley[P Point] struct {
	perm *ptable.Table
}

// NewWorley creates a cellular noise source for the seed.
func NewWorley[P Point](seed Seed) Worley[P] {
	return Worley[P]{perm: ptable.NewDefault(seed)}
}

func (s Worley[P]) Sample(point P) float64 {
	c := coords(point)
	return lattice.Worley(s.perm, c[:len(point)])
}

// Checkerboard alternates between -1 and 1 on unit cells.
type Checkerboard[P Point] struct{}

func NewCheckerboard[P Point]() Checkerboard[P] {
	return Checkerboard[P]{}
}

func (Checkerboard[P]) Sample(point P) float64 {
	c := coords(point)
	return lattice.Checkerboard(c[:len(point)])
}

// Constant returns the same value everywhere.
type Constant[P Point] struct {
	value float64
}

func NewConstant[P Point](value float64) Constant[P] {
	return Constant[P]{value: value}
}

func (s Constant[P]) Sample(P) float64 {
	return s.value
}

// Custom samples a user function. The function must be pure.
type Custom[P Point] struct {
	fn func(P) float64
}

func NewCustom[P Point](fn func(P) float64) Custom[P] {
	return Custom[P]{fn: fn}
}

func (s Custom[P]) Sample(point P) float64 {
	return s.fn(point)
}

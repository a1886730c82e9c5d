// Package ptable builds the seeded permutation tables that every lattice
// noise source hashes its integer coordinates through.
package ptable

import "math"

// Size is the number of distinct entries in a standard table.
const Size = 256

// Table is an immutable shuffled permutation of 0..n-1, optionally
// followed by a second copy so that index+offset lookups never wrap.
type Table struct {
	perm []int
	size int
}

// New builds a table of the given size shuffled with the seed.
func New(seed Seed, size int, doubleUp bool) *Table {
	perm := make([]int, size, 2*size)
	for i := range perm {
		perm[i] = i
	}

	rng := newPCG(seed)
	for i := size - 1; i > 0; i-- {
		j := int(rng.Uint32n(uint32(i + 1)))
		perm[i], perm[j] = perm[j], perm[i]
	}

	if doubleUp {
		perm = append(perm, perm...)
	}
	return &Table{perm: perm, size: size}
}

// NewDefault builds the doubled 256-entry table used by noise sources.
func NewDefault(seed Seed) *Table {
	return New(seed, Size, true)
}

// Len returns the number of addressable entries.
func (t *Table) Len() int {
	return len(t.perm)
}

// Size returns the number of distinct entries.
func (t *Table) Size() int {
	return t.size
}

// Wrap reduces a lattice cell coordinate to a table index in 0..size-1.
// Negative cells wrap the same way positive ones do.
func (t *Table) Wrap(cell int) int {
	m := cell % t.size
	if m < 0 {
		m += t.size
	}
	return m
}

// Cell floors x and wraps the resulting lattice coordinate.
func (t *Table) Cell(x float64) int {
	return t.Wrap(int(math.Floor(x)))
}

func (t *Table) Hash1(i int) int {
	return t.perm[i]
}

func (t *Table) Hash2(i, j int) int {
	return t.perm[j+t.perm[i]]
}

func (t *Table) Hash3(i, j, k int) int {
	return t.perm[k+t.perm[j+t.perm[i]]]
}

func (t *Table) Hash4(i, j, k, l int) int {
	return t.perm[l+t.perm[k+t.perm[j+t.perm[i]]]]
}

package noise

import "github.com/VoidMesh/noise/internal/ptable"

// Seed identifies a noise field. Equal seeds give bit-identical output.
type Seed = ptable.Seed

// Uint64Seed builds a seed from a 64-bit integer.
func Uint64Seed(seed uint64) Seed {
	return ptable.Uint64Seed(seed)
}

// ByteSeed builds a seed from 32 bytes of entropy.
func ByteSeed(seed [32]byte) Seed {
	return ptable.ByteSeed(seed)
}

package ptable

import (
	"encoding/binary"
	"math/bits"
)

// The shuffle generator is part of the determinism contract of every noise
// source: changing it changes every seeded field.

const (
	maxUint64 = (1 << 64) - 1

	multiplier = 47026247687942121848144207491837523525 // PCG_DEFAULT_MULTIPLIER_128
	mulHigh    = multiplier >> 64
	mulLow     = multiplier & maxUint64

	increment = 117397592171526113268558934119004209487 // PCG_DEFAULT_INCREMENT_128
	incHigh   = increment >> 64
	incLow    = increment & maxUint64
)

// pcg is the PCG XSL RR 128/64 generator. State is two uint64 words.
type pcg struct {
	low  uint64
	high uint64
}

func newPCG(seed Seed) *pcg {
	return &pcg{low: seed.low, high: seed.high}
}

// Uint64 advances the LCG and returns the permuted output.
func (p *pcg) Uint64() uint64 {
	hi, lo := bits.Mul64(p.low, mulLow)
	hi += p.high * mulLow
	hi += p.low * mulHigh
	p.low = lo
	p.high = hi

	var carry uint64
	p.low, carry = bits.Add64(p.low, incLow, 0)
	p.high, _ = bits.Add64(p.high, incHigh, carry)

	// XOR high and low words, rotate right by the top 6 bits of state.
	return bits.RotateLeft64(p.high^p.low, -int(p.high>>58))
}

// Uint32n returns a value in [0, n) using Lemire's multiply-shift reduction.
func (p *pcg) Uint32n(n uint32) uint32 {
	v := uint32(p.Uint64())
	prod := uint64(v) * uint64(n)
	low := uint32(prod)
	if low < n {
		thresh := uint32(-int32(n)) % n
		for low < thresh {
			v = uint32(p.Uint64())
			prod = uint64(v) * uint64(n)
			low = uint32(prod)
		}
	}
	return uint32(prod >> 32)
}

// Seed is the 128-bit initial state of the shuffle generator.
type Seed struct {
	low  uint64
	high uint64
}

// Uint64Seed expands a 64-bit seed into generator state with splitmix64.
func Uint64Seed(seed uint64) Seed {
	x := seed ^ 0x9e3779b97f4a7c15
	return Seed{
		high: splitmix64(x),
		low:  splitmix64(x ^ 0xda942042e4dd58b5),
	}
}

// ByteSeed folds a 32-byte seed into generator state. The four
// little-endian words are XORed pairwise into the low and high words.
func ByteSeed(seed [32]byte) Seed {
	le := binary.LittleEndian
	return Seed{
		low:  le.Uint64(seed[0:8]) ^ le.Uint64(seed[16:24]),
		high: le.Uint64(seed[8:16]) ^ le.Uint64(seed[24:32]),
	}
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

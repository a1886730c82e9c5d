package ptable

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		seed     Seed
		size     int
		doubleUp bool
		wantLen  int
	}{
		{name: "standard doubled table", seed: Uint64Seed(42), size: Size, doubleUp: true, wantLen: 2 * Size},
		{name: "single table", seed: Uint64Seed(42), size: Size, doubleUp: false, wantLen: Size},
		{name: "small table", seed: Uint64Seed(7), size: 16, doubleUp: true, wantLen: 32},
		{name: "byte seed", seed: ByteSeed([32]byte{1, 2, 3}), size: Size, doubleUp: true, wantLen: 2 * Size},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := New(tt.seed, tt.size, tt.doubleUp)
			require.NotNil(t, table)
			assert.Equal(t, tt.wantLen, table.Len())
			assert.Equal(t, tt.size, table.Size())

			// first half is a permutation of 0..size-1
			first := append([]int(nil), table.perm[:tt.size]...)
			sort.Ints(first)
			for i, v := range first {
				require.Equal(t, i, v, "missing entry %d", i)
			}

			if tt.doubleUp {
				assert.Equal(t, table.perm[:tt.size], table.perm[tt.size:])
			}
		})
	}
}

func TestNew_KnownShuffle(t *testing.T) {
	tests := []struct {
		name string
		seed Seed
		want []int
	}{
		{name: "seed 42", seed: Uint64Seed(42), want: []int{104, 150, 2, 210, 44, 68, 198, 26}},
		{name: "seed 0", seed: Uint64Seed(0), want: []int{113, 141, 33, 36, 1, 50, 45, 37}},
		{name: "zero byte seed", seed: ByteSeed([32]byte{}), want: []int{73, 128, 120, 79, 152, 66, 108, 143}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewDefault(tt.seed)
			assert.Equal(t, tt.want, table.perm[:len(tt.want)])
		})
	}
}

func TestNew_Determinism(t *testing.T) {
	a := NewDefault(Uint64Seed(1234))
	b := NewDefault(Uint64Seed(1234))
	c := NewDefault(Uint64Seed(1235))

	assert.Equal(t, a.perm, b.perm)
	assert.NotEqual(t, a.perm, c.perm)
}

func TestByteSeed_Fold(t *testing.T) {
	var seed [32]byte
	seed[0] = 0xff
	seed[16] = 0xff
	assert.Equal(t, Seed{}, ByteSeed(seed), "matching words cancel")

	seed[16] = 0
	assert.Equal(t, Seed{low: 0xff}, ByteSeed(seed))
}

func TestTable_Wrap(t *testing.T) {
	table := NewDefault(Uint64Seed(1))

	tests := []struct {
		cell int
		want int
	}{
		{cell: 0, want: 0},
		{cell: 255, want: 255},
		{cell: 256, want: 0},
		{cell: -1, want: 255},
		{cell: -256, want: 0},
		{cell: -257, want: 255},
		{cell: 1000, want: 1000 % 256},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, table.Wrap(tt.cell), "cell %d", tt.cell)
	}

	assert.Equal(t, 255, table.Cell(-0.5))
	assert.Equal(t, 3, table.Cell(3.99))
}

func TestTable_Hashes(t *testing.T) {
	table := NewDefault(Uint64Seed(99))

	// the folded hashes stay in bounds at the maximum corner offset
	for i := 0; i < Size; i++ {
		j := Size - 1
		assert.NotPanics(t, func() {
			table.Hash4(i+1, j+1, j+1, j+1)
		})
	}

	assert.Equal(t, table.perm[5+table.perm[3]], table.Hash2(3, 5))
	assert.Equal(t, table.perm[7+table.Hash2(3, 5)], table.Hash3(3, 5, 7))
	assert.Equal(t, table.perm[9+table.Hash3(3, 5, 7)], table.Hash4(3, 5, 7, 9))
}

func TestPCG_Uint32n(t *testing.T) {
	rng := newPCG(Uint64Seed(5))
	for _, n := range []uint32{1, 2, 3, 10, 255, 256, 1 << 31} {
		for i := 0; i < 100; i++ {
			assert.Less(t, rng.Uint32n(n), n)
		}
	}
}

func BenchmarkNewDefault(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NewDefault(Uint64Seed(uint64(i)))
	}
}

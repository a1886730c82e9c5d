package testutil

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Point mirrors the point dimensions accepted by noise generators.
type Point interface {
	[1]float64 | [2]float64 | [3]float64 | [4]float64
}

// RandomPoints returns n reproducible points with coordinates in
// [-spread, spread].
func RandomPoints[P Point](seed int64, n int, spread float64) []P {
	rng := rand.New(rand.NewSource(seed))
	points := make([]P, n)
	for i := range points {
		for k := 0; k < len(points[i]); k++ {
			points[i][k] = (rng.Float64()*2 - 1) * spread
		}
	}
	return points
}

// AssertUnitRange checks that sample stays finite and inside [-1, 1] at
// every point.
func AssertUnitRange[P Point](t *testing.T, sample func(P) float64, points []P) {
	t.Helper()
	AssertRange(t, sample, points, -1, 1)
}

// AssertRange checks that sample stays finite and inside [lo, hi].
func AssertRange[P Point](t *testing.T, sample func(P) float64, points []P, lo, hi float64) {
	t.Helper()

	for _, p := range points {
		v := sample(p)
		require.False(t, math.IsNaN(v), "NaN at %v", p)
		require.GreaterOrEqual(t, v, lo, "below range at %v", p)
		require.LessOrEqual(t, v, hi, "above range at %v", p)
	}
}

// AssertDeterministic checks that two independently built samplers agree
// bit for bit.
func AssertDeterministic[P Point](t *testing.T, a, b func(P) float64, points []P) {
	t.Helper()

	for _, p := range points {
		assert.Equal(t, math.Float64bits(a(p)), math.Float64bits(b(p)), "differs at %v", p)
	}
}

package lattice

import "math"

// Simplex kernel radius squared.
const rSquared = 0.5

// Skew and unskew factors, F(D) = (sqrt(D+1)-1)/D and G(D) = (1-1/sqrt(D+1))/D.
var (
	skew2   = (math.Sqrt(3) - 1) / 2
	unskew2 = (1 - 1/math.Sqrt(3)) / 2
	skew3   = (math.Sqrt(4) - 1) / 3
	unskew3 = (1 - 1/math.Sqrt(4)) / 3
	skew4   = (math.Sqrt(5) - 1) / 4
	unskew4 = (1 - 1/math.Sqrt(5)) / 4
)

// Normalization factors scale the raw sums into [-1, 1]. Each is the
// reciprocal of the maximum attainable magnitude for its gradient set,
// rounded down.
const (
	simplexNorm1 = 108.7342
	simplexNorm2 = 102.3366
	simplexNorm3 = 76.8807
	simplexNorm4 = 62.77774

	perlinNorm1 = 2.0
	perlinNorm2 = 1.0
	perlinNorm3 = 0.6666666666666666
	perlinNorm4 = 0.5

	improvedPerlinNorm1 = 2.0
	improvedPerlinNorm2 = 1.868193
	improvedPerlinNorm3 = 0.9649214
	improvedPerlinNorm4 = 0.6507949
)

var gradient1 = [2]float64{-1, 1}

// Edge-midpoint gradients.
var midpointGradient2 = [4][2]float64{
	{0, -1}, {-1, 0}, {0, 1}, {1, 0},
}

var midpointGradient3 = [12][3]float64{
	{0, -1, -1}, {-1, 0, -1}, {-1, -1, 0},
	{0, 1, -1}, {1, 0, -1}, {1, -1, 0},
	{0, -1, 1}, {-1, 0, 1}, {-1, 1, 0},
	{0, 1, 1}, {1, 0, 1}, {1, 1, 0},
}

var midpointGradient4 = [32][4]float64{
	{0, -1, -1, -1}, {-1, 0, -1, -1}, {-1, -1, 0, -1}, {-1, -1, -1, 0},
	{0, 1, -1, -1}, {1, 0, -1, -1}, {1, -1, 0, -1}, {1, -1, -1, 0},
	{0, -1, 1, -1}, {-1, 0, 1, -1}, {-1, 1, 0, -1}, {-1, 1, -1, 0},
	{0, 1, 1, -1}, {1, 0, 1, -1}, {1, 1, 0, -1}, {1, 1, -1, 0},
	{0, -1, -1, 1}, {-1, 0, -1, 1}, {-1, -1, 0, 1}, {-1, -1, 1, 0},
	{0, 1, -1, 1}, {1, 0, -1, 1}, {1, -1, 0, 1}, {1, -1, 1, 0},
	{0, -1, 1, 1}, {-1, 0, 1, 1}, {-1, 1, 0, 1}, {-1, 1, 1, 0},
	{0, 1, 1, 1}, {1, 0, 1, 1}, {1, 1, 0, 1}, {1, 1, 1, 0},
}

// Hypercube corner gradients. Component k of entry g is +1 when bit
// (D-1-k) of g is set, -1 otherwise.
var cornerGradient2 = [4][2]float64{
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

var cornerGradient3 = [8][3]float64{
	{-1, -1, -1}, {-1, -1, 1}, {-1, 1, -1}, {-1, 1, 1},
	{1, -1, -1}, {1, -1, 1}, {1, 1, -1}, {1, 1, 1},
}

var cornerGradient4 = [16][4]float64{
	{-1, -1, -1, -1}, {-1, -1, -1, 1}, {-1, -1, 1, -1}, {-1, -1, 1, 1},
	{-1, 1, -1, -1}, {-1, 1, -1, 1}, {-1, 1, 1, -1}, {-1, 1, 1, 1},
	{1, -1, -1, -1}, {1, -1, -1, 1}, {1, -1, 1, -1}, {1, -1, 1, 1},
	{1, 1, -1, -1}, {1, 1, -1, 1}, {1, 1, 1, -1}, {1, 1, 1, 1},
}

// Simplex traversal tables. The 3D table is indexed by
// (x>y)<<2 | (y>z)<<1 | (x>z); each row holds the two middle corners.
var traversal3 = [8][6]int{
	{0, 0, 1, 0, 1, 1},
	{0, 0, 0, 1, 1, 1},
	{0, 1, 0, 0, 1, 1},
	{0, 1, 0, 1, 1, 0},
	{0, 0, 1, 1, 0, 1},
	{1, 0, 0, 1, 0, 1},
	{0, 0, 0, 1, 1, 1},
	{1, 0, 0, 1, 1, 0},
}

// The 4D table is indexed by
// (x>y)<<5 | (x>z)<<4 | (y>z)<<3 | (x>w)<<2 | (y>w)<<1 | (z>w);
// each row holds the three middle corners. Rows for contradictory
// orderings are unreachable.
var traversal4 = [64][12]int{
	{0, 0, 0, 1, 0, 0, 1, 1, 0, 1, 1, 1},
	{0, 0, 1, 0, 0, 0, 1, 1, 0, 1, 1, 1},
	{0, 0, 0, 0, 0, 1, 1, 1, 0, 1, 1, 1},
	{0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 1, 1},
	{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1},
	{0, 0, 1, 0, 0, 0, 1, 0, 1, 1, 1, 1},
	{0, 0, 0, 0, 0, 1, 1, 0, 1, 1, 1, 1},
	{0, 0, 1, 0, 0, 1, 1, 0, 1, 1, 1, 0},
	{0, 0, 0, 1, 0, 1, 0, 1, 0, 1, 1, 1},
	{0, 0, 0, 0, 0, 1, 1, 1, 0, 1, 1, 1},
	{0, 1, 0, 0, 0, 1, 0, 1, 0, 1, 1, 1},
	{0, 1, 0, 0, 0, 1, 1, 0, 0, 1, 1, 1},
	{0, 0, 0, 0, 0, 1, 0, 1, 1, 1, 1, 1},
	{0, 0, 0, 0, 0, 1, 1, 0, 1, 1, 1, 1},
	{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 1, 1},
	{0, 1, 0, 0, 0, 1, 1, 0, 1, 1, 1, 0},
	{0, 0, 0, 1, 0, 0, 0, 1, 1, 1, 1, 1},
	{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1},
	{0, 0, 0, 0, 0, 1, 0, 1, 1, 1, 1, 1},
	{0, 0, 0, 0, 0, 1, 1, 0, 1, 1, 1, 1},
	{0, 0, 0, 0, 1, 0, 0, 1, 1, 1, 1, 1},
	{0, 0, 0, 0, 1, 0, 1, 0, 1, 1, 1, 1},
	{0, 0, 0, 0, 1, 1, 0, 0, 1, 1, 1, 1},
	{0, 0, 0, 0, 1, 1, 1, 0, 1, 1, 1, 0},
	{0, 0, 0, 1, 0, 1, 0, 1, 1, 1, 0, 1},
	{0, 0, 0, 0, 0, 1, 0, 1, 1, 1, 1, 1},
	{0, 1, 0, 0, 0, 1, 0, 1, 1, 1, 0, 1},
	{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 1, 1},
	{0, 0, 0, 0, 1, 1, 0, 1, 1, 1, 0, 1},
	{0, 0, 0, 0, 1, 1, 0, 0, 1, 1, 1, 1},
	{0, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 1},
	{0, 1, 0, 0, 1, 1, 0, 0, 1, 1, 1, 0},
	{0, 0, 0, 1, 0, 0, 1, 1, 1, 0, 1, 1},
	{0, 0, 1, 0, 0, 0, 1, 1, 1, 0, 1, 1},
	{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1},
	{0, 0, 1, 0, 0, 0, 1, 0, 1, 1, 1, 1},
	{0, 0, 0, 0, 1, 0, 1, 1, 1, 0, 1, 1},
	{0, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 1},
	{0, 0, 0, 0, 1, 0, 1, 0, 1, 1, 1, 1},
	{0, 0, 1, 0, 1, 0, 1, 0, 1, 1, 1, 0},
	{0, 0, 0, 1, 0, 0, 0, 1, 1, 1, 1, 1},
	{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1},
	{0, 0, 0, 0, 0, 1, 0, 1, 1, 1, 1, 1},
	{0, 0, 0, 0, 0, 1, 1, 0, 1, 1, 1, 1},
	{0, 0, 0, 0, 1, 0, 0, 1, 1, 1, 1, 1},
	{0, 0, 0, 0, 1, 0, 1, 0, 1, 1, 1, 1},
	{0, 0, 0, 0, 1, 1, 0, 0, 1, 1, 1, 1},
	{0, 0, 0, 0, 1, 1, 1, 0, 1, 1, 1, 0},
	{0, 0, 0, 1, 1, 0, 0, 1, 1, 0, 1, 1},
	{0, 0, 0, 0, 1, 0, 1, 1, 1, 0, 1, 1},
	{0, 0, 0, 0, 1, 0, 0, 1, 1, 1, 1, 1},
	{0, 0, 0, 0, 1, 0, 1, 0, 1, 1, 1, 1},
	{1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 1, 1},
	{1, 0, 0, 0, 1, 0, 1, 0, 1, 0, 1, 1},
	{1, 0, 0, 0, 1, 0, 0, 0, 1, 1, 1, 1},
	{1, 0, 0, 0, 1, 0, 1, 0, 1, 1, 1, 0},
	{0, 0, 0, 1, 1, 0, 0, 1, 1, 1, 0, 1},
	{0, 0, 0, 0, 1, 0, 0, 1, 1, 1, 1, 1},
	{0, 0, 0, 0, 1, 1, 0, 1, 1, 1, 0, 1},
	{0, 0, 0, 0, 1, 1, 0, 0, 1, 1, 1, 1},
	{1, 0, 0, 0, 1, 0, 0, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 1, 0, 0, 0, 1, 1, 1, 1},
	{1, 0, 0, 0, 1, 1, 0, 0, 1, 1, 0, 1},
	{1, 0, 0, 0, 1, 1, 0, 0, 1, 1, 1, 0},
}

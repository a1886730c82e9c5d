package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VoidMesh/noise/internal/testutil"
)

// assertSameFloat treats two NaNs as equal.
func assertSameFloat(t *testing.T, want, got float64, msgAndArgs ...interface{}) {
	t.Helper()
	if math.IsNaN(want) {
		assert.True(t, math.IsNaN(got), msgAndArgs...)
		return
	}
	assert.Equal(t, want, got, msgAndArgs...)
}

// echo returns a generator reporting one coordinate of the point it sees.
func echo[P Point](axis int) Custom[P] {
	return NewCustom(func(p P) float64 { return p[axis] })
}

func TestOutputAdapters_ConstantAlgebra(t *testing.T) {
	values := []float64{-2.5, -1, -0.3, 0, 0.4, 1, 3.75}
	p := [2]float64{12.5, -3}

	for _, v := range values {
		c := NewConstant[[2]float64](v)

		assert.Equal(t, math.Abs(v), NewAbs(c).Sample(p), "abs %v", v)
		assert.Equal(t, -v, NewNeg(c).Sample(p), "neg %v", v)
		assert.Equal(t, math.Exp(v), NewExp(c).Sample(p), "exp %v", v)
		assert.Equal(t, v+0.25, NewAdd(c, 0.25).Sample(p), "add %v", v)
		assert.Equal(t, v*-3, NewMul(c, -3).Sample(p), "mul %v", v)
		assert.Equal(t, v*v*v, NewPowI(c, 3).Sample(p), "powi %v", v)
		assertSameFloat(t, math.Pow(v, 1.5), NewPowF(c, 1.5).Sample(p), "powf %v", v)
		assert.Equal(t, math.Min(math.Max(v, -1), 0.5), NewClamp(c, -1, 0.5).Sample(p), "clamp %v", v)
		assert.Equal(t, v*2+1, NewLambda(c, func(x float64) float64 { return x*2 + 1 }).Sample(p), "lambda %v", v)
	}
}

func TestPowI_Exponents(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		exponent int
		want     float64
	}{
		{name: "zero exponent", base: 3, exponent: 0, want: 1},
		{name: "zero to zero", base: 0, exponent: 0, want: 1},
		{name: "square", base: -1.5, exponent: 2, want: 2.25},
		{name: "odd power keeps sign", base: -2, exponent: 5, want: -32},
		{name: "negative exponent", base: 2, exponent: -3, want: 0.125},
		{name: "zero to negative", base: 0, exponent: -1, want: math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewPowI(NewConstant[[1]float64](tt.base), tt.exponent)
			assert.Equal(t, tt.want, g.Sample([1]float64{0}))
		})
	}
}

func TestClamp_NaNPassesThrough(t *testing.T) {
	g := NewClamp(NewConstant[[1]float64](math.NaN()), -1, 1)
	assert.True(t, math.IsNaN(g.Sample([1]float64{0})))
}

func TestCombinators_ConstantAlgebra(t *testing.T) {
	p := [3]float64{1, 2, 3}
	tests := []struct {
		name string
		a, b float64
	}{
		{name: "positive", a: 0.25, b: 0.75},
		{name: "mixed", a: -0.5, b: 0.9},
		{name: "equal", a: 0.3, b: 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewConstant[[3]float64](tt.a)
			b := NewConstant[[3]float64](tt.b)

			assert.Equal(t, tt.a+tt.b, NewSum(a, b).Sample(p))
			assert.Equal(t, tt.a*tt.b, NewProduct(a, b).Sample(p))
			assert.Equal(t, math.Min(tt.a, tt.b), NewMin(a, b).Sample(p))
			assert.Equal(t, math.Max(tt.a, tt.b), NewMax(a, b).Sample(p))
			assertSameFloat(t, math.Pow(tt.a, tt.b), NewPower(a, b).Sample(p), "power")

			for _, c := range []float64{-1, -0.2, 0, 0.6, 1} {
				ctrl := NewConstant[[3]float64](c)
				want := tt.a + (c*0.5+0.5)*(tt.b-tt.a)
				assert.Equal(t, want, NewBlend(a, b, ctrl).Sample(p), "blend control %v", c)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	a := NewConstant[[2]float64](1)
	b := NewConstant[[2]float64](-1)

	tests := []struct {
		control float64
		want    float64
	}{
		{control: -0.5, want: 1},
		{control: 0, want: 1},
		{control: 0.5, want: 1},
		{control: 0.51, want: -1},
		{control: -0.9, want: -1},
		{control: math.NaN(), want: -1},
	}

	for _, tt := range tests {
		g := NewSelect(a, b, NewConstant[[2]float64](tt.control), -0.5, 0.5)
		assert.Equal(t, tt.want, g.Sample([2]float64{}), "control %v", tt.control)
	}
}

func TestScaleAndTranslate(t *testing.T) {
	x := echo[[2]float64](0)
	y := echo[[2]float64](1)

	assert.Equal(t, 6.0, NewScale(x, [2]float64{2, 10}).Sample([2]float64{3, 1}))
	assert.Equal(t, 10.0, NewScale(y, [2]float64{2, 10}).Sample([2]float64{3, 1}))
	assert.Equal(t, 3.5, NewTranslate(x, [2]float64{0.5, -1}).Sample([2]float64{3, 1}))
	assert.Equal(t, 0.0, NewTranslate(y, [2]float64{0.5, -1}).Sample([2]float64{3, 1}))

	// scale only changes the point handed down
	c := NewConstant[[1]float64](0.4)
	assert.Equal(t, c.Sample([1]float64{6}), NewScale(c, [1]float64{2}).Sample([1]float64{3}))
}

func TestScale_DoesNotMutateCallerPoint(t *testing.T) {
	g := NewScale(echo[[2]float64](0), [2]float64{4, 4})
	p := [2]float64{1, 1}
	g.Sample(p)
	assert.Equal(t, [2]float64{1, 1}, p)
}

func TestRotate(t *testing.T) {
	const delta = 1e-12

	t.Run("2d quarter turn", func(t *testing.T) {
		x := Rotate2D(echo[[2]float64](0), [1]float64{math.Pi / 2})
		y := Rotate2D(echo[[2]float64](1), [1]float64{math.Pi / 2})
		// (1, 0) -> (0, 1)
		assert.InDelta(t, 0, x.Sample([2]float64{1, 0}), delta)
		assert.InDelta(t, 1, y.Sample([2]float64{1, 0}), delta)
	})

	t.Run("3d preserves length", func(t *testing.T) {
		angles := [3]float64{0.3, -1.1, 2.4}
		norm := NewCustom(func(p [3]float64) float64 {
			return math.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
		})
		g := Rotate3D(norm, angles)
		for _, p := range testutil.RandomPoints[[3]float64](4, 50, 10) {
			assert.InDelta(t, norm.Sample(p), g.Sample(p), 1e-9)
		}
	})

	t.Run("pinned points", func(t *testing.T) {
		for axis, want := range [3]float64{-0.2224576388713282, 1.119040182893811, 3.5634620340304983} {
			g := Rotate3D(echo[[3]float64](axis), [3]float64{0.3, 0.7, 1.1})
			assert.InDelta(t, want, g.Sample([3]float64{1, 2, 3}), delta, "3d axis %d", axis)
		}
		angles := [6]float64{0.3, 0.7, 1.1, -0.4, 0.9, 0.2}
		for axis, want := range [4]float64{-3.9053671092438647, -2.5456819756407087, 1.138172156693099, 2.875243574584042} {
			g := Rotate4D(echo[[4]float64](axis), angles)
			assert.InDelta(t, want, g.Sample([4]float64{1, 2, 3, 4}), delta, "4d axis %d", axis)
		}
	})

	t.Run("4d zero angles are identity", func(t *testing.T) {
		for axis, want := range [4]float64{1, 2, 3, 4} {
			g := Rotate4D(echo[[4]float64](axis), [6]float64{})
			assert.InDelta(t, want, g.Sample([4]float64{1, 2, 3, 4}), delta)
		}
	})

	t.Run("4d last angle only", func(t *testing.T) {
		z := Rotate4D(echo[[4]float64](2), [6]float64{0, 0, 0, 0, 0, math.Pi})
		x := Rotate4D(echo[[4]float64](0), [6]float64{0, 0, 0, 0, 0, math.Pi})
		assert.InDelta(t, -3, z.Sample([4]float64{1, 2, 3, 4}), delta)
		assert.InDelta(t, 1, x.Sample([4]float64{1, 2, 3, 4}), delta)
	})

	t.Run("zero angles are identity", func(t *testing.T) {
		g := NewSimplex[[3]float64](Uint64Seed(5))
		r := Rotate3D(g, [3]float64{})
		for _, p := range testutil.RandomPoints[[3]float64](2, 50, 10) {
			assert.Equal(t, g.Sample(p), r.Sample(p))
		}
	})
}

func TestDisplace(t *testing.T) {
	p := [4]float64{1, 2, 3, 4}
	d := NewConstant[[4]float64](0.5)

	tests := []struct {
		name     string
		displace func(Generator[[4]float64]) Generator[[4]float64]
		want     [4]float64
	}{
		{name: "x", displace: func(g Generator[[4]float64]) Generator[[4]float64] { return DisplaceX[[4]float64](g, d) }, want: [4]float64{1.5, 2, 3, 4}},
		{name: "y", displace: func(g Generator[[4]float64]) Generator[[4]float64] { return DisplaceY[[4]float64](g, d) }, want: [4]float64{1, 2.5, 3, 4}},
		{name: "z", displace: func(g Generator[[4]float64]) Generator[[4]float64] { return DisplaceZ[[4]float64](g, d) }, want: [4]float64{1, 2, 3.5, 4}},
		{name: "w", displace: func(g Generator[[4]float64]) Generator[[4]float64] { return DisplaceW[[4]float64](g, d) }, want: [4]float64{1, 2, 3, 4.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen [4]float64
			record := NewCustom(func(q [4]float64) float64 {
				seen = q
				return 0
			})
			tt.displace(record).Sample(p)
			assert.Equal(t, tt.want, seen)
		})
	}

	// constant source ignores where it is queried
	assert.Equal(t, 0.7, DisplaceX(NewConstant[[2]float64](0.7), NewConstant[[2]float64](123)).Sample([2]float64{1, 1}))
}

func TestDisplace_UsesOriginalPoint(t *testing.T) {
	// displacement equal to x, applied to y, is computed before x moves
	g := DisplaceY(echo[[2]float64](1), echo[[2]float64](0))
	assert.Equal(t, 5.0, g.Sample([2]float64{3, 2}))
}

package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/noise/internal/testutil"
)

func TestChain_MatchesNestedAdapters(t *testing.T) {
	seed := Uint64Seed(42)
	points := testutil.RandomPoints[[3]float64](3, 200, 50)

	fluent := Source[[3]float64]{}.
		Simplex(42).
		Fbm(3, 0.013, 2.0, 0.5).
		Abs().
		Mul(2).
		Add(-1).
		Clamp(-0.5, 0.5)

	nested := NewClamp(
		NewAdd(
			NewMul(
				NewAbs(
					NewFbm(NewSimplex[[3]float64](seed), 3, 0.013, 2.0, 0.5),
				),
				2,
			),
			-1,
		),
		-0.5, 0.5,
	)

	testutil.AssertDeterministic(t, fluent.Sample, nested.Sample, points)
}

func TestChain_Combinators(t *testing.T) {
	p := [2]float64{1.5, -2}
	a := Source[[2]float64]{}.Constant(0.25)
	b := NewConstant[[2]float64](-0.5)

	tests := []struct {
		name string
		got  Chain[[2]float64]
		want float64
	}{
		{name: "sum", got: a.Sum(b), want: -0.25},
		{name: "product", got: a.Product(b), want: -0.125},
		{name: "min", got: a.Min(b), want: -0.5},
		{name: "max", got: a.Max(b), want: 0.25},
		{name: "power", got: a.Power(NewConstant[[2]float64](2)), want: 0.0625},
		{name: "blend at control -1", got: a.Blend(b, NewConstant[[2]float64](-1)), want: 0.25},
		{name: "blend at control 1", got: a.Blend(b, NewConstant[[2]float64](1)), want: -0.5},
		{name: "select inside", got: a.Select(b, NewConstant[[2]float64](0), -0.1, 0.1), want: 0.25},
		{name: "select outside", got: a.Select(b, NewConstant[[2]float64](0.2), -0.1, 0.1), want: -0.5},
		{name: "neg", got: a.Neg(), want: -0.25},
		{name: "powi", got: a.PowI(-2), want: 16},
		{name: "powf", got: a.PowF(0.5), want: 0.5},
		{name: "exp", got: a.Exp(), want: math.Exp(0.25)},
		{name: "lambda", got: a.Lambda(func(v float64) float64 { return v * 10 }), want: 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.got.Sample(p), 1e-12)
		})
	}
}

func TestChain_InputTransforms(t *testing.T) {
	x := Source[[2]float64]{}.Custom(func(p [2]float64) float64 { return p[0] })

	assert.Equal(t, 6.0, x.Scale([2]float64{3, 1}).Sample([2]float64{2, 9}))
	assert.Equal(t, 1.5, x.Translate([2]float64{-0.5, 0}).Sample([2]float64{2, 9}))
	assert.Equal(t, 2.25, x.DisplaceX(NewConstant[[2]float64](0.25)).Sample([2]float64{2, 9}))
}

func TestChain_DimensionBoundFunctions(t *testing.T) {
	y := Source[[3]float64]{}.Custom(func(p [3]float64) float64 { return p[1] })

	rotated := From[[3]float64](Rotate3D(y, [3]float64{0, 0, 0}))
	assert.Equal(t, 4.0, rotated.Sample([3]float64{1, 4, 9}))

	displaced := From[[3]float64](DisplaceY[[3]float64](y, NewConstant[[3]float64](1))).Mul(2)
	assert.Equal(t, 10.0, displaced.Sample([3]float64{1, 4, 9}))
}

func TestChain_Spline(t *testing.T) {
	base := Source[[2]float64]{}.Constant(0.5)

	c, err := base.Spline([]float64{-1, 0, 0.5, 1}, []float64{1, 0, 0.75, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.75, c.Sample([2]float64{}), 1e-12)

	_, err = base.Spline([]float64{0, 1}, []float64{0, 1})
	assert.ErrorIs(t, err, ErrTooFewKnots)
}

func TestFrom_DoesNotRewrap(t *testing.T) {
	c := Source[[1]float64]{}.Checkerboard()
	again := From[[1]float64](c)

	_, nested := again.Generator.(Chain[[1]float64])
	assert.False(t, nested)
}

func TestChain_Immutable(t *testing.T) {
	base := Source[[2]float64]{}.Simplex(7)
	p := [2]float64{3.3, -1.25}
	before := base.Sample(p)

	_ = base.Scale([2]float64{4, 4}).Add(1).Neg()
	_ = base.Fbm(5, 0.1, 2, 0.5)

	assert.Equal(t, before, base.Sample(p))
}

func TestChain_FractalsOnSources(t *testing.T) {
	src := Source[[2]float64]{}
	points := testutil.RandomPoints[[2]float64](9, 500, 500)

	tests := []struct {
		name string
		g    Chain[[2]float64]
	}{
		{name: "fbm perlin", g: src.Perlin(1).Fbm(3, 0.013, 2.0, 0.5)},
		{name: "billow improved perlin", g: src.ImprovedPerlin(1).Billow(3, 0.013, 2.0, 0.5)},
		{name: "ridged value", g: src.Value(1).RidgedMulti(3, 0.013, 2.0, 2.0)},
		{name: "fbm worley", g: src.Worley(1).Fbm(3, 0.013, 2.0, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertUnitRange(t, tt.g.Sample, points)
		})
	}
}

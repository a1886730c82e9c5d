package noisebuf

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/noise"
	"github.com/VoidMesh/noise/internal/testutil"
)

func TestNew_ShapeValidation(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	g := noise.NewSimplex[[2]float64](noise.Uint64Seed(42))

	tests := []struct {
		name    string
		shape   []int
		wantErr error
	}{
		{name: "valid", shape: []int{4, 3}},
		{name: "too few axes", shape: []int{4}, wantErr: ErrShapeMismatch},
		{name: "too many axes", shape: []int{4, 3, 2}, wantErr: ErrShapeMismatch},
		{name: "zero extent", shape: []int{4, 0}, wantErr: ErrEmptyExtent},
		{name: "negative extent", shape: []int{-1, 3}, wantErr: ErrEmptyExtent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New[[2]float64](tt.shape, g)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.shape, b.Shape())
			assert.Equal(t, 12, b.Len())
		})
	}
}

func TestNew_SamplesIntegerGrid(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	g := noise.NewSimplex[[3]float64](noise.Uint64Seed(42))
	b, err := New[[3]float64]([]int{30, 20, 25}, g)
	require.NoError(t, err)

	assert.Equal(t, g.Sample([3]float64{17, 9, 21}), b.At(17, 9, 21))
	assert.Equal(t, g.Sample([3]float64{0, 0, 0}), b.At(0, 0, 0))
	assert.Equal(t, g.Sample([3]float64{29, 19, 24}), b.At(29, 19, 24))
}

func TestNew_RowMajorLayout(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	// encodes the index as 100*row + col
	g := noise.NewCustom(func(p [2]float64) float64 { return 100*p[0] + p[1] })
	b, err := New[[2]float64]([]int{2, 3}, g)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 2, 100, 101, 102}, b.Values())
	assert.Equal(t, 4, b.Offset(1, 1))
}

func TestFillParallel_MatchesSequential(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	g := noise.Source[[2]float64]{}.Simplex(42).Fbm(3, 0.013, 2.0, 0.5)
	shape := []int{97, 61}

	want, err := New[[2]float64](shape, g)
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 3, 8, 10000} {
		got, err := FillParallel[[2]float64](context.Background(), shape, g, workers)
		require.NoError(t, err, "workers %d", workers)
		assert.Equal(t, want.Values(), got.Values(), "workers %d", workers)
	}
}

func TestFillParallel_Cancelled(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := noise.NewConstant[[2]float64](0)
	b, err := FillParallel[[2]float64](ctx, []int{64, 64}, g, 4)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, b)
}

func TestBuffer_IndexPanics(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	b, err := New[[1]float64]([]int{5}, noise.NewConstant[[1]float64](1))
	require.NoError(t, err)

	assert.Panics(t, func() { b.At(5) })
	assert.Panics(t, func() { b.At(-1) })
	assert.Panics(t, func() { b.At(0, 0) })
	assert.Equal(t, 1.0, b.At(4))
}

func TestBuffer_ShapeIsCopied(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	shape := []int{3, 3}
	b, err := New[[2]float64](shape, noise.NewConstant[[2]float64](0))
	require.NoError(t, err)

	shape[0] = 50
	b.Shape()[1] = 50
	assert.Equal(t, []int{3, 3}, b.Shape())
}

func BenchmarkNew2D(b *testing.B) {
	g := noise.NewSimplex[[2]float64](noise.Uint64Seed(42))
	for i := 0; i < b.N; i++ {
		_, _ = New[[2]float64]([]int{256, 256}, g)
	}
}

func BenchmarkFillParallel2D(b *testing.B) {
	g := noise.NewSimplex[[2]float64](noise.Uint64Seed(42))
	for i := 0; i < b.N; i++ {
		_, _ = FillParallel[[2]float64](context.Background(), []int{256, 256}, g, 0)
	}
}

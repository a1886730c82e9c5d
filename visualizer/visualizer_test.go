package visualizer

import (
	"bytes"
	"context"
	"image/gif"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/noise"
	"github.com/VoidMesh/noise/internal/testutil"
	"github.com/VoidMesh/noise/noisebuf"
)

func TestNormToU8(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint8
	}{
		{name: "lower bound", in: -1, want: 0},
		{name: "upper bound", in: 1, want: 255},
		{name: "zero", in: 0, want: 127},
		{name: "half", in: 0.5, want: 191},
		{name: "below range", in: -3, want: 0},
		{name: "above range", in: 2, want: 255},
		{name: "NaN", in: math.NaN(), want: 0},
		{name: "positive infinity", in: math.Inf(1), want: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormToU8(tt.in))
		})
	}
}

func TestFromValues_Validation(t *testing.T) {
	tests := []struct {
		name    string
		shape   []int
		values  int
		wantErr error
	}{
		{name: "no axes", shape: []int{}, values: 1, wantErr: ErrUnsupportedDimension},
		{name: "five axes", shape: []int{1, 1, 1, 1, 1}, values: 1, wantErr: ErrUnsupportedDimension},
		{name: "too few values", shape: []int{2, 2}, values: 3, wantErr: ErrSizeMismatch},
		{name: "empty", shape: []int{0, 2}, values: 0, wantErr: ErrSizeMismatch},
		{name: "valid", shape: []int{2, 3}, values: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromValues(tt.shape, make([]float64, tt.values))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.shape, v.Shape())
		})
	}
}

func TestEncode_2D(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	g := noise.NewSimplex[[2]float64](noise.Uint64Seed(42))
	buf, err := noisebuf.New[[2]float64]([]int{40, 25}, noise.NewScale(g, [2]float64{0.05, 0.05}))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, FromBuffer(buf).Encode(&out))

	img, err := png.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, 25, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())

	for _, idx := range [][2]int{{0, 0}, {39, 24}, {17, 3}} {
		r, _, _, _ := img.At(idx[1], idx[0]).RGBA()
		assert.Equal(t, NormToU8(buf.At(idx[0], idx[1])), uint8(r>>8), "pixel %v", idx)
	}
}

func TestEncode_Dimensions(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	tests := []struct {
		name   string
		shape  []int
		width  int
		height int
	}{
		{name: "1D band", shape: []int{64}, width: 64, height: 1},
		{name: "2D image", shape: []int{16, 32}, width: 32, height: 16},
		{name: "3D isometric", shape: []int{20, 30, 10}, width: 30, height: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size := 1
			for _, e := range tt.shape {
				size *= e
			}
			v, err := FromValues(tt.shape, make([]float64, size))
			require.NoError(t, err)

			var out bytes.Buffer
			require.NoError(t, v.Encode(&out))
			img, err := png.Decode(&out)
			require.NoError(t, err)
			assert.Equal(t, tt.width, img.Bounds().Dx())
			assert.Equal(t, tt.height, img.Bounds().Dy())
		})
	}
}

func TestEncode_4DAnimation(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	g := noise.Source[[4]float64]{}.Simplex(42).Scale([4]float64{0.033, 0.033, 0.033, 0.033})
	buf, err := noisebuf.FillParallel[[4]float64](context.Background(), []int{12, 12, 12, 5}, g, 2)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, FromBuffer(buf).Encode(&out))

	anim, err := gif.DecodeAll(&out)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 5)
	assert.Equal(t, 12, anim.Image[0].Bounds().Dx())
	assert.Equal(t, 0, anim.LoopCount)
}

func TestIsometric_PaintsNearestSlice(t *testing.T) {
	// slice z holds the value z/10, so every covered pixel shows the
	// smallest z that projects onto it
	shape := []int{10, 10, 10}
	values := make([]float64, 1000)
	for i := range values {
		values[i] = float64(i%10) / 10
	}
	v, err := FromValues(shape, values)
	require.NoError(t, err)

	screen := v.isometric(-1)
	var covered int
	for _, p := range screen {
		if p != 0 {
			covered++
		}
	}
	assert.Positive(t, covered)
	assert.Contains(t, screen, NormToU8(0))
}

func TestWithUpscale(t *testing.T) {
	v, err := FromValues([]int{3, 4}, []float64{-1, 1, -1, 1, 1, -1, 1, -1, 0, 0, 0, 0})
	require.NoError(t, err)

	big := v.WithUpscale(3)
	img := big.Image()
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 9, img.Bounds().Dy())

	r, _, _, _ := img.At(4, 1).RGBA()
	assert.Equal(t, uint8(255), uint8(r>>8))
	r, _, _, _ = img.At(0, 2).RGBA()
	assert.Equal(t, uint8(0), uint8(r>>8))

	assert.Equal(t, 4, v.Image().Bounds().Dx(), "original is left unchanged")
	assert.Equal(t, 4, v.WithUpscale(0).Image().Bounds().Dx())
}

func TestWriteFile(t *testing.T) {
	config := testutil.DefaultTestConfig()
	config.TempDir = t.TempDir()
	cleanup := testutil.SetupTest(t, config)
	defer cleanup()

	g := noise.Source[[2]float64]{}.Worley(42).Scale([2]float64{0.013, 0.013})
	buf, err := noisebuf.New[[2]float64]([]int{32, 32}, g)
	require.NoError(t, err)

	path := filepath.Join(config.TempDir, "worley.png")
	require.NoError(t, FromBuffer(buf).WithUpscale(2).WriteFile(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())

	err = FromBuffer(buf).WriteFile(filepath.Join(config.TempDir, "missing", "x.png"))
	assert.Error(t, err)
}

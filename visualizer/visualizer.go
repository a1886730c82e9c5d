// Package visualizer renders noise buffers as grayscale images.
//
// 1D buffers become a one-pixel-high band, 2D buffers a plain image with
// axis 0 as rows. 3D buffers are drawn as an isometric view of the cube and
// 4D buffers as an animated GIF of such views with the last axis as time.
// The output is meant for eyeballing a pipeline, not for further processing.
package visualizer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/VoidMesh/noise/internal/logging"
	"github.com/VoidMesh/noise/noisebuf"
)

var (
	ErrUnsupportedDimension = errors.New("visualizer supports 1 to 4 dimensions")
	ErrSizeMismatch         = errors.New("value count does not match shape")
)

const (
	isoScale   = 0.45
	frameDelay = 4 // hundredths of a second
)

var grayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}()

// Visualizer holds a buffer mapped to 8-bit intensities.
type Visualizer struct {
	shape   []int
	strides []int
	pixels  []uint8
	upscale int
}

// FromBuffer maps every sample of b to a gray level.
func FromBuffer(b *noisebuf.Buffer) *Visualizer {
	v, err := FromValues(b.Shape(), b.Values())
	if err != nil {
		// a Buffer always has 1 to 4 positive extents
		panic(err)
	}
	return v
}

// FromValues builds a Visualizer from row-major samples laid out as shape.
func FromValues(shape []int, values []float64) (*Visualizer, error) {
	if len(shape) < 1 || len(shape) > 4 {
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedDimension, len(shape))
	}
	size := 1
	for _, extent := range shape {
		size *= extent
	}
	if size != len(values) || size == 0 {
		return nil, fmt.Errorf("%w: shape %v holds %d values, got %d", ErrSizeMismatch, shape, size, len(values))
	}

	v := &Visualizer{
		shape:   append([]int(nil), shape...),
		strides: make([]int, len(shape)),
		pixels:  make([]uint8, len(values)),
		upscale: 1,
	}
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		v.strides[i] = stride
		stride *= shape[i]
	}
	for i, x := range values {
		v.pixels[i] = NormToU8(x)
	}
	return v, nil
}

// NormToU8 maps [-1, 1] onto [0, 255]. Values outside the range saturate
// and NaN maps to 0.
func NormToU8(x float64) uint8 {
	y := 127.5 + x*127.5
	switch {
	case math.IsNaN(y) || y <= 0:
		return 0
	case y >= 255:
		return 255
	default:
		return uint8(y)
	}
}

// WithUpscale returns a copy that enlarges every output pixel to an n by n
// block. n < 1 is treated as 1.
func (v *Visualizer) WithUpscale(n int) *Visualizer {
	c := *v
	c.upscale = max(n, 1)
	return &c
}

func (v *Visualizer) Shape() []int {
	return append([]int(nil), v.shape...)
}

func (v *Visualizer) pixel(index ...int) uint8 {
	var flat int
	for k, i := range index {
		flat += i * v.strides[k]
	}
	return v.pixels[flat]
}

// Encode writes a PNG for 1 to 3 dimensions and a looping GIF for 4.
func (v *Visualizer) Encode(w io.Writer) error {
	switch len(v.shape) {
	case 1, 2, 3:
		if err := png.Encode(w, v.Image()); err != nil {
			return fmt.Errorf("failed to encode png: %w", err)
		}
	case 4:
		if err := gif.EncodeAll(w, v.Animation()); err != nil {
			return fmt.Errorf("failed to encode gif: %w", err)
		}
	default:
		return fmt.Errorf("%w: got %d", ErrUnsupportedDimension, len(v.shape))
	}
	return nil
}

// WriteFile encodes the visualization into path, replacing any existing
// file.
func (v *Visualizer) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := v.Encode(file); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	logging.WithShape(v.shape).Info("wrote visualization", "path", path, "upscale", v.upscale)
	return nil
}

// Image renders a 1D, 2D or 3D visualizer. It returns nil for 4D, use
// Animation instead.
func (v *Visualizer) Image() image.Image {
	var img *image.Gray
	switch len(v.shape) {
	case 1:
		img = &image.Gray{Pix: v.pixels, Stride: v.shape[0], Rect: image.Rect(0, 0, v.shape[0], 1)}
	case 2:
		img = &image.Gray{Pix: v.pixels, Stride: v.shape[1], Rect: image.Rect(0, 0, v.shape[1], v.shape[0])}
	case 3:
		img = &image.Gray{
			Pix:    v.isometric(-1),
			Stride: v.shape[1],
			Rect:   image.Rect(0, 0, v.shape[1], v.shape[0]),
		}
	default:
		return nil
	}
	if v.upscale == 1 {
		return img
	}
	dst := image.NewGray(image.Rect(0, 0, img.Rect.Dx()*v.upscale, img.Rect.Dy()*v.upscale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Animation renders a 4D visualizer as one isometric frame per step along
// the last axis. It returns nil for lower dimensions.
func (v *Visualizer) Animation() *gif.GIF {
	if len(v.shape) != 4 {
		return nil
	}

	anim := &gif.GIF{LoopCount: 0}
	rect := image.Rect(0, 0, v.shape[1], v.shape[0])
	for t := 0; t < v.shape[3]; t++ {
		frame := &image.Paletted{
			Pix:     v.isometric(t),
			Stride:  v.shape[1],
			Rect:    rect,
			Palette: grayPalette,
		}
		if v.upscale > 1 {
			big := image.NewPaletted(image.Rect(0, 0, rect.Dx()*v.upscale, rect.Dy()*v.upscale), grayPalette)
			draw.NearestNeighbor.Scale(big, big.Bounds(), frame, rect, draw.Src, nil)
			frame = big
		}
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, frameDelay)
	}
	return anim
}

// isometric projects the cube spanned by the first three axes onto a
// shape[0] by shape[1] screen. Slices are painted back to front along
// axis 2 so nearer slices cover farther ones. t selects the 4D time step
// and is ignored when negative.
func (v *Visualizer) isometric(t int) []uint8 {
	rows, cols, depth := v.shape[0], v.shape[1], v.shape[2]
	cx, cy := float64(rows)*0.5, float64(cols)*0.5
	screen := make([]uint8, rows*cols)

	for z := depth - 1; z >= 0; z-- {
		for x := 0; x < rows; x++ {
			for y := 0; y < cols; y++ {
				bx, by, ok := screenToBuffer(x, y, z, cx, cy, isoScale)
				if !ok {
					continue
				}
				if t < 0 {
					screen[x*cols+y] = v.pixel(bx, by, z)
				} else {
					screen[x*cols+y] = v.pixel(bx, by, z, t)
				}
			}
		}
	}
	return screen
}

// screenToBuffer inverts the isometric projection of slice z at screen
// position (x, y).
func screenToBuffer(x, y, z int, cx, cy, scale float64) (int, int, bool) {
	fx := float64(x) - (cx*(1-scale) + scale*float64(z))
	fy := float64(y) - cy

	xx := -(fx + fy/math.Sqrt(3))
	yy := 2*fy/math.Sqrt(3) + xx

	bx := xx/scale + cx
	by := yy/scale + cy
	if bx < 0 || by < 0 || bx >= 2*cx || by >= 2*cy {
		return 0, 0, false
	}
	return int(bx), int(by), true
}

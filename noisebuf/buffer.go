// Package noisebuf samples a generator on an integer grid and stores the
// result as a flat row-major buffer, the last axis varying fastest.
package noisebuf

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/VoidMesh/noise"
	"github.com/VoidMesh/noise/internal/logging"
)

var (
	ErrShapeMismatch = errors.New("shape length does not match generator dimension")
	ErrEmptyExtent   = errors.New("shape extents must be positive")
)

// cancellation is checked once per this many samples
const checkEvery = 1024

// Buffer holds generator samples taken at every integer index of its shape.
type Buffer struct {
	shape   []int
	strides []int
	values  []float64
}

// New samples g at each index of shape, interpreting the index as
// coordinates.
func New[P noise.Point](shape []int, g noise.Generator[P]) (*Buffer, error) {
	b, err := newEmpty[P](shape)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := fillRange(context.Background(), b, g, 0, len(b.values)); err != nil {
		return nil, fmt.Errorf("failed to fill buffer: %w", err)
	}

	logging.Since("fill", start).Debug("filled noise buffer", "shape", b.shape, "points", len(b.values))
	return b, nil
}

// FillParallel is New split across workers goroutines. g must be safe for
// concurrent use, which holds for every source and adapter in package noise
// as long as Custom and Lambda functions are. workers < 1 uses GOMAXPROCS.
func FillParallel[P noise.Point](ctx context.Context, shape []int, g noise.Generator[P], workers int) (*Buffer, error) {
	b, err := newEmpty[P](shape)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	n := len(b.values)
	chunk := (n + workers - 1) / workers

	eg, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		eg.Go(func() error {
			return fillRange(ctx, b, g, lo, hi)
		})
	}
	if err := eg.Wait(); err != nil {
		logging.WithShape(b.shape).Warn("parallel fill aborted", "error", err)
		return nil, fmt.Errorf("failed to fill buffer: %w", err)
	}

	logging.WithShape(b.shape).Debug("filled noise buffer",
		"points", n,
		"workers", workers,
		"duration", time.Since(start),
	)
	return b, nil
}

func newEmpty[P noise.Point](shape []int) (*Buffer, error) {
	if len(shape) != noise.Dim[P]() {
		return nil, fmt.Errorf("%w: shape has %d axes, generator samples %dD points",
			ErrShapeMismatch, len(shape), noise.Dim[P]())
	}

	size := 1
	for i, extent := range shape {
		if extent <= 0 {
			return nil, fmt.Errorf("%w: axis %d has extent %d", ErrEmptyExtent, i, extent)
		}
		size *= extent
	}

	b := &Buffer{
		shape:   append([]int(nil), shape...),
		strides: make([]int, len(shape)),
		values:  make([]float64, size),
	}
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		b.strides[i] = stride
		stride *= shape[i]
	}
	return b, nil
}

func fillRange[P noise.Point](ctx context.Context, b *Buffer, g noise.Generator[P], lo, hi int) error {
	for i := lo; i < hi; i++ {
		if (i-lo)%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		b.values[i] = g.Sample(pointAt[P](b.strides, i))
	}
	return nil
}

func pointAt[P noise.Point](strides []int, flat int) P {
	var p P
	for k, s := range strides {
		p[k] = float64(flat / s)
		flat %= s
	}
	return p
}

// At returns the sample at the given index. It panics if the index has the
// wrong number of axes or lies outside the shape.
func (b *Buffer) At(index ...int) float64 {
	return b.values[b.Offset(index...)]
}

// Offset converts an index into a position in Values.
func (b *Buffer) Offset(index ...int) int {
	if len(index) != len(b.shape) {
		panic(fmt.Sprintf("noisebuf: index has %d axes, buffer has %d", len(index), len(b.shape)))
	}
	var flat int
	for k, i := range index {
		if i < 0 || i >= b.shape[k] {
			panic(fmt.Sprintf("noisebuf: index %d out of range [0, %d) on axis %d", i, b.shape[k], k))
		}
		flat += i * b.strides[k]
	}
	return flat
}

// Shape returns a copy of the buffer's extents.
func (b *Buffer) Shape() []int {
	return append([]int(nil), b.shape...)
}

// Values returns the underlying samples in row-major order. The slice is
// shared with the buffer.
func (b *Buffer) Values() []float64 {
	return b.values
}

func (b *Buffer) Len() int {
	return len(b.values)
}

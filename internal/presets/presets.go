// Package presets registers the demonstration pipelines: every source at
// every dimension, the simplex fractals, the gaussian custom functions and
// a chaining showcase. Each preset renders into a noise buffer with an
// optional seed override.
package presets

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/VoidMesh/noise"
	"github.com/VoidMesh/noise/internal/logging"
	"github.com/VoidMesh/noise/noisebuf"
)

var (
	ErrUnknownPreset   = errors.New("unknown preset")
	ErrCoordinateCount = errors.New("coordinate count does not match preset dimension")
)

// DefaultSeed is the seed every preset uses unless overridden.
const DefaultSeed uint64 = 42

// Preset is a named pipeline of a fixed dimension.
type Preset struct {
	Name  string
	Dim   int
	Shape []int // canonical render extents

	build func(seed uint64) sampler
}

// sampler erases the point type so presets of every dimension share one
// registry.
type sampler struct {
	render func(ctx context.Context, shape []int, workers int) (*noisebuf.Buffer, error)
	sample func(coords []float64) float64
}

// File is the conventional output name: PNG up to 3D, GIF for 4D.
func (p Preset) File() string {
	if p.Dim == 4 {
		return p.Name + ".gif"
	}
	return p.Name + ".png"
}

// Render fills a buffer of the given shape, or of the canonical shape when
// shape is nil.
func (p Preset) Render(ctx context.Context, seed uint64, shape []int, workers int) (*noisebuf.Buffer, error) {
	if shape == nil {
		shape = p.Shape
	}

	start := time.Now()
	buf, err := p.build(seed).render(ctx, shape, workers)
	if err != nil {
		logging.WithPreset(p.Name).Error("failed to render preset", "error", err, "shape", shape)
		return nil, fmt.Errorf("failed to render preset %s: %w", p.Name, err)
	}

	logging.Since("render", start).Debug("rendered preset", "preset", p.Name, "seed", seed, "shape", shape)
	return buf, nil
}

// Sample evaluates the pipeline at a single point.
func (p Preset) Sample(seed uint64, coords []float64) (float64, error) {
	if len(coords) != p.Dim {
		return 0, fmt.Errorf("%w: %s takes %d coordinates, got %d", ErrCoordinateCount, p.Name, p.Dim, len(coords))
	}
	return p.build(seed).sample(coords), nil
}

// Sampler builds the pipeline once and returns a function evaluating it.
// coords must hold exactly Dim values.
func (p Preset) Sampler(seed uint64) func(coords []float64) float64 {
	return p.build(seed).sample
}

var registry = map[string]Preset{}

func register(p Preset) {
	if _, dup := registry[p.Name]; dup {
		panic("presets: duplicate preset " + p.Name)
	}
	registry[p.Name] = p
}

// Lookup returns the preset registered under name.
func Lookup(name string) (Preset, error) {
	p, ok := registry[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// Names lists every registered preset in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns every preset sorted by name.
func All() []Preset {
	names := Names()
	all := make([]Preset, len(names))
	for i, name := range names {
		all[i] = registry[name]
	}
	return all
}

func define[P noise.Point](name string, shape []int, build func(seed uint64) noise.Generator[P]) Preset {
	return Preset{
		Name:  name,
		Dim:   noise.Dim[P](),
		Shape: shape,
		build: func(seed uint64) sampler {
			g := build(seed)
			return sampler{
				render: func(ctx context.Context, shape []int, workers int) (*noisebuf.Buffer, error) {
					return noisebuf.FillParallel[P](ctx, shape, g, workers)
				},
				sample: func(coords []float64) float64 {
					var p P
					for i := range coords {
						p[i] = coords[i]
					}
					return g.Sample(p)
				},
			}
		},
	}
}

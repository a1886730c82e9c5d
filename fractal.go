package noise

import "math"

// Fbm sums octaves of the child at rising frequency and falling amplitude,
// normalized by the total amplitude. The child is assumed to lie in [-1, 1].
type Fbm[P Point, G Generator[P]] struct {
	generator     G
	octaves       int
	frequency     float64
	lacunarity    float64
	persistence   float64
	normalization float64
}

func NewFbm[P Point, G Generator[P]](generator G, octaves int, frequency, lacunarity, persistence float64) Fbm[P, G] {
	return Fbm[P, G]{
		generator:     generator,
		octaves:       octaves,
		frequency:     frequency,
		lacunarity:    lacunarity,
		persistence:   persistence,
		normalization: 1 / geometricSum(persistence, octaves),
	}
}

func (f Fbm[P, G]) Sample(point P) float64 {
	var noise float64
	amp := 1.0
	freq := f.frequency
	for o := 0; o < f.octaves; o++ {
		noise += amp * f.generator.Sample(scalePoint(point, freq))
		freq *= f.lacunarity
		amp *= f.persistence
	}
	return noise * f.normalization
}

// Billow is Fbm over the rectified child, |s|*2-1, giving rounded ridges.
type Billow[P Point, G Generator[P]] struct {
	generator     G
	octaves       int
	frequency     float64
	lacunarity    float64
	persistence   float64
	normalization float64
}

func NewBillow[P Point, G Generator[P]](generator G, octaves int, frequency, lacunarity, persistence float64) Billow[P, G] {
	return Billow[P, G]{
		generator:     generator,
		octaves:       octaves,
		frequency:     frequency,
		lacunarity:    lacunarity,
		persistence:   persistence,
		normalization: 1 / geometricSum(persistence, octaves),
	}
}

func (f Billow[P, G]) Sample(point P) float64 {
	var noise float64
	amp := 1.0
	freq := f.frequency
	for o := 0; o < f.octaves; o++ {
		layer := math.Abs(f.generator.Sample(scalePoint(point, freq)))*2 - 1
		noise += amp * layer
		freq *= f.lacunarity
		amp *= f.persistence
	}
	return noise * f.normalization
}

// RidgedMulti builds sharp ridges from (1-|s|)^2 layers. Each layer's
// amplitude is the previous layer divided by the attenuation, clamped to
// [0, 1].
type RidgedMulti[P Point, G Generator[P]] struct {
	generator     G
	octaves       int
	frequency     float64
	lacunarity    float64
	attenuation   float64
	normalization float64
}

func NewRidgedMulti[P Point, G Generator[P]](generator G, octaves int, frequency, lacunarity, attenuation float64) RidgedMulti[P, G] {
	return RidgedMulti[P, G]{
		generator:     generator,
		octaves:       octaves,
		frequency:     frequency,
		lacunarity:    lacunarity,
		attenuation:   attenuation,
		normalization: 1 / geometricSum(1/attenuation, octaves),
	}
}

func (f RidgedMulti[P, G]) Sample(point P) float64 {
	var noise float64
	amp := 1.0
	freq := f.frequency
	for o := 0; o < f.octaves; o++ {
		layer := 1 - math.Abs(f.generator.Sample(scalePoint(point, freq)))
		layer *= layer
		layer *= amp
		noise += layer
		freq *= f.lacunarity
		amp = math.Min(math.Max(layer/f.attenuation, 0), 1)
	}
	return noise*f.normalization*2 - 1
}

// geometricSum returns sum(r^k) for k in [0, n).
func geometricSum(r float64, n int) float64 {
	var sum float64
	amp := 1.0
	for k := 0; k < n; k++ {
		sum += amp
		amp *= r
	}
	return sum
}

func scalePoint[P Point](point P, factor float64) P {
	for i := 0; i < len(point); i++ {
		point[i] *= factor
	}
	return point
}

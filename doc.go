// Package noise generates deterministic, seedable coherent noise over one to
// four dimensional space and composes noise sources into pipelines.
//
// A pipeline is a tree of values. Sources such as Simplex or Worley sit at
// the leaves, adapters wrap them:
//
//	base := noise.NewSimplex[[2]float64](noise.Uint64Seed(42))
//	terrain := noise.NewFbm(base, 3, 0.013, 2.0, 0.5)
//	v := terrain.Sample([2]float64{10, 20})
//
// Each adapter is a generic struct holding its children by value, so a
// statically built pipeline has no interface dispatch. Chain offers the same
// operations as fluent methods at the cost of one dynamic call per layer:
//
//	g := noise.Source[[2]float64]{}.Simplex(42).Fbm(3, 0.013, 2.0, 0.5).Abs()
//
// Dimension-bound operations (Rotate2D, Rotate3D, Rotate4D, DisplaceY,
// DisplaceZ, DisplaceW) are package functions whose type constraints reject
// points of the wrong dimension at compile time.
//
// Generators hold no mutable state after construction and may be sampled
// from any number of goroutines.
package noise

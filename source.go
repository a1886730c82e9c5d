package noise

// Source is the entry point for building pipelines of dimension P:
//
//	noise.Source[[3]float64]{}.Worley(7).Scale([3]float64{0.1, 0.1, 0.1})
type Source[P Point] struct{}

func (Source[P]) Simplex(seed uint64) Chain[P] {
	return From[P](NewSimplex[P](Uint64Seed(seed)))
}

func (Source[P]) Perlin(seed uint64) Chain[P] {
	return From[P](NewPerlin[P](Uint64Seed(seed)))
}

func (Source[P]) ImprovedPerlin(seed uint64) Chain[P] {
	return From[P](NewImprovedPerlin[P](Uint64Seed(seed)))
}

func (Source[P]) Value(seed uint64) Chain[P] {
	return From[P](NewValue[P](Uint64Seed(seed)))
}

func (Source[P]) Worley(seed uint64) Chain[P] {
	return From[P](NewWorley[P](Uint64Seed(seed)))
}

func (Source[P]) Checkerboard() Chain[P] {
	return From[P](NewCheckerboard[P]())
}

func (Source[P]) Constant(value float64) Chain[P] {
	return From[P](NewConstant[P](value))
}

func (Source[P]) Custom(fn func(P) float64) Chain[P] {
	return From[P](NewCustom(fn))
}

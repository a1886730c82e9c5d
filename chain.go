package noise

// Chain wraps any generator with fluent composition methods. Each method
// returns a new Chain; the receiver is left unchanged.
type Chain[P Point] struct {
	Generator[P]
}

// From lifts a generator into a Chain.
func From[P Point](generator Generator[P]) Chain[P] {
	if c, ok := generator.(Chain[P]); ok {
		return c
	}
	return Chain[P]{Generator: generator}
}

func (c Chain[P]) Scale(scale P) Chain[P] {
	return From[P](NewScale[P](c.Generator, scale))
}

func (c Chain[P]) Translate(translation P) Chain[P] {
	return From[P](NewTranslate[P](c.Generator, translation))
}

func (c Chain[P]) DisplaceX(displacement Generator[P]) Chain[P] {
	return From[P](DisplaceX[P](c.Generator, displacement))
}

func (c Chain[P]) Abs() Chain[P] {
	return From[P](NewAbs[P](c.Generator))
}

func (c Chain[P]) Neg() Chain[P] {
	return From[P](NewNeg[P](c.Generator))
}

func (c Chain[P]) Exp() Chain[P] {
	return From[P](NewExp[P](c.Generator))
}

func (c Chain[P]) Add(offset float64) Chain[P] {
	return From[P](NewAdd[P](c.Generator, offset))
}

func (c Chain[P]) Mul(scale float64) Chain[P] {
	return From[P](NewMul[P](c.Generator, scale))
}

func (c Chain[P]) PowI(exponent int) Chain[P] {
	return From[P](NewPowI[P](c.Generator, exponent))
}

func (c Chain[P]) PowF(exponent float64) Chain[P] {
	return From[P](NewPowF[P](c.Generator, exponent))
}

func (c Chain[P]) Clamp(min, max float64) Chain[P] {
	return From[P](NewClamp[P](c.Generator, min, max))
}

func (c Chain[P]) Lambda(fn func(float64) float64) Chain[P] {
	return From[P](NewLambda[P](c.Generator, fn))
}

// Spline maps the output through a natural cubic spline. The error is the
// spline construction error.
func (c Chain[P]) Spline(knotVector, knots []float64) (Chain[P], error) {
	s, err := NewSpline[P](c.Generator, knotVector, knots)
	if err != nil {
		return Chain[P]{}, err
	}
	return From[P](s), nil
}

func (c Chain[P]) Sum(other Generator[P]) Chain[P] {
	return From[P](NewSum[P](c.Generator, other))
}

func (c Chain[P]) Product(other Generator[P]) Chain[P] {
	return From[P](NewProduct[P](c.Generator, other))
}

func (c Chain[P]) Min(other Generator[P]) Chain[P] {
	return From[P](NewMin[P](c.Generator, other))
}

func (c Chain[P]) Max(other Generator[P]) Chain[P] {
	return From[P](NewMax[P](c.Generator, other))
}

func (c Chain[P]) Power(exponent Generator[P]) Chain[P] {
	return From[P](NewPower[P](c.Generator, exponent))
}

func (c Chain[P]) Blend(other, control Generator[P]) Chain[P] {
	return From[P](NewBlend[P](c.Generator, other, control))
}

func (c Chain[P]) Select(other, control Generator[P], min, max float64) Chain[P] {
	return From[P](NewSelect[P](c.Generator, other, control, min, max))
}

func (c Chain[P]) Fbm(octaves int, frequency, lacunarity, persistence float64) Chain[P] {
	return From[P](NewFbm[P](c.Generator, octaves, frequency, lacunarity, persistence))
}

func (c Chain[P]) Billow(octaves int, frequency, lacunarity, persistence float64) Chain[P] {
	return From[P](NewBillow[P](c.Generator, octaves, frequency, lacunarity, persistence))
}

func (c Chain[P]) RidgedMulti(octaves int, frequency, lacunarity, attenuation float64) Chain[P] {
	return From[P](NewRidgedMulti[P](c.Generator, octaves, frequency, lacunarity, attenuation))
}

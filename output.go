package noise

import "math"

// Abs returns the absolute value of the child's output.
type Abs[P Point, G Generator[P]] struct {
	generator G
}

func NewAbs[P Point, G Generator[P]](generator G) Abs[P, G] {
	return Abs[P, G]{generator: generator}
}

func (a Abs[P, G]) Sample(point P) float64 {
	return math.Abs(a.generator.Sample(point))
}

// Neg negates the child's output.
type Neg[P Point, G Generator[P]] struct {
	generator G
}

func NewNeg[P Point, G Generator[P]](generator G) Neg[P, G] {
	return Neg[P, G]{generator: generator}
}

func (a Neg[P, G]) Sample(point P) float64 {
	return -a.generator.Sample(point)
}

// Exp applies e^x to the child's output.
type Exp[P Point, G Generator[P]] struct {
	generator G
}

func NewExp[P Point, G Generator[P]](generator G) Exp[P, G] {
	return Exp[P, G]{generator: generator}
}

func (a Exp[P, G]) Sample(point P) float64 {
	return math.Exp(a.generator.Sample(point))
}

// Add adds a constant offset to the child's output.
type Add[P Point, G Generator[P]] struct {
	generator G
	offset    float64
}

func NewAdd[P Point, G Generator[P]](generator G, offset float64) Add[P, G] {
	return Add[P, G]{generator: generator, offset: offset}
}

func (a Add[P, G]) Sample(point P) float64 {
	return a.generator.Sample(point) + a.offset
}

// Mul multiplies the child's output by a constant.
type Mul[P Point, G Generator[P]] struct {
	generator G
	scale     float64
}

func NewMul[P Point, G Generator[P]](generator G, scale float64) Mul[P, G] {
	return Mul[P, G]{generator: generator, scale: scale}
}

func (a Mul[P, G]) Sample(point P) float64 {
	return a.generator.Sample(point) * a.scale
}

// PowI raises the child's output to an integer power.
type PowI[P Point, G Generator[P]] struct {
	generator G
	exponent  int
}

func NewPowI[P Point, G Generator[P]](generator G, exponent int) PowI[P, G] {
	return PowI[P, G]{generator: generator, exponent: exponent}
}

func (a PowI[P, G]) Sample(point P) float64 {
	return powi(a.generator.Sample(point), a.exponent)
}

// powi computes x^n by repeated squaring.
func powi(x float64, n int) float64 {
	if n < 0 {
		return 1 / powi(x, -n)
	}
	result := 1.0
	for n > 0 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
		n >>= 1
	}
	return result
}

// PowF raises the child's output to a real power.
type PowF[P Point, G Generator[P]] struct {
	generator G
	exponent  float64
}

func NewPowF[P Point, G Generator[P]](generator G, exponent float64) PowF[P, G] {
	return PowF[P, G]{generator: generator, exponent: exponent}
}

func (a PowF[P, G]) Sample(point P) float64 {
	return math.Pow(a.generator.Sample(point), a.exponent)
}

// Clamp restricts the child's output to [min, max]. NaN passes through.
type Clamp[P Point, G Generator[P]] struct {
	generator G
	min, max  float64
}

func NewClamp[P Point, G Generator[P]](generator G, min, max float64) Clamp[P, G] {
	return Clamp[P, G]{generator: generator, min: min, max: max}
}

func (a Clamp[P, G]) Sample(point P) float64 {
	v := a.generator.Sample(point)
	switch {
	case v < a.min:
		return a.min
	case v > a.max:
		return a.max
	default:
		return v
	}
}

// Lambda applies a user function to the child's output.
type Lambda[P Point, G Generator[P]] struct {
	generator G
	fn        func(float64) float64
}

func NewLambda[P Point, G Generator[P]](generator G, fn func(float64) float64) Lambda[P, G] {
	return Lambda[P, G]{generator: generator, fn: fn}
}

func (a Lambda[P, G]) Sample(point P) float64 {
	return a.fn(a.generator.Sample(point))
}

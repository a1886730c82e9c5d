package noise

import "math"

// Sum adds the outputs of two generators.
type Sum[P Point, A Generator[P], B Generator[P]] struct {
	a A
	b B
}

func NewSum[P Point, A Generator[P], B Generator[P]](a A, b B) Sum[P, A, B] {
	return Sum[P, A, B]{a: a, b: b}
}

func (c Sum[P, A, B]) Sample(point P) float64 {
	return c.a.Sample(point) + c.b.Sample(point)
}

// Product multiplies the outputs of two generators.
type Product[P Point, A Generator[P], B Generator[P]] struct {
	a A
	b B
}

func NewProduct[P Point, A Generator[P], B Generator[P]](a A, b B) Product[P, A, B] {
	return Product[P, A, B]{a: a, b: b}
}

func (c Product[P, A, B]) Sample(point P) float64 {
	return c.a.Sample(point) * c.b.Sample(point)
}

// Min takes the smaller of two outputs.
type Min[P Point, A Generator[P], B Generator[P]] struct {
	a A
	b B
}

func NewMin[P Point, A Generator[P], B Generator[P]](a A, b B) Min[P, A, B] {
	return Min[P, A, B]{a: a, b: b}
}

func (c Min[P, A, B]) Sample(point P) float64 {
	return math.Min(c.a.Sample(point), c.b.Sample(point))
}

// Max takes the larger of two outputs.
type Max[P Point, A Generator[P], B Generator[P]] struct {
	a A
	b B
}

func NewMax[P Point, A Generator[P], B Generator[P]](a A, b B) Max[P, A, B] {
	return Max[P, A, B]{a: a, b: b}
}

func (c Max[P, A, B]) Sample(point P) float64 {
	return math.Max(c.a.Sample(point), c.b.Sample(point))
}

// Power raises the first output to the power of the second.
type Power[P Point, A Generator[P], B Generator[P]] struct {
	a A
	b B
}

func NewPower[P Point, A Generator[P], B Generator[P]](a A, b B) Power[P, A, B] {
	return Power[P, A, B]{a: a, b: b}
}

func (c Power[P, A, B]) Sample(point P) float64 {
	return math.Pow(c.a.Sample(point), c.b.Sample(point))
}

// Blend interpolates between a and b. The control output is expected in
// [-1, 1]; -1 selects a and 1 selects b.
type Blend[P Point, A Generator[P], B Generator[P], C Generator[P]] struct {
	a       A
	b       B
	control C
}

func NewBlend[P Point, A Generator[P], B Generator[P], C Generator[P]](a A, b B, control C) Blend[P, A, B, C] {
	return Blend[P, A, B, C]{a: a, b: b, control: control}
}

func (c Blend[P, A, B, C]) Sample(point P) float64 {
	t := c.control.Sample(point)*0.5 + 0.5
	a := c.a.Sample(point)
	return a + t*(c.b.Sample(point)-a)
}

// Select returns a where the control output lies in [min, max] and b
// elsewhere.
type Select[P Point, A Generator[P], B Generator[P], C Generator[P]] struct {
	a        A
	b        B
	control  C
	min, max float64
}

func NewSelect[P Point, A Generator[P], B Generator[P], C Generator[P]](a A, b B, control C, min, max float64) Select[P, A, B, C] {
	return Select[P, A, B, C]{a: a, b: b, control: control, min: min, max: max}
}

func (c Select[P, A, B, C]) Sample(point P) float64 {
	v := c.control.Sample(point)
	if v >= c.min && v <= c.max {
		return c.a.Sample(point)
	}
	return c.b.Sample(point)
}

package noise

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	ErrTooFewKnots         = errors.New("cubic spline needs at least 4 knots")
	ErrKnotLengthMismatch  = errors.New("knot vector and knots differ in length")
	ErrKnotVectorUnsorted  = errors.New("knot vector is not strictly increasing")
	ErrNonFiniteKnotVector = errors.New("knot vector contains NaN or Inf")
	ErrNonFiniteKnots      = errors.New("knots contain NaN or Inf")
)

type cubicSegment struct {
	a, b, c, d float64
}

// NaturalCubicSpline interpolates knots[i] at knotVector[i] with zero
// second derivative at both ends. It is immutable once built.
type NaturalCubicSpline struct {
	knotVector []float64
	segments   []cubicSegment
}

// NewNaturalCubicSpline validates the knots and solves for the segment
// coefficients.
func NewNaturalCubicSpline(knotVector, knots []float64) (*NaturalCubicSpline, error) {
	if err := validateKnots(knotVector, knots); err != nil {
		return nil, err
	}

	s := &NaturalCubicSpline{
		knotVector: append([]float64(nil), knotVector...),
	}
	s.segments = solveNatural(s.knotVector, knots)
	return s, nil
}

func validateKnots(x, y []float64) error {
	if len(y) < 4 {
		return fmt.Errorf("%w: got %d", ErrTooFewKnots, len(y))
	}
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d knot positions, %d knots", ErrKnotLengthMismatch, len(x), len(y))
	}
	for i := 1; i < len(x); i++ {
		if x[i-1] >= x[i] {
			return fmt.Errorf("%w: index %d", ErrKnotVectorUnsorted, i)
		}
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: index %d", ErrNonFiniteKnotVector, i)
		}
	}
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: index %d", ErrNonFiniteKnots, i)
		}
	}
	return nil
}

// solveNatural runs the tridiagonal forward sweep and back substitution.
func solveNatural(x, y []float64) []cubicSegment {
	n := len(y)
	h := make([]float64, n-1)
	for i := range h {
		h[i] = x[i+1] - x[i]
	}

	alpha := make([]float64, n-1)
	for i := 1; i < n-1; i++ {
		alpha[i] = 3/h[i]*(y[i+1]-y[i]) - 3/h[i-1]*(y[i]-y[i-1])
	}

	l := make([]float64, n)
	mu := make([]float64, n)
	z := make([]float64, n)
	l[0] = 1
	for i := 1; i < n-1; i++ {
		l[i] = 2*(x[i+1]-x[i-1]) - h[i-1]*mu[i-1]
		mu[i] = h[i] / l[i]
		z[i] = (alpha[i] - h[i-1]*z[i-1]) / l[i]
	}

	c := make([]float64, n)
	segments := make([]cubicSegment, n-1)
	for j := n - 2; j >= 0; j-- {
		c[j] = z[j] - mu[j]*c[j+1]
		segments[j] = cubicSegment{
			a: y[j],
			b: (y[j+1]-y[j])/h[j] - h[j]*(c[j+1]+2*c[j])/3,
			c: c[j],
			d: (c[j+1] - c[j]) / (3 * h[j]),
		}
	}
	return segments
}

// Evaluate returns the spline value at x, or NaN outside the knot range.
func (s *NaturalCubicSpline) Evaluate(x float64) float64 {
	first, last := s.knotVector[0], s.knotVector[len(s.knotVector)-1]
	if !(x >= first && x <= last) {
		return math.NaN()
	}

	// segment i covers [knotVector[i], knotVector[i+1]]
	i := sort.SearchFloat64s(s.knotVector, x)
	if i == len(s.knotVector) || s.knotVector[i] != x {
		i--
	}
	i = min(i, len(s.segments)-1)

	seg := s.segments[i]
	t := x - s.knotVector[i]
	return seg.a + seg.b*t + seg.c*t*t + seg.d*t*t*t
}

// Spline maps the child's output through a natural cubic spline.
type Spline[P Point, G Generator[P]] struct {
	generator G
	spline    *NaturalCubicSpline
}

// NewSpline fits the spline and wraps the generator with it.
func NewSpline[P Point, G Generator[P]](generator G, knotVector, knots []float64) (Spline[P, G], error) {
	spline, err := NewNaturalCubicSpline(knotVector, knots)
	if err != nil {
		return Spline[P, G]{}, fmt.Errorf("failed to build spline: %w", err)
	}
	return Spline[P, G]{generator: generator, spline: spline}, nil
}

func (a Spline[P, G]) Sample(point P) float64 {
	return a.spline.Evaluate(a.generator.Sample(point))
}

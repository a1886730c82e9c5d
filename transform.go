package noise

import "math"

// Scale multiplies each coordinate before sampling the child.
type Scale[P Point, G Generator[P]] struct {
	generator G
	scale     P
}

func NewScale[P Point, G Generator[P]](generator G, scale P) Scale[P, G] {
	return Scale[P, G]{generator: generator, scale: scale}
}

func (a Scale[P, G]) Sample(point P) float64 {
	for i := 0; i < len(point); i++ {
		point[i] *= a.scale[i]
	}
	return a.generator.Sample(point)
}

// Translate offsets each coordinate before sampling the child.
type Translate[P Point, G Generator[P]] struct {
	generator   G
	translation P
}

func NewTranslate[P Point, G Generator[P]](generator G, translation P) Translate[P, G] {
	return Translate[P, G]{generator: generator, translation: translation}
}

func (a Translate[P, G]) Sample(point P) float64 {
	for i := 0; i < len(point); i++ {
		point[i] += a.translation[i]
	}
	return a.generator.Sample(point)
}

// planes lists the axis pairs rotated, in application order.
// Rotate rotates the point before sampling the child. The rotation is a
// fixed linear map built once from the angles.
type Rotate[P Point, G Generator[P]] struct {
	generator G
	matrix    [4][4]float64
}

// newRotate tabulates the linear map rotate as a matrix by applying it to
// each basis vector.
func newRotate[P Point, G Generator[P]](generator G, rotate func(p [4]float64) [4]float64) Rotate[P, G] {
	r := Rotate[P, G]{generator: generator}
	dim := Dim[P]()
	for j := 0; j < dim; j++ {
		var basis [4]float64
		basis[j] = 1
		column := rotate(basis)
		for i := 0; i < dim; i++ {
			r.matrix[i][j] = column[i]
		}
	}
	return r
}

// Rotate2D rotates the xy plane by angles[0] radians.
func Rotate2D[G Generator[[2]float64]](generator G, angles [1]float64) Rotate[[2]float64, G] {
	sin, cos := math.Sincos(angles[0])
	return newRotate[[2]float64](generator, func(p [4]float64) [4]float64 {
		return [4]float64{
			p[0]*cos - p[1]*sin,
			p[0]*sin + p[1]*cos,
		}
	})
}

// Rotate3D applies the Euler rotation with angles alpha, beta and gamma:
// gamma turns the xy plane, beta tilts toward z and alpha turns the yz
// plane.
func Rotate3D[G Generator[[3]float64]](generator G, angles [3]float64) Rotate[[3]float64, G] {
	sa, ca := math.Sincos(angles[0])
	sb, cb := math.Sincos(angles[1])
	sg, cg := math.Sincos(angles[2])
	return newRotate[[3]float64](generator, func(p [4]float64) [4]float64 {
		x, y, z := p[0], p[1], p[2]
		xy := x*cg + y*sg
		yx := x*sg - y*cg
		return [4]float64{
			cb*xy - z*sb,
			sa*(sb*xy+z*cb) - ca*yx,
			ca*(sb*xy+z*cb) + sa*yx,
		}
	})
}

// Rotate4D applies the composite rotation over all six planes, with the
// angles ordered alpha, beta, gamma, delta, epsilon, digamma.
func Rotate4D[G Generator[[4]float64]](generator G, angles [6]float64) Rotate[[4]float64, G] {
	sa, ca := math.Sincos(angles[0])
	sb, cb := math.Sincos(angles[1])
	sg, cg := math.Sincos(angles[2])
	sd, cd := math.Sincos(angles[3])
	se, ce := math.Sincos(angles[4])
	sf, cf := math.Sincos(angles[5])
	return newRotate[[4]float64](generator, func(p [4]float64) [4]float64 {
		x, y, z, w := p[0], p[1], p[2], p[3]
		zw := z*sf + w*cf
		wz := -z*cf + w*sf
		inner := sd*(se*zw-y*ce) + cd*wz
		tilt := cb * (ce*(-zw) - y*se)
		return [4]float64{
			ca*(x*cb*cg+sb*inner+sg*tilt) +
				sa*(cd*(se*zw-y*ce)-sd*wz),
			sa*(cb*(sg*(ce*(-zw)-y*se)+x*cg)+sb*inner) +
				ca*(cd*(-se*zw+y*ce)+sd*wz),
			cb*(se*(sd*(-zw))-cd*wz+y*sg*ce) +
				sb*(sg*(se*(-y-z*sf)-w*cf*ce)+x*cg),
			cg*(ce*zw+y*se) + x*sg,
		}
	})
}

func (a Rotate[P, G]) Sample(point P) float64 {
	c := coords(point)
	for i := 0; i < len(point); i++ {
		var v float64
		for j := 0; j < len(point); j++ {
			v += a.matrix[i][j] * c[j]
		}
		point[i] = v
	}
	return a.generator.Sample(point)
}

// Displace offsets one axis by the output of a second generator. The
// displacement generator sees the original point.
type Displace[P Point, G Generator[P], D Generator[P]] struct {
	generator    G
	displacement D
	axis         int
}

// DisplaceX perturbs the x axis.
func DisplaceX[P Point, G Generator[P], D Generator[P]](generator G, displacement D) Displace[P, G, D] {
	return Displace[P, G, D]{generator: generator, displacement: displacement, axis: 0}
}

// DisplaceY perturbs the y axis.
func DisplaceY[P Point2Plus, G Generator[P], D Generator[P]](generator G, displacement D) Displace[P, G, D] {
	return Displace[P, G, D]{generator: generator, displacement: displacement, axis: 1}
}

// DisplaceZ perturbs the z axis.
func DisplaceZ[P Point3Plus, G Generator[P], D Generator[P]](generator G, displacement D) Displace[P, G, D] {
	return Displace[P, G, D]{generator: generator, displacement: displacement, axis: 2}
}

// DisplaceW perturbs the w axis.
func DisplaceW[P Point4, G Generator[P], D Generator[P]](generator G, displacement D) Displace[P, G, D] {
	return Displace[P, G, D]{generator: generator, displacement: displacement, axis: 3}
}

func (a Displace[P, G, D]) Sample(point P) float64 {
	point[a.axis] += a.displacement.Sample(point)
	return a.generator.Sample(point)
}

package noise

// Point is a coordinate of fixed dimension.
type Point interface {
	[1]float64 | [2]float64 | [3]float64 | [4]float64
}

// Point2Plus admits points with a y axis.
type Point2Plus interface {
	[2]float64 | [3]float64 | [4]float64
}

// Point3Plus admits points with a z axis.
type Point3Plus interface {
	[3]float64 | [4]float64
}

// Point4 admits only four dimensional points.
type Point4 interface {
	[4]float64
}

// Generator samples a scalar field at a point.
type Generator[P Point] interface {
	Sample(point P) float64
}

// Dim returns the dimension of P.
func Dim[P Point]() int {
	var p P
	return len(p)
}

// coords copies p into a fixed buffer large enough for any dimension.
func coords[P Point](p P) (c [4]float64) {
	for i := 0; i < len(p); i++ {
		c[i] = p[i]
	}
	return c
}

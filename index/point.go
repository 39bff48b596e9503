package index

// Point2 is a 2-D index.
type Point2 [2]int

// Point3 is a 3-D index.
type Point3 [3]int

// Vector is a slice-backed index of arbitrary dimensionality.
type Vector []int

// Grid2 adapts Point2.
type Grid2 struct{}

func (Grid2) Dimensions() int               { return 2 }
func (Grid2) Component(p Point2, d int) int { return p[d] }
func (Grid2) Make(c []int) Point2           { return Point2{c[0], c[1]} }

// Grid3 adapts Point3.
type Grid3 struct{}

func (Grid3) Dimensions() int               { return 3 }
func (Grid3) Component(p Point3, d int) int { return p[d] }
func (Grid3) Make(c []int) Point3           { return Point3{c[0], c[1], c[2]} }

// Dynamic adapts Vector for a dimensionality chosen at run time.
type Dynamic struct {
	Dims int
}

// Dimensions implements Adapter.
func (a Dynamic) Dimensions() int { return a.Dims }

// Component implements Adapter.
func (a Dynamic) Component(v Vector, d int) int { return v[d] }

// Make implements Adapter. The returned Vector owns a copy of c.
func (a Dynamic) Make(c []int) Vector {
	v := make(Vector, len(c))
	copy(v, c)
	return v
}

// Check implements Checker.
func (a Dynamic) Check(v Vector) error {
	if len(v) != a.Dims {
		return &ErrDimensionMismatch{Expected: a.Dims, Actual: len(v)}
	}
	return nil
}

package internal

import "math"

// A Bézier curve of arbitrary degree, evaluated in explicit Bernstein form.
// The control points are copied on construction and never modified, so a
// Curve is safe to share between goroutines.
type Curve struct {
	points    []Point
	binomials BinomialTable
}

func NewCurve(points []Point) *Curve {
	if len(points) == 0 {
		fatalf("curve needs at least one control point")
	}
	owned := make([]Point, len(points))
	copy(owned, points)
	return &Curve{
		points:    owned,
		binomials: NewBinomialTable(len(points) - 1),
	}
}

func (c *Curve) Degree() int {
	return len(c.points) - 1
}

// ControlPoints returns a copy of the control points.
func (c *Curve) ControlPoints() []Point {
	points := make([]Point, len(c.points))
	copy(points, c.points)
	return points
}

func (c *Curve) Start() Point {
	return c.points[0]
}

func (c *Curve) End() Point {
	return c.points[len(c.points)-1]
}

// Eval computes
//
//	Σ C(n, i) · (1-t)^(n-i) · t^i · P[i]
//
// for x and y independently. t is not clamped; values outside [0, 1]
// extrapolate the curve.
func (c *Curve) Eval(t float64) Point {
	n := c.Degree()
	row := c.binomials.Row(n)
	var result Point
	for i, p := range c.points {
		factor := float64(row[i]) * math.Pow(1-t, float64(n-i)) * math.Pow(t, float64(i))
		result.X += factor * p.X
		result.Y += factor * p.Y
	}
	return result
}

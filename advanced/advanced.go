// Package advanced exposes the pieces ComputeCurve is built from, without
// any validation. It accepts curves ComputeCurve rejects, such as a single
// control point, which samples to that point repeated.
//
// Invariant violations (an empty curve, a non-positive step, a binomial
// lookup past the table's degree) panic with a CurveError.
package advanced

import "github.com/osuushi/bezier/internal"

type Point = internal.Point
type Rect = internal.Rect
type Path = internal.Path
type Curve = internal.Curve
type BinomialTable = internal.BinomialTable
type CurveError = internal.CurveError

// NewBinomialTable builds rows 0 through n of Pascal's triangle.
func NewBinomialTable(n int) BinomialTable {
	return internal.NewBinomialTable(n)
}

// NewCurve copies points into a curve of degree len(points)-1.
func NewCurve(points []Point) *Curve {
	return internal.NewCurve(points)
}

// Sample returns the curve sampled at multiples of step plus t = 1, and the
// bounds of those samples and the control points.
func Sample(c *Curve, step float64) (Path, Rect) {
	return internal.Sample(c, step)
}

// EmptyRect returns a rectangle containing no points.
func EmptyRect() Rect {
	return internal.EmptyRect()
}

// HandleCurvePanicRecover converts a recovered CurveError into an error and
// re-panics anything else. Use it in a deferred function around calls into
// this package.
func HandleCurvePanicRecover(r interface{}) error {
	return internal.HandleCurvePanicRecover(r)
}

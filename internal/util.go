package internal

import "math"

const Tolerance = 1e-9

// Equality of sampled coordinates is tolerance based. Two evaluations of the
// same curve at the same t can differ in the last bits depending on how t was
// produced.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func (p Point) Equal(o Point) bool {
	return Equal(p.X, o.X) && Equal(p.Y, o.Y)
}

// A point is finite if neither coordinate is NaN or infinite. Non-finite
// control points poison every sample, so callers reject them up front.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

package bezier

import "github.com/pkg/errors"

// Errors returned by Config.Validate and ComputeCurve. They are wrapped with
// the offending value, so compare with errors.Is.
var (
	// Fewer than two control points, or more than MaxDegree+1.
	ErrInvalidDegree = errors.New("invalid degree")
	// A step that is not in (0, 1], or that needs more than MaxSamples
	// samples.
	ErrInvalidStep = errors.New("invalid step")
	// A control point with a NaN or infinite coordinate.
	ErrInvalidPoint = errors.New("invalid control point")
)

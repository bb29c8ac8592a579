// Sampling and bounding of Bézier curves of arbitrary degree.
//
// A curve is given as an ordered list of control points. ComputeCurve
// evaluates it in explicit Bernstein form at fixed parameter steps, always
// including the endpoint, and returns the sampled polyline together with the
// bounding box of the samples and the control points. The result is computed
// once and never changes, so it can be handed to a renderer as-is.
//
// See the advanced package for unvalidated access to the binomial table and
// the evaluator.
package bezier

import (
	"github.com/osuushi/bezier/internal"
)

type Point = internal.Point
type Rect = internal.Rect
type Path = internal.Path

// MaxDegree is the highest curve degree ComputeCurve accepts.
const MaxDegree = internal.MaxDegree

// MaxSamples is the longest path ComputeCurve will produce. Steps needing
// more samples are rejected with ErrInvalidStep.
const MaxSamples = internal.MaxSamples

// Result is the sampled curve. It holds copies of everything it needs and is
// never modified after ComputeCurve returns.
type Result struct {
	ControlPoints []Point
	Degree        int
	Step          float64
	Path          Path
	Bounds        Rect

	curve *internal.Curve
}

// PointAt evaluates the curve at t. t is not clamped to [0, 1].
func (r Result) PointAt(t float64) Point {
	return r.curve.Eval(t)
}

// ComputeCurve validates cfg, then samples the curve it describes.
func ComputeCurve(cfg Config) (result Result, err error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	defer func() {
		recoveredErr := internal.HandleCurvePanicRecover(recover())
		if recoveredErr != nil {
			result = Result{}
			err = recoveredErr
		}
	}()

	curve := internal.NewCurve(cfg.ControlPoints)
	path, bounds := internal.Sample(curve, cfg.Step)
	return Result{
		ControlPoints: curve.ControlPoints(),
		Degree:        curve.Degree(),
		Step:          cfg.Step,
		Path:          path,
		Bounds:        bounds,
		curve:         curve,
	}, nil
}

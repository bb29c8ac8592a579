package internal

import "math"

// MaxSamples bounds the length of a sampled path. Smaller steps would need
// more memory than a path is worth, or a count that does not fit in an int.
const MaxSamples = 1 << 20

// SampleCount is the number of points Sample produces for step, computed in
// float64 so tiny steps give a large or infinite count rather than overflow.
func SampleCount(step float64) float64 {
	return math.Floor(1/step) + 2
}

// Sample evaluates c at t = 0, step, 2·step, ... up to 1, then once more at
// exactly t = 1 so the endpoint is present even when step does not divide 1.
// The bounding box covers every control point as well as every sample.
//
// t is computed as i·step rather than by repeated addition, which would drift
// and could drop the last regular sample. A step of 0.01 gives 101 regular
// samples plus the endpoint.
//
// The step is not validated here. It must be in (0, 1] and give at most
// MaxSamples points.
func Sample(c *Curve, step float64) (Path, Rect) {
	if !(step > 0) || math.IsInf(step, 0) {
		fatalf("sample step must be positive and finite, got %g", step)
	}
	if count := SampleCount(step); count > MaxSamples {
		fatalf("sample step %g gives %g samples, more than %d", step, count, MaxSamples)
	}

	bounds := EmptyRect()
	for _, p := range c.points {
		bounds = bounds.Include(p)
	}

	steps := int(math.Floor(1 / step))
	path := make(Path, 0, steps+2)
	for i := 0; i <= steps; i++ {
		t := float64(i) * step
		if t > 1 {
			break
		}
		p := c.Eval(t)
		path = append(path, p)
		bounds = bounds.Include(p)
	}

	end := c.Eval(1)
	path = append(path, end)
	bounds = bounds.Include(end)

	return path, bounds
}

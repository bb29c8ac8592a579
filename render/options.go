package render

import "image/color"

// Options controls how a curve is drawn. Sizes are in pixels and do not
// change with Scale.
type Options struct {
	// Space around the bounding box, on every side.
	Padding float64
	// Pixels per world unit.
	Scale float64
	// The canvas is never smaller than this in either dimension.
	MinSize int
	// NewCanvas fails rather than allocate a canvas larger than this in
	// either dimension.
	MaxSize int

	PointSize  float64
	CurveWidth float64
	LineWidth  float64
	DashLength float64
	FontSize   float64

	// Draw P0…Pn next to the control points.
	Labels bool

	Background   color.Color
	AxisColor    color.Color
	ControlColor color.Color
	PointColor   color.Color
	CurveColor   color.Color
	LabelColor   color.Color
}

func DefaultOptions() Options {
	return Options{
		Padding:    50,
		Scale:      1,
		MinSize:    100,
		MaxSize:    16384,
		PointSize:  8,
		CurveWidth: 2,
		LineWidth:  1,
		DashLength: 5,
		FontSize:   12,

		Background:   color.White,
		AxisColor:    color.RGBA{192, 192, 192, 255},
		ControlColor: color.RGBA{200, 200, 200, 255},
		PointColor:   color.RGBA{255, 0, 0, 255},
		CurveColor:   color.RGBA{0, 102, 204, 255},
		LabelColor:   color.RGBA{51, 51, 51, 255},
	}
}

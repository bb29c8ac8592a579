// Package render draws a computed curve onto a PNG canvas: cartesian axes,
// the dashed control polygon, the control points and the sampled curve.
package render

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/osuushi/bezier"
	"github.com/pkg/errors"
)

// Canvas is a rendered curve. World coordinates have y pointing up and are
// mapped so the curve's bounding box sits inside the padding.
type Canvas struct {
	result  bezier.Result
	opts    Options
	context *gg.Context

	toPixel gg.Matrix
	toWorld gg.Matrix
}

// The unclamped canvas extent in pixels. It stays in float64 so a huge curve
// reads as a huge (or infinite) size instead of overflowing an int.
func extent(bounds bezier.Rect, opts Options) (width, height float64) {
	width = math.Ceil(bounds.Width()*opts.Scale) + math.Floor(2*opts.Padding)
	height = math.Ceil(bounds.Height()*opts.Scale) + math.Floor(2*opts.Padding)
	return width, height
}

// Size returns the canvas dimensions for a bounding box: its scaled extent
// plus padding on both sides, but never less than opts.MinSize. NewCanvas
// refuses sizes above opts.MaxSize, so check that before trusting the result
// for large curves.
func Size(bounds bezier.Rect, opts Options) (width, height int) {
	w, h := extent(bounds, opts)
	width, height = int(w), int(h)
	if width < opts.MinSize {
		width = opts.MinSize
	}
	if height < opts.MinSize {
		height = opts.MinSize
	}
	return width, height
}

// NewCanvas draws result and returns the canvas.
func NewCanvas(result bezier.Result, opts Options) (*Canvas, error) {
	if !(opts.Scale > 0) {
		return nil, errors.Errorf("scale must be positive, got %g", opts.Scale)
	}
	if opts.Padding < 0 {
		return nil, errors.Errorf("padding must not be negative, got %g", opts.Padding)
	}
	bounds := result.Bounds
	if bounds.IsEmpty() {
		return nil, errors.New("nothing to draw")
	}

	if opts.MaxSize < opts.MinSize {
		return nil, errors.Errorf("max size %d is below min size %d", opts.MaxSize, opts.MinSize)
	}
	if w, h := extent(bounds, opts); !(w <= float64(opts.MaxSize) && h <= float64(opts.MaxSize)) {
		return nil, errors.Errorf("canvas %.0fx%.0f exceeds maximum size %d; lower the scale", w, h, opts.MaxSize)
	}

	width, height := Size(bounds, opts)
	c := gg.NewContext(width, height)
	c.SetColor(opts.Background)
	c.Clear()

	// Put the top left of the bounding box at the padding, with y flipped
	// so the origin is at the bottom.
	c.Translate(opts.Padding, opts.Padding)
	c.Scale(opts.Scale, -opts.Scale)
	c.Translate(-bounds.Min.X, -bounds.Max.Y)

	// gg can't hand out the context matrix, so build it and its inverse
	// alongside.
	toPixel := gg.Identity().
		Translate(opts.Padding, opts.Padding).
		Scale(opts.Scale, -opts.Scale).
		Translate(-bounds.Min.X, -bounds.Max.Y)
	toWorld := gg.Identity().
		Translate(bounds.Min.X, bounds.Max.Y).
		Scale(1/opts.Scale, -1/opts.Scale).
		Translate(-opts.Padding, -opts.Padding)

	canvas := &Canvas{
		result:  result,
		opts:    opts,
		context: c,
		toPixel: toPixel,
		toWorld: toWorld,
	}
	if err := canvas.draw(); err != nil {
		return nil, err
	}
	return canvas, nil
}

// ToPixel maps a world point to canvas pixel coordinates.
func (canvas *Canvas) ToPixel(p bezier.Point) (x, y float64) {
	return canvas.toPixel.TransformPoint(p.X, p.Y)
}

// ToWorld maps canvas pixel coordinates back to a world point.
func (canvas *Canvas) ToWorld(x, y float64) bezier.Point {
	wx, wy := canvas.toWorld.TransformPoint(x, y)
	return bezier.Point{X: wx, Y: wy}
}

// The part of the world visible on the canvas.
func (canvas *Canvas) visibleRect() bezier.Rect {
	width, height := float64(canvas.Width()), float64(canvas.Height())
	return bezier.Rect{
		Min: canvas.ToWorld(0, height),
		Max: canvas.ToWorld(width, 0),
	}
}

func (canvas *Canvas) Width() int {
	return canvas.context.Width()
}

func (canvas *Canvas) Height() int {
	return canvas.context.Height()
}

func (canvas *Canvas) Image() image.Image {
	return canvas.context.Image()
}

func (canvas *Canvas) EncodePNG(w io.Writer) error {
	return canvas.context.EncodePNG(w)
}

func (canvas *Canvas) SavePNG(path string) error {
	if err := canvas.context.SavePNG(path); err != nil {
		return errors.Wrapf(err, "could not save %q", path)
	}
	return nil
}

func (canvas *Canvas) String() string {
	return fmt.Sprintf("%dx%d canvas of %s", canvas.Width(), canvas.Height(), canvas.result.Bounds)
}

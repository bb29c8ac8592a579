package render

import (
	"fmt"
	"sync"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func (canvas *Canvas) draw() error {
	c := canvas.context
	c.SetLineCap(gg.LineCapRound)
	c.SetLineJoin(gg.LineJoinRound)

	canvas.drawAxes()
	canvas.drawControlLines()
	canvas.drawControlPoints()
	canvas.drawCurve()
	if canvas.opts.Labels {
		return canvas.drawLabels()
	}
	return nil
}

// The x and y axes, across the whole canvas.
func (canvas *Canvas) drawAxes() {
	c := canvas.context
	visible := canvas.visibleRect()
	c.SetColor(canvas.opts.AxisColor)
	c.SetLineWidth(canvas.opts.LineWidth)
	c.DrawLine(visible.Min.X, 0, visible.Max.X, 0)
	c.Stroke()
	c.DrawLine(0, visible.Min.Y, 0, visible.Max.Y)
	c.Stroke()
}

// Dashed lines joining consecutive control points.
func (canvas *Canvas) drawControlLines() {
	c := canvas.context
	points := canvas.result.ControlPoints
	c.SetColor(canvas.opts.ControlColor)
	c.SetLineWidth(canvas.opts.LineWidth)
	c.SetDash(canvas.opts.DashLength)
	for i := 0; i < len(points)-1; i++ {
		c.DrawLine(points[i].X, points[i].Y, points[i+1].X, points[i+1].Y)
	}
	c.Stroke()
	c.SetDash()
}

func (canvas *Canvas) drawControlPoints() {
	c := canvas.context
	// The context is scaled, so convert the pixel size back to world units.
	radius := canvas.opts.PointSize / 2 / canvas.opts.Scale
	c.SetColor(canvas.opts.PointColor)
	for _, p := range canvas.result.ControlPoints {
		c.DrawCircle(p.X, p.Y, radius)
		c.Fill()
	}
}

func (canvas *Canvas) drawCurve() {
	c := canvas.context
	path := canvas.result.Path
	if len(path) == 0 {
		return
	}
	c.SetColor(canvas.opts.CurveColor)
	c.SetLineWidth(canvas.opts.CurveWidth)
	c.MoveTo(path[0].X, path[0].Y)
	for _, p := range path[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.Stroke()
}

// Labels are drawn in pixel space, otherwise the flipped context would
// mirror the text.
func (canvas *Canvas) drawLabels() error {
	face, err := labelFace(canvas.opts.FontSize)
	if err != nil {
		return err
	}
	c := canvas.context
	offset := canvas.opts.PointSize
	c.Push()
	defer c.Pop()
	c.Identity()
	c.SetFontFace(face)
	c.SetColor(canvas.opts.LabelColor)
	for i, p := range canvas.result.ControlPoints {
		x, y := canvas.ToPixel(p)
		c.DrawStringAnchored(fmt.Sprintf("P%d", i), x+offset, y-offset, 0, 0)
	}
	return nil
}

var (
	regularFont     *opentype.Font
	regularFontErr  error
	regularFontOnce sync.Once
)

func labelFace(size float64) (font.Face, error) {
	regularFontOnce.Do(func() {
		regularFont, regularFontErr = opentype.Parse(goregular.TTF)
	})
	if regularFontErr != nil {
		return nil, errors.Wrap(regularFontErr, "could not parse label font")
	}
	face, err := opentype.NewFace(regularFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create label face")
	}
	return face, nil
}

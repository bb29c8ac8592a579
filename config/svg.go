package config

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/bezier"
	"github.com/pkg/errors"
)

// This is not a full SVG reader. It takes the control points from the first
// polyline or polygon in the document, or failing that from the centers of
// all circles in document order.
//
// SVG's y axis points down while ours points up, so y is negated. The
// rendered curve then has the same orientation as the drawing it came from.

// LoadSVG reads control points from an SVG document. The step is always
// bezier.DefaultStep.
func LoadSVG(r io.Reader) (bezier.Config, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return bezier.Config{}, errors.Wrap(err, "invalid SVG")
	}

	var points []bezier.Point
	if el := firstElement(root, "polyline", "polygon"); el != nil {
		points, err = parsePointList(el.Attributes["points"])
		if err != nil {
			return bezier.Config{}, errors.Wrapf(err, "bad points in <%s>", el.Name)
		}
	} else {
		circles := root.FindAll("circle")
		if len(circles) == 0 {
			return bezier.Config{}, errors.New("no polyline, polygon or circle elements found")
		}
		for i, circle := range circles {
			x, err := parseCoordinate(circle.Attributes["cx"])
			if err != nil {
				return bezier.Config{}, errors.Wrapf(err, "circle %d: bad cx", i)
			}
			y, err := parseCoordinate(circle.Attributes["cy"])
			if err != nil {
				return bezier.Config{}, errors.Wrapf(err, "circle %d: bad cy", i)
			}
			points = append(points, bezier.Point{X: x, Y: y})
		}
	}

	for i := range points {
		points[i].Y = -points[i].Y
	}
	return bezier.Config{ControlPoints: points, Step: bezier.DefaultStep}, nil
}

func firstElement(root *svgparser.Element, names ...string) *svgparser.Element {
	for _, name := range names {
		if found := root.FindAll(name); len(found) > 0 {
			return found[0]
		}
	}
	return nil
}

// Parse an SVG points attribute. Coordinates may be separated by commas,
// whitespace or both.
func parsePointList(s string) ([]bezier.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d)", len(fields))
	}
	points := make([]bezier.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := parseCoordinate(fields[i])
		if err != nil {
			return nil, err
		}
		y, err := parseCoordinate(fields[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, bezier.Point{X: x, Y: y})
	}
	return points, nil
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Errorf("invalid coordinate %q", s)
	}
	return v, nil
}

package config

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/osuushi/bezier"
	"github.com/pkg/errors"
)

// ReadPoints reads control points, one "x y" pair per line. A comma may
// stand in for the space. Blank lines and lines starting with # are skipped.
func ReadPoints(r io.Reader) ([]bezier.Point, error) {
	var points []bezier.Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read points")
	}
	return points, nil
}

func parsePoint(line string) (bezier.Point, error) {
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(parts) != 2 {
		return bezier.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := parseCoordinate(parts[0])
	if err != nil {
		return bezier.Point{}, err
	}
	y, err := parseCoordinate(parts[1])
	if err != nil {
		return bezier.Point{}, err
	}
	return bezier.Point{X: x, Y: y}, nil
}

package config

import (
	"strings"
	"testing"

	"github.com/osuushi/bezier"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_YAML(t *testing.T) {
	cfg, err := Load("fixtures/cubic.yaml")
	require.NoError(t, err)
	assert.Equal(t, []bezier.Point{{X: 0, Y: 0}, {X: 10, Y: 20}, {X: 30, Y: 20}, {X: 40, Y: 0}}, cfg.ControlPoints)
	assert.Equal(t, 0.02, cfg.Step)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLDefaultStep(t *testing.T) {
	cfg, err := Load("fixtures/nostep.yml")
	require.NoError(t, err)
	assert.Equal(t, bezier.DefaultStep, cfg.Step)
	assert.Len(t, cfg.ControlPoints, 2)
}

func TestLoad_YAMLErrors(t *testing.T) {
	_, err := Load("fixtures/typo.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "controlPoint")

	_, err = Load("fixtures/badpoint.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "point needs 2 coordinates, got 3")

	_, err = LoadYAML(strings.NewReader(""))
	assert.EqualError(t, err, "empty config")

	_, err = LoadYAML(strings.NewReader("controlPoints: [[1, 2], foo]"))
	assert.Error(t, err)
}

func TestLoad_SVGPolyline(t *testing.T) {
	cfg, err := Load("fixtures/polyline.svg")
	require.NoError(t, err)
	// The polyline wins over the stray circle, and y is flipped.
	assert.Equal(t, []bezier.Point{
		{X: 10, Y: -190},
		{X: 60, Y: -20},
		{X: 140, Y: -20},
		{X: 190, Y: -190},
	}, cfg.ControlPoints)
	assert.Equal(t, bezier.DefaultStep, cfg.Step)
}

func TestLoad_SVGCircles(t *testing.T) {
	cfg, err := Load("fixtures/circles.svg")
	require.NoError(t, err)
	assert.Equal(t, []bezier.Point{
		{X: 10, Y: -100},
		{X: 100, Y: -10},
		{X: 190, Y: -100},
	}, cfg.ControlPoints)
}

func TestLoad_SVGEmpty(t *testing.T) {
	_, err := Load("fixtures/empty.svg")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no polyline, polygon or circle elements found")
}

func TestLoad_Unsupported(t *testing.T) {
	_, err := Load("fixtures/points.txt")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load("fixtures/does-not-exist.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not read config")
}

func TestParsePointList(t *testing.T) {
	points, err := parsePointList("0,0 1 2,3,4\n5 ,6")
	require.NoError(t, err)
	assert.Equal(t, []bezier.Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}, points)

	_, err = parsePointList("0,0 1")
	assert.EqualError(t, err, "odd number of coordinates (3)")

	_, err = parsePointList("0,zero")
	assert.EqualError(t, err, `invalid coordinate "zero"`)
}

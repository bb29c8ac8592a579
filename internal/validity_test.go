package internal

// This contains no actual tests. It holds helpers for checking sampled curves
// and comparing paths.

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

// The control points of bezier.DefaultConfig.
func demoPoints() []Point {
	return []Point{
		{100, 100},
		{200, 33},
		{-200, -33},
		{0, -500},
	}
}

func assertPointNear(t *testing.T, expected, actual Point, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, Tolerance, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, Tolerance, msgAndArgs...)
}

// Every control point and every sample must lie inside the bounds.
func assertBoundsContain(t *testing.T, bounds Rect, controlPoints []Point, path Path) {
	t.Helper()
	for i, p := range controlPoints {
		assert.True(t, bounds.Contains(p), "control point %d %s outside %s", i, p, bounds)
	}
	for i, p := range path {
		assert.True(t, bounds.Contains(p), "sample %d %s outside %s", i, p, bounds)
	}
}

func diff(t *testing.T, want, got interface{}, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, Tolerance)

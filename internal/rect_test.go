package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyRect(t *testing.T) {
	r := EmptyRect()
	assert.True(t, r.IsEmpty())
	assert.Equal(t, 0.0, r.Width())
	assert.Equal(t, 0.0, r.Height())
	assert.False(t, r.Contains(Pt(0, 0)))
	assert.True(t, math.IsInf(r.Min.X, 1))
	assert.True(t, math.IsInf(r.Max.Y, -1))
}

func TestRectInclude(t *testing.T) {
	r := EmptyRect().Include(Pt(1, 2))
	assert.False(t, r.IsEmpty())
	assert.Equal(t, Rect{Min: Pt(1, 2), Max: Pt(1, 2)}, r)

	r = r.Include(Pt(-3, 5)).Include(Pt(4, -1))
	assert.Equal(t, Rect{Min: Pt(-3, -1), Max: Pt(4, 5)}, r)
	assert.Equal(t, 7.0, r.Width())
	assert.Equal(t, 6.0, r.Height())

	// Points on the boundary are contained and change nothing.
	assert.Equal(t, r, r.Include(Pt(-3, 5)))
	assert.True(t, r.Contains(Pt(-3, 5)))
	assert.True(t, r.Contains(Pt(0, 0)))
	assert.False(t, r.Contains(Pt(4.5, 0)))
}

func TestRectUnion(t *testing.T) {
	a := Rect{Min: Pt(0, 0), Max: Pt(1, 1)}
	b := Rect{Min: Pt(-1, 0.5), Max: Pt(0.5, 3)}
	assert.Equal(t, Rect{Min: Pt(-1, 0), Max: Pt(1, 3)}, a.Union(b))
	assert.Equal(t, a, a.Union(EmptyRect()))
	assert.Equal(t, a, EmptyRect().Union(a))
}

func TestRectInflate(t *testing.T) {
	r := Rect{Min: Pt(0, 0), Max: Pt(2, 1)}
	assert.Equal(t, Rect{Min: Pt(-5, -5), Max: Pt(7, 6)}, r.Inflate(5))
	assert.True(t, EmptyRect().Inflate(5).IsEmpty())
}

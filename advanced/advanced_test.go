package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestSample_SinglePoint(t *testing.T) {
	p := Point{X: 7, Y: -7}
	path, bounds := Sample(NewCurve([]Point{p}), 0.01)
	require.Len(t, path, 102)
	for _, q := range path {
		assert.Equal(t, p, q)
	}
	assert.Equal(t, Rect{Min: p, Max: p}, bounds)
}

func TestNewBinomialTable(t *testing.T) {
	table := NewBinomialTable(4)
	assert.Equal(t, []int{1, 4, 6, 4, 1}, table.Row(4))
}

func TestHandleCurvePanicRecover(t *testing.T) {
	sample := func() (err error) {
		defer func() {
			err = HandleCurvePanicRecover(recover())
		}()
		Sample(NewCurve([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}}), 0)
		return nil
	}
	err := sample()
	require.Error(t, err)
	assert.IsType(t, CurveError{}, err)
	assert.EqualError(t, err, "sample step must be positive and finite, got 0")
}

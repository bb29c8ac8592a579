package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run fn behind the same recover boundary ComputeCurve uses.
func recoverCurveError(fn func()) (err error) {
	defer func() {
		err = HandleCurvePanicRecover(recover())
	}()
	fn()
	return nil
}

func TestHandleCurvePanicRecover_EmptyCurve(t *testing.T) {
	err := recoverCurveError(func() {
		NewCurve(nil)
	})
	require.Error(t, err)
	assert.IsType(t, CurveError{}, err)
	assert.EqualError(t, err, "curve needs at least one control point")
}

func TestHandleCurvePanicRecover_FromTable(t *testing.T) {
	err := recoverCurveError(func() {
		NewBinomialTable(2).Row(5)
	})
	assert.EqualError(t, err, "binomial row 5 out of range for degree 2")
}

func TestHandleCurvePanicRecover_NoPanic(t *testing.T) {
	err := recoverCurveError(func() {
		NewCurve(demoPoints()).Eval(0.5)
	})
	assert.NoError(t, err)
}

func TestHandleCurvePanicRecover_RuntimeError(t *testing.T) {
	assert.Panics(t, func() {
		recoverCurveError(func() {
			var points []Point
			_ = points[3]
		})
	})
	assert.Panics(t, func() {
		recoverCurveError(func() {
			panic("not a curve error")
		})
	})
}

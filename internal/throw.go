package internal

import "github.com/pkg/errors"

// Invariant violations deep inside the curve math (a table queried past its
// degree, a negative degree) are programming errors rather than bad input, so
// we panic instead of threading errors through every evaluation. The public
// API recovers and converts to an error.

// CurveError wraps the panics raised by fatalf. Runtime errors are not
// CurveErrors and keep panicking through HandleCurvePanicRecover.
type CurveError struct {
	error
}

func (e CurveError) Unwrap() error {
	return e.error
}

// Panic with a CurveError.
func fatalf(format string, args ...interface{}) {
	panic(CurveError{errors.Errorf(format, args...)})
}

func HandleCurvePanicRecover(r interface{}) error {
	if r != nil {
		if curveError, ok := r.(CurveError); ok {
			return curveError
		}
		panic(r)
	}
	return nil
}

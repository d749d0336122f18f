package optimize

import (
	"errors"
	"fmt"
)

// Domain errors for root finding.
var (
	// ErrSignChange indicates the bracketing interval has no sign change.
	ErrSignChange = errors.New("optimize: f(a) and f(b) must have different signs")

	// ErrConvergence indicates the iteration limit was hit before the tolerance.
	ErrConvergence = errors.New("optimize: failed to converge")

	// ErrZeroDerivative indicates Newton-Raphson hit a stationary point.
	ErrZeroDerivative = errors.New("optimize: derivative was zero")

	// ErrInvalidGuess indicates the two secant starting points coincide.
	ErrInvalidGuess = errors.New("optimize: x1 and x0 must be different")

	// ErrNotFinite indicates a NaN or Inf starting point or iterate.
	ErrNotFinite = errors.New("optimize: non-finite value encountered")

	// ErrInvalidTolerance indicates a tolerance or iteration limit out of range.
	ErrInvalidTolerance = errors.New("optimize: tolerance or iteration limit out of range")

	// ErrDimension indicates an empty starting point for Solve.
	ErrDimension = errors.New("optimize: starting point has no components")
)

// ConvergenceError wraps a failure with the state the iteration stopped in.
type ConvergenceError struct {
	Method     string
	Iterations int
	Value      float64
	Wrapped    error
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s (%s): gave up after %d iterations, value is %g",
		e.Wrapped.Error(), e.Method, e.Iterations, e.Value)
}

func (e *ConvergenceError) Unwrap() error {
	return e.Wrapped
}

// Kind groups errors the way callers usually react to them.
type Kind int

const (
	KindNone Kind = iota
	// KindConvergence covers iterations that ran but did not settle.
	KindConvergence
	// KindInvalid covers arguments the method cannot start from.
	KindInvalid
	// KindOther is anything not produced by this package.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindConvergence:
		return "convergence"
	case KindInvalid:
		return "invalid"
	default:
		return "other"
	}
}

// Classify reports the Kind of err.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrConvergence), errors.Is(err, ErrZeroDerivative):
		return KindConvergence
	case errors.Is(err, ErrSignChange), errors.Is(err, ErrInvalidGuess),
		errors.Is(err, ErrNotFinite), errors.Is(err, ErrInvalidTolerance),
		errors.Is(err, ErrDimension):
		return KindInvalid
	default:
		return KindOther
	}
}

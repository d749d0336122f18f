package optimize

import "math"

const (
	DefaultNewtonTol     = 1.48e-8
	DefaultNewtonMaxIter = 50

	// secantStep perturbs x0 when no second guess is given.
	secantStep = 1e-4
)

// NewtonSettings configures Newton. The fields present decide the method:
// Fprime set means Newton-Raphson, Fprime nil means secant.
type NewtonSettings struct {
	Fprime func(float64) float64

	// X1 seeds the secant method and is only read when HasX1 is set.
	X1    float64
	HasX1 bool

	Tol     float64
	RTol    float64
	MaxIter int
}

func (s *NewtonSettings) resolve() (NewtonSettings, error) {
	out := NewtonSettings{Tol: DefaultNewtonTol, MaxIter: DefaultNewtonMaxIter}
	if s != nil {
		out.Fprime, out.X1, out.HasX1, out.RTol = s.Fprime, s.X1, s.HasX1, s.RTol
		if s.Tol != 0 {
			out.Tol = s.Tol
		}
		if s.MaxIter != 0 {
			out.MaxIter = s.MaxIter
		}
	}
	if out.Tol <= 0 || out.RTol < 0 || out.MaxIter < 1 {
		return out, ErrInvalidTolerance
	}
	return out, nil
}

// Newton finds a root of f near x0 with Newton-Raphson or the secant method.
func Newton(f func(float64) float64, x0 float64, settings *NewtonSettings) (float64, error) {
	s, err := settings.resolve()
	if err != nil {
		return 0, err
	}
	if !finite(x0) {
		return 0, ErrNotFinite
	}

	if s.Fprime != nil {
		return newtonRaphson(f, x0, s)
	}
	return secant(f, x0, s)
}

func newtonRaphson(f func(float64) float64, x0 float64, s NewtonSettings) (float64, error) {
	p0 := x0
	for i := 0; i < s.MaxIter; i++ {
		fval := f(p0)
		if fval == 0 {
			return p0, nil
		}
		fder := s.Fprime(p0)
		if fder == 0 {
			return p0, &ConvergenceError{Method: "newton", Iterations: i + 1, Value: p0, Wrapped: ErrZeroDerivative}
		}
		p := p0 - fval/fder
		if !finite(p) {
			return p0, &ConvergenceError{Method: "newton", Iterations: i + 1, Value: p, Wrapped: ErrNotFinite}
		}
		if isClose(p, p0, s.RTol, s.Tol) {
			return p, nil
		}
		p0 = p
	}
	return p0, &ConvergenceError{Method: "newton", Iterations: s.MaxIter, Value: p0, Wrapped: ErrConvergence}
}

func secant(f func(float64) float64, x0 float64, s NewtonSettings) (float64, error) {
	p0 := x0
	var p1 float64
	if s.HasX1 {
		if s.X1 == x0 {
			return 0, ErrInvalidGuess
		}
		if !finite(s.X1) {
			return 0, ErrNotFinite
		}
		p1 = s.X1
	} else {
		p1 = x0 * (1 + secantStep)
		if p1 >= 0 {
			p1 += secantStep
		} else {
			p1 -= secantStep
		}
	}

	q0, q1 := f(p0), f(p1)
	if math.Abs(q1) < math.Abs(q0) {
		p0, p1, q0, q1 = p1, p0, q1, q0
	}

	var p float64
	for i := 0; i < s.MaxIter; i++ {
		if q1 == q0 {
			if p1 != p0 {
				return (p1 + p0) / 2, &ConvergenceError{Method: "secant", Iterations: i + 1, Value: p1 - p0, Wrapped: ErrConvergence}
			}
			return (p1 + p0) / 2, nil
		}
		if math.Abs(q1) > math.Abs(q0) {
			p = (-q0/q1*p1 + p0) / (1 - q0/q1)
		} else {
			p = (-q1/q0*p0 + p1) / (1 - q1/q0)
		}
		if !finite(p) {
			return p1, &ConvergenceError{Method: "secant", Iterations: i + 1, Value: p, Wrapped: ErrNotFinite}
		}
		if isClose(p, p1, s.RTol, s.Tol) {
			return p, nil
		}
		p0, q0 = p1, q1
		p1 = p
		q1 = f(p1)
	}
	return p, &ConvergenceError{Method: "secant", Iterations: s.MaxIter, Value: p, Wrapped: ErrConvergence}
}

func isClose(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

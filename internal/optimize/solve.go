package optimize

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	gonumopt "gonum.org/v1/gonum/optimize"
)

const (
	DefaultSolveTol     = 1e-8
	DefaultSolveMaxIter = 200
)

// VectorFunc writes F(x) into dst. len(dst) == len(x).
type VectorFunc func(dst, x []float64)

// SolveSettings tunes Solve. Zero fields take the defaults above.
type SolveSettings struct {
	// Tol bounds the largest residual component accepted as a root.
	Tol     float64
	MaxIter int
}

func (s *SolveSettings) resolve() (SolveSettings, error) {
	out := SolveSettings{Tol: DefaultSolveTol, MaxIter: DefaultSolveMaxIter}
	if s != nil {
		if s.Tol != 0 {
			out.Tol = s.Tol
		}
		if s.MaxIter != 0 {
			out.MaxIter = s.MaxIter
		}
	}
	if out.Tol <= 0 || out.MaxIter < 1 {
		return out, ErrInvalidTolerance
	}
	return out, nil
}

// Solve finds x with F(x) = 0 starting from x0. The system must be square.
//
// It minimises ½‖F(x)‖² with BFGS, taking the gradient Jᵀ F from a central
// finite-difference Jacobian. A minimum that is not a root is reported as
// ErrConvergence.
func Solve(fn VectorFunc, x0 []float64, settings *SolveSettings) ([]float64, error) {
	s, err := settings.resolve()
	if err != nil {
		return nil, err
	}
	n := len(x0)
	if n == 0 {
		return nil, ErrDimension
	}
	for _, v := range x0 {
		if !finite(v) {
			return nil, ErrNotFinite
		}
	}

	resid := make([]float64, n)
	jac := mat.NewDense(n, n, nil)
	jacSettings := &fd.JacobianSettings{Formula: fd.Central}

	problem := gonumopt.Problem{
		Func: func(x []float64) float64 {
			fn(resid, x)
			return 0.5 * floats.Dot(resid, resid)
		},
		Grad: func(grad, x []float64) {
			fn(resid, x)
			fd.Jacobian(jac, fn, x, jacSettings)
			for j := range grad {
				grad[j] = 0
				for i := 0; i < n; i++ {
					grad[j] += jac.At(i, j) * resid[i]
				}
			}
		},
	}

	start := make([]float64, n)
	copy(start, x0)
	result, err := gonumopt.Minimize(problem, start, &gonumopt.Settings{MajorIterations: s.MaxIter}, &gonumopt.BFGS{})
	if result == nil {
		return nil, &ConvergenceError{Method: "solve", Value: x0[0], Wrapped: fmt.Errorf("%w: %v", ErrConvergence, err)}
	}

	x := result.X
	fn(resid, x)
	if !finite(floats.Sum(resid)) {
		return x, &ConvergenceError{Method: "solve", Iterations: result.Stats.MajorIterations, Value: x[0], Wrapped: ErrNotFinite}
	}
	if floats.Norm(resid, math.Inf(1)) > s.Tol {
		wrapped := ErrConvergence
		if err != nil {
			wrapped = fmt.Errorf("%w: %v", ErrConvergence, err)
		}
		return x, &ConvergenceError{Method: "solve", Iterations: result.Stats.MajorIterations, Value: x[0], Wrapped: wrapped}
	}
	return x, nil
}

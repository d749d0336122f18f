package optimize

import "math"

const (
	DefaultBisectXTol    = 2e-12
	DefaultBisectRTol    = 4 * 2.220446049250313e-16
	DefaultBisectMaxIter = 100
)

// BisectSettings tunes Bisect. Zero fields take the defaults above.
type BisectSettings struct {
	XTol    float64
	RTol    float64
	MaxIter int
}

func (s *BisectSettings) resolve() (BisectSettings, error) {
	out := BisectSettings{XTol: DefaultBisectXTol, RTol: DefaultBisectRTol, MaxIter: DefaultBisectMaxIter}
	if s != nil {
		if s.XTol != 0 {
			out.XTol = s.XTol
		}
		if s.RTol != 0 {
			out.RTol = s.RTol
		}
		if s.MaxIter != 0 {
			out.MaxIter = s.MaxIter
		}
	}
	if out.XTol <= 0 || out.RTol < DefaultBisectRTol || out.MaxIter < 0 {
		return out, ErrInvalidTolerance
	}
	return out, nil
}

// Bisect finds a root of f in the interval bounded by a and b.
// The interval may be given in either order but f must change sign over it.
func Bisect(f func(float64) float64, a, b float64, settings *BisectSettings) (float64, error) {
	s, err := settings.resolve()
	if err != nil {
		return 0, err
	}
	if !finite(a) || !finite(b) {
		return 0, ErrNotFinite
	}

	fa, fb := f(a), f(b)
	if fa*fb > 0 {
		return 0, ErrSignChange
	}
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}

	xa, dm := a, b-a
	xm := xa
	for i := 0; i < s.MaxIter; i++ {
		dm *= 0.5
		xm = xa + dm
		fm := f(xm)
		if fm*fa >= 0 {
			xa = xm
		}
		if fm == 0 || math.Abs(dm) < s.XTol+s.RTol*math.Abs(xm) {
			return xm, nil
		}
	}

	return xm, &ConvergenceError{Method: "bisect", Iterations: s.MaxIter, Value: xm, Wrapped: ErrConvergence}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

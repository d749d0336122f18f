package viz

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultMargin pads plotting intervals on both sides.
const DefaultMargin = 0.5

// Interval returns [min(values)-margin, max(values)+margin]. The order of
// values does not matter; with no values it is centred on zero.
func Interval(margin float64, values ...float64) (lo, hi float64) {
	if len(values) == 0 {
		return -margin, margin
	}
	lo, hi = floats.Min(values), floats.Max(values)
	return lo - margin, hi + margin
}

// span orders lo and hi and widens a degenerate range.
func span(lo, hi float64) (float64, float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return lo, hi
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Package target holds the function whose root the demo hunts for.
package target

// Expr is the printable form of F.
const Expr = "x³ - x - 2"

// F is f(x) = x³ - x - 2. Its only real root is near 1.52138.
func F(x float64) float64 {
	return x*x*x - x - 2
}

// DF is the derivative 3x² - 1.
func DF(x float64) float64 {
	return 3*x*x - 1
}

// Vector evaluates F component-wise, the form the generic solver expects.
func Vector(dst, x []float64) {
	for i, xi := range x {
		dst[i] = F(xi)
	}
}

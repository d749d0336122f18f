// Package optimize provides scalar and vector root finders.
//
// The package exposes three entry points:
//
//   - [Bisect]: bracketing bisection on an interval with a sign change
//   - [Newton]: Newton-Raphson when a derivative is supplied, secant otherwise
//   - [Solve]: generic solver for F(x) = 0 in any dimension
//
// [Newton] selects its method from the settings it is given rather than from
// an explicit method name: a non-nil Fprime selects Newton-Raphson, a nil
// Fprime selects the secant method, seeded with X1 when HasX1 is set.
//
// # Errors
//
// Failures are reported through the sentinel errors in this package. Use
// [Classify] to tell a convergence failure from an invalid argument.
//
// # Example
//
//	root, err := optimize.Newton(f, 1.5, &optimize.NewtonSettings{Fprime: df})
//	if errors.Is(err, optimize.ErrConvergence) {
//		// try another starting point
//	}
package optimize

package optimize_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rootlab/internal/optimize"
	"github.com/san-kum/rootlab/internal/target"
)

const cubicRoot = 1.5213797068045676

func noRealRoot(x float64) float64 { return x*x + 1 }

var _ = Describe("Newton", func() {
	Context("with a derivative", func() {
		It("converges to the cubic root from 1.5", func() {
			root, err := optimize.Newton(target.F, 1.5, &optimize.NewtonSettings{Fprime: target.DF})
			Expect(err).NotTo(HaveOccurred())
			Expect(root).To(BeNumerically("~", cubicRoot, 1e-8))
		})

		It("agrees with bisection to four decimals", func() {
			bis, err := optimize.Bisect(target.F, 1, 2, nil)
			Expect(err).NotTo(HaveOccurred())
			nr, err := optimize.Newton(target.F, 1.5, &optimize.NewtonSettings{Fprime: target.DF})
			Expect(err).NotTo(HaveOccurred())
			Expect(math.Round(nr*1e4)).To(Equal(math.Round(bis * 1e4)))
		})

		It("reports a zero derivative", func() {
			_, err := optimize.Newton(noRealRoot, 0, &optimize.NewtonSettings{
				Fprime: func(x float64) float64 { return 2 * x },
			})
			Expect(err).To(MatchError(optimize.ErrZeroDerivative))
			Expect(optimize.Classify(err)).To(Equal(optimize.KindConvergence))
		})

		It("gives up after MaxIter", func() {
			_, err := optimize.Newton(noRealRoot, 0.5, &optimize.NewtonSettings{
				Fprime:  func(x float64) float64 { return 2 * x },
				MaxIter: 5,
			})
			Expect(err).To(MatchError(optimize.ErrConvergence))

			var ce *optimize.ConvergenceError
			Expect(err).To(BeAssignableToTypeOf(ce))
			ce = err.(*optimize.ConvergenceError)
			Expect(ce.Iterations).To(Equal(5))
			Expect(ce.Method).To(Equal("newton"))
		})
	})

	Context("without a derivative", func() {
		It("runs the secant method from two guesses", func() {
			root, err := optimize.Newton(target.F, 1.5, &optimize.NewtonSettings{X1: 2.0, HasX1: true})
			Expect(err).NotTo(HaveOccurred())

			bis, err := optimize.Bisect(target.F, 1, 2, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(root).To(BeNumerically("~", bis, 1e-4))
		})

		It("perturbs x0 when no second guess is given", func() {
			root, err := optimize.Newton(target.F, 1.5, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(root).To(BeNumerically("~", cubicRoot, 1e-6))
		})

		It("rejects identical guesses", func() {
			_, err := optimize.Newton(target.F, 1.5, &optimize.NewtonSettings{X1: 1.5, HasX1: true})
			Expect(err).To(MatchError(optimize.ErrInvalidGuess))
			Expect(optimize.Classify(err)).To(Equal(optimize.KindInvalid))
		})

		It("does not converge on a function with no real root", func() {
			_, err := optimize.Newton(noRealRoot, 0.5, &optimize.NewtonSettings{X1: 1.0, HasX1: true, MaxIter: 5})
			Expect(err).To(HaveOccurred())
			Expect(optimize.Classify(err)).NotTo(Equal(optimize.KindNone))
		})
	})

	It("rejects a non-finite starting point", func() {
		_, err := optimize.Newton(target.F, math.NaN(), nil)
		Expect(err).To(MatchError(optimize.ErrNotFinite))
	})

	It("rejects a negative tolerance", func() {
		_, err := optimize.Newton(target.F, 1.5, &optimize.NewtonSettings{Tol: -1})
		Expect(err).To(MatchError(optimize.ErrInvalidTolerance))
	})
})

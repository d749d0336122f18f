// Package demo runs each root finder on the target function and shows
// where it landed.
package demo

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/san-kum/rootlab/internal/config"
	"github.com/san-kum/rootlab/internal/input"
	"github.com/san-kum/rootlab/internal/optimize"
	"github.com/san-kum/rootlab/internal/target"
	"github.com/san-kum/rootlab/internal/viz"
)

// ErrPanic marks a solver that panicked instead of returning an error.
var ErrPanic = errors.New("demo: solver panicked")

// Solvers are the root finders a Runner calls.
type Solvers struct {
	Bisect func(f func(float64) float64, a, b float64, s *optimize.BisectSettings) (float64, error)
	Newton func(f func(float64) float64, x0 float64, s *optimize.NewtonSettings) (float64, error)
	Solve  func(fn optimize.VectorFunc, x0 []float64, s *optimize.SolveSettings) ([]float64, error)
}

func DefaultSolvers() Solvers {
	return Solvers{Bisect: optimize.Bisect, Newton: optimize.Newton, Solve: optimize.Solve}
}

// ChartExporter saves a chart next to showing it.
type ChartExporter interface {
	Export(c viz.Chart) ([]string, error)
}

// Outcome is what one method produced.
type Outcome struct {
	Method string
	Root   float64
	Err    error
}

func (o Outcome) OK() bool { return o.Err == nil }

// Method is one solver attempt: how to call it, which values frame its
// chart and what to print when it fails.
type Method struct {
	Name   string
	Header string
	Solve  func() (float64, error)
	// Frame holds the inputs the chart must keep in view besides the root.
	Frame    []float64
	Messages map[optimize.Kind]string
	// Unexpected prefixes errors not covered by Messages.
	Unexpected string
}

type Runner struct {
	Out      io.Writer
	Viewer   viz.Viewer
	Exporter ChartExporter
	Config   *config.Config
	Styles   viz.Styles
	Solvers  Solvers
}

func NewRunner(out io.Writer, viewer viz.Viewer, cfg *config.Config) *Runner {
	return &Runner{
		Out:     out,
		Viewer:  viewer,
		Config:  cfg,
		Styles:  viz.NewStyles(viz.GetTheme(cfg.Plot.Theme)),
		Solvers: DefaultSolvers(),
	}
}

// Methods lists the four attempts in the order they run.
func (r *Runner) Methods(v input.Values) []Method {
	cfg := r.Config
	return []Method{
		{
			Name:   "Bisection",
			Header: "[Bisection method - optimize.Bisect]",
			Solve: func() (float64, error) {
				return r.Solvers.Bisect(target.F, v.A, v.B, cfg.BisectSettings())
			},
			Frame: []float64{v.A, v.B},
			Messages: map[optimize.Kind]string{
				optimize.KindInvalid: "Error: bisection failed.",
			},
			Unexpected: "Unexpected error in bisection:",
		},
		{
			Name:   "Newton-Raphson",
			Header: "[Newton-Raphson method - optimize.Newton with Fprime]",
			Solve: func() (float64, error) {
				s := cfg.NewtonSettings()
				s.Fprime = target.DF
				return r.Solvers.Newton(target.F, v.X0, &s)
			},
			Frame: []float64{v.X0},
			Messages: map[optimize.Kind]string{
				optimize.KindConvergence: "Error: Newton-Raphson failed to converge.",
				optimize.KindInvalid:     "Value error in Newton-Raphson:",
			},
			Unexpected: "Unexpected error in Newton-Raphson:",
		},
		{
			Name:   "Secant",
			Header: "[Secant method - optimize.Newton without Fprime]",
			Solve: func() (float64, error) {
				s := cfg.NewtonSettings()
				s.X1, s.HasX1 = v.X1, true
				return r.Solvers.Newton(target.F, v.X0, &s)
			},
			Frame: []float64{v.X0, v.X1},
			Messages: map[optimize.Kind]string{
				optimize.KindConvergence: "Error: secant method failed to converge.",
				optimize.KindInvalid:     "Value error in secant method:",
			},
			Unexpected: "Unexpected error in secant method:",
		},
		{
			Name:   "Generic solver",
			Header: "[Generic solver - optimize.Solve]",
			Solve: func() (float64, error) {
				x, err := r.Solvers.Solve(target.Vector, []float64{v.X0}, cfg.SolveSettings())
				if len(x) == 0 {
					return 0, err
				}
				return x[0], err
			},
			Frame: []float64{v.X0},
			Messages: map[optimize.Kind]string{
				optimize.KindConvergence: "Error: generic solver failed to converge.",
			},
			Unexpected: "Unexpected error in generic solver:",
		},
	}
}

// Run tries every method, then shows the overview chart. A failing method
// is reported and the next one runs regardless.
func (r *Runner) Run(v input.Values) []Outcome {
	fmt.Fprintln(r.Out, r.Styles.Title.Render("\n--- Demonstration: numerical methods ---"))

	methods := r.Methods(v)
	outcomes := make([]Outcome, 0, len(methods))
	for _, m := range methods {
		outcomes = append(outcomes, r.attempt(m))
	}

	fmt.Fprintln(r.Out, r.Styles.Section.Render("\nOverview chart of the function (default interval):"))
	r.show(viz.Chart{
		Title:   "f(x) = " + target.Expr,
		Func:    target.F,
		Lo:      r.Config.Overview.Lo,
		Hi:      r.Config.Overview.Hi,
		Samples: r.Config.Plot.Samples,
	})

	return outcomes
}

func (r *Runner) attempt(m Method) Outcome {
	fmt.Fprintln(r.Out, r.Styles.Section.Render("\n"+m.Header))

	root, err := guard(m.Solve)
	if err != nil {
		fmt.Fprintln(r.Out, r.Styles.Error.Render("   "+failureMessage(m, err)))
		return Outcome{Method: m.Name, Root: root, Err: err}
	}

	fmt.Fprintln(r.Out, r.Styles.Result.Render(fmt.Sprintf("   Root found: %.6f", root)))

	lo, hi := viz.Interval(r.Config.Plot.Margin, append(m.Frame, root)...)
	r.show(viz.Chart{
		Title:   fmt.Sprintf("f(x) = %s | %s", target.Expr, m.Name),
		Func:    target.F,
		Lo:      lo,
		Hi:      hi,
		Samples: r.Config.Plot.Samples,
		Root:    &root,
		Label:   m.Name,
	})
	return Outcome{Method: m.Name, Root: root}
}

// show displays and optionally exports a chart. Chart trouble is printed
// and never ends the run.
func (r *Runner) show(c viz.Chart) {
	if r.Viewer != nil {
		if err := r.Viewer.Show(c); err != nil {
			fmt.Fprintln(r.Out, r.Styles.Error.Render("   Chart unavailable: "+err.Error()))
		}
	}
	if r.Exporter != nil {
		paths, err := r.Exporter.Export(c)
		for _, p := range paths {
			fmt.Fprintln(r.Out, r.Styles.Hint.Render("   Chart saved: "+p))
		}
		if err != nil {
			fmt.Fprintln(r.Out, r.Styles.Error.Render("   Chart not saved: "+err.Error()))
		}
	}
}

func failureMessage(m Method, err error) string {
	if prefix, ok := m.Messages[optimize.Classify(err)]; ok {
		return fmt.Sprintf("%s %v", prefix, err)
	}
	return fmt.Sprintf("%s %v", m.Unexpected, err)
}

func guard(fn func() (float64, error)) (root float64, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, p)
		}
	}()
	return fn()
}

// Summary prints one row per outcome.
func Summary(w io.Writer, outcomes []Outcome) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tROOT\tF(ROOT)\tSTATUS")
	for _, o := range outcomes {
		if o.OK() {
			fmt.Fprintf(tw, "%s\t%.6f\t%.2e\tok\n", o.Method, o.Root, target.F(o.Root))
		} else {
			fmt.Fprintf(tw, "%s\t-\t-\t%s\n", o.Method, optimize.Classify(o.Err))
		}
	}
	return tw.Flush()
}

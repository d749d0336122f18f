package demo

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/rootlab/internal/config"
	"github.com/san-kum/rootlab/internal/input"
	"github.com/san-kum/rootlab/internal/optimize"
	"github.com/san-kum/rootlab/internal/target"
	"github.com/san-kum/rootlab/internal/viz"
)

type recordingViewer struct {
	charts []viz.Chart
	err    error
}

func (v *recordingViewer) Show(c viz.Chart) error {
	v.charts = append(v.charts, c)
	return v.err
}

func newTestRunner(out *bytes.Buffer) (*Runner, *recordingViewer) {
	viewer := &recordingViewer{}
	return NewRunner(out, viewer, config.DefaultConfig()), viewer
}

func TestRunTextbookInputs(t *testing.T) {
	var out bytes.Buffer
	r, viewer := newTestRunner(&out)

	outcomes := r.Run(input.Values{A: 1, B: 2, X0: 1.5, X1: 2.0})
	if len(outcomes) != 4 {
		t.Fatalf("expected 4 outcomes, got %d", len(outcomes))
	}
	for _, o := range outcomes {
		if !o.OK() {
			t.Errorf("%s failed: %v", o.Method, o.Err)
		}
	}

	bisect := outcomes[0].Root
	if math.Abs(target.F(bisect)) >= 1e-4 {
		t.Errorf("bisection residual too large: %g", target.F(bisect))
	}
	if math.Round(outcomes[1].Root*1e4) != math.Round(bisect*1e4) {
		t.Errorf("newton %.6f and bisection %.6f differ in 4 decimals", outcomes[1].Root, bisect)
	}
	if math.Abs(outcomes[2].Root-bisect) >= 1e-4 {
		t.Errorf("secant %.6f too far from bisection %.6f", outcomes[2].Root, bisect)
	}
	if math.Abs(outcomes[3].Root-bisect) >= 1e-4 {
		t.Errorf("generic %.6f too far from bisection %.6f", outcomes[3].Root, bisect)
	}

	if len(viewer.charts) != 5 {
		t.Fatalf("expected 4 method charts and the overview, got %d", len(viewer.charts))
	}
	overview := viewer.charts[4]
	if overview.Root != nil || overview.Lo != 0 || overview.Hi != 3 {
		t.Errorf("unexpected overview chart %+v", overview)
	}

	if got := strings.Count(out.String(), "Root found: 1.521380"); got != 4 {
		t.Errorf("expected 4 result lines, got %d:\n%s", got, out.String())
	}
}

func TestRunChartFramesInputsAndRoot(t *testing.T) {
	var out bytes.Buffer
	r, viewer := newTestRunner(&out)

	r.Run(input.Values{A: 2, B: -1, X0: 3, X1: 4})

	for _, c := range viewer.charts[:len(viewer.charts)-1] {
		if c.Root == nil {
			t.Fatalf("%s: chart without root", c.Title)
		}
		if *c.Root < c.Lo || *c.Root > c.Hi {
			t.Errorf("%s: root %.4f outside [%.2f, %.2f]", c.Title, *c.Root, c.Lo, c.Hi)
		}
	}

	bis := viewer.charts[0]
	if bis.Lo != -1.5 || bis.Hi != 2.5 {
		t.Errorf("bisection chart should span inputs padded by margin, got [%v, %v]", bis.Lo, bis.Hi)
	}
	sec := viewer.charts[2]
	if sec.Hi != 4.5 {
		t.Errorf("secant chart should include x1, got hi %v", sec.Hi)
	}
}

func TestRunContinuesAfterFailures(t *testing.T) {
	var out bytes.Buffer
	r, viewer := newTestRunner(&out)

	// no sign change, identical secant guesses
	outcomes := r.Run(input.Values{A: 2, B: 3, X0: 1.5, X1: 1.5})

	if !errors.Is(outcomes[0].Err, optimize.ErrSignChange) {
		t.Errorf("expected sign change error, got %v", outcomes[0].Err)
	}
	if !outcomes[1].OK() {
		t.Errorf("newton should still run and succeed: %v", outcomes[1].Err)
	}
	if !errors.Is(outcomes[2].Err, optimize.ErrInvalidGuess) {
		t.Errorf("expected invalid guess error, got %v", outcomes[2].Err)
	}
	if !outcomes[3].OK() {
		t.Errorf("generic solver should still run: %v", outcomes[3].Err)
	}

	text := out.String()
	if !strings.Contains(text, "Error: bisection failed.") {
		t.Error("missing bisection failure message")
	}
	if !strings.Contains(text, "Value error in secant method:") {
		t.Error("missing secant failure message")
	}
	// two successful methods plus the overview
	if len(viewer.charts) != 3 {
		t.Errorf("expected 3 charts, got %d", len(viewer.charts))
	}
}

func TestRunReportsNonConvergence(t *testing.T) {
	var out bytes.Buffer
	r, _ := newTestRunner(&out)
	r.Config.Solvers.Newton.MaxIter = 1

	outcomes := r.Run(input.Values{A: 1, B: 2, X0: 10, X1: 20})
	if optimize.Classify(outcomes[1].Err) != optimize.KindConvergence {
		t.Errorf("expected newton convergence failure, got %v", outcomes[1].Err)
	}
	if !strings.Contains(out.String(), "Error: Newton-Raphson failed to converge.") {
		t.Error("missing newton convergence message")
	}
}

func TestRunRecoversFromPanic(t *testing.T) {
	var out bytes.Buffer
	r, _ := newTestRunner(&out)
	r.Solvers.Bisect = func(func(float64) float64, float64, float64, *optimize.BisectSettings) (float64, error) {
		panic("boom")
	}

	outcomes := r.Run(input.Values{A: 1, B: 2, X0: 1.5, X1: 2})
	if !errors.Is(outcomes[0].Err, ErrPanic) {
		t.Errorf("expected ErrPanic, got %v", outcomes[0].Err)
	}
	if !strings.Contains(out.String(), "Unexpected error in bisection:") {
		t.Error("missing unexpected error message")
	}
	for _, o := range outcomes[1:] {
		if !o.OK() {
			t.Errorf("%s should not be affected: %v", o.Method, o.Err)
		}
	}
}

func TestRunViewerErrorDoesNotStop(t *testing.T) {
	var out bytes.Buffer
	r, viewer := newTestRunner(&out)
	viewer.err = errors.New("no terminal")

	outcomes := r.Run(input.Values{A: 1, B: 2, X0: 1.5, X1: 2})
	if len(outcomes) != 4 || len(viewer.charts) != 5 {
		t.Fatalf("run stopped early: %d outcomes, %d charts", len(outcomes), len(viewer.charts))
	}
	if !strings.Contains(out.String(), "Chart unavailable: no terminal") {
		t.Error("viewer error not reported")
	}
}

type fakeExporter struct{ calls int }

func (e *fakeExporter) Export(c viz.Chart) ([]string, error) {
	e.calls++
	return []string{c.Title + ".png"}, nil
}

func TestRunExportsCharts(t *testing.T) {
	var out bytes.Buffer
	r, _ := newTestRunner(&out)
	exp := &fakeExporter{}
	r.Exporter = exp

	r.Run(input.Values{A: 1, B: 2, X0: 1.5, X1: 2})
	if exp.calls != 5 {
		t.Errorf("expected 5 exports, got %d", exp.calls)
	}
	if !strings.Contains(out.String(), "Chart saved:") {
		t.Error("export paths not printed")
	}
}

func TestSessionInvalidInputCallsNoSolver(t *testing.T) {
	var out bytes.Buffer
	r, viewer := newTestRunner(&out)

	calls := 0
	r.Solvers = Solvers{
		Bisect: func(func(float64) float64, float64, float64, *optimize.BisectSettings) (float64, error) {
			calls++
			return 0, nil
		},
		Newton: func(func(float64) float64, float64, *optimize.NewtonSettings) (float64, error) {
			calls++
			return 0, nil
		},
		Solve: func(optimize.VectorFunc, []float64, *optimize.SolveSettings) ([]float64, error) {
			calls++
			return []float64{0}, nil
		},
	}

	outcomes, err := r.Session(strings.NewReader("1\nabc\n1.5\n2\n"))
	if !errors.Is(err, input.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if outcomes != nil || calls != 0 || len(viewer.charts) != 0 {
		t.Errorf("session should stop: outcomes=%v calls=%d charts=%d", outcomes, calls, len(viewer.charts))
	}
	if !strings.Contains(out.String(), InvalidInputMessage) {
		t.Error("missing invalid input message")
	}
}

func TestSessionValidInput(t *testing.T) {
	var out bytes.Buffer
	r, _ := newTestRunner(&out)

	outcomes, err := r.Session(strings.NewReader("1\n2\n1.5\n2.0\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outcomes) != 4 {
		t.Errorf("expected 4 outcomes, got %d", len(outcomes))
	}
	if !strings.Contains(out.String(), target.Expr) {
		t.Error("function banner missing")
	}
}

func TestSummary(t *testing.T) {
	var out bytes.Buffer
	err := Summary(&out, []Outcome{
		{Method: "Bisection", Root: 1.5213797},
		{Method: "Secant", Err: optimize.ErrInvalidGuess},
	})
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "1.521380") || !strings.Contains(text, "invalid") {
		t.Errorf("unexpected summary:\n%s", text)
	}
}

package viz

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/floats"
)

// DefaultSamples is the number of points f is evaluated at.
const DefaultSamples = 400

// ErrNoData is returned when a chart has nothing finite to draw.
var ErrNoData = errors.New("viz: no finite samples to plot")

// Chart is a line plot of Func over [Lo, Hi], optionally marking Root.
type Chart struct {
	Title   string
	Func    func(float64) float64
	Lo, Hi  float64
	Samples int

	// Root is nil for charts without a highlighted root.
	Root  *float64
	Label string
}

// Sample evaluates Func on an evenly spaced grid over the chart interval.
func (c Chart) Sample() (xs, ys []float64, err error) {
	lo, hi := span(c.Lo, c.Hi)
	if !finite(lo) || !finite(hi) {
		return nil, nil, ErrNoData
	}
	n := c.Samples
	if n < 2 {
		n = DefaultSamples
	}
	xs = floats.Span(make([]float64, n), lo, hi)
	ys = make([]float64, n)
	for i, x := range xs {
		ys[i] = c.Func(x)
	}
	return xs, ys, nil
}

// HasRoot reports whether the chart carries a drawable root.
func (c Chart) HasRoot() bool {
	return c.Root != nil && finite(*c.Root)
}

// Legend describes the root marker, or is empty without one.
func (c Chart) Legend() string {
	if !c.HasRoot() {
		return ""
	}
	r := *c.Root
	name := "Root found"
	if c.Label != "" {
		name = fmt.Sprintf("Root found (%s)", c.Label)
	}
	return fmt.Sprintf("%s: x = %.6f, f(x) = %.2e", name, r, c.Func(r))
}

// yRange spans the finite samples and the zero line.
func yRange(ys []float64) (lo, hi float64, ok bool) {
	lo, hi = 0, 0
	for _, y := range ys {
		if !finite(y) {
			continue
		}
		ok = true
		lo, hi = math.Min(lo, y), math.Max(hi, y)
	}
	lo, hi = span(lo, hi)
	return lo, hi, ok
}

// layers draws the chart into three canvases of w x h cells: zero axis,
// curve and root guide.
type layers struct {
	axis, curve, root *Canvas
	xlo, xhi          float64
	ylo, yhi          float64
}

func (c Chart) draw(w, h int) (*layers, error) {
	xs, ys, err := c.Sample()
	if err != nil {
		return nil, err
	}
	ylo, yhi, ok := yRange(ys)
	if !ok {
		return nil, ErrNoData
	}

	l := &layers{
		axis:  NewCanvas(w, h),
		curve: NewCanvas(w, h),
		root:  NewCanvas(w, h),
		xlo:   xs[0],
		xhi:   xs[len(xs)-1],
		ylo:   ylo,
		yhi:   yhi,
	}

	l.axis.DashH(l.py(0), 2, 2)

	havePrev := false
	var px0, py0 int
	for i := range xs {
		if !finite(ys[i]) {
			havePrev = false
			continue
		}
		px, py := l.px(xs[i]), l.py(ys[i])
		if havePrev {
			l.curve.DrawLine(px0, py0, px, py)
		} else {
			l.curve.Set(px, py)
		}
		px0, py0, havePrev = px, py, true
	}

	if c.HasRoot() {
		r := *c.Root
		rx := l.px(r)
		l.root.DashV(rx, 1, 2)
		if fy := c.Func(r); finite(fy) {
			ry := l.py(fy)
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					l.root.Set(rx+dx, ry+dy)
				}
			}
		}
	}
	return l, nil
}

func (l *layers) px(x float64) int {
	t := (x - l.xlo) / (l.xhi - l.xlo)
	return int(math.Round(clampUnit(t) * float64(l.curve.DotsX()-1)))
}

func (l *layers) py(y float64) int {
	t := (l.yhi - y) / (l.yhi - l.ylo)
	return int(math.Round(clampUnit(t) * float64(l.curve.DotsY()-1)))
}

func clampUnit(t float64) float64 {
	return math.Max(-0.01, math.Min(1.01, t))
}

// Render draws the chart as w x h braille cells with axis labels.
func (c Chart) Render(w, h int, theme Theme) (string, error) {
	const labelWidth = 10
	plotW := w - labelWidth - 1
	if plotW < 8 {
		plotW = 8
	}
	if h < 4 {
		h = 4
	}

	l, err := c.draw(plotW, h)
	if err != nil {
		return "", err
	}

	axisStyle := lipgloss.NewStyle().Foreground(theme.Muted)
	curveStyle := lipgloss.NewStyle().Foreground(theme.Curve)
	rootStyle := lipgloss.NewStyle().Foreground(theme.Root).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(theme.Muted).Width(labelWidth).Align(lipgloss.Right)

	var b strings.Builder
	for row := 0; row < h; row++ {
		label := ""
		switch row {
		case 0:
			label = formatTick(l.yhi)
		case h / 2:
			label = formatTick((l.yhi + l.ylo) / 2)
		case h - 1:
			label = formatTick(l.ylo)
		}
		b.WriteString(labelStyle.Render(label) + " ")

		for col := 0; col < plotW; col++ {
			cell := l.axis.Grid[row][col] | l.curve.Grid[row][col] | l.root.Grid[row][col]
			switch {
			case !l.root.Blank(row, col):
				b.WriteString(rootStyle.Render(string(cell)))
			case !l.curve.Blank(row, col):
				b.WriteString(curveStyle.Render(string(cell)))
			case !l.axis.Blank(row, col):
				b.WriteString(axisStyle.Render(string(cell)))
			default:
				b.WriteRune(cell)
			}
		}
		b.WriteByte('\n')
	}

	lo, hi := formatTick(l.xlo), formatTick(l.xhi)
	gap := plotW - len(lo) - len(hi)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(strings.Repeat(" ", labelWidth+1))
	b.WriteString(axisStyle.Render(lo + strings.Repeat(" ", gap) + hi))
	return b.String(), nil
}

func formatTick(v float64) string {
	if v != 0 && (math.Abs(v) >= 1e5 || math.Abs(v) < 1e-3) {
		return fmt.Sprintf("%.2e", v)
	}
	return fmt.Sprintf("%.3f", v)
}

package viz

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/guptarohit/asciigraph"
)

// InlineViewer prints charts with asciigraph and returns immediately.
type InlineViewer struct {
	Out    io.Writer
	Width  int
	Height int
}

func NewInlineViewer(out io.Writer, width, height int) *InlineViewer {
	return &InlineViewer{Out: out, Width: width, Height: height}
}

func (v *InlineViewer) Show(c Chart) error {
	graph, err := PlotASCII(c, v.Width, v.Height)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(v.Out, graph)
	return err
}

// PlotASCII renders the chart with asciigraph: f and the zero line, a caret
// ruler under the root column and the legend as caption.
func PlotASCII(c Chart, width, height int) (string, error) {
	if width < 10 {
		width = 60
	}
	if height < 3 {
		height = 12
	}

	xs, ys, err := c.Sample()
	if err != nil {
		return "", err
	}
	if _, _, ok := yRange(ys); !ok {
		return "", ErrNoData
	}

	zero := make([]float64, len(ys))
	clean := make([]float64, len(ys))
	for i, y := range ys {
		clean[i] = y
		if !finite(y) {
			clean[i] = math.NaN()
		}
	}

	caption := c.Title
	if l := c.Legend(); l != "" {
		caption += " | " + l
	}

	graph := asciigraph.PlotMany([][]float64{clean, zero},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(3),
		asciigraph.SeriesColors(asciigraph.Default, asciigraph.DarkGray),
		asciigraph.Caption(caption),
	)

	if !c.HasRoot() {
		return graph, nil
	}

	axis := axisColumn(graph)
	if axis < 0 {
		return graph, nil
	}
	lo, hi := xs[0], xs[len(xs)-1]
	t := (*c.Root - lo) / (hi - lo)
	if t < 0 || t > 1 {
		return graph, nil
	}
	col := axis + 1 + int(math.Round(t*float64(width-1)))

	lines := strings.Split(graph, "\n")
	ruler := strings.Repeat(" ", col) + "▲ root"
	// the caption is the last line; the ruler goes right above it
	out := append([]string{}, lines[:len(lines)-1]...)
	out = append(out, ruler, lines[len(lines)-1])
	return strings.Join(out, "\n"), nil
}

// axisColumn finds the rune column of the y axis in a rendered graph.
func axisColumn(graph string) int {
	for _, line := range strings.Split(graph, "\n") {
		plain := []rune(ansi.Strip(line))
		for i, r := range plain {
			if r == '┤' || r == '┼' {
				return i
			}
		}
	}
	return -1
}

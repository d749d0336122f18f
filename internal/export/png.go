package export

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/san-kum/rootlab/internal/viz"
)

// Plot builds a gonum plot of the chart: f, the zero line and the root.
func Plot(c viz.Chart) (*plot.Plot, error) {
	xs, ys, err := c.Sample()
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, 0, len(xs))
	for i, x := range xs {
		if finite(ys[i]) {
			pts = append(pts, plotter.XY{X: x, Y: ys[i]})
		}
	}
	if len(pts) < 2 {
		return nil, viz.ErrNoData
	}

	zero, err := plotter.NewLine(plotter.XYs{{X: xs[0], Y: 0}, {X: xs[len(xs)-1], Y: 0}})
	if err != nil {
		return nil, err
	}
	zero.LineStyle.Color = color.Gray{Y: 128}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(zero)

	curve, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	curve.LineStyle.Width = vg.Points(1.5)
	curve.LineStyle.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	p.Add(curve)
	p.Legend.Add("f(x)", curve)

	if c.HasRoot() {
		r := *c.Root
		lo, hi := p.Y.Min, p.Y.Max
		guide, err := plotter.NewLine(plotter.XYs{{X: r, Y: lo}, {X: r, Y: hi}})
		if err != nil {
			return nil, err
		}
		guide.LineStyle.Color = color.RGBA{R: 255, A: 255}
		guide.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
		p.Add(guide)

		if fr := c.Func(r); finite(fr) {
			marker, err := plotter.NewScatter(plotter.XYs{{X: r, Y: fr}})
			if err != nil {
				return nil, err
			}
			marker.GlyphStyle.Shape = draw.CircleGlyph{}
			marker.GlyphStyle.Radius = vg.Points(4)
			marker.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
			p.Add(marker)
			p.Legend.Add(rootLabel(c), marker)
		}
	}

	return p, nil
}

// WritePNG saves the chart as an image of the given size in inches.
func WritePNG(path string, c viz.Chart, width, height float64) error {
	p, err := Plot(c)
	if err != nil {
		return err
	}
	return p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, path)
}

func rootLabel(c viz.Chart) string {
	if c.Label == "" {
		return "root"
	}
	return "root (" + c.Label + ")"
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

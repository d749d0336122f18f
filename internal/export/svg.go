package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/rootlab/internal/viz"
)

// ChartToSVG draws the chart as an SVG polyline with the zero line and,
// when present, a dotted guide and marker at the root.
func ChartToSVG(c viz.Chart, width, height int) (string, error) {
	xs, ys, err := c.Sample()
	if err != nil {
		return "", err
	}

	minX, maxX := xs[0], xs[len(xs)-1]
	minY, maxY := 0.0, 0.0
	for _, y := range ys {
		if !finite(y) {
			continue
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	// Add padding
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeX := maxX - minX
	rangeY = maxY - minY

	sx := func(x float64) float64 { return (x - minX) / rangeX * float64(width) }
	sy := func(y float64) float64 { return float64(height) - (y-minY)/rangeY*float64(height) }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<title>%s</title>
`, width, height, width, height, escape(c.Title)))

	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#808080" stroke-dasharray="4 4"/>
`, sy(0), width, sy(0)))

	sb.WriteString(`<path fill="none" stroke="#1f77b4" stroke-width="1.5" d="`)
	pen := "M"
	for i, x := range xs {
		if !finite(ys[i]) {
			pen = "M"
			continue
		}
		sb.WriteString(fmt.Sprintf("%s%.1f,%.1f ", pen, sx(x), sy(ys[i])))
		pen = "L"
	}
	sb.WriteString("\"/>\n")

	if c.HasRoot() {
		r := *c.Root
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%d" stroke="#ff0000" stroke-dasharray="1 3"/>
`, sx(r), sx(r), height))
		if fr := c.Func(r); finite(fr) {
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="5" fill="#ff0000"><title>%s</title></circle>
`, sx(r), sy(fr), escape(c.Legend())))
		}
	}

	sb.WriteString("</svg>")
	return sb.String(), nil
}

// WriteSVG renders the chart and writes it to path.
func WriteSVG(path string, c viz.Chart, width, height int) error {
	svg, err := ChartToSVG(c, width, height)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(svg), 0644)
}

func escape(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}

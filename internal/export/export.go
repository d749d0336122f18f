// Package export writes charts to image files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/rootlab/internal/viz"
)

// Exporter writes a PNG and an SVG for every chart it is given.
type Exporter struct {
	Dir string
	// PNG size in inches, SVG size in pixels at 96 dpi.
	Width, Height float64
	count         int
}

func New(dir string, width, height float64) *Exporter {
	if width <= 0 {
		width = 8
	}
	if height <= 0 {
		height = 5
	}
	return &Exporter{Dir: dir, Width: width, Height: height}
}

func (e *Exporter) Init() error {
	return os.MkdirAll(e.Dir, 0755)
}

// Export writes the chart and returns the paths it created.
func (e *Exporter) Export(c viz.Chart) ([]string, error) {
	e.count++
	base := filepath.Join(e.Dir, fmt.Sprintf("%02d_%s", e.count, slug(c.Title)))

	pngPath := base + ".png"
	if err := WritePNG(pngPath, c, e.Width, e.Height); err != nil {
		return nil, fmt.Errorf("export png: %w", err)
	}
	svgPath := base + ".svg"
	if err := WriteSVG(svgPath, c, int(e.Width*96), int(e.Height*96)); err != nil {
		return []string{pngPath}, fmt.Errorf("export svg: %w", err)
	}
	return []string{pngPath, svgPath}, nil
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "chart"
	}
	return out
}

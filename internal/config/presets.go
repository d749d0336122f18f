package config

import "sort"

// Presets are plot layouts selectable with --preset. Only the plot section
// of the returned config differs from the defaults.
var Presets = map[string]PlotConfig{
	"compact": {Samples: 200, Margin: 0.5, Width: 60, Height: 14, Theme: "minimal"},
	"wide":    {Samples: 800, Margin: 1.0, Width: 160, Height: 40, Theme: "ocean"},
	"retro":   {Samples: 400, Margin: 0.5, Width: 100, Height: 24, Theme: "retro"},
	"print": {
		Samples: 1000, Margin: 0.5, Width: 100, Height: 24, Theme: "minimal",
		Headless: true, ExportWidth: 10, ExportHeight: 6,
	},
}

// GetPreset returns the defaults with the named plot layout, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	if p.ExportWidth == 0 {
		p.ExportWidth, p.ExportHeight = cfg.Plot.ExportWidth, cfg.Plot.ExportHeight
	}
	cfg.Plot = p
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors used for charts and result lines.
type Theme struct {
	Name    string
	Title   lipgloss.Color
	Curve   lipgloss.Color
	Root    lipgloss.Color
	Border  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Title:   lipgloss.Color("#00ffff"),
		Curve:   lipgloss.Color("#ff00ff"),
		Root:    lipgloss.Color("#ffff00"),
		Border:  lipgloss.Color("#444466"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
		Success: lipgloss.Color("#00ff88"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Title:   lipgloss.Color("#88ff88"),
		Curve:   lipgloss.Color("#00ff00"), // green phosphor
		Root:    lipgloss.Color("#ffff00"),
		Border:  lipgloss.Color("#005500"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#007700"),
		Success: lipgloss.Color("#88ff88"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Title:   lipgloss.Color("#ffffff"),
		Curve:   lipgloss.Color("#0088ff"),
		Root:    lipgloss.Color("#ff0000"),
		Border:  lipgloss.Color("#888888"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Success: lipgloss.Color("#00ff00"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Title:   lipgloss.Color("#00a8cc"),
		Curve:   lipgloss.Color("#0077be"),
		Root:    lipgloss.Color("#ffd700"),
		Border:  lipgloss.Color("#4488aa"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Success: lipgloss.Color("#00ff88"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Title:   lipgloss.Color("#feca57"),
		Curve:   lipgloss.Color("#ff6b6b"), // coral
		Root:    lipgloss.Color("#ff9ff3"),
		Border:  lipgloss.Color("#8b6b8c"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Success: lipgloss.Color("#5fd068"),
		Error:   lipgloss.Color("#ff4757"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to minimal.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMinimal
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Title   lipgloss.Style
	Panel   lipgloss.Style
	Section lipgloss.Style
	Result  lipgloss.Style
	Error   lipgloss.Style
	Hint    lipgloss.Style
	Legend  lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Title),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text),
		Result: lipgloss.NewStyle().
			Foreground(t.Success),
		Error: lipgloss.NewStyle().
			Foreground(t.Error),
		Hint: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
		Legend: lipgloss.NewStyle().
			Foreground(t.Root),
	}
}

// Separator renders a muted rule of the given width.
func (s Styles) Separator(width int) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.Hint.UnsetItalic().Render(left + " ◆ " + right)
}

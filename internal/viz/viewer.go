package viz

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Viewer shows a chart to the user. Implementations may block until the
// chart is dismissed.
type Viewer interface {
	Show(c Chart) error
}

// TermViewer shows each chart full-screen and returns once the user
// closes it.
type TermViewer struct {
	Theme Theme
	In    io.Reader
	Out   io.Writer
}

func NewTermViewer(theme Theme, in io.Reader, out io.Writer) *TermViewer {
	return &TermViewer{Theme: theme, In: in, Out: out}
}

func (v *TermViewer) Show(c Chart) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if v.In != nil {
		opts = append(opts, tea.WithInput(v.In))
	}
	if v.Out != nil {
		opts = append(opts, tea.WithOutput(v.Out))
	}
	_, err := tea.NewProgram(newChartModel(c, v.Theme), opts...).Run()
	if err != nil {
		return fmt.Errorf("viz: chart viewer: %w", err)
	}
	return nil
}

type chartModel struct {
	chart         Chart
	theme         Theme
	styles        Styles
	width, height int
}

func newChartModel(c Chart, theme Theme) chartModel {
	return chartModel{chart: c, theme: theme, styles: NewStyles(theme), width: 100, height: 30}
}

func (m chartModel) Init() tea.Cmd { return nil }

func (m chartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "enter", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m chartModel) View() string {
	var s strings.Builder
	s.WriteString(m.styles.Title.Render(m.chart.Title) + "\n")

	// panel border and padding take 4 columns, title/legend/hint 5 rows
	body, err := m.chart.Render(m.width-4, m.height-8, m.theme)
	if err != nil {
		body = m.styles.Error.Render(err.Error())
	}
	s.WriteString(m.styles.Panel.Render(body) + "\n")

	legend := lipgloss.NewStyle().Foreground(m.theme.Curve).Render("── f(x)")
	if l := m.chart.Legend(); l != "" {
		legend += "   " + m.styles.Legend.Render("● "+l)
	}
	s.WriteString(legend + "\n")
	s.WriteString(m.styles.Hint.Render("q/esc/enter: close"))
	return s.String()
}

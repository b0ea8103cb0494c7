package timer

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	minWidth = 10
	maxWidth = 80
)

type style struct {
	base      lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	technique lipgloss.Style
	paused    lipgloss.Style
	err       lipgloss.Style
}

func newStyle(dark bool) style {
	accent := lipgloss.Color("#B0DB43")
	muted := lipgloss.Color("#6C6C6C")

	if !dark {
		accent = lipgloss.Color("#2E7D32")
		muted = lipgloss.Color("#4A4A4A")
	}

	return style{
		base:      lipgloss.NewStyle().Padding(1, padding),
		main:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("#12EAEA")),
		hint:      lipgloss.NewStyle().Foreground(muted),
		technique: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).Background(accent).Padding(0, 1).MarginRight(1),
		paused:    lipgloss.NewStyle().Foreground(lipgloss.Color("#C492B1")),
		err:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
	}
}

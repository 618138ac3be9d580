package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the rendered forms of a theme.
type Styles struct {
	Panel   lipgloss.Style
	Title   lipgloss.Style
	Canvas  lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Active  lipgloss.Style
	KeyHint lipgloss.Style
	Bar     lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Canvas:  lipgloss.NewStyle().Foreground(t.Primary),
		Label:   lipgloss.NewStyle().Foreground(t.Muted).Width(16),
		Value:   lipgloss.NewStyle().Foreground(t.Text),
		Active:  lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		KeyHint: lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Bar:     lipgloss.NewStyle().Foreground(t.Secondary),
	}
}

// SliderBar renders a 0..100 slider value as a bar of width cells.
func SliderBar(value, width int) string {
	if width <= 0 {
		return ""
	}
	filled := value * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Separator renders a centred diamond rule.
func Separator(width int) string {
	if width < 8 {
		return strings.Repeat("─", width)
	}
	mid := width / 2
	return strings.Repeat("─", mid-2) + " ◆ " + strings.Repeat("─", width-mid-1)
}

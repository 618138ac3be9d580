package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the terminal colors for previews.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Signal    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
}

var (
	ThemeLab = Theme{
		Name:      "lab",
		Primary:   lipgloss.Color("#00c2cb"), // Cyan
		Secondary: lipgloss.Color("#0a84ff"),
		Accent:    lipgloss.Color("#00d68f"),
		Signal:    lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Border:    lipgloss.Color("#0a2540"),
	}

	ThemeStained = Theme{
		Name:      "stained",
		Primary:   lipgloss.Color("#bf5af2"), // Violet stain
		Secondary: lipgloss.Color("#ff9ff3"),
		Accent:    lipgloss.Color("#ffd60a"),
		Signal:    lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Border:    lipgloss.Color("#2d1b2e"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#888888"),
		Signal:    lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Border:    lipgloss.Color("#444444"),
	}

	Themes = []Theme{ThemeLab, ThemeStained, ThemeMono}
)

// GetTheme returns a theme by name, falling back to lab.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeLab
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

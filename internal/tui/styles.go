package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bcacic/joyful-playroom-manager/internal/config"
)

// palette holds every style the screens draw with. Swapping the active
// palette re-themes the whole console at once.
type palette struct {
	name string

	title    lipgloss.Style
	tagline  lipgloss.Style
	dim      lipgloss.Style
	normal   lipgloss.Style
	selected lipgloss.Style
	meta     lipgloss.Style
	accent   lipgloss.Style
	status   lipgloss.Style
	errText  lipgloss.Style

	helpKey   lipgloss.Style
	helpLabel lipgloss.Style

	search        lipgloss.Style
	placeholder   lipgloss.Style
	selectedRowBg lipgloss.Style

	statTile lipgloss.Style

	packageColors map[string]lipgloss.Color
	statusColors  map[string]lipgloss.Color
	fallback      lipgloss.Color
}

func darkPalette() palette {
	return palette{
		name:     config.ThemeDark,
		title:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f0abfc")).Bold(true),
		tagline:  lipgloss.NewStyle().Foreground(lipgloss.Color("#a78bfa")).Italic(true),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("#8890a0")),
		normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#c0c4d0")),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color("#e4e4ec")).Bold(true),
		meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("#505868")),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f472b6")),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80")),
		errText:  lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171")),

		helpKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8890a0")),
		helpLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("#505868")),

		search:        lipgloss.NewStyle().Foreground(lipgloss.Color("#f472b6")).Bold(true),
		placeholder:   lipgloss.NewStyle().Foreground(lipgloss.Color("#343c4a")),
		selectedRowBg: lipgloss.NewStyle().Background(lipgloss.Color("#2a1e2e")),

		statTile: lipgloss.NewStyle().Foreground(lipgloss.Color("#e4e4ec")).Bold(true),

		packageColors: map[string]lipgloss.Color{
			"basic":    lipgloss.Color("#60a0e0"),
			"standard": lipgloss.Color("#d4a844"),
			"premium":  lipgloss.Color("#c084e0"),
		},
		statusColors: map[string]lipgloss.Color{
			"upcoming":  lipgloss.Color("#4ade80"),
			"completed": lipgloss.Color("#8890a0"),
			"cancelled": lipgloss.Color("#e06060"),
		},
		fallback: lipgloss.Color("#606878"),
	}
}

func lightPalette() palette {
	return palette{
		name:     config.ThemeLight,
		title:    lipgloss.NewStyle().Foreground(lipgloss.Color("#a21caf")).Bold(true),
		tagline:  lipgloss.NewStyle().Foreground(lipgloss.Color("#7c3aed")).Italic(true),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("#707a8a")),
		normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#2a2e38")),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color("#11131a")).Bold(true),
		meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("#9aa2b0")),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("#db2777")),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a")),
		errText:  lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")),

		helpKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("#707a8a")),
		helpLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("#9aa2b0")),

		search:        lipgloss.NewStyle().Foreground(lipgloss.Color("#db2777")).Bold(true),
		placeholder:   lipgloss.NewStyle().Foreground(lipgloss.Color("#c4cad4")),
		selectedRowBg: lipgloss.NewStyle().Background(lipgloss.Color("#fce7f3")),

		statTile: lipgloss.NewStyle().Foreground(lipgloss.Color("#11131a")).Bold(true),

		packageColors: map[string]lipgloss.Color{
			"basic":    lipgloss.Color("#2563eb"),
			"standard": lipgloss.Color("#b45309"),
			"premium":  lipgloss.Color("#7c3aed"),
		},
		statusColors: map[string]lipgloss.Color{
			"upcoming":  lipgloss.Color("#16a34a"),
			"completed": lipgloss.Color("#707a8a"),
			"cancelled": lipgloss.Color("#dc2626"),
		},
		fallback: lipgloss.Color("#707a8a"),
	}
}

// th is the active palette. Screens read it on every render so a toggle
// takes effect immediately.
var th = darkPalette()

// setTheme activates the palette for the given theme name. Auto resolves
// against the terminal background.
func setTheme(name string) {
	switch name {
	case config.ThemeLight:
		th = lightPalette()
	case config.ThemeDark:
		th = darkPalette()
	default:
		if lipgloss.HasDarkBackground() {
			th = darkPalette()
		} else {
			th = lightPalette()
		}
	}
}

// packageStyle returns a bold style colored for the given package tier.
func packageStyle(pkg string) lipgloss.Style {
	if c, ok := th.packageColors[pkg]; ok {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(th.fallback).Bold(true)
}

// statusStyle returns a style colored for the given booking status.
func statusStyle(status string) lipgloss.Style {
	if c, ok := th.statusColors[status]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return lipgloss.NewStyle().Foreground(th.fallback)
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return th.helpKey.Render(key) + " " + th.helpLabel.Render(label)
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bcacic/joyful-playroom-manager/internal/config"
	"github.com/bcacic/joyful-playroom-manager/pkg/client"
)

type screen int

const (
	screenDashboard screen = iota
	screenParties
	screenKids
)

// themeSavedMsg reports the outcome of persisting a theme toggle.
type themeSavedMsg struct{ err error }

// App is the root Bubbletea model.
type App struct {
	api       *backend
	screen    screen
	dashboard dashboardModel
	parties   partiesModel
	kids      kidsModel
	helpOpen  bool
	version   string
	width     int
	height    int
}

// NewApp creates the TUI application. theme picks the starting palette.
func NewApp(c *client.Client, theme, version string) App {
	setTheme(theme)
	api := newBackend(c)
	return App{
		api:       api,
		dashboard: newDashboardModel(api),
		parties:   newPartiesModel(api),
		kids:      newKidsModel(api),
		version:   version,
	}
}

func (a App) Init() tea.Cmd {
	return a.dashboard.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: tabs(1) + help(1) = 2 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 2}
		a.dashboard, _ = a.dashboard.Update(bodyMsg)
		a.parties, _ = a.parties.Update(bodyMsg)
		a.kids, _ = a.kids.Update(bodyMsg)

	case themeSavedMsg:
		// A failed write only costs persistence; the session keeps the look.
		return a, nil

	case tea.KeyMsg:
		if a.helpOpen {
			switch msg.String() {
			case "h", "esc":
				a.helpOpen = false
			case "q", "ctrl+c":
				return a, tea.Quit
			}
			return a, nil
		}

		if msg.String() == "ctrl+t" {
			return a, a.toggleTheme()
		}

		// Global keys (only when no screen is capturing text)
		if !a.isEditing() {
			switch msg.String() {
			case "h":
				a.helpOpen = true
				return a, nil
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				if a.screen != screenDashboard {
					a.screen = screenDashboard
					return a, a.dashboard.Init()
				}
				return a, nil
			case "2":
				if a.screen != screenParties {
					a.screen = screenParties
					return a, a.parties.Init()
				}
				return a, nil
			case "3":
				if a.screen != screenKids {
					a.screen = screenKids
					return a, a.kids.Init()
				}
				return a, nil
			}
		} else if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch a.screen {
	case screenDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	case screenParties:
		a.parties, cmd = a.parties.Update(msg)
	case screenKids:
		a.kids, cmd = a.kids.Update(msg)
	}
	return a, cmd
}

// toggleTheme flips light/dark immediately and persists the choice in the
// background.
func (a App) toggleTheme() tea.Cmd {
	name := config.ThemeDark
	if th.name == config.ThemeDark {
		name = config.ThemeLight
	}
	setTheme(name)
	return func() tea.Msg {
		return themeSavedMsg{err: config.SaveTheme(name)}
	}
}

func (a App) isEditing() bool {
	switch a.screen {
	case screenParties:
		return a.parties.editing()
	case screenKids:
		return a.kids.editing()
	}
	return false
}

func (a App) View() string {
	// Tab bar: 1 Dashboard  2 Parties  3 Kids
	type tabEntry struct {
		key  string
		name string
		s    screen
	}
	tabs := []tabEntry{
		{"1", "Dashboard", screenDashboard},
		{"2", "Parties", screenParties},
		{"3", "Kids", screenKids},
	}

	colWidth := a.width / len(tabs)
	var tabBar strings.Builder
	for _, t := range tabs {
		var label string
		if t.s == a.screen {
			label = th.accent.Render(t.key) + " " + th.selected.Underline(true).Render(t.name)
		} else {
			label = th.meta.Render(t.key) + " " + th.dim.Render(t.name)
		}
		labelWidth := lipgloss.Width(label)
		leftPad := (colWidth - labelWidth) / 2
		if leftPad < 0 {
			leftPad = 0
		}
		rightPad := colWidth - labelWidth - leftPad
		if rightPad < 0 {
			rightPad = 0
		}
		tabBar.WriteString(strings.Repeat(" ", leftPad) + label + strings.Repeat(" ", rightPad))
	}

	var body, help string
	switch a.screen {
	case screenDashboard:
		body = a.dashboard.View()
		help = " " + helpEntry("1-3", "tabs") + "  " + helpEntry("r", "refresh") + "  " + helpEntry("ctrl+t", "theme") + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
	case screenParties:
		body = a.parties.View()
		help = " " + a.parties.helpKeys()
	case screenKids:
		body = a.kids.View()
		help = " " + a.kids.helpKeys()
	}

	if a.helpOpen {
		body = helpView(a.version)
		help = " " + helpEntry("esc", "close") + "  " + helpEntry("q", "quit")
	}

	chrome := 2
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	return fmt.Sprintf("%s\n%s\n%s", tabBar.String(), body, help)
}

// helpView renders the static key reference overlay.
func helpView(version string) string {
	title := th.title.Render("JOYFUL PLAYROOM")

	keys := []struct{ key, desc string }{
		{"1 / 2 / 3", "switch between Dashboard, Parties, Kids"},
		{"j / k", "move the cursor"},
		{"/", "filter the current list"},
		{"enter", "open the selected record"},
		{"n", "new record"},
		{"e", "edit the selected record"},
		{"d", "delete (asks y/n)"},
		{"c", "copy summary or phone to clipboard"},
		{"r", "refresh / retry"},
		{"ctrl+s", "save a form"},
		{"ctrl+t", "toggle light/dark theme"},
		{"esc", "back / cancel"},
		{"q", "quit"},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s  %s\n\n", title, th.meta.Render(version))
	for _, k := range keys {
		fmt.Fprintf(&b, "    %s  %s\n", th.selected.Render(fmt.Sprintf("%-12s", k.key)), th.dim.Render(k.desc))
	}
	return b.String()
}

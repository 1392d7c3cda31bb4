package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bcacic/joyful-playroom-manager/pkg/view"
)

// dashboardModel is the landing screen: headline numbers plus the next
// few upcoming parties.
type dashboardModel struct {
	api     *backend
	parties []view.Party
	kids    []view.Kid
	names   map[string]string
	reqID   string
	err     error
	loading bool
	width   int
	height  int
}

func newDashboardModel(api *backend) dashboardModel {
	return dashboardModel{api: api, loading: true}
}

func (m dashboardModel) Init() tea.Cmd {
	return refreshCmd
}

func (m dashboardModel) reloaded() (dashboardModel, tea.Cmd) {
	m.loading = true
	m.reqID = newReqID()
	return m, m.api.loadParties(m.reqID)
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		return m.reloaded()

	case partiesLoadedMsg:
		if msg.reqID != m.reqID {
			return m, nil
		}
		m.loading = false
		m.parties = msg.parties
		m.kids = msg.kids
		m.err = msg.err
		if msg.kids != nil {
			m.names = kidNames(msg.kids)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "r" {
			return m.reloaded()
		}
	}
	return m, nil
}

// upcoming returns parties still ahead, soonest first.
func (m dashboardModel) upcoming() []view.Party {
	var out []view.Party
	for _, p := range m.parties {
		if p.Status == "upcoming" {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

// revenue sums the booked price of everything not cancelled.
func (m dashboardModel) revenue() float64 {
	var total float64
	for _, p := range m.parties {
		if p.Status != "cancelled" {
			total += p.Price
		}
	}
	return total
}

func (m dashboardModel) View() string {
	var b strings.Builder
	if m.width >= 50 {
		b.WriteString(" " + th.title.Render("JOYFUL PLAYROOM") + "  " + th.tagline.Render("Cake, balloons, and a tight schedule.") + "\n")
	} else {
		b.WriteString(" " + th.title.Render("JOYFUL PLAYROOM") + "\n")
	}

	sepW := m.width - 2
	if sepW < 4 {
		sepW = 4
	}
	b.WriteString(" " + th.meta.Render(strings.Repeat("─", sepW)) + "\n")

	if m.loading {
		b.WriteString(" " + th.dim.Render("loading..."))
		return b.String()
	}
	if m.err != nil {
		b.WriteString(" " + th.errText.Render(fmt.Sprintf("error: %v", m.err)) + "\n")
		b.WriteString(" " + th.dim.Render("press r to retry"))
		return b.String()
	}

	up := m.upcoming()

	// Stat tiles
	tiles := []struct {
		value string
		label string
	}{
		{fmt.Sprintf("%d", len(m.parties)), "parties"},
		{fmt.Sprintf("%d", len(up)), "upcoming"},
		{fmt.Sprintf("%d", len(m.kids)), "kids"},
		{formatMoney(m.revenue()), "booked"},
	}
	var tileLine, labelLine strings.Builder
	for _, t := range tiles {
		w := max(len(t.value), len(t.label)) + 4
		tileLine.WriteString(" " + th.statTile.Render(fmt.Sprintf("%-*s", w, t.value)))
		labelLine.WriteString(" " + th.meta.Render(fmt.Sprintf("%-*s", w, t.label)))
	}
	b.WriteString("\n" + tileLine.String() + "\n" + labelLine.String() + "\n\n")

	// Upcoming parties
	b.WriteString(" " + th.title.Render("UPCOMING") + "\n")
	if len(up) == 0 {
		b.WriteString(" " + th.dim.Render("nothing on the calendar") + "\n")
	}
	maxRows := m.height - 9
	if maxRows < 3 {
		maxRows = 3
	}
	for i, p := range up {
		if i >= maxRows {
			b.WriteString(" " + th.meta.Render(fmt.Sprintf("… %d more", len(up)-maxRows)) + "\n")
			break
		}
		name := m.names[p.KidID]
		if name == "" {
			name = "kid #" + p.KidID
		}
		fmt.Fprintf(&b, " %s %s  %s  %s\n",
			th.normal.Render(fmt.Sprintf("%-12s", formatDay(p.Date))),
			th.meta.Render(p.StartTime+"-"+p.EndTime),
			th.selected.Render(fmt.Sprintf("%-18s", truncStr(name, 18))),
			packageStyle(p.PackageType).Render(p.PackageType))
	}

	return truncateToHeight(b.String(), m.height)
}

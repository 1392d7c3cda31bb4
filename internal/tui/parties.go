package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bcacic/joyful-playroom-manager/pkg/view"
)

type partiesMode int

const (
	partiesModeList partiesMode = iota
	partiesModeDetail
	partiesModeForm
)

type partiesModel struct {
	api     *backend
	mode    partiesMode
	parties []view.Party
	names   map[string]string
	cursor  int
	filter  string
	// filtering is true while the operator is typing in the filter box.
	filtering  bool
	confirming bool // delete confirmation pending
	form       partyForm
	detail     view.Party
	reqID      string
	err        error
	loading    bool
	statusMsg  string
	width      int
	height     int
}

func newPartiesModel(api *backend) partiesModel {
	return partiesModel{api: api, loading: true}
}

func (m partiesModel) Init() tea.Cmd {
	return refreshCmd
}

// reloaded fetches the list, tagging the request so stale responses from an
// earlier visit get dropped.
func (m partiesModel) reloaded() (partiesModel, tea.Cmd) {
	m.loading = true
	m.reqID = newReqID()
	return m, m.api.loadParties(m.reqID)
}

func (m partiesModel) Update(msg tea.Msg) (partiesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		return m.reloaded()

	case partiesLoadedMsg:
		if msg.reqID != m.reqID {
			return m, nil
		}
		m.loading = false
		m.parties = msg.parties
		m.err = msg.err
		if msg.kids != nil {
			m.names = kidNames(msg.kids)
		}
		if m.cursor >= len(m.filtered()) {
			m.cursor = 0
		}
		return m, nil

	case partyLoadedMsg:
		if msg.reqID != m.reqID {
			return m, nil
		}
		if msg.err != nil {
			m.mode = partiesModeList
			m.statusMsg = fmt.Sprintf("load failed: %v", msg.err)
			return m, nil
		}
		m.detail = msg.party
		return m, nil

	case partySavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			// Keep the form values so the operator can fix and resubmit.
			m.form.statusMsg = fmt.Sprintf("save failed: %v", msg.err)
			return m, nil
		}
		m.mode = partiesModeList
		m.statusMsg = "saved!"
		return m.reloaded()

	case partyDeletedMsg:
		m.confirming = false
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		m.mode = partiesModeList
		m.statusMsg = "deleted"
		return m.reloaded()

	case copyResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.statusMsg = "copied!"
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		if m.mode == partiesModeForm {
			return m.updateForm(msg)
		}
		if m.filtering {
			return m.updateFilter(msg)
		}
		if m.confirming {
			return m.updateConfirm(msg)
		}
		if m.mode == partiesModeDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m partiesModel) updateFilter(msg tea.KeyMsg) (partiesModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
	case "esc":
		m.filtering = false
		m.filter = ""
	default:
		// Filtering narrows what is already loaded; it never refetches.
		m.filter = editRune(m.filter, msg.String())
		m.cursor = 0
	}
	return m, nil
}

func (m partiesModel) updateConfirm(msg tea.KeyMsg) (partiesModel, tea.Cmd) {
	switch msg.String() {
	case "y":
		id := m.confirmTargetID()
		if id == "" {
			m.confirming = false
			return m, nil
		}
		return m, m.api.deleteParty(id)
	case "n", "esc":
		m.confirming = false
	}
	return m, nil
}

// confirmTargetID is the booking the pending delete refers to.
func (m partiesModel) confirmTargetID() string {
	if m.mode == partiesModeDetail {
		return m.detail.ID
	}
	if rows := m.filtered(); m.cursor < len(rows) {
		return rows[m.cursor].ID
	}
	return ""
}

func (m partiesModel) updateList(msg tea.KeyMsg) (partiesModel, tea.Cmd) {
	rows := m.filtered()
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "/":
		m.filtering = true
		m.filter = ""
	case "enter":
		if m.cursor < len(rows) {
			m.mode = partiesModeDetail
			m.detail = rows[m.cursor]
			m.reqID = newReqID()
			return m, m.api.loadParty(m.reqID, rows[m.cursor].ID)
		}
	case "n":
		m.mode = partiesModeForm
		m.form = newPartyForm(m.kidsSlice(), timeNow())
	case "e":
		if m.cursor < len(rows) {
			m.mode = partiesModeForm
			m.form = editPartyForm(rows[m.cursor], m.kidsSlice())
		}
	case "d":
		if m.cursor < len(rows) {
			m.confirming = true
		}
	case "c":
		if m.cursor < len(rows) {
			p := rows[m.cursor]
			summary := partySummary(p, m.names[p.KidID])
			return m, func() tea.Msg {
				return copyResultMsg{err: clipboard.WriteAll(summary)}
			}
		}
	case "r":
		return m.reloaded()
	}
	return m, nil
}

func (m partiesModel) updateDetail(msg tea.KeyMsg) (partiesModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = partiesModeList
	case "e":
		m.mode = partiesModeForm
		m.form = editPartyForm(m.detail, m.kidsSlice())
	case "d":
		m.confirming = true
	case "c":
		summary := partySummary(m.detail, m.names[m.detail.KidID])
		return m, func() tea.Msg {
			return copyResultMsg{err: clipboard.WriteAll(summary)}
		}
	}
	return m, nil
}

func (m partiesModel) updateForm(msg tea.KeyMsg) (partiesModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = partiesModeList
		return m, nil
	case "ctrl+s":
		if m.form.submitting {
			return m, nil
		}
		if msg := m.form.validate(); msg != "" {
			m.form.statusMsg = msg
			return m, nil
		}
		m.form.submitting = true
		return m, m.api.saveParty(m.form.party())
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// filtered applies the current filter text against the booking's date,
// status, package and kid name, case-insensitively.
func (m partiesModel) filtered() []view.Party {
	if m.filter == "" {
		return m.parties
	}
	var out []view.Party
	for _, p := range m.parties {
		if containsFold(p.Date, m.filter) ||
			containsFold(p.Status, m.filter) ||
			containsFold(p.PackageType, m.filter) ||
			containsFold(m.names[p.KidID], m.filter) {
			out = append(out, p)
		}
	}
	return out
}

// kidsSlice rebuilds the kid list for form cycling from the name index.
func (m partiesModel) kidsSlice() []view.Kid {
	kids := make([]view.Kid, 0, len(m.names))
	for id, name := range m.names {
		kids = append(kids, view.Kid{ID: id, Name: name})
	}
	sortKids(kids)
	return kids
}

// editing reports whether keystrokes belong to this screen rather than the
// global tab keys.
func (m partiesModel) editing() bool {
	return m.filtering || m.mode == partiesModeForm
}

// helpKeys returns the help bar entries for the current sub-view.
func (m partiesModel) helpKeys() string {
	switch {
	case m.mode == partiesModeForm:
		return helpEntry("tab", "next") + "  " + helpEntry("h/l", "cycle") + "  " + helpEntry("ctrl+s", "save") + "  " + helpEntry("esc", "cancel")
	case m.filtering:
		return helpEntry("enter", "apply") + "  " + helpEntry("esc", "clear")
	case m.mode == partiesModeDetail:
		return helpEntry("1-3", "tabs") + "  " + helpEntry("e", "edit") + "  " + helpEntry("d", "delete") + "  " + helpEntry("c", "copy") + "  " + helpEntry("esc", "back")
	default:
		return helpEntry("1-3", "tabs") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("/", "filter") + "  " + helpEntry("n", "new") + "  " + helpEntry("e", "edit") + "  " + helpEntry("d", "delete") + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
	}
}

func (m partiesModel) View() string {
	if m.mode == partiesModeForm {
		return m.form.view()
	}
	if m.mode == partiesModeDetail {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m partiesModel) viewList() string {
	var b strings.Builder
	if m.width >= 50 {
		b.WriteString(" " + th.title.Render("PARTIES") + "  " + th.tagline.Render("Every Saturday is someone's big day.") + "\n")
	} else {
		b.WriteString(" " + th.title.Render("PARTIES") + "\n")
	}

	if m.filtering {
		b.WriteString(" " + th.search.Render("/ "+m.filter+"█") + "\n")
	} else if m.filter != "" {
		b.WriteString(" " + th.search.Render("/ "+m.filter) + "\n")
	} else {
		b.WriteString(" " + th.dim.Render("/ filter...") + "\n")
	}

	sepW := m.width - 2
	if sepW < 4 {
		sepW = 4
	}
	b.WriteString(" " + th.meta.Render(strings.Repeat("─", sepW)) + "\n")

	if m.confirming {
		b.WriteString(" " + th.errText.Render("delete this party? y/n") + "\n")
	} else if m.statusMsg != "" {
		b.WriteString(" " + th.status.Render(m.statusMsg) + "\n")
	}

	if m.loading {
		b.WriteString(" " + th.dim.Render("loading..."))
		return b.String()
	}
	if m.err != nil {
		b.WriteString(" " + th.errText.Render(fmt.Sprintf("error: %v", m.err)) + "\n")
		b.WriteString(" " + th.dim.Render("press r to retry"))
		return b.String()
	}

	rows := m.filtered()
	if len(rows) == 0 {
		if m.filter != "" {
			b.WriteString(" " + th.dim.Render("no parties match \""+m.filter+"\""))
		} else {
			b.WriteString(" " + th.dim.Render("no parties yet — press n to book one"))
		}
		return b.String()
	}

	maxVisible := m.height - 6
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}

	for i := start; i < len(rows) && i < start+maxVisible; i++ {
		p := rows[i]

		cursor := "  "
		rowStyle := th.dim
		if i == m.cursor {
			cursor = th.accent.Render("▸") + " "
			rowStyle = th.selected
		}

		name := m.names[p.KidID]
		if name == "" {
			name = "kid #" + p.KidID
		}

		dayCol := rowStyle.Render(fmt.Sprintf("%-12s", formatDay(p.Date)))
		timeCol := th.meta.Render(p.StartTime + "-" + p.EndTime)
		nameCol := rowStyle.Render(fmt.Sprintf("%-18s", truncStr(name, 18)))
		pkgCol := packageStyle(p.PackageType).Render(fmt.Sprintf("%-8s", p.PackageType))
		statusCol := statusStyle(p.Status).Render(fmt.Sprintf("%-9s", p.Status))
		priceCol := th.meta.Render(formatMoney(p.Price))

		line := " " + cursor + dayCol + " " + timeCol + "  " + nameCol + " " + pkgCol + " " + statusCol + " " + priceCol
		if i == m.cursor {
			padded := line + strings.Repeat(" ", max(m.width-lipgloss.Width(line), 0))
			b.WriteString(th.selectedRowBg.Render(padded) + "\n")
		} else {
			b.WriteString(line + "\n")
		}
	}

	return truncateToHeight(b.String(), m.height)
}

func (m partiesModel) viewDetail() string {
	p := m.detail

	var b strings.Builder
	b.WriteString(" " + th.dim.Render("<- back (esc)") + "\n")

	name := m.names[p.KidID]
	if name == "" {
		name = "kid #" + p.KidID
	}
	b.WriteString(" " + th.selected.Render(name+"'s party") + "\n")

	meta := " " + th.normal.Render(formatDay(p.Date)) +
		th.meta.Render(" · ") + th.normal.Render(p.StartTime+"-"+p.EndTime) +
		th.meta.Render(" · ") + packageStyle(p.PackageType).Render(p.PackageType) +
		th.meta.Render(" · ") + statusStyle(p.Status).Render(p.Status)
	b.WriteString(meta + "\n\n")

	fmt.Fprintf(&b, " %s %d\n", th.meta.Render("guests: "), p.GuestCount)
	fmt.Fprintf(&b, " %s %s\n", th.meta.Render("price:  "), formatMoney(p.Price))
	paid := "no"
	if p.DepositPaid {
		paid = "yes"
	}
	fmt.Fprintf(&b, " %s %s (paid: %s)\n", th.meta.Render("deposit:"), formatMoney(p.Deposit), paid)
	if p.Notes != "" {
		b.WriteString("\n " + th.normal.Render(p.Notes) + "\n")
	}

	b.WriteString("\n " + th.meta.Render("created "+p.CreatedAt) + "\n")

	if m.confirming {
		b.WriteString("\n " + th.errText.Render("delete this party? y/n") + "\n")
	} else if m.statusMsg != "" {
		b.WriteString("\n " + th.status.Render(m.statusMsg) + "\n")
	}

	return truncateToHeight(b.String(), m.height)
}

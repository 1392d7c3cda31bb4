package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bcacic/joyful-playroom-manager/pkg/view"
)

type kidsMode int

const (
	kidsModeList kidsMode = iota
	kidsModeDetail
	kidsModeForm
)

type kidsModel struct {
	api           *backend
	mode          kidsMode
	kids          []view.Kid
	cursor        int
	filter        string
	filtering     bool
	confirming    bool
	form          kidForm
	detail        view.Kid
	detailParties []view.Party
	reqID         string
	err           error
	loading       bool
	statusMsg     string
	width         int
	height        int
}

func newKidsModel(api *backend) kidsModel {
	return kidsModel{api: api, loading: true}
}

func (m kidsModel) Init() tea.Cmd {
	return refreshCmd
}

func (m kidsModel) reloaded() (kidsModel, tea.Cmd) {
	m.loading = true
	m.reqID = newReqID()
	return m, m.api.loadKids(m.reqID)
}

func (m kidsModel) Update(msg tea.Msg) (kidsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		return m.reloaded()

	case kidsLoadedMsg:
		if msg.reqID != m.reqID {
			return m, nil
		}
		m.loading = false
		m.kids = msg.kids
		m.err = msg.err
		sortKids(m.kids)
		if m.cursor >= len(m.filtered()) {
			m.cursor = 0
		}
		return m, nil

	case kidDetailMsg:
		if msg.reqID != m.reqID {
			return m, nil
		}
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("load failed: %v", msg.err)
			if m.mode == kidsModeDetail && msg.kid.ID == "" {
				m.mode = kidsModeList
			}
			return m, nil
		}
		m.detail = msg.kid
		m.detailParties = msg.parties
		return m, nil

	case kidSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.statusMsg = fmt.Sprintf("save failed: %v", msg.err)
			return m, nil
		}
		m.mode = kidsModeList
		m.statusMsg = "saved!"
		return m.reloaded()

	case kidDeletedMsg:
		m.confirming = false
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		m.mode = kidsModeList
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
		if m.mode == kidsModeForm {
			return m.updateForm(msg)
		}
		if m.filtering {
			return m.updateFilter(msg)
		}
		if m.confirming {
			return m.updateConfirm(msg)
		}
		if m.mode == kidsModeDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m kidsModel) updateFilter(msg tea.KeyMsg) (kidsModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
	case "esc":
		m.filtering = false
		m.filter = ""
	default:
		m.filter = editRune(m.filter, msg.String())
		m.cursor = 0
	}
	return m, nil
}

func (m kidsModel) updateConfirm(msg tea.KeyMsg) (kidsModel, tea.Cmd) {
	switch msg.String() {
	case "y":
		id := m.confirmTargetID()
		if id == "" {
			m.confirming = false
			return m, nil
		}
		return m, m.api.deleteKid(id)
	case "n", "esc":
		m.confirming = false
	}
	return m, nil
}

func (m kidsModel) confirmTargetID() string {
	if m.mode == kidsModeDetail {
		return m.detail.ID
	}
	if rows := m.filtered(); m.cursor < len(rows) {
		return rows[m.cursor].ID
	}
	return ""
}

func (m kidsModel) updateList(msg tea.KeyMsg) (kidsModel, tea.Cmd) {
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
			m.mode = kidsModeDetail
			m.detail = rows[m.cursor]
			m.detailParties = nil
			m.reqID = newReqID()
			return m, m.api.loadKidDetail(m.reqID, rows[m.cursor].ID)
		}
	case "n":
		m.mode = kidsModeForm
		m.form = newKidForm()
	case "e":
		if m.cursor < len(rows) {
			m.mode = kidsModeForm
			m.form = editKidForm(rows[m.cursor])
		}
	case "d":
		if m.cursor < len(rows) {
			m.confirming = true
		}
	case "c":
		if m.cursor < len(rows) {
			phone := rows[m.cursor].ParentPhone
			return m, func() tea.Msg {
				return copyResultMsg{err: clipboard.WriteAll(phone)}
			}
		}
	case "r":
		return m.reloaded()
	}
	return m, nil
}

func (m kidsModel) updateDetail(msg tea.KeyMsg) (kidsModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = kidsModeList
	case "e":
		m.mode = kidsModeForm
		m.form = editKidForm(m.detail)
	case "d":
		m.confirming = true
	case "c":
		phone := m.detail.ParentPhone
		return m, func() tea.Msg {
			return copyResultMsg{err: clipboard.WriteAll(phone)}
		}
	}
	return m, nil
}

func (m kidsModel) updateForm(msg tea.KeyMsg) (kidsModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = kidsModeList
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
		return m, m.api.saveKid(m.form.kid())
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// filtered narrows the loaded list by name, parent name or phone without
// touching the network.
func (m kidsModel) filtered() []view.Kid {
	if m.filter == "" {
		return m.kids
	}
	var out []view.Kid
	for _, k := range m.kids {
		if containsFold(k.Name, m.filter) || containsFold(k.ParentName, m.filter) || containsFold(k.ParentPhone, m.filter) {
			out = append(out, k)
		}
	}
	return out
}

func (m kidsModel) editing() bool {
	return m.filtering || m.mode == kidsModeForm
}

// helpKeys returns the help bar entries for the current sub-view.
func (m kidsModel) helpKeys() string {
	switch {
	case m.mode == kidsModeForm:
		return helpEntry("tab", "next") + "  " + helpEntry("ctrl+s", "save") + "  " + helpEntry("esc", "cancel")
	case m.filtering:
		return helpEntry("enter", "apply") + "  " + helpEntry("esc", "clear")
	case m.mode == kidsModeDetail:
		return helpEntry("1-3", "tabs") + "  " + helpEntry("e", "edit") + "  " + helpEntry("d", "delete") + "  " + helpEntry("c", "copy phone") + "  " + helpEntry("esc", "back")
	default:
		return helpEntry("1-3", "tabs") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("/", "filter") + "  " + helpEntry("n", "new") + "  " + helpEntry("e", "edit") + "  " + helpEntry("d", "delete") + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
	}
}

func (m kidsModel) View() string {
	if m.mode == kidsModeForm {
		return m.form.view()
	}
	if m.mode == kidsModeDetail {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m kidsModel) viewList() string {
	var b strings.Builder
	if m.width >= 50 {
		b.WriteString(" " + th.title.Render("KIDS") + "  " + th.tagline.Render("The guest list behind every party.") + "\n")
	} else {
		b.WriteString(" " + th.title.Render("KIDS") + "\n")
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
		b.WriteString(" " + th.errText.Render("delete this kid? y/n") + "\n")
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
			b.WriteString(" " + th.dim.Render("no kids match \""+m.filter+"\""))
		} else {
			b.WriteString(" " + th.dim.Render("no kids yet — press n to add one"))
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
		k := rows[i]

		cursor := "  "
		rowStyle := th.dim
		if i == m.cursor {
			cursor = th.accent.Render("▸") + " "
			rowStyle = th.selected
		}

		nameCol := rowStyle.Render(fmt.Sprintf("%-22s", truncStr(k.Name, 22)))
		ageCol := th.meta.Render(fmt.Sprintf("age %-3d", k.Age))
		phoneCol := th.normal.Render(k.ParentPhone)

		line := " " + cursor + nameCol + " " + ageCol + " " + phoneCol
		if i == m.cursor {
			padded := line + strings.Repeat(" ", max(m.width-lipgloss.Width(line), 0))
			b.WriteString(th.selectedRowBg.Render(padded) + "\n")
		} else {
			b.WriteString(line + "\n")
		}
	}

	return truncateToHeight(b.String(), m.height)
}

func (m kidsModel) viewDetail() string {
	k := m.detail

	var b strings.Builder
	b.WriteString(" " + th.dim.Render("<- back (esc)") + "\n")
	b.WriteString(" " + th.selected.Render(k.Name) + "  " + th.meta.Render(fmt.Sprintf("age %d", k.Age)) + "\n\n")

	fmt.Fprintf(&b, " %s %s\n", th.meta.Render("parent:"), th.normal.Render(k.ParentName))
	fmt.Fprintf(&b, " %s %s\n", th.meta.Render("phone: "), th.normal.Render(k.ParentPhone))
	if k.Notes != "" {
		b.WriteString("\n " + th.normal.Render(k.Notes) + "\n")
	}

	b.WriteString("\n " + th.title.Render("PARTIES") + "\n")
	if len(m.detailParties) == 0 {
		b.WriteString(" " + th.dim.Render("no parties booked") + "\n")
	}
	for _, p := range m.detailParties {
		fmt.Fprintf(&b, " %s %s  %s %s\n",
			th.normal.Render(formatDay(p.Date)),
			th.meta.Render(p.StartTime+"-"+p.EndTime),
			packageStyle(p.PackageType).Render(p.PackageType),
			statusStyle(p.Status).Render(p.Status))
	}

	if m.confirming {
		b.WriteString("\n " + th.errText.Render("delete this kid? y/n") + "\n")
	} else if m.statusMsg != "" {
		b.WriteString("\n " + th.status.Render(m.statusMsg) + "\n")
	}

	return truncateToHeight(b.String(), m.height)
}

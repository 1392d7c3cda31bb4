package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bcacic/joyful-playroom-manager/pkg/domain"
	"github.com/bcacic/joyful-playroom-manager/pkg/view"
)

type partyField int

const (
	pfDate partyField = iota
	pfStart
	pfEnd
	pfKid
	pfPackage
	pfGuests
	pfStatus
	pfPrice
	pfDeposit
	pfPaid
	pfNotes
	numPartyFields
)

var partyFieldLabels = [numPartyFields]string{
	"date", "start", "end", "kid", "package", "guests",
	"status", "price", "deposit", "paid", "notes",
}

// partyForm edits one booking. An empty id means the form creates a new
// record on submit; otherwise it updates the record it was opened from.
type partyForm struct {
	id          string
	fields      [numPartyFields]string
	depositPaid bool
	focus       partyField
	kids        []view.Kid
	kidIdx      int
	submitting  bool
	statusMsg   string
}

// newPartyForm opens a blank form with the standard booking defaults.
func newPartyForm(kids []view.Kid, now time.Time) partyForm {
	f := partyForm{kids: kids}
	f.fields[pfDate] = now.Format(view.DateLayout)
	f.fields[pfStart] = "13:00"
	f.fields[pfEnd] = "16:00"
	f.fields[pfPackage] = domain.DefaultPackage
	f.fields[pfGuests] = strconv.Itoa(view.DefaultGuestCount)
	f.fields[pfStatus] = domain.DefaultStatus
	f.fields[pfPrice] = strconv.Itoa(view.DefaultPrice)
	f.fields[pfDeposit] = strconv.Itoa(view.DefaultDeposit)
	if len(kids) > 0 {
		f.kidIdx = 0
	}
	return f
}

// editPartyForm opens the form prefilled from an existing booking.
func editPartyForm(p view.Party, kids []view.Kid) partyForm {
	f := partyForm{id: p.ID, kids: kids}
	f.fields[pfDate] = p.Date
	f.fields[pfStart] = p.StartTime
	f.fields[pfEnd] = p.EndTime
	f.fields[pfPackage] = p.PackageType
	f.fields[pfGuests] = strconv.Itoa(p.GuestCount)
	f.fields[pfStatus] = p.Status
	f.fields[pfPrice] = strconv.FormatFloat(p.Price, 'f', -1, 64)
	f.fields[pfDeposit] = strconv.FormatFloat(p.Deposit, 'f', -1, 64)
	f.fields[pfNotes] = p.Notes
	f.depositPaid = p.DepositPaid
	for i, k := range kids {
		if k.ID == p.KidID {
			f.kidIdx = i
			break
		}
	}
	return f
}

// cycleField reports whether the focused field is edited by cycling values
// rather than typing.
func (f partyForm) cycleField() bool {
	switch f.focus {
	case pfKid, pfPackage, pfStatus, pfPaid:
		return true
	}
	return false
}

func (f partyForm) update(msg tea.KeyMsg) (partyForm, tea.Cmd) {
	f.statusMsg = ""

	switch msg.String() {
	case "tab", "down":
		f.focus = (f.focus + 1) % numPartyFields
	case "shift+tab", "up":
		f.focus = (f.focus - 1 + numPartyFields) % numPartyFields
	case "backspace":
		if !f.cycleField() {
			f.fields[f.focus] = editRune(f.fields[f.focus], "backspace")
		}
	case "enter":
		f.focus = (f.focus + 1) % numPartyFields
	default:
		key := msg.String()
		switch {
		case f.focus == pfKid && (key == "h" || key == "l"):
			if n := len(f.kids); n > 0 {
				if key == "l" {
					f.kidIdx = (f.kidIdx + 1) % n
				} else {
					f.kidIdx = (f.kidIdx - 1 + n) % n
				}
			}
		case f.focus == pfPackage && (key == "h" || key == "l"):
			f.fields[pfPackage] = cycleValue(domain.ValidPackages, f.fields[pfPackage], key == "l")
		case f.focus == pfStatus && (key == "h" || key == "l"):
			f.fields[pfStatus] = cycleValue(domain.ValidStatuses, f.fields[pfStatus], key == "l")
		case f.focus == pfPaid && (key == " " || key == "h" || key == "l"):
			f.depositPaid = !f.depositPaid
		case !f.cycleField():
			f.fields[f.focus] = editRune(f.fields[f.focus], key)
		}
	}
	return f, nil
}

// cycleValue steps through a fixed value list, wrapping at both ends.
func cycleValue(values []string, current string, forward bool) string {
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % len(values)
	} else {
		idx = (idx - 1 + len(values)) % len(values)
	}
	return values[idx]
}

// party assembles the view record the form currently describes. Numeric
// fields that fail to parse fall back to the standard defaults.
func (f partyForm) party() view.Party {
	kidID := ""
	if f.kidIdx < len(f.kids) {
		kidID = f.kids[f.kidIdx].ID
	}

	guests := view.DefaultGuestCount
	if n, err := strconv.Atoi(strings.TrimSpace(f.fields[pfGuests])); err == nil {
		guests = n
	}
	price := float64(view.DefaultPrice)
	if v, err := strconv.ParseFloat(strings.TrimSpace(f.fields[pfPrice]), 64); err == nil {
		price = v
	}
	deposit := float64(view.DefaultDeposit)
	if v, err := strconv.ParseFloat(strings.TrimSpace(f.fields[pfDeposit]), 64); err == nil {
		deposit = v
	}

	return view.Party{
		ID:          f.id,
		KidID:       kidID,
		Date:        strings.TrimSpace(f.fields[pfDate]),
		StartTime:   strings.TrimSpace(f.fields[pfStart]),
		EndTime:     strings.TrimSpace(f.fields[pfEnd]),
		PackageType: f.fields[pfPackage],
		GuestCount:  guests,
		Status:      f.fields[pfStatus],
		Price:       price,
		Deposit:     deposit,
		DepositPaid: f.depositPaid,
		Notes:       strings.TrimSpace(f.fields[pfNotes]),
	}
}

// validate returns a user-facing message when the form cannot be submitted
// yet, or "" when it can.
func (f partyForm) validate() string {
	if len(f.kids) == 0 {
		return "no kids on file — add one first"
	}
	date := strings.TrimSpace(f.fields[pfDate])
	if date == "" {
		return "date is required"
	}
	if _, err := time.Parse(view.DateLayout, date); err != nil {
		return "date must be YYYY-MM-DD"
	}
	start := strings.TrimSpace(f.fields[pfStart])
	if _, err := time.Parse(view.TimeLayout, start); err != nil {
		return "start must be HH:MM"
	}
	if end := strings.TrimSpace(f.fields[pfEnd]); end != "" {
		if _, err := time.Parse(view.TimeLayout, end); err != nil {
			return "end must be HH:MM"
		}
	}
	return ""
}

func (f partyForm) view() string {
	var b strings.Builder

	title := "NEW PARTY"
	if f.id != "" {
		title = "EDIT PARTY"
	}
	b.WriteString(" " + th.title.Render(title) + "\n\n")

	for i := partyField(0); i < numPartyFields; i++ {
		label := partyFieldLabels[i]
		cursor := " "
		style := th.meta
		if i == f.focus {
			cursor = ">"
			style = th.selected
		}

		switch i {
		case pfKid:
			name := th.dim.Render("(none)")
			if f.kidIdx < len(f.kids) {
				name = th.normal.Render(f.kids[f.kidIdx].Name)
			}
			fmt.Fprintf(&b, " %s %s: %s  %s\n",
				cursor, style.Render(label), name, th.meta.Render("(h/l to cycle)"))
		case pfPackage:
			fmt.Fprintf(&b, " %s %s: %s  %s\n",
				cursor, style.Render(label), packageStyle(f.fields[i]).Render(f.fields[i]), th.meta.Render("(h/l to cycle)"))
		case pfStatus:
			fmt.Fprintf(&b, " %s %s: %s  %s\n",
				cursor, style.Render(label), statusStyle(f.fields[i]).Render(f.fields[i]), th.meta.Render("(h/l to cycle)"))
		case pfPaid:
			mark := th.dim.Render("[ ] no")
			if f.depositPaid {
				mark = th.status.Render("[x] yes")
			}
			fmt.Fprintf(&b, " %s %s: %s  %s\n",
				cursor, style.Render(label), mark, th.meta.Render("(space to toggle)"))
		default:
			value := f.fields[i]
			if i == f.focus {
				value += "█"
			}
			fmt.Fprintf(&b, " %s %s: %s\n", cursor, style.Render(label), value)
		}
	}

	b.WriteString("\n")
	if f.submitting {
		b.WriteString(" " + th.dim.Render("saving..."))
	} else if f.statusMsg != "" {
		b.WriteString(" " + th.errText.Render(f.statusMsg))
	}
	return b.String()
}

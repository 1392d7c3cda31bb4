package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bcacic/joyful-playroom-manager/pkg/view"
)

type kidField int

const (
	kfName kidField = iota
	kfPhone
	kfNotes
	numKidFields
)

var kidFieldLabels = [numKidFields]string{"name", "parent phone", "notes"}

// kidForm edits one kid profile. An empty id means create.
type kidForm struct {
	id         string
	fields     [numKidFields]string
	focus      kidField
	submitting bool
	statusMsg  string
}

func newKidForm() kidForm {
	return kidForm{}
}

func editKidForm(k view.Kid) kidForm {
	f := kidForm{id: k.ID}
	f.fields[kfName] = k.Name
	f.fields[kfPhone] = k.ParentPhone
	f.fields[kfNotes] = k.Notes
	return f
}

func (f kidForm) update(msg tea.KeyMsg) (kidForm, tea.Cmd) {
	f.statusMsg = ""

	switch msg.String() {
	case "tab", "down", "enter":
		f.focus = (f.focus + 1) % numKidFields
	case "shift+tab", "up":
		f.focus = (f.focus - 1 + numKidFields) % numKidFields
	case "backspace":
		f.fields[f.focus] = editRune(f.fields[f.focus], "backspace")
	default:
		f.fields[f.focus] = editRune(f.fields[f.focus], msg.String())
	}
	return f, nil
}

func (f kidForm) kid() view.Kid {
	return view.Kid{
		ID:          f.id,
		Name:        strings.TrimSpace(f.fields[kfName]),
		ParentPhone: strings.TrimSpace(f.fields[kfPhone]),
		Notes:       strings.TrimSpace(f.fields[kfNotes]),
	}
}

func (f kidForm) validate() string {
	if strings.TrimSpace(f.fields[kfName]) == "" {
		return "name is required"
	}
	return ""
}

func (f kidForm) view() string {
	var b strings.Builder

	title := "NEW KID"
	if f.id != "" {
		title = "EDIT KID"
	}
	b.WriteString(" " + th.title.Render(title) + "\n\n")

	for i := kidField(0); i < numKidFields; i++ {
		cursor := " "
		style := th.meta
		if i == f.focus {
			cursor = ">"
			style = th.selected
		}
		value := f.fields[i]
		if i == f.focus {
			value += "█"
		}
		fmt.Fprintf(&b, " %s %s: %s\n", cursor, style.Render(kidFieldLabels[i]), value)
	}

	b.WriteString("\n")
	if f.submitting {
		b.WriteString(" " + th.dim.Render("saving..."))
	} else if f.statusMsg != "" {
		b.WriteString(" " + th.errText.Render(f.statusMsg))
	}
	return b.String()
}

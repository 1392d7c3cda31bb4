package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bcacic/joyful-playroom-manager/pkg/view"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestKidsModel() kidsModel {
	m := newKidsModel(newBackend(nil))
	m.width = 80
	m.height = 24
	m.loading = false
	return m
}

func testKids() []view.Kid {
	return []view.Kid{
		{ID: "1", Name: "Emily Smith", Age: 6, ParentName: "Sarah", ParentPhone: "555-987-6543"},
		{ID: "2", Name: "Alex Johnson", Age: 7, ParentName: "Dana", ParentPhone: "555-123-4567"},
		{ID: "3", Name: "Michael Brown", Age: 5, ParentName: "Pat", ParentPhone: "555-456-7890"},
	}
}

func TestKidsListRendersNames(t *testing.T) {
	m := newTestKidsModel()
	m, _ = m.Update(kidsLoadedMsg{kids: testKids()})

	v := m.View()
	for _, name := range []string{"Emily Smith", "Alex Johnson", "Michael Brown"} {
		if !strings.Contains(v, name) {
			t.Errorf("expected %q in view, got:\n%s", name, v)
		}
	}
}

func TestKidsFilterMatchesCaseInsensitively(t *testing.T) {
	m := newTestKidsModel()
	m, _ = m.Update(kidsLoadedMsg{kids: testKids()})

	m, _ = m.Update(keyRunes("/"))
	if !m.filtering {
		t.Fatal("expected filtering=true after '/'")
	}
	for _, r := range "eMiLy" {
		m, _ = m.Update(keyRunes(string(r)))
	}

	rows := m.filtered()
	if len(rows) != 1 {
		t.Fatalf("got %d kids for filter %q, want 1", len(rows), m.filter)
	}
	if rows[0].Name != "Emily Smith" {
		t.Errorf("filtered kid = %q, want %q", rows[0].Name, "Emily Smith")
	}
}

func TestKidsFilterNeverRefetches(t *testing.T) {
	m := newTestKidsModel()
	m, _ = m.Update(kidsLoadedMsg{kids: testKids()})

	_, cmd := m.Update(keyRunes("/"))
	if cmd != nil {
		t.Error("expected no command when opening the filter")
	}
	m.filtering = true
	_, cmd = m.Update(keyRunes("e"))
	if cmd != nil {
		t.Error("expected no command while typing a filter")
	}
}

func TestKidsFilterNoMatchesShowsAffordance(t *testing.T) {
	m := newTestKidsModel()
	m, _ = m.Update(kidsLoadedMsg{kids: testKids()})
	m.filter = "zzz"

	v := m.View()
	if !strings.Contains(v, "no kids match") {
		t.Errorf("expected no-match message, got:\n%s", v)
	}
}

func TestKidsEmptyListPromptsCreate(t *testing.T) {
	m := newTestKidsModel()
	m, _ = m.Update(kidsLoadedMsg{kids: nil})

	v := m.View()
	if !strings.Contains(v, "press n to add one") {
		t.Errorf("expected create prompt, got:\n%s", v)
	}
}

func TestKidsErrorShowsRetryHint(t *testing.T) {
	m := newTestKidsModel()
	m, _ = m.Update(kidsLoadedMsg{err: errFake})

	v := m.View()
	if !strings.Contains(v, "error") || !strings.Contains(v, "press r to retry") {
		t.Errorf("expected error and retry hint, got:\n%s", v)
	}
}

func TestKidsStaleResponseDropped(t *testing.T) {
	m := newTestKidsModel()
	m.reqID = "current"
	m, _ = m.Update(kidsLoadedMsg{reqID: "stale", kids: testKids()})

	if len(m.kids) != 0 {
		t.Error("expected stale kidsLoadedMsg to be ignored")
	}
}

func TestKidsDeleteRequiresConfirmation(t *testing.T) {
	m := newTestKidsModel()
	m, _ = m.Update(kidsLoadedMsg{kids: testKids()})

	m, cmd := m.Update(keyRunes("d"))
	if cmd != nil {
		t.Fatal("expected no delete command before confirmation")
	}
	if !m.confirming {
		t.Fatal("expected confirming=true after 'd'")
	}

	// Declining cancels.
	m, cmd = m.Update(keyRunes("n"))
	if cmd != nil || m.confirming {
		t.Fatal("expected 'n' to cancel without a command")
	}

	// Confirming issues exactly one delete command.
	m, _ = m.Update(keyRunes("d"))
	_, cmd = m.Update(keyRunes("y"))
	if cmd == nil {
		t.Fatal("expected delete command after 'y'")
	}
}

func TestKidsDeletedReturnsToList(t *testing.T) {
	m := newTestKidsModel()
	m, _ = m.Update(kidsLoadedMsg{kids: testKids()})
	m.confirming = true

	m, cmd := m.Update(kidDeletedMsg{})
	if m.confirming {
		t.Error("expected confirming cleared after delete")
	}
	if m.statusMsg != "deleted" {
		t.Errorf("statusMsg = %q, want %q", m.statusMsg, "deleted")
	}
	if cmd == nil {
		t.Error("expected a reload command after delete")
	}
}

func TestKidsFormValidationRequiresName(t *testing.T) {
	m := newTestKidsModel()
	m, _ = m.Update(kidsLoadedMsg{kids: nil})
	m, _ = m.Update(keyRunes("n"))
	if m.mode != kidsModeForm {
		t.Fatal("expected form mode after 'n'")
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("expected no save command for an empty name")
	}
	if m.form.statusMsg != "name is required" {
		t.Errorf("statusMsg = %q, want %q", m.form.statusMsg, "name is required")
	}
}

func TestKidsFailedSaveKeepsFormValues(t *testing.T) {
	m := newTestKidsModel()
	m.mode = kidsModeForm
	m.form = editKidForm(view.Kid{ID: "1", Name: "Emily Smith", ParentPhone: "555"})
	m.form.submitting = true

	m, _ = m.Update(kidSavedMsg{err: errFake})

	if m.mode != kidsModeForm {
		t.Error("expected to stay in form mode after a failed save")
	}
	if m.form.fields[kfName] != "Emily Smith" {
		t.Errorf("name field = %q, want preserved value", m.form.fields[kfName])
	}
	if !strings.Contains(m.form.statusMsg, "save failed") {
		t.Errorf("statusMsg = %q, want save failure", m.form.statusMsg)
	}
}

func TestKidsDetailShowsParties(t *testing.T) {
	m := newTestKidsModel()
	m, _ = m.Update(kidsLoadedMsg{kids: testKids()})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != kidsModeDetail {
		t.Fatal("expected detail mode after enter")
	}

	m, _ = m.Update(kidDetailMsg{
		reqID: m.reqID,
		kid:   testKids()[0],
		parties: []view.Party{
			{ID: "9", KidID: "1", Date: "2026-07-04", StartTime: "13:00", EndTime: "16:00", PackageType: "premium", Status: "upcoming"},
		},
	})

	v := m.View()
	if !strings.Contains(v, "Emily Smith") {
		t.Errorf("expected kid name in detail, got:\n%s", v)
	}
	if !strings.Contains(v, "premium") {
		t.Errorf("expected booked party in detail, got:\n%s", v)
	}
}

func TestKidsCopyPhoneSendsCommand(t *testing.T) {
	m := newTestKidsModel()
	m, _ = m.Update(kidsLoadedMsg{kids: testKids()})

	_, cmd := m.Update(keyRunes("c"))
	if cmd == nil {
		t.Error("expected copy to return a command")
	}
}

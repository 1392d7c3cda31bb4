package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bcacic/joyful-playroom-manager/pkg/view"
)

func newTestPartiesModel() partiesModel {
	m := newPartiesModel(newBackend(nil))
	m.width = 100
	m.height = 30
	m.loading = false
	return m
}

func testParties() []view.Party {
	return []view.Party{
		{ID: "1", KidID: "1", Date: "2026-07-04", StartTime: "13:00", EndTime: "16:00",
			PackageType: "premium", GuestCount: 15, Status: "upcoming", Price: 300, Deposit: 100},
		{ID: "2", KidID: "2", Date: "2026-06-20", StartTime: "10:00", EndTime: "13:00",
			PackageType: "standard", GuestCount: 10, Status: "completed", Price: 200, Deposit: 50, DepositPaid: true},
		{ID: "3", KidID: "3", Date: "2026-08-15", StartTime: "14:00", EndTime: "17:00",
			PackageType: "basic", GuestCount: 8, Status: "cancelled", Price: 150, Deposit: 50},
	}
}

func loadedTestParties(m partiesModel) partiesModel {
	m, _ = m.Update(partiesLoadedMsg{parties: testParties(), kids: testKids()})
	return m
}

func TestPartiesListRendersRows(t *testing.T) {
	m := loadedTestParties(newTestPartiesModel())

	v := m.View()
	for _, want := range []string{"Emily Smith", "premium", "upcoming", "$300"} {
		if !strings.Contains(v, want) {
			t.Errorf("expected %q in view, got:\n%s", want, v)
		}
	}
}

func TestPartiesFilterByStatus(t *testing.T) {
	m := loadedTestParties(newTestPartiesModel())
	m.filter = "upcoming"

	rows := m.filtered()
	if len(rows) != 1 || rows[0].ID != "1" {
		t.Errorf("filtered = %v, want only the upcoming party", rows)
	}
}

func TestPartiesFilterByKidName(t *testing.T) {
	m := loadedTestParties(newTestPartiesModel())
	m.filter = "emily"

	rows := m.filtered()
	if len(rows) != 1 || rows[0].KidID != "1" {
		t.Errorf("filtered = %v, want Emily's party", rows)
	}
}

func TestPartiesFilterByDateFragment(t *testing.T) {
	m := loadedTestParties(newTestPartiesModel())
	m.filter = "2026-08"

	rows := m.filtered()
	if len(rows) != 1 || rows[0].ID != "3" {
		t.Errorf("filtered = %v, want the August party", rows)
	}
}

func TestPartiesStaleResponseDropped(t *testing.T) {
	m := newTestPartiesModel()
	m.reqID = "current"
	m, _ = m.Update(partiesLoadedMsg{reqID: "stale", parties: testParties()})

	if len(m.parties) != 0 {
		t.Error("expected stale partiesLoadedMsg to be ignored")
	}
}

func TestPartiesEnterOpensDetail(t *testing.T) {
	m := loadedTestParties(newTestPartiesModel())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != partiesModeDetail {
		t.Fatal("expected detail mode after enter")
	}
	if cmd == nil {
		t.Error("expected a load command for the detail record")
	}

	v := m.View()
	if !strings.Contains(v, "Emily Smith's party") {
		t.Errorf("expected party headline in detail, got:\n%s", v)
	}
	if !strings.Contains(v, "back") {
		t.Errorf("expected back hint in detail, got:\n%s", v)
	}
}

func TestPartiesDetailEscReturnsToList(t *testing.T) {
	m := loadedTestParties(newTestPartiesModel())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != partiesModeList {
		t.Error("expected list mode after esc")
	}
}

func TestPartiesDeleteConfirmFlow(t *testing.T) {
	m := loadedTestParties(newTestPartiesModel())

	m, cmd := m.Update(keyRunes("d"))
	if cmd != nil {
		t.Fatal("expected no command before confirmation")
	}
	if !m.confirming {
		t.Fatal("expected confirming=true after 'd'")
	}

	v := m.View()
	if !strings.Contains(v, "y/n") {
		t.Errorf("expected confirmation prompt, got:\n%s", v)
	}

	_, cmd = m.Update(keyRunes("y"))
	if cmd == nil {
		t.Fatal("expected exactly one delete command after 'y'")
	}
}

func TestPartiesNewOpensPrefilledForm(t *testing.T) {
	m := loadedTestParties(newTestPartiesModel())

	m, _ = m.Update(keyRunes("n"))
	if m.mode != partiesModeForm {
		t.Fatal("expected form mode after 'n'")
	}
	if m.form.id != "" {
		t.Error("expected empty form id for a new booking")
	}
	if m.form.fields[pfStart] != "13:00" || m.form.fields[pfEnd] != "16:00" {
		t.Errorf("expected default times, got %q-%q", m.form.fields[pfStart], m.form.fields[pfEnd])
	}
	if m.form.fields[pfPackage] != "standard" || m.form.fields[pfStatus] != "upcoming" {
		t.Errorf("expected default package/status, got %q/%q", m.form.fields[pfPackage], m.form.fields[pfStatus])
	}
}

func TestPartiesEditOpensFormWithValues(t *testing.T) {
	m := loadedTestParties(newTestPartiesModel())

	m, _ = m.Update(keyRunes("e"))
	if m.mode != partiesModeForm {
		t.Fatal("expected form mode after 'e'")
	}
	if m.form.id != "1" {
		t.Errorf("form id = %q, want %q", m.form.id, "1")
	}
	if m.form.fields[pfDate] != "2026-07-04" {
		t.Errorf("date field = %q, want existing value", m.form.fields[pfDate])
	}
}

func TestPartiesFailedSaveKeepsFormValues(t *testing.T) {
	m := loadedTestParties(newTestPartiesModel())
	m, _ = m.Update(keyRunes("e"))
	m.form.submitting = true

	m, _ = m.Update(partySavedMsg{err: errFake})

	if m.mode != partiesModeForm {
		t.Error("expected to stay in form mode after a failed save")
	}
	if m.form.submitting {
		t.Error("expected submitting cleared")
	}
	if m.form.fields[pfDate] != "2026-07-04" {
		t.Errorf("date field = %q, want preserved value", m.form.fields[pfDate])
	}
	if !strings.Contains(m.form.statusMsg, "save failed") {
		t.Errorf("statusMsg = %q, want save failure", m.form.statusMsg)
	}
}

func TestPartiesSavedReturnsToListAndReloads(t *testing.T) {
	m := loadedTestParties(newTestPartiesModel())
	m, _ = m.Update(keyRunes("e"))

	m, cmd := m.Update(partySavedMsg{})
	if m.mode != partiesModeList {
		t.Error("expected list mode after a successful save")
	}
	if m.statusMsg != "saved!" {
		t.Errorf("statusMsg = %q, want %q", m.statusMsg, "saved!")
	}
	if cmd == nil {
		t.Error("expected a reload command after save")
	}
}

func TestPartiesFormValidation(t *testing.T) {
	m := loadedTestParties(newTestPartiesModel())
	m, _ = m.Update(keyRunes("n"))

	m.form.fields[pfDate] = "july 4th"
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("expected no save command for a malformed date")
	}
	if m.form.statusMsg != "date must be YYYY-MM-DD" {
		t.Errorf("statusMsg = %q", m.form.statusMsg)
	}

	m.form.fields[pfDate] = "2026-07-04"
	m.form.fields[pfStart] = "1pm"
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("expected no save command for a malformed start time")
	}
	if m.form.statusMsg != "start must be HH:MM" {
		t.Errorf("statusMsg = %q", m.form.statusMsg)
	}
}

func TestPartiesFormSubmitsWhenValid(t *testing.T) {
	m := loadedTestParties(newTestPartiesModel())
	m, _ = m.Update(keyRunes("n"))

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("expected a save command for the default form")
	}
	if !m.form.submitting {
		t.Error("expected submitting=true while the save is in flight")
	}
}

func TestPartyFormCyclesEnums(t *testing.T) {
	f := newPartyForm(testKids(), testDay())
	f.focus = pfPackage

	f, _ = f.update(keyRunes("l"))
	if f.fields[pfPackage] != "premium" {
		t.Errorf("package after l = %q, want %q", f.fields[pfPackage], "premium")
	}
	f, _ = f.update(keyRunes("h"))
	f, _ = f.update(keyRunes("h"))
	if f.fields[pfPackage] != "basic" {
		t.Errorf("package after h,h = %q, want %q", f.fields[pfPackage], "basic")
	}

	f.focus = pfPaid
	f, _ = f.update(keyRunes(" "))
	if !f.depositPaid {
		t.Error("expected depositPaid toggled on")
	}
}

func TestPartyFormAssemblesParty(t *testing.T) {
	kids := testKids()
	sortKids(kids)
	f := newPartyForm(kids, testDay())
	f.fields[pfGuests] = "12"
	f.fields[pfPrice] = "250"
	f.fields[pfNotes] = "dinosaur cake"

	p := f.party()
	if p.GuestCount != 12 || p.Price != 250 {
		t.Errorf("party = %+v, want typed numerics", p)
	}
	if p.KidID != kids[0].ID {
		t.Errorf("KidID = %q, want first kid %q", p.KidID, kids[0].ID)
	}
	if p.Notes != "dinosaur cake" {
		t.Errorf("Notes = %q", p.Notes)
	}

	// Unparseable numerics fall back to the standard defaults.
	f.fields[pfGuests] = "lots"
	if got := f.party().GuestCount; got != view.DefaultGuestCount {
		t.Errorf("GuestCount fallback = %d, want %d", got, view.DefaultGuestCount)
	}
}

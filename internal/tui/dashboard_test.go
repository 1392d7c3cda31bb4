package tui

import (
	"strings"
	"testing"
)

func newTestDashboardModel() dashboardModel {
	m := newDashboardModel(newBackend(nil))
	m.width = 80
	m.height = 24
	m.loading = false
	return m
}

func TestDashboardStats(t *testing.T) {
	m := newTestDashboardModel()
	m, _ = m.Update(partiesLoadedMsg{parties: testParties(), kids: testKids()})

	if got := len(m.upcoming()); got != 1 {
		t.Errorf("upcoming = %d, want 1", got)
	}
	// Revenue excludes the cancelled booking: 300 + 200.
	if got := m.revenue(); got != 500 {
		t.Errorf("revenue = %v, want 500", got)
	}
}

func TestDashboardRendersTilesAndUpcoming(t *testing.T) {
	m := newTestDashboardModel()
	m, _ = m.Update(partiesLoadedMsg{parties: testParties(), kids: testKids()})

	v := m.View()
	for _, want := range []string{"parties", "upcoming", "kids", "booked", "$500", "Emily Smith"} {
		if !strings.Contains(v, want) {
			t.Errorf("expected %q in dashboard, got:\n%s", want, v)
		}
	}
}

func TestDashboardEmptyCalendar(t *testing.T) {
	m := newTestDashboardModel()
	m, _ = m.Update(partiesLoadedMsg{})

	v := m.View()
	if !strings.Contains(v, "nothing on the calendar") {
		t.Errorf("expected empty-calendar message, got:\n%s", v)
	}
}

func TestDashboardErrorShowsRetryHint(t *testing.T) {
	m := newTestDashboardModel()
	m, _ = m.Update(partiesLoadedMsg{err: errFake})

	v := m.View()
	if !strings.Contains(v, "press r to retry") {
		t.Errorf("expected retry hint, got:\n%s", v)
	}
}

func TestDashboardStaleResponseDropped(t *testing.T) {
	m := newTestDashboardModel()
	m.reqID = "current"
	m, _ = m.Update(partiesLoadedMsg{reqID: "stale", parties: testParties()})

	if len(m.parties) != 0 {
		t.Error("expected stale response to be ignored")
	}
}

func TestDashboardUpcomingSortedByDate(t *testing.T) {
	m := newTestDashboardModel()
	parties := testParties()
	parties[1].Status = "upcoming" // 2026-06-20, earlier than the July one
	m, _ = m.Update(partiesLoadedMsg{parties: parties, kids: testKids()})

	up := m.upcoming()
	if len(up) != 2 {
		t.Fatalf("upcoming = %d, want 2", len(up))
	}
	if up[0].Date != "2026-06-20" {
		t.Errorf("first upcoming = %s, want the earlier date", up[0].Date)
	}
}

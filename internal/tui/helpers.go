package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bcacic/joyful-playroom-manager/pkg/view"
)

// timeNow is swapped out in tests that need a fixed clock.
var timeNow = time.Now

// sortKids orders kids alphabetically for stable display and cycling.
func sortKids(kids []view.Kid) {
	sort.Slice(kids, func(i, j int) bool { return kids[i].Name < kids[j].Name })
}

// truncStr truncates a string to maxLen runes, appending an ellipsis if needed.
func truncStr(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + "…"
}

// formatMoney renders an amount the way the booking sheets show it.
func formatMoney(amount float64) string {
	if amount == float64(int(amount)) {
		return fmt.Sprintf("$%d", int(amount))
	}
	return fmt.Sprintf("$%.2f", amount)
}

// formatDay renders a view date as a short human label, e.g. "Sat, Jul 4".
// Unparseable dates pass through unchanged.
func formatDay(date string) string {
	t, err := time.Parse(view.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Mon, Jan 2")
}

// containsFold reports whether s contains substr, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// partySummary builds the one-line clipboard text for a booking.
func partySummary(p view.Party, kidName string) string {
	name := kidName
	if name == "" {
		name = "kid #" + p.KidID
	}
	summary := fmt.Sprintf("%s — %s %s-%s, %s package, %d guests, %s",
		name, formatDay(p.Date), p.StartTime, p.EndTime, p.PackageType, p.GuestCount, formatMoney(p.Price))
	if p.Notes != "" {
		summary += " (" + p.Notes + ")"
	}
	return summary
}

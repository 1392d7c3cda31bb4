package view

import "time"

// Display layouts used by the screens and forms.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// instantLayouts are the timestamp shapes the booking service has been seen
// emitting. It is not strict about offsets, so we try from most to least
// specific.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseInstant parses a wire timestamp. ok is false when the value is empty
// or matches none of the known layouts; callers degrade to a default rather
// than failing.
func parseInstant(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// isoInstant formats an instant the way the service expects to receive it.
func isoInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

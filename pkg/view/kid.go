package view

import (
	"strconv"
	"strings"
	"time"

	"github.com/bcacic/joyful-playroom-manager/pkg/domain"
)

// Kid is the shape the screens render for a profile record. It is richer
// than the wire Profile: the name is a single display string, the age is
// derived from the birth date, and every optional field carries a value.
type Kid struct {
	ID          string
	Name        string
	Age         int
	ParentName  string
	ParentPhone string
	Notes       string
	CreatedAt   string
	UpdatedAt   string
}

// KidFromWire translates a wire Profile into its view shape. The mapping
// never fails: missing or malformed fields degrade to defaults (age 0,
// empty notes, timestamps of now).
func KidFromWire(p domain.Profile, now time.Time) Kid {
	age := 0
	if birth, ok := parseInstant(p.BirthDate); ok {
		age = ageAt(birth, now)
	}

	nowISO := isoInstant(now)
	created := p.CreatedAt
	if created == "" {
		created = nowISO
	}
	updated := p.UpdatedAt
	if updated == "" {
		updated = nowISO
	}

	return Kid{
		ID:          idString(p.ID),
		Name:        strings.TrimSpace(p.FirstName + " " + p.LastName),
		Age:         age,
		ParentName:  p.FirstName,
		ParentPhone: p.Phone,
		Notes:       p.Notes,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
}

// KidToWire translates a view Kid back into the wire Profile the service
// accepts. The translation is documentedly lossy: the view carries no email
// (emitted empty) and only a derived age, so the birth date is approximated
// as now. The display name splits at the first space into first/last.
func KidToWire(k Kid, now time.Time) domain.Profile {
	first := k.Name
	last := ""
	if i := strings.Index(k.Name, " "); i >= 0 {
		first = k.Name[:i]
		last = k.Name[i+1:]
	}

	return domain.Profile{
		ID:        idNumber(k.ID),
		FirstName: first,
		LastName:  last,
		Email:     "",
		Phone:     k.ParentPhone,
		BirthDate: isoInstant(now),
		Notes:     k.Notes,
	}
}

// ageAt computes a whole-year age: the year counts only once the birth
// month/day has occurred relative to now.
func ageAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// idString renders a wire identifier for the view; absent becomes "".
func idString(id *int) string {
	if id == nil {
		return ""
	}
	return strconv.Itoa(*id)
}

// idNumber parses a view identifier for the wire; "" and non-numeric
// values are treated as absent (a create rather than an update).
func idNumber(id string) *int {
	if id == "" {
		return nil
	}
	n, err := strconv.Atoi(id)
	if err != nil {
		return nil
	}
	return &n
}

package view

import (
	"strconv"
	"time"

	"github.com/bcacic/joyful-playroom-manager/pkg/domain"
)

// partyDuration is the assumed length of a booking when the wire record
// carries no explicit end instant.
const partyDuration = 3 * time.Hour

// DefaultPartyName is the wire display label used when a party has no notes
// to derive one from.
const DefaultPartyName = "Birthday Party"

// Defaults substituted for fields the wire record omits.
const (
	DefaultGuestCount = 10
	DefaultPrice      = 200
	DefaultDeposit    = 50
)

// Party is the shape the screens render for a booking. The wire's combined
// start/end instants are split into a date plus times of day, and every
// optional field carries a value.
type Party struct {
	ID          string
	KidID       string
	Date        string // DateLayout
	StartTime   string // TimeLayout
	EndTime     string
	PackageType string
	GuestCount  int
	Status      string
	Price       float64
	Deposit     float64
	DepositPaid bool
	Notes       string
	CreatedAt   string
	UpdatedAt   string
}

// PartyFromWire translates a wire Party into its view shape. Out-of-range
// enumeration values fall back to the default rather than leaking into
// rendering code that matches on exactly the known tags. A start instant
// that fails to parse degrades to now.
func PartyFromWire(p domain.Party, now time.Time) Party {
	start, ok := parseInstant(p.StartsAt)
	if !ok {
		start = now
	}

	end, ok := parseInstant(p.EndsAt)
	if !ok {
		end = start.Add(partyDuration)
	}

	pkg := p.Package
	if !domain.ValidPackage(pkg) {
		pkg = domain.DefaultPackage
	}
	status := p.Status
	if !domain.ValidStatus(status) {
		status = domain.DefaultStatus
	}

	guests := DefaultGuestCount
	if p.GuestCount != nil {
		guests = *p.GuestCount
	}
	price := float64(DefaultPrice)
	if p.Price != nil {
		price = *p.Price
	}
	deposit := float64(DefaultDeposit)
	if p.Deposit != nil {
		deposit = *p.Deposit
	}
	paid := false
	if p.DepositPaid != nil {
		paid = *p.DepositPaid
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

	kidID := ""
	if p.ProfileID != 0 {
		kidID = strconv.Itoa(p.ProfileID)
	}

	return Party{
		ID:          idString(p.ID),
		KidID:       kidID,
		Date:        start.Format(DateLayout),
		StartTime:   start.Format(TimeLayout),
		EndTime:     end.Format(TimeLayout),
		PackageType: pkg,
		GuestCount:  guests,
		Status:      status,
		Price:       price,
		Deposit:     deposit,
		DepositPaid: paid,
		Notes:       p.Notes,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
}

// PartyToWire translates a view Party back into the wire record. Date and
// start time combine into one instant; an explicit end instant is emitted
// only when both date and end time are present. The wire display label is
// the notes text, or DefaultPartyName when there are none.
func PartyToWire(p Party, now time.Time) domain.Party {
	start := combineInstant(p.Date, p.StartTime, now)

	endsAt := ""
	if p.Date != "" && p.EndTime != "" {
		endsAt = isoInstant(combineInstant(p.Date, p.EndTime, now))
	}

	name := p.Notes
	if name == "" {
		name = DefaultPartyName
	}

	pkg := p.PackageType
	if !domain.ValidPackage(pkg) {
		pkg = domain.DefaultPackage
	}
	status := p.Status
	if !domain.ValidStatus(status) {
		status = domain.DefaultStatus
	}

	profileID := 0
	if n, err := strconv.Atoi(p.KidID); err == nil {
		profileID = n
	}

	guests := p.GuestCount
	price := p.Price
	deposit := p.Deposit
	paid := p.DepositPaid

	return domain.Party{
		ID:          idNumber(p.ID),
		ProfileID:   profileID,
		Name:        name,
		StartsAt:    isoInstant(start),
		EndsAt:      endsAt,
		Package:     pkg,
		GuestCount:  &guests,
		Status:      status,
		Price:       &price,
		Deposit:     &deposit,
		DepositPaid: &paid,
		Notes:       p.Notes,
	}
}

// combineInstant builds a single instant from a view date and time of day.
// A missing or malformed date degrades to now; a malformed time leaves the
// clock at midnight.
func combineInstant(date, clock string, now time.Time) time.Time {
	d, ok := parseInstant(date)
	if !ok {
		d = now
	}
	t, err := time.Parse(TimeLayout, clock)
	if err != nil {
		return d
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, d.Location())
}

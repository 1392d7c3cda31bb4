package domain

// Party is a scheduled booking as the service transmits it. It references
// exactly one Profile via "slavljenikSifra"; referential integrity is the
// service's job, not ours. Optional numeric and boolean fields are pointers
// so that "absent on the wire" stays distinguishable from a zero value.
type Party struct {
	ID          *int     `json:"sifra,omitempty"`
	ProfileID   int      `json:"slavljenikSifra"`
	Name        string   `json:"ime"`
	StartsAt    string   `json:"datum"`
	EndsAt      string   `json:"krajDatum,omitempty"`
	Package     string   `json:"paket,omitempty"`
	GuestCount  *int     `json:"brojGostiju,omitempty"`
	Status      string   `json:"status,omitempty"`
	Price       *float64 `json:"cijena,omitempty"`
	Deposit     *float64 `json:"kapara,omitempty"`
	DepositPaid *bool    `json:"kaparaPlacena,omitempty"`
	Notes       string   `json:"napomena,omitempty"`
	CreatedAt   string   `json:"datumKreiranja,omitempty"`
	UpdatedAt   string   `json:"datumAzuriranja,omitempty"`
}

// Valid package tiers, lowest to highest.
var ValidPackages = []string{
	"basic",
	"standard",
	"premium",
}

// Valid party statuses.
var ValidStatuses = []string{
	"upcoming",
	"completed",
	"cancelled",
}

// Defaults substituted when a wire record omits the field.
const (
	DefaultPackage = "standard"
	DefaultStatus  = "upcoming"
)

var validPackageSet = func() map[string]bool {
	m := make(map[string]bool, len(ValidPackages))
	for _, p := range ValidPackages {
		m[p] = true
	}
	return m
}()

var validStatusSet = func() map[string]bool {
	m := make(map[string]bool, len(ValidStatuses))
	for _, s := range ValidStatuses {
		m[s] = true
	}
	return m
}()

// ValidPackage returns true if the given tier is a known package tier.
func ValidPackage(pkg string) bool {
	return validPackageSet[pkg]
}

// ValidStatus returns true if the given status is a known party status.
func ValidStatus(status string) bool {
	return validStatusSet[status]
}

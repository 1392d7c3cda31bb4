package domain

// Profile is a guest-of-honor record as the booking service transmits it.
// Field names on the wire are the service's own (Serbian); the service
// assigns "sifra" on create.
type Profile struct {
	ID        *int   `json:"sifra,omitempty"`
	FirstName string `json:"ime"`
	LastName  string `json:"prezime"`
	Email     string `json:"email"`
	Phone     string `json:"telefon"`
	BirthDate string `json:"datum,omitempty"`
	Notes     string `json:"napomena,omitempty"`
	CreatedAt string `json:"datumKreiranja,omitempty"`
	UpdatedAt string `json:"datumAzuriranja,omitempty"`
}

package business

import "github.com/google/uuid"

// PartyType distinguishes VAT-registered businesses from individuals.
type PartyType string

const (
	PartyTypeBusiness   PartyType = "business"
	PartyTypeIndividual PartyType = "individual"
)

// Party is either the sending company or a receiving client. The external
// legal-entity id and the PEPPOL identifier are filled in lazily, the first
// time a submission needs them, and persisted back for reuse.
type Party struct {
	ID        uuid.UUID
	Type      PartyType
	Name      string
	Email     string
	Street    string
	Number    string
	Extension string
	Postcode  string
	City      string
	Country   string // ISO 3166-1 alpha-2
	VATNumber string
	IBAN      string // set on the sending company only

	LegalEntityID    *int64
	PeppolIdentifier *PeppolIdentifier
}

// PeppolIdentifier addresses a legal entity on the PEPPOL network.
type PeppolIdentifier struct {
	Superscheme string `json:"superscheme"`
	Scheme      string `json:"scheme"`
	Identifier  string `json:"identifier"`
}

// PeppolSuperscheme is the only superscheme in use for VAT-based routing.
const PeppolSuperscheme = "iso6523-actorid-upis"

// PeppolEligible reports whether the party can receive a PEPPOL identifier.
// A party without country and VAT number cannot.
func (p *Party) PeppolEligible() bool {
	return p.Type == PartyTypeBusiness && p.VATNumber != "" && p.Country != ""
}

// VATScheme returns the "<country>:VAT" scheme for the party, e.g. "BE:VAT".
func (p *Party) VATScheme() string {
	return p.Country + ":VAT"
}

package requests

import (
	"fmt"
	"time"

	"facturo-api/internal/types/business"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SendInvoiceRequest is the inbound create-and-send trigger, denormalized
// the way the UI stores it.
type SendInvoiceRequest struct {
	Invoice         InvoicePayload    `json:"invoice" binding:"required"`
	Client          PartyPayload      `json:"client" binding:"required"`
	Items           []LineItemPayload `json:"items" binding:"required"`
	CompanySettings CompanyPayload    `json:"companySettings" binding:"required"`

	PDFBase64             string `json:"pdfBase64"`
	PDFURL                string `json:"pdfUrl"`
	TermsAndConditionsURL string `json:"termsAndConditionsUrl"`
	YukiEmail             string `json:"yukiEmail"`
}

// InvoicePayload carries the invoice header fields. Dates are ISO
// "2006-01-02" strings.
type InvoicePayload struct {
	ID           uuid.UUID `json:"id" binding:"required"`
	Number       string    `json:"number" binding:"required"`
	IssueDate    string    `json:"issueDate" binding:"required"`
	DueDate      string    `json:"dueDate"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes"`
	IsCreditNote bool      `json:"isCreditNote"`
}

// PartyPayload carries a receiving client.
type PartyPayload struct {
	ID               uuid.UUID                  `json:"id" binding:"required"`
	Type             string                     `json:"type"`
	Name             string                     `json:"name" binding:"required"`
	Email            string                     `json:"email"`
	Street           string                     `json:"street"`
	Number           string                     `json:"number"`
	Extension        string                     `json:"extension"`
	Postcode         string                     `json:"postcode"`
	City             string                     `json:"city"`
	Country          string                     `json:"country"`
	VATNumber        string                     `json:"vatNumber"`
	LegalEntityID    *int64                     `json:"legalEntityId"`
	PeppolIdentifier *business.PeppolIdentifier `json:"peppolIdentifier"`
}

// CompanyPayload carries the sending company's settings.
type CompanyPayload struct {
	ID               uuid.UUID                  `json:"id" binding:"required"`
	Name             string                     `json:"companyName" binding:"required"`
	Email            string                     `json:"email"`
	Street           string                     `json:"street"`
	Number           string                     `json:"number"`
	Extension        string                     `json:"extension"`
	Postcode         string                     `json:"postcode"`
	City             string                     `json:"city"`
	Country          string                     `json:"country"`
	VATNumber        string                     `json:"vatNumber"`
	IBAN             string                     `json:"iban"`
	LegalEntityID    *int64                     `json:"legalEntityId"`
	PeppolIdentifier *business.PeppolIdentifier `json:"peppolIdentifier"`
}

// LineItemPayload is one invoice line as the UI sends it.
type LineItemPayload struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	VATRate     string          `json:"vatRate"`
}

// ToInvoice converts the payload into the domain invoice.
func (r *SendInvoiceRequest) ToInvoice() (business.Invoice, error) {
	issueDate, err := time.Parse("2006-01-02", r.Invoice.IssueDate)
	if err != nil {
		return business.Invoice{}, fmt.Errorf("invalid issueDate %q: %w", r.Invoice.IssueDate, err)
	}

	var dueDate time.Time
	if r.Invoice.DueDate != "" {
		dueDate, err = time.Parse("2006-01-02", r.Invoice.DueDate)
		if err != nil {
			return business.Invoice{}, fmt.Errorf("invalid dueDate %q: %w", r.Invoice.DueDate, err)
		}
	}

	status := business.InvoiceStatus(r.Invoice.Status)
	if status == "" {
		status = business.InvoiceStatusDraft
	}

	items := make([]business.LineItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, business.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			VATRate:     item.VATRate,
		})
	}

	return business.Invoice{
		ID:         r.Invoice.ID,
		Number:     r.Invoice.Number,
		IssueDate:  issueDate,
		DueDate:    dueDate,
		Status:     status,
		Notes:      r.Invoice.Notes,
		CreditNote: r.Invoice.IsCreditNote,
		Items:      items,
	}, nil
}

// ToClient converts the client payload into a receiving party.
func (p *PartyPayload) ToClient() business.Party {
	partyType := business.PartyType(p.Type)
	if partyType == "" {
		partyType = business.PartyTypeIndividual
	}
	return business.Party{
		ID:               p.ID,
		Type:             partyType,
		Name:             p.Name,
		Email:            p.Email,
		Street:           p.Street,
		Number:           p.Number,
		Extension:        p.Extension,
		Postcode:         p.Postcode,
		City:             p.City,
		Country:          p.Country,
		VATNumber:        p.VATNumber,
		LegalEntityID:    p.LegalEntityID,
		PeppolIdentifier: p.PeppolIdentifier,
	}
}

// ToCompany converts the settings payload into the sending party.
func (p *CompanyPayload) ToCompany() business.Party {
	return business.Party{
		ID:               p.ID,
		Type:             business.PartyTypeBusiness,
		Name:             p.Name,
		Email:            p.Email,
		Street:           p.Street,
		Number:           p.Number,
		Extension:        p.Extension,
		Postcode:         p.Postcode,
		City:             p.City,
		Country:          p.Country,
		VATNumber:        p.VATNumber,
		IBAN:             p.IBAN,
		LegalEntityID:    p.LegalEntityID,
		PeppolIdentifier: p.PeppolIdentifier,
	}
}

package business

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus tracks an invoice through its local lifecycle. Submission to
// the access point never rolls a status back.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice is the local invoice record as the UI hands it to the pipeline.
type Invoice struct {
	ID         uuid.UUID
	Number     string
	IssueDate  time.Time
	DueDate    time.Time
	Status     InvoiceStatus
	Notes      string
	CreditNote bool
	Items      []LineItem
}

// LineItem is a single invoice line. VATRate is the UI's percentage string,
// e.g. "21%".
type LineItem struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	VATRate     string
}

// Amount is the pre-tax line amount, quantity times unit price, rounded to
// two fraction digits.
func (li LineItem) Amount() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice).Round(2)
}

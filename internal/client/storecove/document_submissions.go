package storecove

import (
	"context"

	"github.com/pkg/errors"
)

// DocumentSubmissionParams is the full e-invoice submission payload. All
// currency values are fixed 2-decimal strings.
type DocumentSubmissionParams struct {
	LegalEntityID         int64    `json:"legalEntityId"`
	ReceiverLegalEntityID int64    `json:"receiverLegalEntityId"`
	Routing               Routing  `json:"routing"`
	Document              Document `json:"document"`
}

// Routing selects the delivery channel: PEPPOL when an e-identifier is
// present, email otherwise.
type Routing struct {
	Emails       []string      `json:"emails,omitempty"`
	EIdentifiers []EIdentifier `json:"eIdentifiers,omitempty"`
}

// EIdentifier routes a document to a legal entity over PEPPOL.
type EIdentifier struct {
	Scheme string `json:"scheme"`
	ID     string `json:"id"`
}

// Document wraps the invoice body with its document type.
type Document struct {
	DocumentType string          `json:"documentType"`
	Invoice      InvoiceDocument `json:"invoice"`
}

// DocumentTypeInvoice is the only document type this system submits.
const DocumentTypeInvoice = "invoice"

// InvoiceDocument is the e-invoice body.
type InvoiceDocument struct {
	InvoiceNumber           string                  `json:"invoiceNumber"`
	IssueDate               string                  `json:"issueDate"`
	DueDate                 string                  `json:"dueDate,omitempty"`
	DocumentCurrencyCode    string                  `json:"documentCurrencyCode"`
	Note                    string                  `json:"note,omitempty"`
	AccountingCustomerParty AccountingCustomerParty `json:"accountingCustomerParty"`
	InvoiceLines            []InvoiceLine           `json:"invoiceLines"`
	TaxSubtotals            []TaxSubtotal           `json:"taxSubtotals"`
	PaymentMeansArray       []PaymentMeans          `json:"paymentMeansArray,omitempty"`
	AmountIncludingVat      string                  `json:"amountIncludingVat"`
}

// AccountingCustomerParty describes the receiving party. PublicIdentifiers
// must carry the same identifier the routing block uses; both describe the
// same legal fact to two regions of the document schema.
type AccountingCustomerParty struct {
	Party             PartyAddress  `json:"party"`
	PublicIdentifiers []EIdentifier `json:"publicIdentifiers,omitempty"`
}

// PartyAddress is the customer's name and postal address.
type PartyAddress struct {
	CompanyName string `json:"companyName"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2,omitempty"`
	Zip         string `json:"zip"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

// InvoiceLine is one pre-tax line of the submitted document.
type InvoiceLine struct {
	Description        string  `json:"description"`
	AmountExcludingVat string  `json:"amountExcludingVat"`
	Tax                LineTax `json:"tax"`
}

// LineTax is the VAT treatment of a single line.
type LineTax struct {
	Percentage float64 `json:"percentage"`
	Country    string  `json:"country"`
	Category   string  `json:"category"`
}

// TaxSubtotal is one (percentage, country, category) tax group.
type TaxSubtotal struct {
	Percentage    float64 `json:"percentage"`
	Country       string  `json:"country"`
	Category      string  `json:"category"`
	TaxableAmount string  `json:"taxableAmount"`
	TaxAmount     string  `json:"taxAmount"`
}

// PaymentMeans tells the receiver how to pay. Only included when the sender
// has an IBAN configured.
type PaymentMeans struct {
	Account string `json:"account"`
	Holder  string `json:"holder"`
	Code    string `json:"code"`
}

// PaymentMeansCreditTransfer is the SEPA credit transfer code.
const PaymentMeansCreditTransfer = "credit_transfer"

// DocumentSubmissionResult is the access point's acknowledgement.
type DocumentSubmissionResult struct {
	GUID string `json:"guid"`
}

// SubmitDocument posts the e-invoice. Non-2xx responses surface as an error
// carrying the external body.
func (c *Client) SubmitDocument(ctx context.Context, params DocumentSubmissionParams) (*DocumentSubmissionResult, error) {
	resp, err := c.http.Post(ctx, "/document_submissions", params)
	if err != nil {
		return nil, errors.Wrap(err, "submit document")
	}

	var result DocumentSubmissionResult
	if err := c.http.ProcessJSONResponse(resp, &result); err != nil {
		return nil, errors.Wrap(err, "decode document submission result")
	}
	return &result, nil
}

package services

import (
	"context"

	"facturo-api/internal/client/storecove"
	"facturo-api/internal/types/business"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// documentCurrency is fixed; currency conversion is out of scope.
const documentCurrency = "EUR"

const dateLayout = "2006-01-02"

// SubmissionService maps an invoice plus resolved identifiers and aggregated
// tax data into the access point's document schema, and submits it.
type SubmissionService struct {
	registry       storecove.API
	logger         *zap.Logger
	defaultCountry string
}

// NewSubmissionService creates a new submission service.
func NewSubmissionService(registry storecove.API, defaultCountry string, logger *zap.Logger) *SubmissionService {
	return &SubmissionService{
		registry:       registry,
		logger:         logger,
		defaultCountry: defaultCountry,
	}
}

// Build assembles the submission payload. Both sides must already carry a
// legal entity id; if one is missing this fails immediately, identifying the
// side, before any external call.
//
// Routing and publicIdentifiers get the same identifier value: the
// receiver's resolved PEPPOL identifier when present, a synthesized VAT
// fallback for VAT-registered businesses, or nothing (email-only delivery).
func (s *SubmissionService) Build(invoice *business.Invoice, sender, receiver *business.Party, summary business.TaxSummary) (*storecove.DocumentSubmissionParams, error) {
	if sender.LegalEntityID == nil {
		return nil, &MissingLegalEntityError{Role: PartyRoleSender}
	}
	if receiver.LegalEntityID == nil {
		return nil, &MissingLegalEntityError{Role: PartyRoleReceiver}
	}

	identifiers := s.routingIdentifiers(receiver)

	routing := storecove.Routing{
		EIdentifiers: identifiers,
	}
	if receiver.Email != "" {
		routing.Emails = []string{receiver.Email}
	}

	country := receiver.Country
	if country == "" {
		country = s.defaultCountry
	}

	lines := make([]storecove.InvoiceLine, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		pct, err := ParseVATRate(item.VATRate)
		if err != nil {
			s.logger.Warn("unparsable VAT rate on submitted line treated as 0%",
				zap.String("invoice_number", invoice.Number),
				zap.String("vat_rate", item.VATRate))
		}
		lines = append(lines, storecove.InvoiceLine{
			Description:        item.Description,
			AmountExcludingVat: item.Amount().StringFixed(2),
			Tax: storecove.LineTax{
				Percentage: pct.InexactFloat64(),
				Country:    country,
				Category:   business.TaxCategoryStandard,
			},
		})
	}

	subtotals := make([]storecove.TaxSubtotal, 0, len(summary.Groups))
	for _, group := range summary.Groups {
		subtotals = append(subtotals, storecove.TaxSubtotal{
			Percentage:    group.Percentage.InexactFloat64(),
			Country:       group.Country,
			Category:      group.Category,
			TaxableAmount: group.TaxableAmount.StringFixed(2),
			TaxAmount:     group.TaxAmount.StringFixed(2),
		})
	}

	document := storecove.InvoiceDocument{
		InvoiceNumber:        invoice.Number,
		IssueDate:            invoice.IssueDate.Format(dateLayout),
		DocumentCurrencyCode: documentCurrency,
		Note:                 invoice.Notes,
		AccountingCustomerParty: storecove.AccountingCustomerParty{
			Party: storecove.PartyAddress{
				CompanyName: receiver.Name,
				Address1:    joinAddress(receiver.Street, receiver.Number),
				Address2:    receiver.Extension,
				Zip:         receiver.Postcode,
				City:        receiver.City,
				Country:     country,
			},
			PublicIdentifiers: identifiers,
		},
		InvoiceLines: lines,
		TaxSubtotals: subtotals,
		// Single source of truth for the total: the aggregator's figure
		// is sent as-is, never recomputed here.
		AmountIncludingVat: summary.TotalIncludingTax.StringFixed(2),
	}
	if !invoice.DueDate.IsZero() {
		document.DueDate = invoice.DueDate.Format(dateLayout)
	}

	// Payment means only when the sender actually has an account to pay
	// into; an empty block is omitted, not sent.
	if sender.IBAN != "" {
		document.PaymentMeansArray = []storecove.PaymentMeans{{
			Account: sender.IBAN,
			Holder:  sender.Name,
			Code:    storecove.PaymentMeansCreditTransfer,
		}}
	}

	return &storecove.DocumentSubmissionParams{
		LegalEntityID:         *sender.LegalEntityID,
		ReceiverLegalEntityID: *receiver.LegalEntityID,
		Routing:               routing,
		Document: storecove.Document{
			DocumentType: storecove.DocumentTypeInvoice,
			Invoice:      document,
		},
	}, nil
}

// Submit posts the document. The external error body rides along on
// failure; the caller decides what a failed submission means for the rest
// of the pipeline.
func (s *SubmissionService) Submit(ctx context.Context, params *storecove.DocumentSubmissionParams) (*storecove.DocumentSubmissionResult, error) {
	result, err := s.registry.SubmitDocument(ctx, *params)
	if err != nil {
		return nil, errors.Wrap(err, "document submission rejected")
	}

	s.logger.Info("document submitted",
		zap.String("guid", result.GUID),
		zap.Int64("sender_legal_entity_id", params.LegalEntityID),
		zap.Int64("receiver_legal_entity_id", params.ReceiverLegalEntityID))

	return result, nil
}

// routingIdentifiers resolves the e-identifier used in both the routing
// block and the customer party's publicIdentifiers.
func (s *SubmissionService) routingIdentifiers(receiver *business.Party) []storecove.EIdentifier {
	if receiver.PeppolIdentifier != nil {
		return []storecove.EIdentifier{{
			Scheme: receiver.PeppolIdentifier.Scheme,
			ID:     receiver.PeppolIdentifier.Identifier,
		}}
	}

	if receiver.Type == business.PartyTypeBusiness && receiver.VATNumber != "" {
		country := receiver.Country
		if country == "" {
			country = s.defaultCountry
		}
		return []storecove.EIdentifier{{
			Scheme: country + ":VAT",
			ID:     receiver.VATNumber,
		}}
	}

	return nil
}

func joinAddress(street, number string) string {
	if number == "" {
		return street
	}
	return street + " " + number
}

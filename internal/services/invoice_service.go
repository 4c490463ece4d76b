package services

import (
	"context"

	"facturo-api/internal/db"
	"facturo-api/internal/types/business"

	"go.uber.org/zap"
)

// InvoiceService runs the create-and-send pipeline: aggregate taxes, resolve
// both parties at the registry, build and submit the document, then notify.
// Submission and notification are independent outcomes; either can fail
// while the other succeeds, and both are reported to the caller.
type InvoiceService struct {
	taxService          *TaxService
	legalEntityService  *LegalEntityService
	submissionService   *SubmissionService
	notificationService *NotificationService
	queries             db.Querier
	logger              *zap.Logger
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(
	taxService *TaxService,
	legalEntityService *LegalEntityService,
	submissionService *SubmissionService,
	notificationService *NotificationService,
	queries db.Querier,
	logger *zap.Logger,
) *InvoiceService {
	return &InvoiceService{
		taxService:          taxService,
		legalEntityService:  legalEntityService,
		submissionService:   submissionService,
		notificationService: notificationService,
		queries:             queries,
		logger:              logger,
	}
}

// SendInvoiceParams is the inbound trigger payload, denormalized the way
// the UI hands it over.
type SendInvoiceParams struct {
	Invoice business.Invoice
	Client  business.Party
	Company business.Party

	PDFBase64             string
	PDFURL                string
	TermsAndConditionsURL string
	YukiEmail             string
}

// SendInvoiceResult reports both pipeline outcomes. "Submitted, email
// failed" and "email sent, submission failed" are distinct valid states.
type SendInvoiceResult struct {
	Submitted       bool
	SubmissionGUID  string
	SubmissionError string
	EmailSent       bool
	EmailError      string
	Warnings        []string
}

// SendInvoice runs the pipeline. Fatal stages (tax aggregation never fails;
// party resolution and document build can) abort before any email goes out;
// a rejected submission does not, the email is attempted regardless.
func (s *InvoiceService) SendInvoice(ctx context.Context, p *SendInvoiceParams) (*SendInvoiceResult, error) {
	summary := s.taxService.Aggregate(p.Invoice.Items, p.Client.Country)

	senderResult, err := s.legalEntityService.ResolveSender(ctx, &p.Company)
	if err != nil {
		return nil, err
	}

	receiverResult, err := s.legalEntityService.ResolveReceiver(ctx, &p.Client)
	if err != nil {
		return nil, err
	}

	result := &SendInvoiceResult{}
	result.Warnings = append(result.Warnings, senderResult.Warnings...)
	result.Warnings = append(result.Warnings, receiverResult.Warnings...)

	submission, err := s.submissionService.Build(&p.Invoice, &p.Company, &p.Client, summary)
	if err != nil {
		return nil, err
	}

	submitted, err := s.submissionService.Submit(ctx, submission)
	if err != nil {
		result.SubmissionError = err.Error()
		if body := ExternalErrorBody(err); body != "" {
			result.SubmissionError = body
		}
		s.logger.Error("document submission failed, continuing to email",
			zap.String("invoice_number", p.Invoice.Number),
			zap.Error(err))
	} else {
		result.Submitted = true
		result.SubmissionGUID = submitted.GUID
		s.markPending(ctx, &p.Invoice)
	}

	delivery, err := s.notificationService.SendInvoiceEmail(ctx, InvoiceEmailParams{
		ClientName:            p.Client.Name,
		ClientEmail:           p.Client.Email,
		InvoiceNumber:         p.Invoice.Number,
		PDFURL:                p.PDFURL,
		PDFBase64:             p.PDFBase64,
		TermsAndConditionsURL: p.TermsAndConditionsURL,
		CompanyName:           p.Company.Name,
		YukiEmail:             p.YukiEmail,
		IsCreditNote:          p.Invoice.CreditNote,
	})
	if err != nil {
		result.EmailError = err.Error()
		s.logger.Error("invoice email failed",
			zap.String("invoice_number", p.Invoice.Number),
			zap.Error(err))
	} else {
		result.EmailSent = true
		s.logger.Info("invoice email delivered",
			zap.String("invoice_number", p.Invoice.Number),
			zap.String("email_id", delivery.EmailID))
	}

	return result, nil
}

// markPending records the successful submission locally. The document is
// already accepted remotely, so a failed status write is logged, not
// propagated.
func (s *InvoiceService) markPending(ctx context.Context, invoice *business.Invoice) {
	if invoice.Status != business.InvoiceStatusDraft {
		return
	}
	err := s.queries.UpdateInvoiceStatus(ctx, db.UpdateInvoiceStatusParams{
		InvoiceID: invoice.ID,
		Status:    business.InvoiceStatusPending,
	})
	if err != nil {
		s.logger.Error("failed to mark invoice pending",
			zap.String("invoice_id", invoice.ID.String()),
			zap.Error(err))
	}
}

package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"

	httpclient "facturo-api/internal/client/http"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// EmailSender is the slice of the Resend client the dispatcher uses.
// Satisfied by resend.Client.Emails; faked in tests.
type EmailSender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// NotificationService sends the invoice email with whatever attachments it
// managed to gather. Attachment failures never fail the send; dispatch
// failures never touch the submission outcome.
type NotificationService struct {
	sender EmailSender
	http   *httpclient.Client
	logger *zap.Logger

	fromEmail           string
	fromName            string
	accountingCopyEmail string
	maxAttachmentBytes  int64
}

// NewNotificationService creates a new notification service.
func NewNotificationService(sender EmailSender, fetcher *httpclient.Client, fromEmail, fromName, accountingCopyEmail string, maxAttachmentBytes int64, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		sender:              sender,
		http:                fetcher,
		logger:              logger,
		fromEmail:           fromEmail,
		fromName:            fromName,
		accountingCopyEmail: accountingCopyEmail,
		maxAttachmentBytes:  maxAttachmentBytes,
	}
}

// InvoiceEmailParams is the email boundary payload.
type InvoiceEmailParams struct {
	ClientName            string
	ClientEmail           string
	InvoiceNumber         string
	PDFURL                string
	PDFBase64             string
	TermsAndConditionsURL string
	CompanyName           string
	YukiEmail             string
	IsCreditNote          bool
}

// DeliveryResult reports a successful dispatch.
type DeliveryResult struct {
	EmailID         string
	AttachmentCount int
}

// SendInvoiceEmail delivers the invoice email. Inline base64 PDF content is
// preferred over fetching the PDF URL; a configured terms document is
// attached only when it fits the size cap. The email goes out with whatever
// attachments succeeded, including zero.
func (s *NotificationService) SendInvoiceEmail(ctx context.Context, p InvoiceEmailParams) (*DeliveryResult, error) {
	attachments := s.collectAttachments(ctx, p)

	docWord := "invoice"
	subjectWord := "Invoice"
	if p.IsCreditNote {
		docWord = "credit note"
		subjectWord = "Credit note"
	}
	subject := fmt.Sprintf("%s %s from %s", subjectWord, p.InvoiceNumber, p.CompanyName)

	htmlBody, err := renderInvoiceEmail(p, docWord)
	if err != nil {
		return nil, &NotificationError{Err: err}
	}

	to := []string{p.ClientEmail}
	accountingCopy := p.YukiEmail
	if accountingCopy == "" {
		accountingCopy = s.accountingCopyEmail
	}
	if accountingCopy != "" {
		to = append(to, accountingCopy)
	}

	request := &resend.SendEmailRequest{
		From:        fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:          to,
		Subject:     subject,
		Html:        htmlBody,
		Text:        fmt.Sprintf("Dear %s,\n\nPlease find attached %s %s from %s.\n\nKind regards,\n%s", p.ClientName, docWord, p.InvoiceNumber, p.CompanyName, p.CompanyName),
		Attachments: attachments,
		Tags: []resend.Tag{
			{Name: "category", Value: "invoice"},
		},
	}

	sent, err := s.sender.Send(request)
	if err != nil {
		s.logger.Error("failed to send invoice email",
			zap.Strings("to", to),
			zap.String("invoice_number", p.InvoiceNumber),
			zap.Error(err))
		return nil, &NotificationError{Err: err}
	}

	s.logger.Info("invoice email sent",
		zap.String("email_id", sent.Id),
		zap.Strings("to", to),
		zap.String("invoice_number", p.InvoiceNumber),
		zap.Int("attachments", len(attachments)))

	return &DeliveryResult{EmailID: sent.Id, AttachmentCount: len(attachments)}, nil
}

// collectAttachments gathers the PDF and the terms document, best effort.
func (s *NotificationService) collectAttachments(ctx context.Context, p InvoiceEmailParams) []*resend.Attachment {
	var attachments []*resend.Attachment

	pdfName := fmt.Sprintf("%s.pdf", p.InvoiceNumber)
	switch {
	case p.PDFBase64 != "":
		content, err := base64.StdEncoding.DecodeString(p.PDFBase64)
		if err != nil {
			s.logger.Warn("invalid inline PDF content, sending without it",
				zap.String("invoice_number", p.InvoiceNumber),
				zap.Error(err))
		} else {
			attachments = append(attachments, &resend.Attachment{Filename: pdfName, Content: content})
		}
	case p.PDFURL != "":
		content, err := s.fetch(ctx, p.PDFURL, 0)
		if err != nil {
			s.logger.Warn("failed to fetch invoice PDF, sending without it",
				zap.String("invoice_number", p.InvoiceNumber),
				zap.String("url", p.PDFURL),
				zap.Error(err))
		} else {
			attachments = append(attachments, &resend.Attachment{Filename: pdfName, Content: content})
		}
	}

	if p.TermsAndConditionsURL != "" {
		content, err := s.fetch(ctx, p.TermsAndConditionsURL, s.maxAttachmentBytes)
		if err != nil {
			// Oversized or unreachable terms documents are skipped, not
			// an error.
			s.logger.Warn("skipping terms and conditions attachment",
				zap.String("url", p.TermsAndConditionsURL),
				zap.Error(err))
		} else {
			attachments = append(attachments, &resend.Attachment{Filename: "terms-and-conditions.pdf", Content: content})
		}
	}

	return attachments
}

// fetch downloads a document. A maxBytes of 0 means unlimited; otherwise a
// body larger than the cap is an error.
func (s *NotificationService) fetch(ctx context.Context, url string, maxBytes int64) ([]byte, error) {
	resp, err := s.http.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if maxBytes <= 0 {
		return io.ReadAll(resp.Body)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(content)) > maxBytes {
		return nil, fmt.Errorf("document exceeds %d bytes", maxBytes)
	}
	return content, nil
}

var invoiceEmailTemplate = template.Must(template.New("invoice_email").Parse(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #f4f4f4; padding: 20px; text-align: center; }
        .content { padding: 20px; }
        .footer { text-align: center; padding: 20px; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>{{.Heading}}</h2>
        </div>
        <div class="content">
            <p>Dear {{.ClientName}},</p>
            <p>Please find attached {{.DocWord}} <strong>{{.InvoiceNumber}}</strong> from {{.CompanyName}}.</p>
            <p>If you have any questions about this {{.DocWord}}, just reply to this email.</p>
            <p>Kind regards,<br>{{.CompanyName}}</p>
        </div>
        <div class="footer">
            <p>This message was sent by {{.CompanyName}}.</p>
        </div>
    </div>
</body>
</html>`))

func renderInvoiceEmail(p InvoiceEmailParams, docWord string) (string, error) {
	heading := "Your invoice"
	if p.IsCreditNote {
		heading = "Your credit note"
	}

	var buf bytes.Buffer
	err := invoiceEmailTemplate.Execute(&buf, struct {
		Heading       string
		ClientName    string
		InvoiceNumber string
		CompanyName   string
		DocWord       string
	}{
		Heading:       heading,
		ClientName:    p.ClientName,
		InvoiceNumber: p.InvoiceNumber,
		CompanyName:   p.CompanyName,
		DocWord:       docWord,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

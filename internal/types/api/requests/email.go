package requests

// InvoiceEmailRequest is the standalone email boundary, used by the UI to
// resend an invoice email without a new submission.
type InvoiceEmailRequest struct {
	ClientName            string `json:"clientName" binding:"required"`
	ClientEmail           string `json:"clientEmail" binding:"required,email"`
	InvoiceNumber         string `json:"invoiceNumber" binding:"required"`
	PDFURL                string `json:"pdfUrl"`
	PDFBase64             string `json:"pdfBase64"`
	TermsAndConditionsURL string `json:"termsAndConditionsUrl"`
	CompanyName           string `json:"companyName" binding:"required"`
	YukiEmail             string `json:"yukiEmail"`
	IsCreditNote          bool   `json:"isCreditNote"`
}

package responses

// SendInvoiceResponse reports both independent pipeline outcomes. The UI
// renders "submitted, email failed" and "email sent, submission failed" as
// distinct states from these fields.
type SendInvoiceResponse struct {
	Success         bool            `json:"success"`
	Data            *SubmissionData `json:"data,omitempty"`
	EmailSent       bool            `json:"emailSent"`
	SubmissionError string          `json:"submissionError,omitempty"`
	EmailError      string          `json:"emailError,omitempty"`
	Warnings        []string        `json:"warnings,omitempty"`
}

// SubmissionData is the accepted submission's external reference.
type SubmissionData struct {
	GUID string `json:"guid"`
}

// SendInvoiceError is the structured pipeline error. The missing-side flags
// let the UI point at the record that needs registration.
type SendInvoiceError struct {
	Error                     string   `json:"error"`
	MissingCompanyLegalEntity bool     `json:"missingCompanyLegalEntity,omitempty"`
	MissingClientLegalEntity  bool     `json:"missingClientLegalEntity,omitempty"`
	MissingFields             []string `json:"missingFields,omitempty"`
}

// EmailResponse is the standalone email boundary result.
type EmailResponse struct {
	Success     bool   `json:"success"`
	EmailID     string `json:"data,omitempty"`
	Error       string `json:"error,omitempty"`
	Attachments int    `json:"attachments"`
}

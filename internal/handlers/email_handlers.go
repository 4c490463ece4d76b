package handlers

import (
	"net/http"

	"facturo-api/internal/services"
	"facturo-api/internal/types/api/requests"
	"facturo-api/internal/types/api/responses"

	"github.com/gin-gonic/gin"
)

// EmailHandler exposes the standalone invoice-email boundary.
type EmailHandler struct {
	notificationService *services.NotificationService
}

// NewEmailHandler creates a new email handler.
func NewEmailHandler(notificationService *services.NotificationService) *EmailHandler {
	return &EmailHandler{notificationService: notificationService}
}

// SendInvoiceEmail delivers (or re-delivers) an invoice email without a new
// document submission.
func (h *EmailHandler) SendInvoiceEmail(c *gin.Context) {
	var req requests.InvoiceEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.notificationService.SendInvoiceEmail(c.Request.Context(), services.InvoiceEmailParams{
		ClientName:            req.ClientName,
		ClientEmail:           req.ClientEmail,
		InvoiceNumber:         req.InvoiceNumber,
		PDFURL:                req.PDFURL,
		PDFBase64:             req.PDFBase64,
		TermsAndConditionsURL: req.TermsAndConditionsURL,
		CompanyName:           req.CompanyName,
		YukiEmail:             req.YukiEmail,
		IsCreditNote:          req.IsCreditNote,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, responses.EmailResponse{Success: false, Error: err.Error()})
		return
	}

	sendSuccess(c, http.StatusOK, responses.EmailResponse{
		Success:     true,
		EmailID:     result.EmailID,
		Attachments: result.AttachmentCount,
	})
}

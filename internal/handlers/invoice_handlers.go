package handlers

import (
	"errors"
	"net/http"

	"facturo-api/internal/logger"
	"facturo-api/internal/services"
	"facturo-api/internal/types/api/requests"
	"facturo-api/internal/types/api/responses"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler exposes the create-and-send pipeline.
type InvoiceHandler struct {
	invoiceService *services.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(invoiceService *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// SendInvoice triggers the full pipeline for one invoice. Stage failures
// come back as a structured error naming the failed stage; a rejected
// submission or failed email is not an HTTP error, both outcomes ride on
// the 200 response.
func (h *InvoiceHandler) SendInvoice(c *gin.Context) {
	var req requests.SendInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	invoice, err := req.ToInvoice()
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	params := &services.SendInvoiceParams{
		Invoice:               invoice,
		Client:                req.Client.ToClient(),
		Company:               req.CompanySettings.ToCompany(),
		PDFBase64:             req.PDFBase64,
		PDFURL:                req.PDFURL,
		TermsAndConditionsURL: req.TermsAndConditionsURL,
		YukiEmail:             req.YukiEmail,
	}

	result, err := h.invoiceService.SendInvoice(c.Request.Context(), params)
	if err != nil {
		h.sendPipelineError(c, err)
		return
	}

	response := responses.SendInvoiceResponse{
		Success:         result.Submitted,
		EmailSent:       result.EmailSent,
		SubmissionError: result.SubmissionError,
		EmailError:      result.EmailError,
		Warnings:        result.Warnings,
	}
	if result.Submitted {
		response.Data = &responses.SubmissionData{GUID: result.SubmissionGUID}
	}

	sendSuccess(c, http.StatusOK, response)
}

// sendPipelineError maps fatal pipeline errors onto the structured error
// body the UI expects.
func (h *InvoiceHandler) sendPipelineError(c *gin.Context, err error) {
	logger.Error("invoice pipeline failed",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path))

	var missingEntity *services.MissingLegalEntityError
	if errors.As(err, &missingEntity) {
		c.JSON(http.StatusUnprocessableEntity, responses.SendInvoiceError{
			Error:                     missingEntity.Error(),
			MissingCompanyLegalEntity: missingEntity.Role == services.PartyRoleSender,
			MissingClientLegalEntity:  missingEntity.Role == services.PartyRoleReceiver,
		})
		return
	}

	var validation *services.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusUnprocessableEntity, responses.SendInvoiceError{
			Error:         validation.Error(),
			MissingFields: validation.MissingFields,
		})
		return
	}

	body := services.ExternalErrorBody(err)
	message := err.Error()
	if body != "" {
		message = body
	}
	c.JSON(http.StatusBadGateway, responses.SendInvoiceError{Error: message})
}

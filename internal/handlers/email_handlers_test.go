package handlers_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpclient "facturo-api/internal/client/http"
	"facturo-api/internal/handlers"
	"facturo-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEmailRouter(sender *stubSender) *gin.Engine {
	notificationService := services.NewNotificationService(
		sender,
		httpclient.NewClient(),
		"invoices@facturo.example",
		"Facturo",
		"",
		1024,
		zap.NewNop(),
	)

	router := gin.New()
	handler := handlers.NewEmailHandler(notificationService)
	router.POST("/v1/emails/invoice", handler.SendInvoiceEmail)
	return router
}

func sendEmailRequest(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/v1/emails/invoice", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestEmailHandler_SendInvoiceEmail(t *testing.T) {
	pdf := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4"))
	body := `{
		"clientName": "Acme BV",
		"clientEmail": "billing@acme.example",
		"invoiceNumber": "2026-042",
		"companyName": "Facturo Consulting",
		"pdfBase64": "` + pdf + `"
	}`

	t.Run("success", func(t *testing.T) {
		w := sendEmailRequest(t, newEmailRouter(&stubSender{}), body)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, true, response["success"])
		assert.Equal(t, "email_123", response["data"])
		assert.Equal(t, float64(1), response["attachments"])
	})

	t.Run("invalid email address", func(t *testing.T) {
		invalid := `{"clientName": "Acme BV", "clientEmail": "not-an-email", "invoiceNumber": "2026-042", "companyName": "Facturo Consulting"}`

		w := sendEmailRequest(t, newEmailRouter(&stubSender{}), invalid)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("dispatch failure", func(t *testing.T) {
		w := sendEmailRequest(t, newEmailRouter(&stubSender{err: errors.New("rate limited")}), body)

		assert.Equal(t, http.StatusBadGateway, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, false, response["success"])
		assert.Contains(t, response["error"], "rate limited")
	})
}

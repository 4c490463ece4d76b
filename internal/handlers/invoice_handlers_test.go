package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpclient "facturo-api/internal/client/http"
	"facturo-api/internal/client/storecove"
	"facturo-api/internal/handlers"
	"facturo-api/internal/logger"
	"facturo-api/internal/mocks"
	"facturo-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitLogger()
}

type stubSender struct {
	err error
}

func (s *stubSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &resend.SendEmailResponse{Id: "email_123"}, nil
}

func newRouter(registry *mocks.MockAPI, queries *mocks.MockQuerier) *gin.Engine {
	log := zap.NewNop()
	invoiceService := services.NewInvoiceService(
		services.NewTaxService("BE", log),
		services.NewLegalEntityService(registry, queries, log),
		services.NewSubmissionService(registry, "BE", log),
		services.NewNotificationService(&stubSender{}, httpclient.NewClient(), "invoices@facturo.example", "Facturo", "", 1024, log),
		queries,
		log,
	)

	router := gin.New()
	handler := handlers.NewInvoiceHandler(invoiceService)
	router.POST("/v1/invoices/send", handler.SendInvoice)
	return router
}

func sendRequest(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/v1/invoices/send", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const validRequestBody = `{
	"invoice": {
		"id": "99999999-8888-7777-6666-555555555555",
		"number": "2026-042",
		"issueDate": "2026-08-01",
		"dueDate": "2026-08-31"
	},
	"client": {
		"id": "11111111-2222-3333-4444-555555555555",
		"name": "Acme BV",
		"email": "billing@acme.example",
		"street": "Stationsstraat",
		"number": "12",
		"postcode": "2000",
		"city": "Antwerp",
		"country": "BE",
		"legalEntityId": 2
	},
	"items": [
		{"description": "Consulting", "quantity": "1", "unitPrice": "100.00", "vatRate": "21%"}
	],
	"companySettings": {
		"id": "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		"companyName": "Facturo Consulting",
		"street": "Meir",
		"number": "1",
		"postcode": "2000",
		"city": "Antwerp",
		"country": "BE",
		"iban": "BE71096123456769",
		"legalEntityId": 1
	}
}`

func TestInvoiceHandler_SendInvoice_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockAPI(ctrl)
	queries := mocks.NewMockQuerier(ctrl)

	registry.EXPECT().
		UpdateLegalEntity(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&storecove.LegalEntity{}, nil).
		Times(2)
	registry.EXPECT().
		SubmitDocument(gomock.Any(), gomock.Any()).
		Return(&storecove.DocumentSubmissionResult{GUID: "f47ac10b-58cc-4372-a567-0e02b2c3d479"}, nil)
	queries.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), gomock.Any()).
		Return(nil)

	w := sendRequest(t, newRouter(registry, queries), validRequestBody)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, true, response["emailSent"])
	data, ok := response["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "f47ac10b-58cc-4372-a567-0e02b2c3d479", data["guid"])
}

func TestInvoiceHandler_SendInvoice_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newRouter(mocks.NewMockAPI(ctrl), mocks.NewMockQuerier(ctrl))

	w := sendRequest(t, router, `{"invoice": {}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoiceHandler_SendInvoice_MissingPartyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Company settings without an address cannot be registered.
	body := `{
		"invoice": {"id": "99999999-8888-7777-6666-555555555555", "number": "2026-042", "issueDate": "2026-08-01"},
		"client": {"id": "11111111-2222-3333-4444-555555555555", "name": "Acme BV"},
		"items": [],
		"companySettings": {"id": "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee", "companyName": "Facturo Consulting"}
	}`

	w := sendRequest(t, newRouter(mocks.NewMockAPI(ctrl), mocks.NewMockQuerier(ctrl)), body)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	fields, ok := response["missingFields"].([]any)
	require.True(t, ok)
	assert.Contains(t, fields, "street")
	assert.Contains(t, fields, "city")
}

func TestInvoiceHandler_SendInvoice_RegistryRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockAPI(ctrl)
	queries := mocks.NewMockQuerier(ctrl)

	registry.EXPECT().
		UpdateLegalEntity(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &httpclient.HTTPError{
			StatusCode: 500,
			Body:       `{"errors":["internal error"]}`,
		})

	w := sendRequest(t, newRouter(registry, queries), validRequestBody)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	// The external body is passed through to the UI.
	assert.Equal(t, `{"errors":["internal error"]}`, response["error"])
}

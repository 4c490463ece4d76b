package services_test

import (
	"context"
	"testing"

	httpclient "facturo-api/internal/client/http"
	"facturo-api/internal/client/storecove"
	"facturo-api/internal/db"
	"facturo-api/internal/mocks"
	"facturo-api/internal/services"
	"facturo-api/internal/types/business"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newInvoiceService(registry *mocks.MockAPI, queries *mocks.MockQuerier, emailSender *fakeSender) *services.InvoiceService {
	log := zap.NewNop()
	return services.NewInvoiceService(
		services.NewTaxService("BE", log),
		services.NewLegalEntityService(registry, queries, log),
		services.NewSubmissionService(registry, "BE", log),
		services.NewNotificationService(emailSender, httpclient.NewClient(), "invoices@facturo.example", "Facturo", "", 1024, log),
		queries,
		log,
	)
}

// pipelineParams builds a send where both parties are already registered and
// neither is PEPPOL-eligible, so resolution is a pair of plain updates.
func pipelineParams() *services.SendInvoiceParams {
	client := testClient()
	client.Type = business.PartyTypeIndividual
	client.VATNumber = ""
	client.LegalEntityID = aws.Int64(2)

	company := testCompany()
	company.VATNumber = ""

	return &services.SendInvoiceParams{
		Invoice: testInvoice(),
		Client:  client,
		Company: company,
	}
}

func TestInvoiceService_SendInvoice_SubmissionFailureStillEmails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockAPI(ctrl)
	queries := mocks.NewMockQuerier(ctrl)
	emailSender := &fakeSender{}
	svc := newInvoiceService(registry, queries, emailSender)

	registry.EXPECT().
		UpdateLegalEntity(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&storecove.LegalEntity{}, nil).
		Times(2)
	registry.EXPECT().
		SubmitDocument(gomock.Any(), gomock.Any()).
		Return(nil, &httpclient.HTTPError{
			StatusCode: 422,
			Body:       `{"errors":["receiver not registered"]}`,
		})
	// A rejected submission must not mark the invoice pending.

	result, err := svc.SendInvoice(context.Background(), pipelineParams())

	require.NoError(t, err)
	assert.False(t, result.Submitted)
	assert.Empty(t, result.SubmissionGUID)
	// The external rejection body is passed through verbatim.
	assert.Equal(t, `{"errors":["receiver not registered"]}`, result.SubmissionError)
	assert.True(t, result.EmailSent)
	assert.Empty(t, result.EmailError)
	require.NotNil(t, emailSender.request)
	assert.Equal(t, "Invoice 2026-042 from Facturo Consulting", emailSender.request.Subject)
}

func TestInvoiceService_SendInvoice_EmailFailureKeepsSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockAPI(ctrl)
	queries := mocks.NewMockQuerier(ctrl)
	emailSender := &fakeSender{err: errors.New("rate limited")}
	svc := newInvoiceService(registry, queries, emailSender)

	params := pipelineParams()

	registry.EXPECT().
		UpdateLegalEntity(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&storecove.LegalEntity{}, nil).
		Times(2)
	registry.EXPECT().
		SubmitDocument(gomock.Any(), gomock.Any()).
		Return(&storecove.DocumentSubmissionResult{GUID: "f47ac10b-58cc-4372-a567-0e02b2c3d479"}, nil)
	queries.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), db.UpdateInvoiceStatusParams{
			InvoiceID: params.Invoice.ID,
			Status:    business.InvoiceStatusPending,
		}).
		Return(nil)

	result, err := svc.SendInvoice(context.Background(), params)

	require.NoError(t, err)
	assert.True(t, result.Submitted)
	assert.Equal(t, "f47ac10b-58cc-4372-a567-0e02b2c3d479", result.SubmissionGUID)
	assert.False(t, result.EmailSent)
	assert.Contains(t, result.EmailError, "rate limited")
}

func TestInvoiceService_SendInvoice_ResolutionFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockAPI(ctrl)
	queries := mocks.NewMockQuerier(ctrl)
	emailSender := &fakeSender{}
	svc := newInvoiceService(registry, queries, emailSender)

	params := pipelineParams()
	params.Company.LegalEntityID = nil

	registry.EXPECT().
		CreateLegalEntity(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("registry unavailable"))

	result, err := svc.SendInvoice(context.Background(), params)

	// No document is submitted and no email goes out.
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Nil(t, emailSender.request)
}

func TestInvoiceService_SendInvoice_ReusesRegisteredEntities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockAPI(ctrl)
	queries := mocks.NewMockQuerier(ctrl)
	emailSender := &fakeSender{}
	svc := newInvoiceService(registry, queries, emailSender)

	params := pipelineParams()
	params.Client.LegalEntityID = nil

	// First send registers the client; the second reuses the persisted id
	// and goes through the update path.
	registry.EXPECT().
		CreateLegalEntity(gomock.Any(), gomock.Any()).
		Return(&storecove.LegalEntity{ID: 42}, nil).
		Times(1)
	queries.EXPECT().
		UpdateClientLegalEntity(gomock.Any(), db.UpdateClientLegalEntityParams{
			ClientID:      params.Client.ID,
			LegalEntityID: 42,
		}).
		Return(nil).
		Times(1)
	registry.EXPECT().
		UpdateLegalEntity(gomock.Any(), int64(1), gomock.Any()).
		Return(&storecove.LegalEntity{}, nil).
		Times(2)
	registry.EXPECT().
		UpdateLegalEntity(gomock.Any(), int64(42), gomock.Any()).
		Return(&storecove.LegalEntity{}, nil).
		Times(1)
	registry.EXPECT().
		SubmitDocument(gomock.Any(), gomock.Any()).
		Return(&storecove.DocumentSubmissionResult{GUID: "guid-1"}, nil).
		Times(2)
	queries.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	_, err := svc.SendInvoice(context.Background(), params)
	require.NoError(t, err)
	require.NotNil(t, params.Client.LegalEntityID)
	assert.Equal(t, int64(42), *params.Client.LegalEntityID)

	_, err = svc.SendInvoice(context.Background(), params)
	require.NoError(t, err)
}

func TestInvoiceService_SendInvoice_RoutesCurrentVATAfterIdentifierFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockAPI(ctrl)
	queries := mocks.NewMockQuerier(ctrl)
	emailSender := &fakeSender{}
	svc := newInvoiceService(registry, queries, emailSender)

	// The receiver's persisted identifier carries a VAT number that has
	// since changed; identifier replacement fails after the delete.
	params := pipelineParams()
	params.Client.Type = business.PartyTypeBusiness
	params.Client.VATNumber = "BE0123456789"
	params.Client.PeppolIdentifier = &business.PeppolIdentifier{
		Superscheme: business.PeppolSuperscheme,
		Scheme:      "BE:VAT",
		Identifier:  "BE0999999999",
	}

	registry.EXPECT().
		UpdateLegalEntity(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&storecove.LegalEntity{}, nil).
		Times(2)
	registry.EXPECT().
		GetLegalEntity(gomock.Any(), int64(2)).
		Return(&storecove.LegalEntity{ID: 2, PeppolIdentifiers: []storecove.PeppolIdentifier{
			{Superscheme: business.PeppolSuperscheme, Scheme: "BE:VAT", Identifier: "BE0999999999"},
		}}, nil)
	registry.EXPECT().
		DeletePeppolIdentifier(gomock.Any(), int64(2), gomock.Any()).
		Return(nil)
	registry.EXPECT().
		CreatePeppolIdentifier(gomock.Any(), int64(2), gomock.Any()).
		Return(nil, errors.New("internal server error"))

	var submitted storecove.DocumentSubmissionParams
	registry.EXPECT().
		SubmitDocument(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p storecove.DocumentSubmissionParams) (*storecove.DocumentSubmissionResult, error) {
			submitted = p
			return &storecove.DocumentSubmissionResult{GUID: "guid-3"}, nil
		})
	queries.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := svc.SendInvoice(context.Background(), params)

	require.NoError(t, err)
	assert.True(t, result.Submitted)
	// The deleted identifier must not be routed; the document falls back to
	// the receiver's current VAT number, in both schema regions.
	want := []storecove.EIdentifier{{Scheme: "BE:VAT", ID: "BE0123456789"}}
	assert.Equal(t, want, submitted.Routing.EIdentifiers)
	assert.Equal(t, want, submitted.Document.Invoice.AccountingCustomerParty.PublicIdentifiers)
}

func TestInvoiceService_SendInvoice_CollectsResolutionWarnings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := mocks.NewMockAPI(ctrl)
	queries := mocks.NewMockQuerier(ctrl)
	emailSender := &fakeSender{}
	svc := newInvoiceService(registry, queries, emailSender)

	params := pipelineParams()
	params.Client.Type = business.PartyTypeBusiness
	params.Client.VATNumber = "BE0123456789"

	registry.EXPECT().
		UpdateLegalEntity(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&storecove.LegalEntity{}, nil).
		Times(2)
	registry.EXPECT().
		GetLegalEntity(gomock.Any(), int64(2)).
		Return(&storecove.LegalEntity{ID: 2}, nil)
	registry.EXPECT().
		CreatePeppolIdentifier(gomock.Any(), int64(2), gomock.Any()).
		Return(nil, errors.New("scheme rejected"))
	registry.EXPECT().
		SubmitDocument(gomock.Any(), gomock.Any()).
		Return(&storecove.DocumentSubmissionResult{GUID: "guid-2"}, nil)
	queries.EXPECT().
		UpdateInvoiceStatus(gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := svc.SendInvoice(context.Background(), params)

	require.NoError(t, err)
	assert.True(t, result.Submitted)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "create")
}

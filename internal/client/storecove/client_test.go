package storecove_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpclient "facturo-api/internal/client/http"
	"facturo-api/internal/client/storecove"
	"facturo-api/internal/logger"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger()
}

type recordedRequest struct {
	method string
	path   string
	auth   string
	body   []byte
}

// newTestServer serves canned responses and records every request.
func newTestServer(t *testing.T, status int, response string) (*storecove.Client, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			auth:   r.Header.Get("Authorization"),
			body:   body,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, response)
	}))
	t.Cleanup(server.Close)

	return storecove.NewClient("test-key", server.URL, 5*time.Second), &requests
}

func TestClient_CreateLegalEntity(t *testing.T) {
	client, requests := newTestServer(t, http.StatusOK, `{"id":7,"party_name":"Acme BV"}`)

	entity, err := client.CreateLegalEntity(context.Background(), storecove.LegalEntityParams{
		PartyName:      "Acme BV",
		Line1:          "Stationsstraat 12",
		City:           "Antwerp",
		Zip:            "2000",
		Country:        "BE",
		ActsAsReceiver: true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), entity.ID)

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/legal_entities", req.path)
	assert.Equal(t, "Bearer test-key", req.auth)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(req.body, &sent))
	assert.Equal(t, "Acme BV", sent["party_name"])
	assert.Equal(t, false, sent["acts_as_sender"])
	assert.Equal(t, true, sent["acts_as_receiver"])
}

func TestClient_UpdateLegalEntity(t *testing.T) {
	client, requests := newTestServer(t, http.StatusOK, `{"id":7}`)

	_, err := client.UpdateLegalEntity(context.Background(), 7, storecove.LegalEntityParams{
		PartyName: "Acme BV",
	})

	require.NoError(t, err)
	require.Len(t, *requests, 1)
	assert.Equal(t, http.MethodPatch, (*requests)[0].method)
	assert.Equal(t, "/legal_entities/7", (*requests)[0].path)
}

func TestClient_GetLegalEntity(t *testing.T) {
	client, requests := newTestServer(t, http.StatusOK,
		`{"id":7,"peppol_identifiers":[{"superscheme":"iso6523-actorid-upis","scheme":"BE:VAT","identifier":"BE0123456789"}]}`)

	entity, err := client.GetLegalEntity(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, entity.PeppolIdentifiers, 1)
	assert.Equal(t, "BE:VAT", entity.PeppolIdentifiers[0].Scheme)
	assert.Equal(t, "/legal_entities/7", (*requests)[0].path)
}

func TestClient_DeletePeppolIdentifier(t *testing.T) {
	client, requests := newTestServer(t, http.StatusOK, `{}`)

	err := client.DeletePeppolIdentifier(context.Background(), 7, storecove.PeppolIdentifierParams{
		Superscheme: "iso6523-actorid-upis",
		Scheme:      "BE:VAT",
		Identifier:  "BE0123456789",
	})

	require.NoError(t, err)
	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, http.MethodDelete, req.method)
	// The identifier triple is addressed in the path, not the body.
	assert.Equal(t, "/legal_entities/7/peppol_identifiers/iso6523-actorid-upis/BE:VAT/BE0123456789", req.path)
	assert.Empty(t, req.body)
}

func TestClient_SubmitDocument(t *testing.T) {
	client, requests := newTestServer(t, http.StatusOK, `{"guid":"f47ac10b-58cc-4372-a567-0e02b2c3d479"}`)

	result, err := client.SubmitDocument(context.Background(), storecove.DocumentSubmissionParams{
		LegalEntityID:         1,
		ReceiverLegalEntityID: 2,
		Routing: storecove.Routing{
			EIdentifiers: []storecove.EIdentifier{{Scheme: "BE:VAT", ID: "BE0123456789"}},
		},
		Document: storecove.Document{
			DocumentType: storecove.DocumentTypeInvoice,
			Invoice: storecove.InvoiceDocument{
				InvoiceNumber:      "2026-042",
				AmountIncludingVat: "121.00",
			},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "f47ac10b-58cc-4372-a567-0e02b2c3d479", result.GUID)

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, "/document_submissions", req.path)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(req.body, &sent))
	assert.Equal(t, float64(1), sent["legalEntityId"])
	assert.Equal(t, float64(2), sent["receiverLegalEntityId"])
}

func TestClient_SubmitDocument_ErrorBodyPreserved(t *testing.T) {
	client, _ := newTestServer(t, http.StatusUnprocessableEntity, `{"errors":["tax subtotal mismatch"]}`)

	result, err := client.SubmitDocument(context.Background(), storecove.DocumentSubmissionParams{})

	assert.Nil(t, result)
	require.Error(t, err)

	var httpErr *httpclient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.StatusCode)
	assert.Equal(t, `{"errors":["tax subtotal mismatch"]}`, httpErr.Body)
}

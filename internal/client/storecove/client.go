// Package storecove is a typed client for the e-invoicing access point:
// legal entity registration, PEPPOL identifier management and document
// submission. All calls are JSON over bearer-token auth.
package storecove

import (
	"context"
	"time"

	httpclient "facturo-api/internal/client/http"
)

// API is the surface the resolver and submission services depend on.
// Implemented by Client; mocked in tests.
type API interface {
	CreateLegalEntity(ctx context.Context, params LegalEntityParams) (*LegalEntity, error)
	UpdateLegalEntity(ctx context.Context, legalEntityID int64, params LegalEntityParams) (*LegalEntity, error)
	GetLegalEntity(ctx context.Context, legalEntityID int64) (*LegalEntity, error)
	CreatePeppolIdentifier(ctx context.Context, legalEntityID int64, params PeppolIdentifierParams) (*PeppolIdentifier, error)
	DeletePeppolIdentifier(ctx context.Context, legalEntityID int64, params PeppolIdentifierParams) error
	SubmitDocument(ctx context.Context, params DocumentSubmissionParams) (*DocumentSubmissionResult, error)
}

// Client talks to the access point over the shared retrying HTTP client.
type Client struct {
	http *httpclient.Client
}

// NewClient creates a Storecove client. The timeout bounds every call,
// including retries.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: httpclient.NewClient(
			httpclient.WithBaseURL(baseURL),
			httpclient.WithBearerToken(apiKey),
			httpclient.WithTimeout(timeout),
		),
	}
}

var _ API = (*Client)(nil)

package storecove

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// LegalEntityParams is the create/update payload for a legal entity record.
// The sender/receiver flags differ by party role: the company sends, clients
// receive.
type LegalEntityParams struct {
	PartyName      string `json:"party_name"`
	Line1          string `json:"line1"`
	Line2          string `json:"line2,omitempty"`
	City           string `json:"city"`
	Zip            string `json:"zip"`
	Country        string `json:"country"`
	ActsAsSender   bool   `json:"acts_as_sender"`
	ActsAsReceiver bool   `json:"acts_as_receiver"`
}

// LegalEntity is the registry's record, including any identifiers currently
// attached to it.
type LegalEntity struct {
	ID                int64              `json:"id"`
	PartyName         string             `json:"party_name"`
	Line1             string             `json:"line1"`
	Line2             string             `json:"line2"`
	City              string             `json:"city"`
	Zip               string             `json:"zip"`
	Country           string             `json:"country"`
	ActsAsSender      bool               `json:"acts_as_sender"`
	ActsAsReceiver    bool               `json:"acts_as_receiver"`
	PeppolIdentifiers []PeppolIdentifier `json:"peppol_identifiers"`
}

// PeppolIdentifierParams creates one identifier under a legal entity.
type PeppolIdentifierParams struct {
	Superscheme string `json:"superscheme"`
	Scheme      string `json:"scheme"`
	Identifier  string `json:"identifier"`
}

// PeppolIdentifier is an identifier as returned by the registry.
type PeppolIdentifier struct {
	Superscheme string `json:"superscheme"`
	Scheme      string `json:"scheme"`
	Identifier  string `json:"identifier"`
}

// CreateLegalEntity registers a new legal entity at the access point.
func (c *Client) CreateLegalEntity(ctx context.Context, params LegalEntityParams) (*LegalEntity, error) {
	resp, err := c.http.Post(ctx, "/legal_entities", params)
	if err != nil {
		return nil, errors.Wrap(err, "create legal entity")
	}

	var entity LegalEntity
	if err := c.http.ProcessJSONResponse(resp, &entity); err != nil {
		return nil, errors.Wrap(err, "decode legal entity")
	}
	return &entity, nil
}

// UpdateLegalEntity patches an existing legal entity so the registry stays
// in sync with the local party record.
func (c *Client) UpdateLegalEntity(ctx context.Context, legalEntityID int64, params LegalEntityParams) (*LegalEntity, error) {
	resp, err := c.http.Patch(ctx, fmt.Sprintf("/legal_entities/%d", legalEntityID), params)
	if err != nil {
		return nil, errors.Wrapf(err, "update legal entity %d", legalEntityID)
	}

	var entity LegalEntity
	if err := c.http.ProcessJSONResponse(resp, &entity); err != nil {
		return nil, errors.Wrap(err, "decode legal entity")
	}
	return &entity, nil
}

// GetLegalEntity fetches a legal entity with its current PEPPOL identifiers.
func (c *Client) GetLegalEntity(ctx context.Context, legalEntityID int64) (*LegalEntity, error) {
	resp, err := c.http.Get(ctx, fmt.Sprintf("/legal_entities/%d", legalEntityID))
	if err != nil {
		return nil, errors.Wrapf(err, "get legal entity %d", legalEntityID)
	}

	var entity LegalEntity
	if err := c.http.ProcessJSONResponse(resp, &entity); err != nil {
		return nil, errors.Wrap(err, "decode legal entity")
	}
	return &entity, nil
}

// CreatePeppolIdentifier attaches an identifier to a legal entity.
func (c *Client) CreatePeppolIdentifier(ctx context.Context, legalEntityID int64, params PeppolIdentifierParams) (*PeppolIdentifier, error) {
	resp, err := c.http.Post(ctx, fmt.Sprintf("/legal_entities/%d/peppol_identifiers", legalEntityID), params)
	if err != nil {
		return nil, errors.Wrapf(err, "create peppol identifier for legal entity %d", legalEntityID)
	}

	var identifier PeppolIdentifier
	if err := c.http.ProcessJSONResponse(resp, &identifier); err != nil {
		return nil, errors.Wrap(err, "decode peppol identifier")
	}
	return &identifier, nil
}

// DeletePeppolIdentifier removes one identifier from a legal entity. The
// identifier triple is part of the path, not the body.
func (c *Client) DeletePeppolIdentifier(ctx context.Context, legalEntityID int64, params PeppolIdentifierParams) error {
	path := fmt.Sprintf("/legal_entities/%d/peppol_identifiers/%s/%s/%s",
		legalEntityID, params.Superscheme, params.Scheme, params.Identifier)

	resp, err := c.http.Delete(ctx, path)
	if err != nil {
		return errors.Wrapf(err, "delete peppol identifier %s/%s", params.Scheme, params.Identifier)
	}
	return c.http.ProcessJSONResponse(resp, nil)
}

package db

import (
	"context"
	"encoding/json"
	"fmt"

	"facturo-api/internal/types/business"

	"github.com/google/uuid"
)

// Querier is the write-back surface the pipeline needs: resolved ids and
// identifiers are persisted onto the owning party row for reuse, and a
// submitted invoice moves to pending. Mocked in service tests.
type Querier interface {
	UpdateClientLegalEntity(ctx context.Context, arg UpdateClientLegalEntityParams) error
	UpdateClientPeppolIdentifier(ctx context.Context, arg UpdateClientPeppolIdentifierParams) error
	UpdateCompanyLegalEntity(ctx context.Context, arg UpdateCompanyLegalEntityParams) error
	UpdateCompanyPeppolIdentifier(ctx context.Context, arg UpdateCompanyPeppolIdentifierParams) error
	UpdateInvoiceStatus(ctx context.Context, arg UpdateInvoiceStatusParams) error
}

var _ Querier = (*Queries)(nil)

type UpdateClientLegalEntityParams struct {
	ClientID      uuid.UUID
	LegalEntityID int64
}

const updateClientLegalEntity = `
UPDATE clients SET legal_entity_id = $2, updated_at = now() WHERE id = $1
`

// UpdateClientLegalEntity persists the registry id onto the client row.
func (q *Queries) UpdateClientLegalEntity(ctx context.Context, arg UpdateClientLegalEntityParams) error {
	_, err := q.db.Exec(ctx, updateClientLegalEntity, arg.ClientID, arg.LegalEntityID)
	if err != nil {
		return fmt.Errorf("failed to update client legal entity: %w", err)
	}
	return nil
}

type UpdateClientPeppolIdentifierParams struct {
	ClientID   uuid.UUID
	Identifier business.PeppolIdentifier
}

const updateClientPeppolIdentifier = `
UPDATE clients SET peppol_identifier = $2, updated_at = now() WHERE id = $1
`

// UpdateClientPeppolIdentifier stores the identifier as jsonb on the client.
func (q *Queries) UpdateClientPeppolIdentifier(ctx context.Context, arg UpdateClientPeppolIdentifierParams) error {
	payload, err := json.Marshal(arg.Identifier)
	if err != nil {
		return fmt.Errorf("failed to marshal peppol identifier: %w", err)
	}
	_, err = q.db.Exec(ctx, updateClientPeppolIdentifier, arg.ClientID, payload)
	if err != nil {
		return fmt.Errorf("failed to update client peppol identifier: %w", err)
	}
	return nil
}

type UpdateCompanyLegalEntityParams struct {
	CompanyID     uuid.UUID
	LegalEntityID int64
}

const updateCompanyLegalEntity = `
UPDATE company_settings SET legal_entity_id = $2, updated_at = now() WHERE id = $1
`

// UpdateCompanyLegalEntity persists the registry id onto the company row.
func (q *Queries) UpdateCompanyLegalEntity(ctx context.Context, arg UpdateCompanyLegalEntityParams) error {
	_, err := q.db.Exec(ctx, updateCompanyLegalEntity, arg.CompanyID, arg.LegalEntityID)
	if err != nil {
		return fmt.Errorf("failed to update company legal entity: %w", err)
	}
	return nil
}

type UpdateCompanyPeppolIdentifierParams struct {
	CompanyID  uuid.UUID
	Identifier business.PeppolIdentifier
}

const updateCompanyPeppolIdentifier = `
UPDATE company_settings SET peppol_identifier = $2, updated_at = now() WHERE id = $1
`

// UpdateCompanyPeppolIdentifier stores the identifier as jsonb on the
// company settings row.
func (q *Queries) UpdateCompanyPeppolIdentifier(ctx context.Context, arg UpdateCompanyPeppolIdentifierParams) error {
	payload, err := json.Marshal(arg.Identifier)
	if err != nil {
		return fmt.Errorf("failed to marshal peppol identifier: %w", err)
	}
	_, err = q.db.Exec(ctx, updateCompanyPeppolIdentifier, arg.CompanyID, payload)
	if err != nil {
		return fmt.Errorf("failed to update company peppol identifier: %w", err)
	}
	return nil
}

type UpdateInvoiceStatusParams struct {
	InvoiceID uuid.UUID
	Status    business.InvoiceStatus
}

const updateInvoiceStatus = `
UPDATE invoices SET status = $2, updated_at = now() WHERE id = $1
`

// UpdateInvoiceStatus moves an invoice through its local lifecycle.
func (q *Queries) UpdateInvoiceStatus(ctx context.Context, arg UpdateInvoiceStatusParams) error {
	_, err := q.db.Exec(ctx, updateInvoiceStatus, arg.InvoiceID, string(arg.Status))
	if err != nil {
		return fmt.Errorf("failed to update invoice status: %w", err)
	}
	return nil
}

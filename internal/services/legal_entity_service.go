package services

import (
	"context"
	"strings"
	"sync"

	"facturo-api/internal/client/storecove"
	"facturo-api/internal/db"
	"facturo-api/internal/types/business"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// PartyRole says which side of the document a party is on. The registry
// flags differ by role: the company sends, clients receive.
type PartyRole string

const (
	PartyRoleSender   PartyRole = "sender"
	PartyRoleReceiver PartyRole = "receiver"
)

// ResolveResult is the outcome of resolving one party. PeppolIdentifier is
// nil when the party is not PEPPOL-eligible or when identifier creation
// failed; Warnings carries whatever went wrong on the non-fatal paths so
// callers can surface it.
type ResolveResult struct {
	LegalEntityID    int64
	PeppolIdentifier *business.PeppolIdentifier
	Warnings         []string
}

// LegalEntityService keeps the external registry in sync with local party
// records: it creates or updates the legal entity on every resolution and
// replaces the entity's PEPPOL identifier with a delete-then-create pass.
type LegalEntityService struct {
	registry storecove.API
	queries  db.Querier
	logger   *zap.Logger

	// Resolutions for the same party are serialized so two concurrent
	// sends cannot interleave the DELETE/CREATE identifier pair.
	mu         sync.Mutex
	partyLocks map[uuid.UUID]*sync.Mutex
}

// NewLegalEntityService creates a new legal entity service.
func NewLegalEntityService(registry storecove.API, queries db.Querier, logger *zap.Logger) *LegalEntityService {
	return &LegalEntityService{
		registry:   registry,
		queries:    queries,
		logger:     logger,
		partyLocks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// ResolveSender ensures the sending company is registered and up to date.
func (s *LegalEntityService) ResolveSender(ctx context.Context, company *business.Party) (*ResolveResult, error) {
	return s.Resolve(ctx, company, PartyRoleSender)
}

// ResolveReceiver ensures the receiving client is registered and up to date,
// and reconciles its PEPPOL identifier.
func (s *LegalEntityService) ResolveReceiver(ctx context.Context, client *business.Party) (*ResolveResult, error) {
	return s.Resolve(ctx, client, PartyRoleReceiver)
}

// Resolve runs the per-party state machine. Legal entity create/update
// failures are fatal; identifier fetch/delete failures are logged and
// skipped; identifier create failure downgrades to a warning with a nil
// identifier so callers fall back to VAT-number routing.
func (s *LegalEntityService) Resolve(ctx context.Context, party *business.Party, role PartyRole) (*ResolveResult, error) {
	lock := s.lockFor(party.ID)
	lock.Lock()
	defer lock.Unlock()

	if err := validatePartyFields(party); err != nil {
		return nil, err
	}

	params := legalEntityParams(party, role)

	if party.LegalEntityID == nil {
		entity, err := s.registry.CreateLegalEntity(ctx, params)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create legal entity for %s", role)
		}
		party.LegalEntityID = &entity.ID
		s.persistLegalEntityID(ctx, party, role, entity.ID)

		s.logger.Info("legal entity created",
			zap.String("role", string(role)),
			zap.String("party_id", party.ID.String()),
			zap.Int64("legal_entity_id", entity.ID))
	} else {
		if _, err := s.registry.UpdateLegalEntity(ctx, *party.LegalEntityID, params); err != nil {
			return nil, errors.Wrapf(err, "failed to update legal entity %d for %s", *party.LegalEntityID, role)
		}
	}

	result := &ResolveResult{LegalEntityID: *party.LegalEntityID}

	if !party.PeppolEligible() {
		return result, nil
	}

	identifier, warnings := s.reconcileIdentifier(ctx, party)
	result.PeppolIdentifier = identifier
	result.Warnings = warnings
	if identifier != nil {
		party.PeppolIdentifier = identifier
		s.persistPeppolIdentifier(ctx, party, role, *identifier)
	} else {
		// Any previously persisted identifier was just deleted at the
		// registry; clearing it here makes document routing fall back to
		// the party's current VAT number instead of the stale identifier.
		party.PeppolIdentifier = nil
	}

	return result, nil
}

// reconcileIdentifier replaces whatever identifiers the entity currently
// carries with a single VAT-based one. The registry has no replace call, so
// this is an explicit two-phase delete-then-create; at most one identifier
// exists per entity afterwards.
func (s *LegalEntityService) reconcileIdentifier(ctx context.Context, party *business.Party) (*business.PeppolIdentifier, []string) {
	var warnings []string
	legalEntityID := *party.LegalEntityID

	entity, err := s.registry.GetLegalEntity(ctx, legalEntityID)
	if err != nil {
		warn := &ReconciliationWarning{Stage: "fetch", Err: err}
		warnings = append(warnings, warn.Error())
		s.logger.Warn("failed to fetch existing peppol identifiers, proceeding",
			zap.Int64("legal_entity_id", legalEntityID),
			zap.Error(err))
	}

	if entity != nil {
		for _, existing := range entity.PeppolIdentifiers {
			deleteParams := storecove.PeppolIdentifierParams{
				Superscheme: existing.Superscheme,
				Scheme:      existing.Scheme,
				Identifier:  existing.Identifier,
			}
			if err := s.registry.DeletePeppolIdentifier(ctx, legalEntityID, deleteParams); err != nil {
				warn := &ReconciliationWarning{Stage: "delete", Err: err}
				warnings = append(warnings, warn.Error())
				s.logger.Warn("failed to delete existing peppol identifier, proceeding",
					zap.Int64("legal_entity_id", legalEntityID),
					zap.String("scheme", existing.Scheme),
					zap.String("identifier", existing.Identifier),
					zap.Error(err))
			}
		}
	}

	created, err := s.registry.CreatePeppolIdentifier(ctx, legalEntityID, storecove.PeppolIdentifierParams{
		Superscheme: business.PeppolSuperscheme,
		Scheme:      party.VATScheme(),
		Identifier:  party.VATNumber,
	})
	if err != nil {
		warn := &ReconciliationWarning{Stage: "create", Err: err}
		warnings = append(warnings, warn.Error())
		s.logger.Warn("failed to create peppol identifier, falling back to VAT routing",
			zap.Int64("legal_entity_id", legalEntityID),
			zap.String("scheme", party.VATScheme()),
			zap.Error(err))
		return nil, warnings
	}

	return &business.PeppolIdentifier{
		Superscheme: created.Superscheme,
		Scheme:      created.Scheme,
		Identifier:  created.Identifier,
	}, warnings
}

// persistLegalEntityID writes the registry id back onto the owning row. The
// id already exists remotely, so a failed local write is logged rather than
// failing the resolution; the next send will find the entity by update.
func (s *LegalEntityService) persistLegalEntityID(ctx context.Context, party *business.Party, role PartyRole, legalEntityID int64) {
	var err error
	if role == PartyRoleSender {
		err = s.queries.UpdateCompanyLegalEntity(ctx, db.UpdateCompanyLegalEntityParams{
			CompanyID:     party.ID,
			LegalEntityID: legalEntityID,
		})
	} else {
		err = s.queries.UpdateClientLegalEntity(ctx, db.UpdateClientLegalEntityParams{
			ClientID:      party.ID,
			LegalEntityID: legalEntityID,
		})
	}
	if err != nil {
		s.logger.Error("failed to persist legal entity id",
			zap.String("role", string(role)),
			zap.String("party_id", party.ID.String()),
			zap.Error(err))
	}
}

func (s *LegalEntityService) persistPeppolIdentifier(ctx context.Context, party *business.Party, role PartyRole, identifier business.PeppolIdentifier) {
	var err error
	if role == PartyRoleSender {
		err = s.queries.UpdateCompanyPeppolIdentifier(ctx, db.UpdateCompanyPeppolIdentifierParams{
			CompanyID:  party.ID,
			Identifier: identifier,
		})
	} else {
		err = s.queries.UpdateClientPeppolIdentifier(ctx, db.UpdateClientPeppolIdentifierParams{
			ClientID:   party.ID,
			Identifier: identifier,
		})
	}
	if err != nil {
		s.logger.Error("failed to persist peppol identifier",
			zap.String("role", string(role)),
			zap.String("party_id", party.ID.String()),
			zap.Error(err))
	}
}

func (s *LegalEntityService) lockFor(partyID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.partyLocks[partyID]
	if !ok {
		lock = &sync.Mutex{}
		s.partyLocks[partyID] = lock
	}
	return lock
}

func validatePartyFields(party *business.Party) error {
	var missing []string
	if party.Name == "" {
		missing = append(missing, "name")
	}
	if party.Street == "" {
		missing = append(missing, "street")
	}
	if party.Postcode == "" {
		missing = append(missing, "postcode")
	}
	if party.City == "" {
		missing = append(missing, "city")
	}
	if party.Country == "" {
		missing = append(missing, "country")
	}
	if len(missing) > 0 {
		return &ValidationError{PartyName: party.Name, MissingFields: missing}
	}
	return nil
}

func legalEntityParams(party *business.Party, role PartyRole) storecove.LegalEntityParams {
	line1 := strings.TrimSpace(party.Street + " " + party.Number)
	return storecove.LegalEntityParams{
		PartyName:      party.Name,
		Line1:          line1,
		Line2:          party.Extension,
		City:           party.City,
		Zip:            party.Postcode,
		Country:        party.Country,
		ActsAsSender:   role == PartyRoleSender,
		ActsAsReceiver: role == PartyRoleReceiver,
	}
}

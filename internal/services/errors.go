package services

import (
	"errors"
	"fmt"
	"strings"

	httpclient "facturo-api/internal/client/http"
)

// ValidationError reports the party fields that must be present before a
// legal entity can be created at the registry.
type ValidationError struct {
	PartyName     string
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("party %q is missing required fields: %s", e.PartyName, strings.Join(e.MissingFields, ", "))
}

// MissingLegalEntityError is returned by Build when a side has no resolved
// legal entity id. It identifies which side so the UI can point at the right
// record. No external call has been made when this is returned.
type MissingLegalEntityError struct {
	Role PartyRole
}

func (e *MissingLegalEntityError) Error() string {
	return fmt.Sprintf("%s has no legal entity id", e.Role)
}

// ReconciliationWarning records a non-fatal failure while replacing PEPPOL
// identifiers. Resolution continues past it.
type ReconciliationWarning struct {
	Stage string
	Err   error
}

func (e *ReconciliationWarning) Error() string {
	return fmt.Sprintf("peppol identifier %s failed: %v", e.Stage, e.Err)
}

func (e *ReconciliationWarning) Unwrap() error { return e.Err }

// NotificationError reports a failed email dispatch. It never blocks or
// rolls back the submission outcome.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("email dispatch failed: %v", e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }

// ExternalErrorBody extracts the external API's response body from an error
// chain, so callers can pass registry rejections through to the UI.
func ExternalErrorBody(err error) string {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Body
	}
	return ""
}

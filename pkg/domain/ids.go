// Package domain holds typed identifiers shared across modules.
//
// IDs are distinct named types over uuid.UUID so the compiler rejects
// cross-type assignment. Parsing happens once, at trust boundaries
// (HTTP handlers, store scans); everything past the boundary works with
// the typed value.
package domain

import (
	"github.com/google/uuid"

	dErrors "loanflow/pkg/domain-errors"
)

// ApplicationID identifies a persisted loan application.
type ApplicationID uuid.UUID

// NewApplicationID generates a fresh application ID.
func NewApplicationID() ApplicationID {
	return ApplicationID(uuid.New())
}

// ParseApplicationID validates and parses an application ID from its string form.
// Rejects empty strings, malformed UUIDs, and the nil UUID.
func ParseApplicationID(s string) (ApplicationID, error) {
	parsed, err := parseUUID(s, "application_id")
	if err != nil {
		return ApplicationID{}, err
	}
	return ApplicationID(parsed), nil
}

func (id ApplicationID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether the ID is the zero value.
func (id ApplicationID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

func parseUUID(s, field string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" is required")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" must be a valid UUID")
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, field+" must not be the nil UUID")
	}
	return parsed, nil
}

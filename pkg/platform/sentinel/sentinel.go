package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and clients return these
// (optionally wrapped) so services can translate them into domain errors at
// the boundary instead of string-matching.
//
// These describe factual states about resources:
// - ErrNotFound: record does not exist in the store
// - ErrConflict: record already exists or was concurrently modified
// - ErrUnavailable: backing service temporarily unreachable
//
// For input validation failures use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)

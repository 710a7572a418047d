package pipeline

//go:generate mockgen -source=store.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"loanflow/pkg/domain"
)

// Repository persists accepted applications. Save is called exactly once per
// accepted application and never otherwise. Implementations return
// sentinel.ErrNotFound from FindByID for unknown IDs.
type Repository interface {
	Save(ctx context.Context, record StoredApplication) error
	FindByID(ctx context.Context, id domain.ApplicationID) (StoredApplication, error)
}

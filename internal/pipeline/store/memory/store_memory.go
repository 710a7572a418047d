// Package memory provides the in-memory application repository. It keeps
// local development and unit tests lightweight; production deployments use
// the PostgreSQL store.
package memory

import (
	"context"
	"fmt"
	"sync"

	"loanflow/internal/pipeline"
	"loanflow/pkg/domain"
	"loanflow/pkg/platform/sentinel"
)

// Store is a mutex-guarded map of stored applications.
type Store struct {
	mu           sync.RWMutex
	applications map[domain.ApplicationID]pipeline.StoredApplication
}

func New() *Store {
	return &Store{applications: make(map[domain.ApplicationID]pipeline.StoredApplication)}
}

// Save persists an accepted application. IDs are generated fresh per
// acceptance, so an existing entry means a caller bug.
func (s *Store) Save(_ context.Context, record pipeline.StoredApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.applications[record.ID]; exists {
		return fmt.Errorf("application %s: %w", record.ID, sentinel.ErrConflict)
	}
	s.applications[record.ID] = record
	return nil
}

func (s *Store) FindByID(_ context.Context, id domain.ApplicationID) (pipeline.StoredApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if record, ok := s.applications[id]; ok {
		return record, nil
	}
	return pipeline.StoredApplication{}, fmt.Errorf("application %s: %w", id, sentinel.ErrNotFound)
}

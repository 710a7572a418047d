// Package adapters provides in-process adapters that implement the
// pipeline's ports by calling concrete services. They keep the hexagonal
// boundaries intact while everything runs in a single process; swapping a
// service out for a remote call replaces the adapter, not the pipeline.
package adapters

import (
	"context"

	"loanflow/internal/documents"
	"loanflow/internal/pipeline/ports"
)

// DocumentAdapter implements ports.DocumentValidator on top of the
// in-process document validation service.
type DocumentAdapter struct {
	service *documents.Service
}

// NewDocumentAdapter creates an adapter around the documents service.
func NewDocumentAdapter(service *documents.Service) ports.DocumentValidator {
	return &DocumentAdapter{service: service}
}

func (a *DocumentAdapter) Validate(ctx context.Context, docs []ports.SubmittedDocument) (ports.DocumentCheckResult, error) {
	converted := make([]documents.Document, 0, len(docs))
	for _, d := range docs {
		converted = append(converted, documents.Document{
			Kind:       d.Kind,
			ContentRef: d.ContentRef,
		})
	}

	result, err := a.service.Check(ctx, converted)
	if err != nil {
		return ports.DocumentCheckResult{}, err
	}

	return ports.DocumentCheckResult{
		Valid:          result.Valid,
		InvalidReasons: result.InvalidReasons,
		MissingKinds:   result.MissingKinds,
	}, nil
}

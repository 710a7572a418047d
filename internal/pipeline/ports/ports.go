// Package ports defines the collaborator interfaces the approval pipeline
// consumes. Ports carry their own plain models so the pipeline domain never
// depends on HTTP clients, caches, or concrete service implementations;
// adapters translate in both directions.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import "context"

// SubmittedDocument is the port-level view of one submitted document.
type SubmittedDocument struct {
	Kind       string
	ContentRef string
}

// DocumentCheckResult reports the outcome of validating a document set.
// MissingKinds names required kinds absent from the submission;
// InvalidReasons explains documents that are present but unacceptable.
type DocumentCheckResult struct {
	Valid          bool
	InvalidReasons []string
	MissingKinds   []string
}

// DocumentValidator validates a submitted document set.
type DocumentValidator interface {
	Validate(ctx context.Context, docs []SubmittedDocument) (DocumentCheckResult, error)
}

// CreditScoreResult is the outcome of a credit bureau lookup. Score is
// meaningful only when Success is true; Message carries the bureau's failure
// text otherwise.
type CreditScoreResult struct {
	Success bool
	Score   int
	Message string
}

// CreditBureau looks up an applicant's credit score by phone number.
// Bureau-side failures (unavailable, timeout) are reported as unsuccessful
// results, not errors; a non-nil error means the call itself could not be
// made and is treated the same way by the pipeline.
type CreditBureau interface {
	Check(ctx context.Context, phone string) (CreditScoreResult, error)
}

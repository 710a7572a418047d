// Package documents implements the in-process document validation service.
// It owns the submission policy: which document kinds a complete application
// must carry and what makes an individual document acceptable.
package documents

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Document is the service's view of one submitted document.
type Document struct {
	Kind       string
	ContentRef string
}

// CheckResult reports the outcome of validating a document set.
type CheckResult struct {
	Valid          bool
	InvalidReasons []string
	MissingKinds   []string
}

// Config holds the submission policy.
type Config struct {
	// RequiredKinds lists document kinds every application must include.
	RequiredKinds []string
}

// DefaultConfig requires the standard proof set for a loan application.
func DefaultConfig() Config {
	return Config{
		RequiredKinds: []string{"identity_proof", "income_proof", "address_proof"},
	}
}

// Service validates document sets against the configured policy.
type Service struct {
	required []string
	known    map[string]struct{}
	logger   *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets a logger for validation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// New constructs a document validation service. Supported kinds are the
// required set plus any optional kinds passed in.
func New(cfg Config, optionalKinds []string, opts ...Option) *Service {
	s := &Service{
		required: cfg.RequiredKinds,
		known:    make(map[string]struct{}, len(cfg.RequiredKinds)+len(optionalKinds)),
	}
	for _, kind := range cfg.RequiredKinds {
		s.known[kind] = struct{}{}
	}
	for _, kind := range optionalKinds {
		s.known[kind] = struct{}{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Check validates a document set. Required kinds absent from the submission
// are reported as missing; documents that are present but unacceptable
// contribute invalid reasons. Both lists can be populated at once; the
// caller decides precedence.
func (s *Service) Check(ctx context.Context, docs []Document) (CheckResult, error) {
	present := make(map[string]struct{}, len(docs))
	var invalid []string

	for _, doc := range docs {
		kind := strings.TrimSpace(doc.Kind)
		if _, ok := s.known[kind]; !ok {
			invalid = append(invalid, fmt.Sprintf("Document kind %q is not supported", doc.Kind))
			continue
		}
		// A document with an unusable content reference is still present;
		// present-but-invalid rejects rather than deferring for resubmission.
		present[kind] = struct{}{}
		if strings.TrimSpace(doc.ContentRef) == "" {
			invalid = append(invalid, fmt.Sprintf("Document %s has an empty content reference", kind))
		}
	}

	var missing []string
	for _, kind := range s.required {
		if _, ok := present[kind]; !ok {
			missing = append(missing, kind)
		}
	}

	result := CheckResult{
		Valid:          len(invalid) == 0,
		InvalidReasons: invalid,
		MissingKinds:   missing,
	}

	if s.logger != nil && !result.Valid {
		s.logger.DebugContext(ctx, "document set failed validation",
			"invalid", len(invalid),
			"missing", len(missing),
		)
	}

	return result, nil
}

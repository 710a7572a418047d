// Package pipeline implements the loan application approval pipeline: an
// ordered sequence of validation stages over a submitted application,
// short-circuiting on the first stage that rejects or defers, persisting
// the record only when every stage passes.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"loanflow/internal/audit"
	"loanflow/internal/pipeline/metrics"
	"loanflow/internal/pipeline/ports"
	"loanflow/pkg/domain"
	pkgstrings "loanflow/pkg/platform/strings"
	"loanflow/pkg/requestcontext"
)

// Stage names, used for metrics, tracing, and audit events.
const (
	StageFields      = "fields"
	StageDocuments   = "documents"
	StageCredit      = "credit"
	StagePersistence = "persistence"
)

// Service runs the approval pipeline. The repository is required; document
// validation and credit check collaborators are optional, and an absent
// collaborator means that stage is skipped.
type Service struct {
	repo      Repository
	fields    FieldValidator
	documents ports.DocumentValidator
	bureau    ports.CreditBureau
	auditor   ports.AuditPort
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
	newID     func() domain.ApplicationID
}

// Option configures the Service.
type Option func(*Service)

// WithDocumentValidator enables the document validation stage.
func WithDocumentValidator(v ports.DocumentValidator) Option {
	return func(s *Service) { s.documents = v }
}

// WithCreditBureau enables the credit check stage.
func WithCreditBureau(b ports.CreditBureau) Option {
	return func(s *Service) { s.bureau = b }
}

// WithFieldValidator replaces the default field validator.
func WithFieldValidator(v FieldValidator) Option {
	return func(s *Service) {
		if v != nil {
			s.fields = v
		}
	}
}

// WithAudit enables audit event emission for processing decisions.
func WithAudit(a ports.AuditPort) Option {
	return func(s *Service) { s.auditor = a }
}

// WithLogger sets a logger for processing diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithTracer enables tracing of Process calls.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) { s.tracer = tracer }
}

// WithIDGenerator replaces the application ID generator. Tests use this to
// make accepted results deterministic.
func WithIDGenerator(gen func() domain.ApplicationID) Option {
	return func(s *Service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// New constructs the pipeline service.
func New(repo Repository, opts ...Option) (*Service, error) {
	if repo == nil {
		return nil, errors.New("application repository is required")
	}

	s := &Service{
		repo:   repo,
		fields: ValidateFields,
		newID:  domain.NewApplicationID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Process runs the pipeline over one application. Stage order is fixed
// (fields, documents, credit, persistence) and must not be reordered: later
// stages assume earlier ones succeeded, e.g. the credit check relies on a
// non-empty phone number.
//
// Expected conditions surface as data in the ProcessingResult; a non-nil
// error means infrastructure failed (repository write, cancelled context)
// and no decision was reached.
func (s *Service) Process(ctx context.Context, app Application) (*ProcessingResult, error) {
	start := time.Now()

	var span trace.Span
	if s.tracer != nil {
		ctx, span = s.tracer.Start(ctx, "pipeline.process")
		defer span.End()
	}

	now := requestcontext.Now(ctx)

	// Stage 1: field validation. Pure, always runs.
	if errs := s.fields(app); len(errs) > 0 {
		return s.conclude(ctx, span, start, app, StageFields, &ProcessingResult{
			Status:      StatusRejected,
			Reasons:     pkgstrings.DedupeAndTrim(errs),
			ProcessedAt: now,
		}), nil
	}

	// Stage 2: document validation. Runs only when a validator was supplied
	// and documents were submitted.
	if s.documents != nil && len(app.Documents) > 0 {
		res, err := s.documents.Validate(ctx, submittedDocuments(app.Documents))
		if err != nil {
			return nil, fmt.Errorf("validate documents: %w", err)
		}

		switch outcome := EvaluateDocuments(res); outcome.Kind {
		case StageAwaitingInfo:
			return s.conclude(ctx, span, start, app, StageDocuments, &ProcessingResult{
				Status:           StatusAwaitingDocuments,
				Reasons:          missingReasons(outcome.Missing),
				MissingDocuments: outcome.Missing,
				ProcessedAt:      now,
			}), nil
		case StageReject:
			return s.conclude(ctx, span, start, app, StageDocuments, &ProcessingResult{
				Status:      StatusRejected,
				Reasons:     pkgstrings.DedupeAndTrim(outcome.Reasons),
				ProcessedAt: now,
			}), nil
		}
	}

	// Stage 3: credit check. Runs only when a bureau was supplied.
	if s.bureau != nil {
		bureauStart := time.Now()
		res, err := s.bureau.Check(ctx, strings.TrimSpace(app.Phone))
		s.metrics.ObserveCreditCheckLatency(time.Since(bureauStart))
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// A failed call is the bureau reporting failure: same policy,
			// reject with the message, no retry.
			res = ports.CreditScoreResult{Success: false, Message: err.Error()}
		}

		if outcome := EvaluateCredit(res); outcome.Kind == StageReject {
			return s.conclude(ctx, span, start, app, StageCredit, &ProcessingResult{
				Status:      StatusRejected,
				Reasons:     outcome.Reasons,
				ProcessedAt: now,
			}), nil
		}
	}

	// Stage 4: persistence. All stages passed; save exactly once.
	record := StoredApplication{
		ID:          s.newID(),
		Application: app,
		ReceivedAt:  now,
	}
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("save application: %w", err)
	}

	return s.conclude(ctx, span, start, app, StagePersistence, &ProcessingResult{
		Status:        StatusAccepted,
		ApplicationID: record.ID,
		ProcessedAt:   now,
	}), nil
}

// conclude records observability for a terminal result and returns it.
func (s *Service) conclude(ctx context.Context, span trace.Span, start time.Time, app Application, stage string, result *ProcessingResult) *ProcessingResult {
	s.metrics.IncrementOutcome(string(result.Status), stage)
	s.metrics.ObserveProcessLatency(time.Since(start))

	if span != nil {
		span.SetAttributes(
			attribute.String("pipeline.status", string(result.Status)),
			attribute.String("pipeline.stage", stage),
		)
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "application processed",
			"request_id", requestcontext.RequestID(ctx),
			"status", result.Status,
			"stage", stage,
			"reason_count", len(result.Reasons),
		)
	}

	if s.auditor != nil {
		event := audit.Event{
			Timestamp: result.ProcessedAt,
			Applicant: strings.TrimSpace(app.Email),
			Action:    audit.ActionApplicationProcessed,
			Decision:  string(result.Status),
			Stage:     stage,
			Reasons:   result.Reasons,
		}
		if !result.ApplicationID.IsNil() {
			event.ApplicationID = result.ApplicationID.String()
		}
		// Fail-open: an audit outage must not change a decision already made.
		if err := s.auditor.Emit(ctx, event); err != nil && s.logger != nil {
			s.logger.ErrorContext(ctx, "audit emit failed",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
		}
	}

	return result
}

func submittedDocuments(docs []Document) []ports.SubmittedDocument {
	out := make([]ports.SubmittedDocument, 0, len(docs))
	for _, d := range docs {
		out = append(out, ports.SubmittedDocument{
			Kind:       string(d.Kind),
			ContentRef: d.ContentRef,
		})
	}
	return out
}

func missingReasons(missing []DocumentKind) []string {
	reasons := make([]string, 0, len(missing))
	for _, kind := range missing {
		reasons = append(reasons, "Missing required document: "+string(kind))
	}
	return reasons
}

package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"loanflow/internal/pipeline"
	"loanflow/pkg/domain"
	dErrors "loanflow/pkg/domain-errors"
	"loanflow/pkg/platform/httputil"
	"loanflow/pkg/platform/sentinel"
	"loanflow/pkg/requestcontext"
)

// Service defines the interface for application processing.
type Service interface {
	Process(ctx context.Context, app pipeline.Application) (*pipeline.ProcessingResult, error)
}

// Handler wires application endpoints to the pipeline service.
type Handler struct {
	service Service
	repo    pipeline.Repository
	logger  *slog.Logger
}

// New constructs an application handler with its dependencies.
func New(service Service, repo pipeline.Repository, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		repo:    repo,
		logger:  logger,
	}
}

// Register mounts application endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/applications", h.HandleSubmit)
	r.Get("/applications/{id}", h.HandleGet)
}

// HandleSubmit handles POST /applications requests.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[SubmitApplicationRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Process(ctx, req.ToApplication())
	if err != nil {
		h.logger.ErrorContext(ctx, "application processing failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeInternal, "application processing failed", err))
		return
	}

	h.logger.InfoContext(ctx, "application submitted",
		"request_id", requestID,
		"status", result.Status,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandleGet handles GET /applications/{id} requests.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	id, err := domain.ParseApplicationID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	record, err := h.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "application not found"))
			return
		}
		h.logger.ErrorContext(ctx, "application lookup failed",
			"request_id", requestID,
			"application_id", id,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeInternal, "application lookup failed", err))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromStored(record))
}

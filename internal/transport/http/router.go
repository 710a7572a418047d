// Package httpapi assembles the HTTP surface: routing, middleware, and
// operational endpoints. Handlers delegate to domain services; no business
// logic lives here.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"loanflow/internal/pipeline/handler"
	"loanflow/pkg/platform/httputil"
	"loanflow/pkg/platform/middleware/auth"
	"loanflow/pkg/platform/middleware/requestmeta"
)

// NewRouter wires all endpoints. When validator is non-nil, application
// endpoints require a valid bearer token; operational endpoints stay open.
func NewRouter(h *handler.Handler, validator auth.TokenValidator, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestmeta.Middleware)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		if validator != nil {
			r.Use(auth.Middleware(validator, logger))
		}
		h.Register(r)
	})

	return r
}

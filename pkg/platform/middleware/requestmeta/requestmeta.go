// Package requestmeta assigns per-request metadata early in the middleware
// chain: a request ID for log correlation and a request-scoped timestamp so
// every layer of one request observes the same clock reading.
package requestmeta

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"loanflow/pkg/requestcontext"
)

// HeaderRequestID is the inbound/outbound request ID header.
const HeaderRequestID = "X-Request-ID"

// Middleware injects a request ID and request time into the context.
// An inbound X-Request-ID is honored so IDs correlate across services;
// otherwise a fresh UUID is assigned. The ID is echoed on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		ctx = requestcontext.WithTime(ctx, time.Now())

		w.Header().Set(HeaderRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Package auth provides bearer-token authentication middleware.
//
// The middleware only depends on the TokenValidator interface so transports
// stay decoupled from the concrete JWT implementation.
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	dErrors "loanflow/pkg/domain-errors"
	"loanflow/pkg/platform/httputil"
	"loanflow/pkg/requestcontext"
)

// Claims holds the validated identity extracted from a token.
type Claims struct {
	Subject string
}

// TokenValidator validates a raw bearer token and returns its claims.
type TokenValidator interface {
	ValidateToken(token string) (*Claims, error)
}

type contextKeySubject struct{}

// Subject retrieves the authenticated subject from the context.
// Returns "" for unauthenticated contexts.
func Subject(ctx context.Context) string {
	if subject, ok := ctx.Value(contextKeySubject{}).(string); ok {
		return subject
	}
	return ""
}

// WithSubject injects an authenticated subject into a context.
// Useful for handler tests that skip the middleware chain.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, contextKeySubject{}, subject)
}

// Middleware returns a middleware that rejects requests without a valid
// bearer token and stores the subject in the request context.
func Middleware(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := bearerToken(r)
			if !ok {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "bearer token required"))
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				if logger != nil {
					logger.WarnContext(ctx, "token validation failed",
						"request_id", requestcontext.RequestID(ctx),
						"error", err,
					)
				}
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSubject(ctx, claims.Subject)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}

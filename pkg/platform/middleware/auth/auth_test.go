package auth_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"loanflow/pkg/platform/middleware/auth"
)

type stubValidator struct {
	claims *auth.Claims
	err    error
}

func (v *stubValidator) ValidateToken(string) (*auth.Claims, error) {
	return v.claims, v.err
}

func TestMiddleware(t *testing.T) {
	protected := func(validator auth.TokenValidator) (http.Handler, *string) {
		var seenSubject string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenSubject = auth.Subject(r.Context())
			w.WriteHeader(http.StatusNoContent)
		})
		return auth.Middleware(validator, nil)(next), &seenSubject
	}

	t.Run("valid token passes subject through", func(t *testing.T) {
		h, subject := protected(&stubValidator{claims: &auth.Claims{Subject: "officer-42"}})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "officer-42", *subject)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		h, subject := protected(&stubValidator{claims: &auth.Claims{Subject: "officer-42"}})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, *subject)
	})

	t.Run("non-bearer header is unauthorized", func(t *testing.T) {
		h, _ := protected(&stubValidator{claims: &auth.Claims{Subject: "officer-42"}})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token is unauthorized", func(t *testing.T) {
		h, _ := protected(&stubValidator{err: errors.New("signature mismatch")})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestSubject(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, auth.Subject(req.Context()))

	ctx := auth.WithSubject(req.Context(), "officer-42")
	assert.Equal(t, "officer-42", auth.Subject(ctx))
}

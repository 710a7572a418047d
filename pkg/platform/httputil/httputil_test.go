package httputil_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "loanflow/pkg/domain-errors"
	"loanflow/pkg/platform/httputil"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	httputil.WriteJSON(rec, http.StatusCreated, map[string]string{"status": "accepted"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status": "accepted"}`, rec.Body.String())
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"validation", dErrors.New(dErrors.CodeValidation, "unknown document kind"), http.StatusBadRequest, "validation_error"},
		{"invalid input", dErrors.New(dErrors.CodeInvalidInput, "application_id must be a valid UUID"), http.StatusBadRequest, "invalid_input"},
		{"bad request", dErrors.New(dErrors.CodeBadRequest, "request body must be valid JSON"), http.StatusBadRequest, "bad_request"},
		{"not found", dErrors.New(dErrors.CodeNotFound, "application not found"), http.StatusNotFound, "not_found"},
		{"unauthorized", dErrors.New(dErrors.CodeUnauthorized, "missing bearer token"), http.StatusUnauthorized, "unauthorized"},
		{"conflict", dErrors.New(dErrors.CodeConflict, "duplicate application"), http.StatusConflict, "conflict"},
		{"unavailable", dErrors.New(dErrors.CodeUnavailable, "store unavailable"), http.StatusServiceUnavailable, "unavailable"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			httputil.WriteError(rec, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tc.wantError, body["error"])
			assert.NotEmpty(t, body["error_description"])
		})
	}

	t.Run("internal omits description", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httputil.WriteError(rec, dErrors.Wrap(dErrors.CodeInternal, "lookup failed", errors.New("pool closed")))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "internal_error", body["error"])
		_, present := body["error_description"]
		assert.False(t, present)
	})

	t.Run("plain error is treated as internal", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httputil.WriteError(rec, errors.New("pool closed"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal_error", decodeBody(t, rec)["error"])
	})
}

type testRequest struct {
	Name string `json:"name"`
}

func (r *testRequest) Validate() error {
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	return nil
}

func TestDecodeAndPrepare(t *testing.T) {
	t.Run("decodes and validates", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"ada"}`))

		req, ok := httputil.DecodeAndPrepare[testRequest](rec, r, nil, r.Context(), "req-1")
		require.True(t, ok)
		assert.Equal(t, "ada", req.Name)
	})

	t.Run("malformed JSON writes bad_request", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name": `))

		_, ok := httputil.DecodeAndPrepare[testRequest](rec, r, nil, r.Context(), "req-1")
		require.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "bad_request", decodeBody(t, rec)["error"])
	})

	t.Run("validation failure writes the coded error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{}`))

		_, ok := httputil.DecodeAndPrepare[testRequest](rec, r, nil, r.Context(), "req-1")
		require.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "validation_error", decodeBody(t, rec)["error"])
	})
}

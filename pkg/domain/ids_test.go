package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loanflow/pkg/domain"
	dErrors "loanflow/pkg/domain-errors"
)

func TestParseApplicationID(t *testing.T) {
	t.Run("valid UUID parses", func(t *testing.T) {
		raw := uuid.NewString()
		id, err := domain.ParseApplicationID(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, id.String())
		assert.False(t, id.IsNil())
	})

	t.Run("empty string is rejected", func(t *testing.T) {
		_, err := domain.ParseApplicationID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("malformed UUID is rejected", func(t *testing.T) {
		_, err := domain.ParseApplicationID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("nil UUID is rejected", func(t *testing.T) {
		_, err := domain.ParseApplicationID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestNewApplicationID(t *testing.T) {
	a := domain.NewApplicationID()
	b := domain.NewApplicationID()
	assert.False(t, a.IsNil())
	assert.NotEqual(t, a, b)
}

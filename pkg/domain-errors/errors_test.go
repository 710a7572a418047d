package domainerrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "loanflow/pkg/domain-errors"
)

func TestError(t *testing.T) {
	t.Run("message without cause", func(t *testing.T) {
		err := dErrors.New(dErrors.CodeNotFound, "application not found")
		assert.Equal(t, "application not found", err.Error())
	})

	t.Run("message with cause", func(t *testing.T) {
		cause := errors.New("pool closed")
		err := dErrors.Wrap(dErrors.CodeInternal, "application lookup failed", cause)
		assert.Equal(t, "application lookup failed: pool closed", err.Error())
		assert.ErrorIs(t, err, cause)
	})
}

func TestHasCode(t *testing.T) {
	err := dErrors.New(dErrors.CodeValidation, "unknown document kind")

	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	assert.False(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	assert.False(t, dErrors.HasCode(errors.New("plain"), dErrors.CodeValidation))
	assert.False(t, dErrors.HasCode(nil, dErrors.CodeValidation))

	t.Run("sees through fmt wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("handler: %w", err)
		assert.True(t, dErrors.HasCode(wrapped, dErrors.CodeValidation))
	})
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, dErrors.CodeConflict, dErrors.CodeOf(dErrors.New(dErrors.CodeConflict, "duplicate")))
	assert.Equal(t, dErrors.CodeInternal, dErrors.CodeOf(errors.New("plain")))
}

package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loanflow/internal/platform/token"
)

func TestValidateToken(t *testing.T) {
	validator := token.NewValidator("test-signing-key")

	t.Run("accepts a token it issued", func(t *testing.T) {
		signed, err := validator.Issue("officer-42", time.Minute)
		require.NoError(t, err)

		claims, err := validator.ValidateToken(signed)
		require.NoError(t, err)
		assert.Equal(t, "officer-42", claims.Subject)
	})

	t.Run("rejects a token signed with another key", func(t *testing.T) {
		other := token.NewValidator("some-other-key")
		signed, err := other.Issue("officer-42", time.Minute)
		require.NoError(t, err)

		_, err = validator.ValidateToken(signed)
		assert.Error(t, err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		signed, err := validator.Issue("officer-42", -time.Minute)
		require.NoError(t, err)

		_, err = validator.ValidateToken(signed)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := validator.ValidateToken("not.a.jwt")
		assert.Error(t, err)
	})
}

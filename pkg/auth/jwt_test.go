package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupToken(t *testing.T) {
	verifiedAt := time.Now().Truncate(time.Second)

	t.Run("Success - round trip", func(t *testing.T) {
		token, err := GenerateSignupToken("9876543210", verifiedAt, "test-secret", 24)
		require.NoError(t, err)

		claims, err := ValidateSignupToken(token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, "9876543210", claims.Mobile)
		assert.True(t, claims.VerifiedAt.Equal(verifiedAt))
	})

	t.Run("Failure - wrong secret", func(t *testing.T) {
		token, err := GenerateSignupToken("9876543210", verifiedAt, "test-secret", 24)
		require.NoError(t, err)

		_, err = ValidateSignupToken(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("Failure - garbage token", func(t *testing.T) {
		_, err := ValidateSignupToken("not.a.token", "test-secret")
		assert.Error(t, err)
	})
}

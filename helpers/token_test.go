package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	SetJWTKey("test-secret")

	token, err := GenerateToken("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestValidateToken_WrongKey(t *testing.T) {
	SetJWTKey("first-secret")
	token, err := GenerateToken("alice@example.com")
	require.NoError(t, err)

	SetJWTKey("second-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	SetJWTKey("test-secret")

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

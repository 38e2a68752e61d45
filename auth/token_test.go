package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramizraj19/B2B-nexus/models"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService("test-secret", 7*24*time.Hour)

	token, err := tokens.Issue("user-123", models.RoleSeller)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, models.RoleSeller, role)
}

func TestTokenExpired(t *testing.T) {
	tokens := NewTokenService("test-secret", -time.Minute)

	token, err := tokens.Issue("user-123", models.RoleBuyer)
	require.NoError(t, err)

	_, _, err = tokens.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenMalformed(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	_, _, err := tokens.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("user-123", models.RoleBuyer)
	require.NoError(t, err)

	_, _, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestTokenMissingSubject(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)

	token, err := tokens.Issue("", models.RoleBuyer)
	require.NoError(t, err)

	_, _, err = tokens.Parse(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

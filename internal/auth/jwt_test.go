package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseToken(t *testing.T) {
	userID := uuid.New()

	token, expiresAt, err := IssueToken(userID, "user@example.com", "mytutor", "secret", time.Hour)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := ParseToken(token, "secret", "mytutor")
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestParseToken_WrongKey(t *testing.T) {
	token, _, err := IssueToken(uuid.New(), "user@example.com", "mytutor", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret", "mytutor")
	assert.Error(t, err)
}

func TestParseToken_WrongIssuer(t *testing.T) {
	token, _, err := IssueToken(uuid.New(), "user@example.com", "someone-else", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret", "mytutor")
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, _, err := IssueToken(uuid.New(), "user@example.com", "mytutor", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret", "mytutor")
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not-a-token", "secret", "mytutor")
	assert.Error(t, err)
}

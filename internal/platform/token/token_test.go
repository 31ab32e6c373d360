package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	signed, err := manager.Issue(42, "amara@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := manager.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "amara@example.com", claims.Email)
	assert.Equal(t, "backoffice", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := NewManager("secret-a", time.Hour).Issue(1, "a@example.com")
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	manager.ttl = -time.Minute

	signed, err := manager.Issue(1, "a@example.com")
	require.NoError(t, err)

	_, err = manager.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	_, err := manager.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = manager.Verify("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewManagerDefaultsTTL(t *testing.T) {
	manager := NewManager("s", 0)
	assert.Equal(t, 24*time.Hour, manager.ttl)
}

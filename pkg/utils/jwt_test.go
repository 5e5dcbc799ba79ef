package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_TokenPairRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", "docgen-ai")

	pair, err := manager.GenerateTokenPair("u1", 15*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	access, err := manager.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", access.UserID)
	assert.Equal(t, "access", access.Type)
	assert.Equal(t, "docgen-ai", access.Issuer)

	refresh, err := manager.ParseToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "refresh", refresh.Type)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", "docgen-ai")

	token, err := manager.GenerateToken("u1", "access", -time.Minute)
	require.NoError(t, err)

	_, err = manager.ParseToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", "docgen-ai")
	other := NewJWTManager("other-secret", "docgen-ai")

	token, err := manager.GenerateToken("u1", "access", time.Minute)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_GarbageToken(t *testing.T) {
	manager := NewJWTManager("test-secret", "docgen-ai")

	_, err := manager.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

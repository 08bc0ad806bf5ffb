package helpers

import (
	"context"
	"testing"

	"admin/internal/configuration"
	"admin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-signing"

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := NewSessionToken(testSecret, "ops@example.com", models.RoleManager, 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseSessionToken(testSecret, "Bearer "+token)
	require.NoError(t, err)

	assert.Equal(t, "ops@example.com", claims.Email)
	assert.Equal(t, models.RoleManager, claims.Role)
	assert.Equal(t, configuration.AudienceAccessToken, claims.Aud)
	assert.Equal(t, configuration.AppName, claims.Issuer)
	assert.NotEqual(t, claims.SessionID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestParseSessionTokenRequiresBearerPrefix(t *testing.T) {
	token, err := NewSessionToken(testSecret, "ops@example.com", models.RoleAdmin, 60)
	require.NoError(t, err)

	_, err = ParseSessionToken(testSecret, token)
	assert.Error(t, err)
}

func TestParseSessionTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewSessionToken(testSecret, "ops@example.com", models.RoleAdmin, 60)
	require.NoError(t, err)

	_, err = ParseSessionToken("another-secret", "Bearer "+token)
	assert.Error(t, err)
}

func TestParseSessionTokenRejectsExpired(t *testing.T) {
	token, err := NewSessionToken(testSecret, "ops@example.com", models.RoleAdmin, -1)
	require.NoError(t, err)

	_, err = ParseSessionToken(testSecret, "Bearer "+token)
	assert.Error(t, err)
}

func TestParseSessionTokenRejectsGarbage(t *testing.T) {
	_, err := ParseSessionToken(testSecret, "Bearer not-a-jwt")
	assert.Error(t, err)
}

func TestGetSessionClaims(t *testing.T) {
	claims := models.SessionClaims{Email: "ops@example.com", Role: models.RoleSupport}
	ctx := context.WithValue(context.Background(), models.SessionClaimKey{}, claims)

	got, err := GetSessionClaims(ctx)
	require.NoError(t, err)
	assert.Equal(t, claims.Email, got.Email)

	_, err = GetSessionClaims(context.Background())
	assert.Error(t, err)
}

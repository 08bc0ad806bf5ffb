package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"admin/internal/helpers"
	"admin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-signing"

func authTestHandler(t *testing.T, expectClaims bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if expectClaims {
			claims, err := helpers.GetSessionClaims(r.Context())
			require.NoError(t, err)
			assert.Equal(t, "ops@example.com", claims.Email)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	handler := Authenticate(testSecret)(authTestHandler(t, false))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateAcceptsValidToken(t *testing.T) {
	token, err := helpers.NewSessionToken(testSecret, "ops@example.com", models.RoleAdmin, 60)
	require.NoError(t, err)

	handler := Authenticate(testSecret)(authTestHandler(t, true))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticateExcludesLogin(t *testing.T) {
	handler := Authenticate(testSecret)(authTestHandler(t, false))

	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticateExcludesHealthGetOnly(t *testing.T) {
	handler := Authenticate(testSecret)(authTestHandler(t, false))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	r = httptest.NewRequest(http.MethodPost, "/api/v1/health", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateRejectsTamperedToken(t *testing.T) {
	token, err := helpers.NewSessionToken("other-secret", "ops@example.com", models.RoleAdmin, 60)
	require.NoError(t, err)

	handler := Authenticate(testSecret)(authTestHandler(t, false))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

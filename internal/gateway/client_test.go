package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"admin/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersPassesEnvelopeThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/users", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Envelope[models.UsersPage]{
			Success: true,
			Data: models.UsersPage{Users: []models.UpstreamUser{
				{ID: "u1", FirstName: "Asha", LastName: "Rao"},
			}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, Session{Token: "token-123"})

	env := client.ListUsers(context.Background(), models.UserListQuery{Page: 2, Limit: 50})

	require.True(t, env.Success)
	require.Len(t, env.Data.Users, 1)
	assert.Equal(t, "u1", env.Data.Users[0].ID)
}

func TestTransportErrorFoldsIntoEnvelope(t *testing.T) {
	// Closed server: connection refused.
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, Session{})

	env := client.ListUsers(context.Background(), models.UserListQuery{Page: 1, Limit: 10})

	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Message)
}

func TestUpstreamFailureKeepsMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(models.Envelope[models.Empty]{
			Success: false,
			Message: "Access denied. Admin only.",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, Session{Token: "t"})

	env := client.UpdateUserStatus(context.Background(), "u1", models.UserStatusBody{Status: "suspended"})

	assert.False(t, env.Success)
	assert.Equal(t, "Access denied. Admin only.", env.Message)
}

func TestUpstreamFailureWithoutMessageGetsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, Session{})

	env := client.DashboardStats(context.Background())

	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "502")
}

func TestLoginPostsCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/login", r.URL.Path)

		var body models.AuthLoginBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ops@example.com", body.Email)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Envelope[models.LoginData]{
			Success: true,
			Data:    models.LoginData{Token: "jwt-abc"},
		})
	}))
	defer server.Close()

	env := Login(context.Background(), server.URL, "ops@example.com", "secret")

	require.True(t, env.Success)
	assert.Equal(t, "jwt-abc", env.Data.Token)
}

func TestUpdateProductStatusEscapesID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/admin/products/p%2F1/status", r.URL.EscapedPath())

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Envelope[models.Empty]{Success: true})
	}))
	defer server.Close()

	client := NewClient(server.URL, Session{})

	env := client.UpdateProductStatus(context.Background(), "p/1", models.ProductStatusBody{IsActive: true})

	assert.True(t, env.Success)
}

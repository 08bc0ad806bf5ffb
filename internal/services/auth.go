package services

import (
	"context"
	"net/http"

	"admin/internal/gateway"
	"admin/internal/handlers"
	"admin/internal/helpers"
	m "admin/internal/middlewares"
	"admin/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AuthService verifies operator credentials against the marketplace backend
// and mints local dashboard session tokens. The backend token obtained during
// verification is discarded; it never reaches the browser.
type AuthService struct {
	AuthConfig      models.AuthConfig
	UpstreamBaseURL string
}

func (s AuthService) Routes() chi.Router {
	r := chi.NewRouter()

	r.With(m.ValidateBody[models.AuthLoginBody]).
		Post("/login", handlers.CreateHandler(s.Login))

	return r
}

func (s AuthService) Login(
	logger *zap.Logger,
	_ models.SessionClaims,
	_ []string,
	body models.AuthLoginBody,
) (models.AuthLoginResponse, error) {
	env := gateway.Login(context.Background(), s.UpstreamBaseURL, body.Email, body.Password)
	if !env.Success {
		logger.Info("Login rejected", zap.String("email", body.Email), zap.String("reason", env.Message))
		return models.AuthLoginResponse{}, helpers.NewAPIError(http.StatusUnauthorized, "INVALID_CREDENTIALS")
	}

	role := upstreamRole(env.Data.Token)

	token, err := helpers.NewSessionToken(s.AuthConfig.JWTSecret, body.Email, role, s.AuthConfig.AccessTokenExpiry)
	if err != nil {
		logger.Error("Failed to mint session token", zap.Error(err))
		return models.AuthLoginResponse{}, helpers.NewAPIError(http.StatusInternalServerError, "TOKEN_GENERATION_FAILED")
	}

	logger.Info("Operator logged in", zap.String("email", body.Email), zap.String("role", string(role)))

	return models.AuthLoginResponse{
		AccessToken: token,
		ExpiresIn:   s.AuthConfig.AccessTokenExpiry * 60,
		Role:        role,
	}, nil
}

// upstreamRole extracts the role claim from the backend token. The token
// arrived over the authenticated backend connection, so its payload is read
// without signature verification; the backend key is not shared with this
// service. Tokens without a usable role claim default to SUPPORT, the least
// privileged role.
func upstreamRole(token string) models.Role {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return models.RoleSupport
	}

	raw, ok := claims["role"].(string)
	if !ok {
		return models.RoleSupport
	}

	switch models.Role(raw) {
	case models.RoleAdmin, models.RoleManager, models.RoleSupport:
		return models.Role(raw)
	default:
		return models.RoleSupport
	}
}

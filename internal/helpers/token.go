package helpers

import (
	"context"
	"errors"
	"strings"
	"time"

	"admin/internal/configuration"
	"admin/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// NewSessionToken mints a dashboard session JWT for an operator whose
// credentials were accepted by the marketplace backend.
func NewSessionToken(jwtSecret string, email string, role models.Role, expiryMinutes int) (string, error) {
	claims := models.SessionClaims{
		Email:     email,
		Role:      role,
		SessionID: uuid.New(),
		Aud:       configuration.AudienceAccessToken,
		Issuer:    configuration.AppName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  &jwt.NumericDate{Time: time.Now()},
			ExpiresAt: &jwt.NumericDate{Time: time.Now().Add(time.Minute * time.Duration(expiryMinutes))},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// ParseSessionToken parses and validates a session token from an
// Authorization header value ("Bearer <token>").
func ParseSessionToken(jwtSecret string, tokenString string) (models.SessionClaims, error) {
	if !strings.HasPrefix(tokenString, "Bearer ") {
		return models.SessionClaims{}, errors.New("invalid token")
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	claims := &models.SessionClaims{}

	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		},
	)
	if err != nil {
		return models.SessionClaims{}, errors.New("invalid token")
	}

	if claims.Aud != configuration.AudienceAccessToken {
		return models.SessionClaims{}, errors.New("invalid token audience")
	}

	return *claims, nil
}

func GetSessionClaims(c context.Context) (models.SessionClaims, error) {
	value, ok := c.Value(models.SessionClaimKey{}).(models.SessionClaims)
	if !ok {
		return models.SessionClaims{}, errors.New("invalid session claims")
	}
	return value, nil
}

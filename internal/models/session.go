package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleSupport Role = "SUPPORT"
)

// SessionClaimKey is the context key under which authenticated claims are stored.
type SessionClaimKey struct{}

// SessionClaims is the payload of a dashboard session token. The upstream
// backend token never leaves the server; operators only ever hold this JWT.
type SessionClaims struct {
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	SessionID uuid.UUID `json:"sid"`
	Aud       string    `json:"aud"`
	Issuer    string    `json:"iss"`
	jwt.RegisteredClaims
}

type AuthLoginBody struct {
	Email    string `json:"email"    validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

type AuthLoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	Role        Role   `json:"role"`
}

type EmployeeCreateBody struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName"  validate:"required,max=100"`
	Email     string `json:"email"     validate:"required,email,max=254"`
	Phone     string `json:"phone"     validate:"required,max=20"`
	Password  string `json:"password"  validate:"required,min=8,max=72"`
	Role      Role   `json:"role"      validate:"required,oneof=ADMIN MANAGER SUPPORT"`
}

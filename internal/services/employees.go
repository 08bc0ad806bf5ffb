package services

import (
	"context"

	"admin/internal/gateway"
	"admin/internal/handlers"
	m "admin/internal/middlewares"
	"admin/internal/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmployeeService proxies dashboard operator registration to the backend.
// Accounts live upstream; this service only forwards and audits.
type EmployeeService struct {
	DB      *gorm.DB
	Gateway gateway.IGateway
}

func (s EmployeeService) Routes() chi.Router {
	r := chi.NewRouter()

	r.With(m.AuthorizeRole(models.RoleAdmin)).
		With(m.ValidateBody[models.EmployeeCreateBody]).
		Post("/", handlers.CreateHandler(s.Register))

	return r
}

func (s EmployeeService) Register(
	logger *zap.Logger,
	claims models.SessionClaims,
	_ []string,
	body models.EmployeeCreateBody,
) (models.Empty, error) {
	env := s.Gateway.RegisterEmployee(context.Background(), body)
	if !env.Success {
		return models.Empty{}, upstreamError(env.Message)
	}

	logger.Info("Employee registered",
		zap.String("email", body.Email),
		zap.String("role", string(body.Role)))
	audit(s.DB, claims, "employee.register", body.Email, string(body.Role))

	return models.Empty{}, nil
}

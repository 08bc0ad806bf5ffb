package services

import (
	"admin/internal/gateway"
	"admin/internal/handlers"
	"admin/internal/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type LocationService struct {
	Fixtures gateway.IFixtures
}

func (s LocationService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", handlers.GetOneHandler(s.List))

	return r
}

func (s LocationService) List(
	_ *zap.Logger,
	_ models.SessionClaims,
	_ []string,
) ([]models.LocationRecord, error) {
	env := s.Fixtures.ListLocations()
	if !env.Success {
		return nil, upstreamError(env.Message)
	}
	return env.Data, nil
}

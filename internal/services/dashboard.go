package services

import (
	"context"
	"time"

	"admin/internal/cache"
	"admin/internal/configuration"
	"admin/internal/gateway"
	"admin/internal/handlers"
	"admin/internal/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DashboardService struct {
	Cache    cache.ICache
	Gateway  gateway.IGateway
	Fixtures gateway.IFixtures
}

func (s DashboardService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", handlers.GetOneHandler(s.Get))

	return r
}

func (s DashboardService) Get(
	_ *zap.Logger,
	_ models.SessionClaims,
	_ []string,
) (models.DashboardView, error) {
	if view, ok := cachedView[models.DashboardView](s.Cache, configuration.SnapshotDashboard); ok {
		return view, nil
	}

	statsEnv := s.Gateway.DashboardStats(context.Background())
	if !statsEnv.Success {
		return models.DashboardView{}, upstreamError(statsEnv.Message)
	}

	chartsEnv := s.Fixtures.DashboardCharts()
	if !chartsEnv.Success {
		return models.DashboardView{}, upstreamError(chartsEnv.Message)
	}

	return models.DashboardView{
		Stats:     statsEnv.Data,
		Charts:    chartsEnv.Data,
		FetchedAt: time.Now().UTC(),
	}, nil
}

package workers

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"admin/internal/cache"
	"admin/internal/configuration"
	"admin/internal/gateway"
	"admin/internal/models"
	"admin/internal/poller"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DashboardRefreshWorker keeps the dashboard snapshot warm: the backend's
// precomputed stats plus the chart fixtures.
type DashboardRefreshWorker struct {
	DB       *gorm.DB
	Cache    cache.ICache
	Gateway  gateway.IGateway
	Fixtures gateway.IFixtures
	Upstream models.UpstreamConfiguration
}

func (w *DashboardRefreshWorker) Start(ctx context.Context) {
	interval := time.Duration(w.Upstream.RefreshInterval) * time.Second
	p := poller.New("dashboard_refresh", w.fetch, interval, w.store)
	p.Run(ctx)
}

func (w *DashboardRefreshWorker) fetch(ctx context.Context) (models.DashboardView, error) {
	var view models.DashboardView

	err := trackRun(w.DB, "dashboard_refresh", func() error {
		statsEnv := w.Gateway.DashboardStats(ctx)
		if !statsEnv.Success {
			return errors.New(statsEnv.Message)
		}

		chartsEnv := w.Fixtures.DashboardCharts()
		if !chartsEnv.Success {
			return errors.New(chartsEnv.Message)
		}

		view = models.DashboardView{
			Stats:     statsEnv.Data,
			Charts:    chartsEnv.Data,
			FetchedAt: time.Now().UTC(),
		}
		return nil
	})

	return view, err
}

func (w *DashboardRefreshWorker) store(view models.DashboardView) {
	if w.Cache == nil {
		return
	}

	payload, err := json.Marshal(view)
	if err != nil {
		zap.L().Error("Failed to marshal dashboard snapshot", zap.Error(err))
		return
	}

	if err = w.Cache.SetSnapshot(configuration.SnapshotDashboard, payload); err != nil {
		zap.L().Error("Failed to cache dashboard snapshot", zap.Error(err))
	}
}

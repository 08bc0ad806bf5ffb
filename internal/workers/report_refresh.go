package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"admin/internal/cache"
	"admin/internal/configuration"
	"admin/internal/events"
	"admin/internal/gateway"
	"admin/internal/messaging"
	"admin/internal/models"
	"admin/internal/normalize"
	"admin/internal/poller"
	"admin/internal/report"
	"admin/internal/sql"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReportRefreshWorker polls the marketplace backend, normalizes the raw lists
// and materializes the report plus the per-page view snapshots into the cache.
type ReportRefreshWorker struct {
	DB              *gorm.DB
	Cache           cache.ICache
	Gateway         gateway.IGateway
	Refresh         messaging.IPublisher
	Alerts          messaging.IPublisher
	Upstream        models.UpstreamConfiguration
	AlertThresholds models.AlertsConfiguration
}

type refreshResult struct {
	users      []models.UserRecord
	ads        []models.AdRecord
	categories []models.CategoryRecord
	snapshot   models.ReportSnapshot
	duration   time.Duration
}

func (w *ReportRefreshWorker) Start(ctx context.Context) {
	interval := time.Duration(w.Upstream.RefreshInterval) * time.Second
	p := poller.New("report_refresh", w.fetch, interval, w.store)
	p.Run(ctx)
}

func (w *ReportRefreshWorker) fetch(ctx context.Context) (refreshResult, error) {
	var result refreshResult

	err := trackRun(w.DB, "report_refresh", func() error {
		startTime := time.Now()

		usersEnv := w.Gateway.ListUsers(ctx, models.UserListQuery{Page: 1, Limit: w.Upstream.ReportLimit})
		if !usersEnv.Success {
			return errors.New(usersEnv.Message)
		}

		productsEnv := w.Gateway.ListProducts(ctx, models.ProductListQuery{Page: 1, Limit: w.Upstream.ReportLimit})
		if !productsEnv.Success {
			return errors.New(productsEnv.Message)
		}

		categoriesEnv := w.Gateway.ListCategories(ctx)
		if !categoriesEnv.Success {
			return errors.New(categoriesEnv.Message)
		}

		result.users = normalize.Users(usersEnv.Data.Users)
		result.ads = normalize.Products(productsEnv.Data.Products)
		result.categories = normalize.Categories(categoriesEnv.Data.Categories)
		result.snapshot = report.Build(result.users, result.ads, result.categories)
		result.duration = time.Since(startTime)

		return nil
	})

	return result, err
}

func (w *ReportRefreshWorker) store(result refreshResult) {
	now := time.Now().UTC()
	total, active, pending, flagged := report.AdStats(result.ads)

	w.cacheSnapshot(configuration.SnapshotReport, result.snapshot)
	w.cacheSnapshot(configuration.SnapshotUsers, models.UsersView{
		Users: result.users,
		Stats: report.CountByStatus(result.users,
			func(u models.UserRecord) string { return u.Status },
			"Active", "Pending", "Suspended"),
		FetchedAt: now,
	})
	w.cacheSnapshot(configuration.SnapshotAds, models.AdsView{
		Ads:       result.ads,
		Total:     total,
		Active:    active,
		Pending:   pending,
		Flagged:   flagged,
		FetchedAt: now,
	})
	w.cacheSnapshot(configuration.SnapshotCategories, models.CategoriesView{
		Categories: result.categories,
		Summary:    report.CategorySummary(result.categories),
		FetchedAt:  now,
	})

	if w.DB != nil {
		if err := sql.InsertReportSnapshot(w.DB, result.snapshot); err != nil {
			zap.L().Error("Failed to archive report snapshot", zap.Error(err))
		}
	}

	w.publishRefresh(result)
	w.raiseFlaggedAlert(flagged)
}

func (w *ReportRefreshWorker) cacheSnapshot(resource string, view any) {
	if w.Cache == nil {
		return
	}

	payload, err := json.Marshal(view)
	if err != nil {
		zap.L().Error("Failed to marshal snapshot", zap.String("resource", resource), zap.Error(err))
		return
	}

	if err = w.Cache.SetSnapshot(resource, payload); err != nil {
		zap.L().Error("Failed to cache snapshot", zap.String("resource", resource), zap.Error(err))
	}
}

func (w *ReportRefreshWorker) publishRefresh(result refreshResult) {
	if w.Refresh == nil {
		return
	}

	msg, err := events.NewRefreshMessage(events.RefreshCompleted{
		Resource:   configuration.SnapshotReport,
		Records:    result.snapshot.Summary.TotalUsers + result.snapshot.Summary.TotalAds,
		DurationMs: result.duration.Milliseconds(),
	})
	if err != nil {
		zap.L().Error("Failed to build refresh event", zap.Error(err))
		return
	}

	if err = w.Refresh.Publish(msg); err != nil {
		zap.L().Error("Failed to publish refresh event", zap.Error(err))
	}
}

func (w *ReportRefreshWorker) raiseFlaggedAlert(flagged int) {
	threshold := w.AlertThresholds.FlaggedAdsThreshold
	if w.Alerts == nil || threshold <= 0 || flagged < threshold {
		return
	}

	msg, err := events.NewAlertMessage(events.AlertRaised{
		Title: "Flagged ads above threshold",
		Body:  fmt.Sprintf("%d ads carry flags, threshold is %d", flagged, threshold),
		Kind:  "moderation",
	})
	if err != nil {
		zap.L().Error("Failed to build alert event", zap.Error(err))
		return
	}

	if err = w.Alerts.Publish(msg); err != nil {
		zap.L().Error("Failed to publish alert event", zap.Error(err))
	}
}

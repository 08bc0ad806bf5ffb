package services

import (
	"context"
	"fmt"
	"time"

	"admin/internal/cache"
	"admin/internal/configuration"
	"admin/internal/gateway"
	"admin/internal/handlers"
	m "admin/internal/middlewares"
	"admin/internal/models"
	"admin/internal/normalize"
	"admin/internal/report"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AdService struct {
	DB       *gorm.DB
	Cache    cache.ICache
	Gateway  gateway.IGateway
	Upstream models.UpstreamConfiguration
}

func (s AdService) Routes() chi.Router {
	r := chi.NewRouter()

	r.With(m.ValidateQuery[models.ProductListQuery]).
		Get("/", handlers.GetOneWithQueryHandler(s.List))

	r.Get("/snapshot", handlers.GetOneHandler(s.Snapshot))

	r.With(m.AuthorizeRole(models.RoleManager)).
		With(m.ValidateBody[models.ProductStatusBody]).
		Put("/{id}/status", handlers.CreateHandler(s.UpdateStatus))

	return r
}

func (s AdService) List(
	_ *zap.Logger,
	_ models.SessionClaims,
	_ []string,
	query models.ProductListQuery,
) (models.AdsView, error) {
	if query.Limit == 0 {
		query.Limit = s.Upstream.PageLimit
	}
	if query.Page == 0 {
		query.Page = 1
	}

	env := s.Gateway.ListProducts(context.Background(), query)
	if !env.Success {
		return models.AdsView{}, upstreamError(env.Message)
	}

	ads := normalize.Products(env.Data.Products)
	total, active, pending, flagged := report.AdStats(ads)

	return models.AdsView{
		Ads:       ads,
		Total:     total,
		Active:    active,
		Pending:   pending,
		Flagged:   flagged,
		FetchedAt: time.Now().UTC(),
	}, nil
}

func (s AdService) Snapshot(
	logger *zap.Logger,
	claims models.SessionClaims,
	ids []string,
) (models.AdsView, error) {
	if view, ok := cachedView[models.AdsView](s.Cache, configuration.SnapshotAds); ok {
		return view, nil
	}
	return s.List(logger, claims, ids, models.ProductListQuery{})
}

func (s AdService) UpdateStatus(
	logger *zap.Logger,
	claims models.SessionClaims,
	ids []string,
	body models.ProductStatusBody,
) (models.Empty, error) {
	id, err := firstParam(ids)
	if err != nil {
		return models.Empty{}, err
	}

	env := s.Gateway.UpdateProductStatus(context.Background(), id, body)
	if !env.Success {
		return models.Empty{}, upstreamError(env.Message)
	}

	logger.Info("Ad status updated", zap.String("ad_id", id), zap.Bool("active", body.IsActive))
	audit(s.DB, claims, "ad.status.update", id, fmt.Sprintf("active=%t", body.IsActive))

	return models.Empty{}, nil
}

package services

import (
	"context"
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

type CategoryService struct {
	DB      *gorm.DB
	Cache   cache.ICache
	Gateway gateway.IGateway
}

func (s CategoryService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", handlers.GetOneHandler(s.List))
	r.Get("/snapshot", handlers.GetOneHandler(s.Snapshot))

	r.With(m.AuthorizeRole(models.RoleManager)).
		With(m.ValidateBody[models.CategoryCreateBody]).
		Post("/", handlers.CreateHandler(s.Create))

	return r
}

func (s CategoryService) List(
	_ *zap.Logger,
	_ models.SessionClaims,
	_ []string,
) (models.CategoriesView, error) {
	env := s.Gateway.ListCategories(context.Background())
	if !env.Success {
		return models.CategoriesView{}, upstreamError(env.Message)
	}

	categories := normalize.Categories(env.Data.Categories)

	return models.CategoriesView{
		Categories: categories,
		Summary:    report.CategorySummary(categories),
		FetchedAt:  time.Now().UTC(),
	}, nil
}

func (s CategoryService) Snapshot(
	logger *zap.Logger,
	claims models.SessionClaims,
	ids []string,
) (models.CategoriesView, error) {
	if view, ok := cachedView[models.CategoriesView](s.Cache, configuration.SnapshotCategories); ok {
		return view, nil
	}
	return s.List(logger, claims, ids)
}

func (s CategoryService) Create(
	logger *zap.Logger,
	claims models.SessionClaims,
	_ []string,
	body models.CategoryCreateBody,
) (models.Empty, error) {
	env := s.Gateway.CreateCategory(context.Background(), body)
	if !env.Success {
		return models.Empty{}, upstreamError(env.Message)
	}

	logger.Info("Category created", zap.String("name", body.Name))
	audit(s.DB, claims, "category.create", "", body.Name)

	return models.Empty{}, nil
}

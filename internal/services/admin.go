package services

import (
	m "admin/internal/middlewares"
	"admin/internal/models"

	"admin/internal/handlers"

	"admin/internal/sql"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AdminService struct {
	DB *gorm.DB
}

func (s AdminService) Routes() chi.Router {
	r := chi.NewRouter()

	r.With(m.AuthorizeRole(models.RoleAdmin)).
		With(m.ValidateQuery[models.AuditListQuery]).
		Get("/audit", handlers.GetOneWithQueryHandler(s.Audit))

	r.With(m.AuthorizeRole(models.RoleAdmin)).
		Get("/workers", handlers.GetOneHandler(s.WorkerRuns))

	return r
}

func (s AdminService) Audit(
	_ *zap.Logger,
	_ models.SessionClaims,
	_ []string,
	query models.AuditListQuery,
) (models.AuditPage, error) {
	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 50
	}

	records, err := sql.ListAudit(s.DB, query.Page, query.Limit)
	if err != nil {
		return models.AuditPage{}, err
	}

	return models.AuditPage{
		Records: records,
		Page:    query.Page,
		Limit:   query.Limit,
	}, nil
}

func (s AdminService) WorkerRuns(
	_ *zap.Logger,
	_ models.SessionClaims,
	_ []string,
) ([]models.WorkerRun, error) {
	return sql.ListWorkerRuns(s.DB, 50)
}

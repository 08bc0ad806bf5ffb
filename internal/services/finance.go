package services

import (
	"context"

	"admin/internal/gateway"
	"admin/internal/handlers"
	m "admin/internal/middlewares"
	"admin/internal/models"
	"admin/internal/normalize"
	"admin/internal/report"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// FinanceService serves orders, payments and promotion packages. Orders come
// from the backend; payments and packages are fixture-backed until the backend
// exposes them, behind the same envelope shape so swapping the source later is
// transparent.
type FinanceService struct {
	Gateway  gateway.IGateway
	Fixtures gateway.IFixtures
	Upstream models.UpstreamConfiguration
}

func (s FinanceService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/payments", handlers.GetOneHandler(s.Payments))
	r.Get("/packages", handlers.GetOneHandler(s.Packages))

	r.With(m.ValidateQuery[models.OrderListQuery]).
		Get("/orders", handlers.GetOneWithQueryHandler(s.Orders))

	return r
}

func (s FinanceService) Orders(
	_ *zap.Logger,
	_ models.SessionClaims,
	_ []string,
	query models.OrderListQuery,
) ([]models.OrderRecord, error) {
	if query.Limit == 0 {
		query.Limit = s.Upstream.PageLimit
	}
	if query.Page == 0 {
		query.Page = 1
	}

	env := s.Gateway.ListOrders(context.Background(), query)
	if !env.Success {
		return nil, upstreamError(env.Message)
	}

	return normalize.Orders(env.Data.Orders), nil
}

func (s FinanceService) Payments(
	_ *zap.Logger,
	_ models.SessionClaims,
	_ []string,
) (models.FinanceView, error) {
	env := s.Fixtures.ListPayments()
	if !env.Success {
		return models.FinanceView{}, upstreamError(env.Message)
	}

	payments := normalize.Payments(env.Data)

	return models.FinanceView{
		Payments: payments,
		Summary:  report.PaymentsSummary(payments),
	}, nil
}

func (s FinanceService) Packages(
	_ *zap.Logger,
	_ models.SessionClaims,
	_ []string,
) ([]models.PackageRecord, error) {
	env := s.Fixtures.ListPackages()
	if !env.Success {
		return nil, upstreamError(env.Message)
	}
	return env.Data, nil
}

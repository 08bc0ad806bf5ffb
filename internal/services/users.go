package services

import (
	"context"
	"encoding/json"
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

type UserService struct {
	DB       *gorm.DB
	Cache    cache.ICache
	Gateway  gateway.IGateway
	Upstream models.UpstreamConfiguration
}

func (s UserService) Routes() chi.Router {
	r := chi.NewRouter()

	r.With(m.ValidateQuery[models.UserListQuery]).
		Get("/", handlers.GetOneWithQueryHandler(s.List))

	r.Get("/snapshot", handlers.GetOneHandler(s.Snapshot))
	r.Get("/{id}", handlers.GetOneHandler(s.Get))

	r.With(m.AuthorizeRole(models.RoleManager)).
		With(m.ValidateBody[models.UserStatusBody]).
		Put("/{id}/status", handlers.CreateHandler(s.UpdateStatus))

	r.With(m.AuthorizeRole(models.RoleManager)).
		With(m.ValidateBody[models.UserVerificationBody]).
		Put("/{id}/verification", handlers.CreateHandler(s.UpdateVerification))

	return r
}

func (s UserService) List(
	_ *zap.Logger,
	_ models.SessionClaims,
	_ []string,
	query models.UserListQuery,
) (models.UsersView, error) {
	if query.Limit == 0 {
		query.Limit = s.Upstream.PageLimit
	}
	if query.Page == 0 {
		query.Page = 1
	}

	env := s.Gateway.ListUsers(context.Background(), query)
	if !env.Success {
		return models.UsersView{}, upstreamError(env.Message)
	}

	users := normalize.Users(env.Data.Users)

	return models.UsersView{
		Users: users,
		Stats: report.CountByStatus(users,
			func(u models.UserRecord) string { return u.Status },
			"Active", "Pending", "Suspended"),
		FetchedAt: time.Now().UTC(),
	}, nil
}

// Snapshot serves the worker-materialized view from the cache; it falls back
// to a live fetch when no snapshot is available.
func (s UserService) Snapshot(
	logger *zap.Logger,
	claims models.SessionClaims,
	ids []string,
) (models.UsersView, error) {
	if view, ok := cachedView[models.UsersView](s.Cache, configuration.SnapshotUsers); ok {
		return view, nil
	}
	return s.List(logger, claims, ids, models.UserListQuery{})
}

func (s UserService) Get(
	_ *zap.Logger,
	_ models.SessionClaims,
	ids []string,
) (models.UserRecord, error) {
	id, err := firstParam(ids)
	if err != nil {
		return models.UserRecord{}, err
	}

	env := s.Gateway.GetUser(context.Background(), id)
	if !env.Success {
		return models.UserRecord{}, upstreamError(env.Message)
	}

	return normalize.User(env.Data.User), nil
}

func (s UserService) UpdateStatus(
	logger *zap.Logger,
	claims models.SessionClaims,
	ids []string,
	body models.UserStatusBody,
) (models.Empty, error) {
	id, err := firstParam(ids)
	if err != nil {
		return models.Empty{}, err
	}

	env := s.Gateway.UpdateUserStatus(context.Background(), id, body)
	if !env.Success {
		return models.Empty{}, upstreamError(env.Message)
	}

	logger.Info("User status updated", zap.String("user_id", id), zap.String("status", body.Status))
	audit(s.DB, claims, "user.status.update", id, fmt.Sprintf("status=%s", body.Status))

	return models.Empty{}, nil
}

func (s UserService) UpdateVerification(
	logger *zap.Logger,
	claims models.SessionClaims,
	ids []string,
	body models.UserVerificationBody,
) (models.Empty, error) {
	id, err := firstParam(ids)
	if err != nil {
		return models.Empty{}, err
	}

	env := s.Gateway.UpdateUserVerification(context.Background(), id, body)
	if !env.Success {
		return models.Empty{}, upstreamError(env.Message)
	}

	logger.Info("User verification updated", zap.String("user_id", id))
	audit(s.DB, claims, "user.verification.update", id, fmt.Sprintf("verification=%s", body.VerificationStatus))

	return models.Empty{}, nil
}

// cachedView decodes a snapshot written by the refresh workers. A missing or
// undecodable snapshot reads as absent.
func cachedView[T any](c cache.ICache, resource string) (T, bool) {
	var view T

	if c == nil {
		return view, false
	}

	payload, ok, err := c.GetSnapshot(resource)
	if err != nil || !ok {
		if err != nil {
			zap.L().Warn("Failed to read snapshot", zap.String("resource", resource), zap.Error(err))
		}
		return view, false
	}

	if err = json.Unmarshal(payload, &view); err != nil {
		zap.L().Warn("Failed to decode snapshot", zap.String("resource", resource), zap.Error(err))
		return view, false
	}

	return view, true
}

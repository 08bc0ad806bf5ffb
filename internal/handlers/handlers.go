package handlers

import (
	"net/http"

	"admin/internal/helpers"
	m "admin/internal/middlewares"
	"admin/internal/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Service methods share the signature (logger, claims, ids, [query|body]) and
// return a response payload or an error. The adapters below lift them into
// http.Handlers; URL parameters are passed as opaque strings since upstream
// record ids are not under this service's control.

func requestLogger(claims models.SessionClaims) *zap.Logger {
	return zap.L().With(zap.String("actor", claims.Email))
}

func urlParams(r *http.Request) []string {
	routeCtx := chi.RouteContext(r.Context())
	if routeCtx == nil {
		return nil
	}
	return routeCtx.URLParams.Values
}

// GetOneHandler adapts a parameterless read method.
func GetOneHandler[T any](
	method func(*zap.Logger, models.SessionClaims, []string) (T, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := helpers.GetSessionClaims(r.Context())

		result, err := method(requestLogger(claims), claims, urlParams(r))
		if err != nil {
			helpers.RespondWithServiceError(w, err)
			return
		}

		helpers.RespondWithJSON(w, http.StatusOK, result)
	}
}

// GetOneWithQueryHandler adapts a read method taking validated query params.
// The route must be wrapped with middlewares.ValidateQuery[Q].
func GetOneWithQueryHandler[Q any, T any](
	method func(*zap.Logger, models.SessionClaims, []string, Q) (T, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := helpers.GetSessionClaims(r.Context())

		query, ok := m.GetQuery[Q](r)
		if !ok {
			helpers.RespondWithError(w, http.StatusBadRequest, []string{"INVALID_QUERY"})
			return
		}

		result, err := method(requestLogger(claims), claims, urlParams(r), query)
		if err != nil {
			helpers.RespondWithServiceError(w, err)
			return
		}

		helpers.RespondWithJSON(w, http.StatusOK, result)
	}
}

// CreateHandler adapts a mutating method taking a validated JSON body.
// The route must be wrapped with middlewares.ValidateBody[B].
func CreateHandler[B any, T any](
	method func(*zap.Logger, models.SessionClaims, []string, B) (T, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := helpers.GetSessionClaims(r.Context())

		body, ok := m.GetBody[B](r)
		if !ok {
			helpers.RespondWithError(w, http.StatusBadRequest, []string{"INVALID_BODY"})
			return
		}

		result, err := method(requestLogger(claims), claims, urlParams(r), body)
		if err != nil {
			helpers.RespondWithServiceError(w, err)
			return
		}

		helpers.RespondWithJSON(w, http.StatusOK, result)
	}
}

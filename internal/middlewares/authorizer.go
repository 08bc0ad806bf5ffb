package middlewares

import (
	"net/http"

	h "admin/internal/helpers"
	"admin/internal/models"
	"admin/internal/rbac"
)

// AuthorizeRole checks if the authenticated operator has at least the required
// role. Uses hierarchical role checking (Admin > Manager > Support).
func AuthorizeRole(requiredRole models.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(models.SessionClaimKey{}).(models.SessionClaims)
			if !ok {
				h.RespondWithError(w, http.StatusUnauthorized, []string{"UNAUTHORIZED"})
				return
			}

			if !rbac.HasRole(claims.Role, requiredRole) {
				h.RespondWithError(w, http.StatusForbidden, []string{"FORBIDDEN"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

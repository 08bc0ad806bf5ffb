package middlewares

import (
	"context"
	"net/http"
	"strings"

	"admin/internal/configuration"
	"admin/internal/helpers"
	"admin/internal/models"
)

func Authenticate(jwtSecret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if isExcluded(r.URL.Path, r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			accessToken := r.Header.Get("Authorization")
			claims, err := helpers.ParseSessionToken(jwtSecret, accessToken)
			if err != nil {
				helpers.RespondWithError(w, http.StatusUnauthorized, []string{"UNAUTHORIZED"})
				return
			}

			ctx := context.WithValue(r.Context(), models.SessionClaimKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}

func isExcluded(path, method string) bool {
	if exactRules, exists := configuration.AuthRuleExactMatchPath[path]; exists {
		for _, rule := range exactRules {
			if rule.Method == "*" || rule.Method == method {
				return !rule.RequireAuth
			}
		}
	}

	for _, rule := range configuration.AuthRulePrefixMatchPath {
		if strings.HasPrefix(path, rule.Path) {
			if rule.Method == "*" || rule.Method == method {
				return !rule.RequireAuth
			}
		}
	}

	return false
}

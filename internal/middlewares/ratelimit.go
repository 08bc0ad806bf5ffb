package middlewares

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	c "admin/internal/cache"
	"admin/internal/helpers"
)

// RateLimit throttles requests per client IP using the cache. When no cache is
// configured the middleware is a no-op.
func RateLimit(cache c.ICache, trustedProxies []string, requestsPerMinute int) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cache == nil {
				next.ServeHTTP(w, r)
				return
			}

			identifier := clientIP(r, trustedProxies)

			retryAfter, err := cache.GetRateLimit(identifier, requestsPerMinute)
			if err != nil {
				// Rate limiting must not take the API down with it.
				next.ServeHTTP(w, r)
				return
			}

			if retryAfter > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				helpers.RespondWithError(w, http.StatusTooManyRequests, []string{"RATE_LIMITED"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request, trustedProxies []string) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if host == proxy {
			if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
				parts := strings.Split(forwarded, ",")
				return strings.TrimSpace(parts[0])
			}
		}
	}

	return host
}

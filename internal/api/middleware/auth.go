package middleware

import (
	"net/http"
	"strings"

	"github.com/boredgamers/tally/internal/api/apierr"
	"github.com/boredgamers/tally/internal/services/auth"
)

// Auth creates middleware requiring a valid bearer write token. A no-op
// when no token is configured.
func Auth(authService auth.ServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if err := authService.Verify(token); err != nil {
				apierr.WriteError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the token from the Authorization header
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}

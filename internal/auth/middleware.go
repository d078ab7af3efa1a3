package auth

import (
	"net/http"
	"strings"

	"github.com/prontomx/delivery-service/pkg/utils"
)

// Middleware rejects requests without a valid bearer token and stores the
// principal in the request context.
func Middleware(secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				utils.WriteError(w, "missing authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.WriteError(w, "invalid authorization header", http.StatusUnauthorized)
				return
			}

			principal, err := ParseToken(strings.TrimSpace(parts[1]), secret)
			if err != nil {
				utils.WriteError(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

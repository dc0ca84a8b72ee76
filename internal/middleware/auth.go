// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nebulahq/tessera/internal/auth"
)

type authContextKey string

// AdminIDKey holds the authenticated system admin's id.
const AdminIDKey authContextKey = "tessera_admin_id"

// AdminAuth validates the bearer JWT on administrative routes.
func AdminAuth(tokenManager *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondAuthError(w, "No authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondAuthError(w, "Invalid authorization header")
				return
			}

			claims, err := tokenManager.Validate(parts[1])
			if err != nil {
				respondAuthError(w, "Invalid token")
				return
			}

			// Admin and tenant-user tokens share the signing secret; the
			// tenant claim is what tells them apart. A token issued to a
			// tenant user must never open the administrative surface.
			if claims.Tenant != "" {
				respondAuthError(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), AdminIDKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func respondAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// File: internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/threadflow/threadflow/internal/auth"
	"github.com/threadflow/threadflow/internal/domain"
)

// UserProvisioner creates or refreshes the user record behind a validated
// token. Implemented by user_services.UserService.
type UserProvisioner interface {
	EnsureUser(ctx context.Context, claims auth.IdentityClaims) (*domain.User, error)
}

// NewJWTMiddleware validates the bearer token, lazily provisions the user
// from its claims, and stores the identity on the request context.
func NewJWTMiddleware(secretKey string, users UserProvisioner) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeAuthError(w, "Not authenticated")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeAuthError(w, "Invalid authorization header format")
				return
			}

			claims, err := auth.ParseToken(parts[1], []byte(secretKey))
			if err != nil {
				log.Printf("[AuthMiddleware] Invalid token: %v", err)
				writeAuthError(w, "Invalid authentication token")
				return
			}

			user, err := users.EnsureUser(r.Context(), *claims)
			if err != nil {
				log.Printf("[AuthMiddleware] Failed to provision user %s: %v", claims.UserID, err)
				http.Error(w, "Something went wrong on our end.", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, user.ID)
			ctx = context.WithValue(ctx, UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

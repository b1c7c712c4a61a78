// File: internal/handlers/user_handler.go
package handlers

import (
	"net/http"

	"github.com/threadflow/threadflow/internal/domain"
	"github.com/threadflow/threadflow/internal/dtos"
	"github.com/threadflow/threadflow/internal/middleware"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// GetCurrentUser returns the authenticated user's stored profile. The
// middleware has already provisioned or refreshed the record.
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(middleware.UserKey).(*domain.User)
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, dtos.UserFromDomain(*user))
}

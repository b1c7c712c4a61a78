// File: internal/handlers/models_handler.go
package handlers

import (
	"net/http"

	"github.com/threadflow/threadflow/internal/services/ai"
)

type ModelsHandler struct {
	Registry *ai.Registry
}

func NewModelsHandler(registry *ai.Registry) *ModelsHandler {
	return &ModelsHandler{Registry: registry}
}

// ListModels returns every provider's model catalog with availability flags.
func (h *ModelsHandler) ListModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Registry.Listing())
}

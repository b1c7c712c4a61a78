// File: internal/handlers/chat_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/threadflow/threadflow/internal/dtos"
	"github.com/threadflow/threadflow/internal/middleware"
	"github.com/threadflow/threadflow/internal/services"
	"github.com/threadflow/threadflow/internal/services/ai"
	chatservice "github.com/threadflow/threadflow/internal/services/chat"
)

type ChatHandler struct {
	ChatService *services.ChatService
}

func NewChatHandler(cs *services.ChatService) *ChatHandler {
	return &ChatHandler{ChatService: cs}
}

// HandleChat runs one chat exchange for the authenticated user.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req dtos.ChatRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		writeError(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.ChatService.SendMessage(r.Context(), userID, req.Message, req.Provider, req.ModelID, req.ConversationID)
	if err != nil {
		if ai.IsClientError(err) || chatservice.IsValidation(err) {
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeError(w, "Error processing chat", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, dtos.ChatResponseDTO{
		Response:           result.Response,
		ConversationID:     result.ConversationID,
		UserMessageID:      result.UserMessageID,
		AssistantMessageID: result.AssistantMessageID,
	})
}

// writeJSON is a helper for sending JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError is a helper for sending JSON error responses.
func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}

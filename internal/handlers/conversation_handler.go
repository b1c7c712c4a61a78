// File: internal/handlers/conversation_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/threadflow/threadflow/internal/dtos"
	"github.com/threadflow/threadflow/internal/middleware"
	"github.com/threadflow/threadflow/internal/services"
	chatservice "github.com/threadflow/threadflow/internal/services/chat"
)

type ConversationHandler struct {
	ChatService   *services.ChatService
	BranchService *services.BranchService
}

func NewConversationHandler(cs *services.ChatService, bs *services.BranchService) *ConversationHandler {
	return &ConversationHandler{ChatService: cs, BranchService: bs}
}

// ListConversations returns metadata for the caller's conversations, most
// recently updated first. Messages are excluded.
func (h *ConversationHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	convs, err := h.ChatService.ListConversationMeta(r.Context(), userID)
	if err != nil {
		writeError(w, "Could not retrieve conversations", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dtos.MetadataFromDomainSlice(convs))
}

// GetConversation returns one conversation in full, messages included.
func (h *ConversationHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conversationID := mux.Vars(r)["id"]
	conv, err := h.ChatService.GetConversation(r.Context(), conversationID, userID)
	if err != nil {
		if chatservice.IsNotFound(err) {
			writeError(w, "Conversation not found", http.StatusNotFound)
			return
		}
		writeError(w, "Could not retrieve conversation", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, conv)
}

// BranchConversation creates a new conversation from a prefix of an existing
// one, up to and including the requested message.
func (h *ConversationHandler) BranchConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(string)
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conversationID := mux.Vars(r)["id"]

	var req dtos.BranchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MessageID == "" {
		writeError(w, "Bad Request", http.StatusBadRequest)
		return
	}

	branch, err := h.BranchService.Branch(r.Context(), conversationID, req.MessageID, userID)
	if err != nil {
		if chatservice.IsNotFound(err) {
			writeError(w, "Conversation or message not found", http.StatusNotFound)
			return
		}
		writeError(w, "Could not branch conversation", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, branch)
}

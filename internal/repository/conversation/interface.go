// File: internal/repository/conversation/interface.go
package conversation

import (
    "context"

    "github.com/threadflow/threadflow/internal/domain"
)

// ConversationRepository is the document-style store for conversations. A
// conversation is read and written as one unit, messages included; the
// store's single-row write is the only atomicity relied upon.
type ConversationRepository interface {
    // FindOwned returns the conversation only if it exists and belongs to
    // userID. Absence and foreign ownership are both ErrConversationNotFound.
    FindOwned(ctx context.Context, conversationID, userID string) (*domain.Conversation, error)

    // Insert persists a brand-new conversation. An id collision is an error.
    Insert(ctx context.Context, conv *domain.Conversation) error

    // Upsert replaces the conversation by id, inserting if absent.
    // Last-writer-wins; there is no version check.
    Upsert(ctx context.Context, conv *domain.Conversation) error

    // FindMetaByUserID lists the user's conversations without their message
    // sequences, most recently updated first.
    FindMetaByUserID(ctx context.Context, userID string) ([]domain.Conversation, error)
}

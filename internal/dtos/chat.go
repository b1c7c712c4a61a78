// File: internal/dtos/chat.go
package dtos

import (
    "time"

    "github.com/threadflow/threadflow/internal/domain"
)

// ChatRequestDTO is the payload for one chat exchange. Provider and model
// fall back to configured defaults when omitted; conversation_id absent or
// unknown starts a new conversation.
type ChatRequestDTO struct {
    Message        string `json:"message"`
    Provider       string `json:"provider,omitempty"`
    ModelID        string `json:"model_id,omitempty"`
    ConversationID string `json:"conversation_id,omitempty"`
}

type ChatResponseDTO struct {
    Response           string `json:"response"`
    ConversationID     string `json:"conversation_id"`
    UserMessageID      string `json:"user_message_id"`
    AssistantMessageID string `json:"assistant_message_id"`
}

type BranchRequestDTO struct {
    MessageID string `json:"message_id"`
}

// ConversationMetadataDTO is a conversation without its message sequence.
type ConversationMetadataDTO struct {
    ID                   string    `json:"id"`
    UserID               string    `json:"user_id"`
    Title                string    `json:"title"`
    CreatedAt            time.Time `json:"created_at"`
    UpdatedAt            time.Time `json:"updated_at"`
    ParentConversationID *string   `json:"parent_conversation_id,omitempty"`
    BranchPointMessageID *string   `json:"branch_point_message_id,omitempty"`
}

// MetadataFromDomain maps a conversation to its metadata view.
func MetadataFromDomain(conv domain.Conversation) ConversationMetadataDTO {
    return ConversationMetadataDTO{
        ID:                   conv.ID,
        UserID:               conv.UserID,
        Title:                conv.Title,
        CreatedAt:            conv.CreatedAt,
        UpdatedAt:            conv.UpdatedAt,
        ParentConversationID: conv.ParentConversationID,
        BranchPointMessageID: conv.BranchPointMessageID,
    }
}

// MetadataFromDomainSlice maps a slice of conversations to metadata views.
func MetadataFromDomainSlice(convs []domain.Conversation) []ConversationMetadataDTO {
    out := make([]ConversationMetadataDTO, len(convs))
    for i, c := range convs {
        out[i] = MetadataFromDomain(c)
    }
    return out
}

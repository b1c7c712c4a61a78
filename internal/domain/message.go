// File: internal/domain/message.go
package domain

import (
    "time"

    "github.com/google/uuid"
)

const (
    RoleUser      = "user"
    RoleAssistant = "assistant"
)

// MessageTurn is a single turn within a conversation. Turns are immutable
// once created and owned exclusively by their conversation.
type MessageTurn struct {
    ID        string    `json:"id"`
    Role      string    `json:"role"` // "user" or "assistant"
    Content   string    `json:"content"`
    Timestamp time.Time `json:"timestamp"`
}

// MessageList is the ordered message sequence of a conversation. It is
// persisted as a single JSON document column so a conversation writes as one
// atomic row, like the document store it replaces.
type MessageList []MessageTurn

// NewMessageTurn creates a turn with a fresh id and the current time.
func NewMessageTurn(role, content string) MessageTurn {
    return MessageTurn{
        ID:        uuid.NewString(),
        Role:      role,
        Content:   content,
        Timestamp: time.Now(),
    }
}

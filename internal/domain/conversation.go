// File: internal/domain/conversation.go
package domain

import (
    "fmt"
    "time"

    "github.com/google/uuid"
)

// TitleMaxLength is how much of the first message becomes the title of a new
// conversation before an ellipsis is appended.
const TitleMaxLength = 30

// BranchTitleLength is how much of the parent title is carried into a branch
// title.
const BranchTitleLength = 20

// Conversation is a titled, owned, append-only sequence of message turns.
// A conversation created by branching additionally records its parent and the
// message in the parent it extends from.
type Conversation struct {
    ID                   string      `json:"id" gorm:"primarykey;size:36"`
    UserID               string      `json:"user_id" gorm:"index;not null;size:64"`
    Title                string      `json:"title"`
    Messages             MessageList `json:"messages" gorm:"serializer:json"`
    CreatedAt            time.Time   `json:"created_at"`
    UpdatedAt            time.Time   `json:"updated_at"`
    ParentConversationID *string     `json:"parent_conversation_id,omitempty" gorm:"size:36"`
    BranchPointMessageID *string     `json:"branch_point_message_id,omitempty" gorm:"size:36"`
}

// NewConversation creates an empty conversation owned by userID. The title is
// derived from the seed text, truncated to TitleMaxLength characters.
func NewConversation(userID, seedTitle string) *Conversation {
    now := time.Now()
    return &Conversation{
        ID:        uuid.NewString(),
        UserID:    userID,
        Title:     TruncateTitle(seedTitle, TitleMaxLength),
        Messages:  MessageList{},
        CreatedAt: now,
        UpdatedAt: now,
    }
}

// Append adds turns to the end of the message sequence and bumps UpdatedAt.
func (c *Conversation) Append(turns ...MessageTurn) {
    c.Messages = append(c.Messages, turns...)
    c.UpdatedAt = time.Now()
}

// IndexOfMessage returns the position of the turn with the given id, or -1.
// Linear scan; conversations are bounded in practice.
func (c *Conversation) IndexOfMessage(messageID string) int {
    for i, m := range c.Messages {
        if m.ID == messageID {
            return i
        }
    }
    return -1
}

// BranchAt creates a new conversation whose history is the prefix of c up to
// and including the turn at index. The copy is deep enough that appending to
// the branch never touches the parent's sequence.
func (c *Conversation) BranchAt(index int) *Conversation {
    prefix := make(MessageList, index+1)
    copy(prefix, c.Messages[:index+1])

    now := time.Now()
    parentID := c.ID
    branchPointID := c.Messages[index].ID
    return &Conversation{
        ID:                   uuid.NewString(),
        UserID:               c.UserID,
        Title:                fmt.Sprintf("Branch from '%s...' @ msg %d", truncateRunes(c.Title, BranchTitleLength), index+1),
        Messages:             prefix,
        CreatedAt:            now,
        UpdatedAt:            now,
        ParentConversationID: &parentID,
        BranchPointMessageID: &branchPointID,
    }
}

// TruncateTitle shortens s to max characters, marking the cut with an
// ellipsis. Short strings pass through unchanged.
func TruncateTitle(s string, max int) string {
    runes := []rune(s)
    if len(runes) <= max {
        return s
    }
    return string(runes[:max]) + "..."
}

func truncateRunes(s string, max int) string {
    runes := []rune(s)
    if len(runes) <= max {
        return s
    }
    return string(runes[:max])
}

// File: internal/services/branch_service.go
package services

import (
    "context"
    "errors"

    "github.com/threadflow/threadflow/internal/domain"
    "github.com/threadflow/threadflow/internal/repository/conversation"
    chatservice "github.com/threadflow/threadflow/internal/services/chat"
)

// BranchService creates new conversations whose history is a prefix of an
// existing one, linked back by parent and branch-point references.
type BranchService struct {
    convRepo conversation.ConversationRepository
    logger   Logger
}

func NewBranchService(convRepo conversation.ConversationRepository, logger Logger) (*BranchService, error) {
    if convRepo == nil {
        return nil, chatservice.NewValidationError("constructor", "conversation repository is required")
    }
    if logger == nil {
        logger = &NoOpLogger{}
    }
    return &BranchService{convRepo: convRepo, logger: logger}, nil
}

// Branch copies the parent's history up to and including messageID into a new
// conversation owned by the same user. An absent parent, a foreign parent,
// and an absent message all report NOT_FOUND indistinguishably.
func (s *BranchService) Branch(ctx context.Context, conversationID, messageID, userID string) (*domain.Conversation, error) {
    parent, err := s.convRepo.FindOwned(ctx, conversationID, userID)
    if err != nil {
        if errors.Is(err, conversation.ErrConversationNotFound) {
            return nil, chatservice.NewNotFoundError("branch", conversationID, userID)
        }
        return nil, chatservice.NewStorageError("branch", "could not load parent conversation", err)
    }

    index := parent.IndexOfMessage(messageID)
    if index < 0 {
        return nil, chatservice.NewNotFoundError("branch", conversationID, userID)
    }

    branch := parent.BranchAt(index)

    // Insert, never upsert: a fresh branch must not overwrite anything.
    if err := s.convRepo.Insert(ctx, branch); err != nil {
        return nil, chatservice.NewStorageError("branch", "could not persist branch", err)
    }

    s.logger.Info("conversation branched",
        "parent_id", parent.ID, "branch_id", branch.ID, "branch_point", messageID, "user_id", userID)

    return branch, nil
}

// File: internal/repository/conversation/conversation_repository.go
package conversation

import (
    "context"
    "errors"
    "log"

    "github.com/threadflow/threadflow/internal/domain"
    "gorm.io/gorm"
    "gorm.io/gorm/clause"
)

var ErrConversationNotFound = errors.New("conversation not found")

type gormConversationRepository struct {
    db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
    return &gormConversationRepository{db: db}
}

func (r *gormConversationRepository) FindOwned(ctx context.Context, conversationID, userID string) (*domain.Conversation, error) {
    if conversationID == "" || userID == "" {
        return nil, errors.New("invalid conversation ID or user ID")
    }

    var conv domain.Conversation
    err := r.db.WithContext(ctx).
        Where("id = ? AND user_id = ?", conversationID, userID).
        First(&conv).Error
    if err != nil {
        // A conversation owned by someone else reports the same as one that
        // does not exist.
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrConversationNotFound
        }
        log.Printf("[ConversationRepository] Database error finding conversation %s: %v", conversationID, err)
        return nil, errors.New("database error fetching conversation")
    }
    return &conv, nil
}

func (r *gormConversationRepository) Insert(ctx context.Context, conv *domain.Conversation) error {
    if err := r.validateInput(conv); err != nil {
        return err
    }

    if err := r.db.WithContext(ctx).Create(conv).Error; err != nil {
        log.Printf("[ConversationRepository] Database error inserting conversation for user %s: %v", conv.UserID, err)
        return errors.New("database error creating conversation")
    }

    log.Printf("[ConversationRepository] Conversation created with ID: %s for user: %s", conv.ID, conv.UserID)
    return nil
}

func (r *gormConversationRepository) Upsert(ctx context.Context, conv *domain.Conversation) error {
    if err := r.validateInput(conv); err != nil {
        return err
    }

    err := r.db.WithContext(ctx).
        Clauses(clause.OnConflict{UpdateAll: true}).
        Create(conv).Error
    if err != nil {
        log.Printf("[ConversationRepository] Database error upserting conversation %s: %v", conv.ID, err)
        return errors.New("database error saving conversation")
    }
    return nil
}

func (r *gormConversationRepository) FindMetaByUserID(ctx context.Context, userID string) ([]domain.Conversation, error) {
    if userID == "" {
        return nil, errors.New("invalid user ID")
    }

    var convs []domain.Conversation
    err := r.db.WithContext(ctx).
        Select("id", "user_id", "title", "created_at", "updated_at", "parent_conversation_id", "branch_point_message_id").
        Where("user_id = ?", userID).
        Order("updated_at DESC, id DESC").
        Find(&convs).Error
    if err != nil {
        log.Printf("[ConversationRepository] Database error listing conversations for user %s: %v", userID, err)
        return nil, errors.New("database error fetching conversations")
    }
    return convs, nil
}

func (r *gormConversationRepository) validateInput(conv *domain.Conversation) error {
    if conv == nil {
        return errors.New("conversation is required")
    }
    if conv.ID == "" || conv.UserID == "" {
        return errors.New("invalid conversation ID or user ID")
    }
    return nil
}

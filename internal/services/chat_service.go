// File: internal/services/chat_service.go
package services

import (
    "context"
    "errors"
    "strings"

    "github.com/threadflow/threadflow/internal/domain"
    "github.com/threadflow/threadflow/internal/repository/conversation"
    "github.com/threadflow/threadflow/internal/services/ai"
    chatservice "github.com/threadflow/threadflow/internal/services/chat"
)

const friendlyDispatchFailure = "Sorry, I encountered an unexpected error. The developer team has been informed."

// ResponseGenerator is the dispatch boundary the chat flow talks to.
// Implemented by ai.Dispatcher.
type ResponseGenerator interface {
    Generate(ctx context.Context, message, provider, modelID string) (ai.Result, error)
}

// ChatResult is what a chat exchange returns to the caller.
type ChatResult struct {
    Response           string
    ConversationID     string
    UserMessageID      string
    AssistantMessageID string
}

// ChatService owns the conversation store gateway and the chat flow: load or
// create the conversation, obtain a completion, append both turns, persist.
type ChatService struct {
    config    *chatservice.Config
    convRepo  conversation.ConversationRepository
    generator ResponseGenerator
    logger    Logger
}

func NewChatService(
    convRepo conversation.ConversationRepository,
    generator ResponseGenerator,
    config *chatservice.Config,
    logger Logger,
) (*ChatService, error) {
    if convRepo == nil {
        return nil, chatservice.NewValidationError("constructor", "conversation repository is required")
    }
    if generator == nil {
        return nil, chatservice.NewValidationError("constructor", "response generator is required")
    }
    if config == nil {
        config = chatservice.DefaultConfig()
    }
    if err := config.Validate(); err != nil {
        return nil, &chatservice.ChatError{Type: chatservice.ErrTypeConfig, Operation: "config", Message: err.Error()}
    }
    if logger == nil {
        logger = &NoOpLogger{}
    }

    return &ChatService{
        config:    config,
        convRepo:  convRepo,
        generator: generator,
        logger:    logger,
    }, nil
}

// SendMessage runs one chat exchange. Invalid provider/model selections
// propagate as errors; provider-side trouble is converted into a friendly
// in-band response so the chat surface never hard-fails on it.
func (s *ChatService) SendMessage(ctx context.Context, userID, message, provider, modelID, conversationID string) (*ChatResult, error) {
    if strings.TrimSpace(message) == "" {
        return nil, chatservice.NewValidationError("send_message", "message cannot be empty")
    }
    if provider == "" {
        provider = s.config.DefaultProvider
    }
    if modelID == "" {
        modelID = s.config.DefaultModelID
    }

    conv, err := s.createOrLoad(ctx, conversationID, userID, message)
    if err != nil {
        return nil, err
    }

    result, err := s.generator.Generate(ctx, message, provider, modelID)
    if err != nil {
        if ai.IsClientError(err) {
            return nil, err
        }
        // The exchange is not persisted on a hard dispatch failure; the
        // cause stays in the logs and never reaches the caller verbatim.
        s.logger.Error("dispatch failed", "user_id", userID, "provider", provider, "error", err)
        return &ChatResult{
            Response:       friendlyDispatchFailure,
            ConversationID: conv.ID,
        }, nil
    }

    userTurn := domain.NewMessageTurn(domain.RoleUser, message)
    assistantTurn := domain.NewMessageTurn(domain.RoleAssistant, result.Text)
    conv.Append(userTurn, assistantTurn)

    if err := s.convRepo.Upsert(ctx, conv); err != nil {
        return nil, chatservice.NewStorageError("send_message", "could not persist conversation", err)
    }

    s.logger.Info("chat message processed", "user_id", userID, "conversation_id", conv.ID, "advisory", result.Advisory)

    return &ChatResult{
        Response:           result.Text,
        ConversationID:     conv.ID,
        UserMessageID:      userTurn.ID,
        AssistantMessageID: assistantTurn.ID,
    }, nil
}

// createOrLoad resolves the target conversation. A missing or foreign id
// silently falls back to starting a new conversation, as does no id at all.
func (s *ChatService) createOrLoad(ctx context.Context, conversationID, userID, seedTitle string) (*domain.Conversation, error) {
    if conversationID != "" {
        conv, err := s.convRepo.FindOwned(ctx, conversationID, userID)
        if err == nil {
            return conv, nil
        }
        if !errors.Is(err, conversation.ErrConversationNotFound) {
            return nil, chatservice.NewStorageError("create_or_load", "could not load conversation", err)
        }
    }
    return domain.NewConversation(userID, seedTitle), nil
}

// GetConversation returns the full conversation, messages included.
func (s *ChatService) GetConversation(ctx context.Context, conversationID, userID string) (*domain.Conversation, error) {
    conv, err := s.convRepo.FindOwned(ctx, conversationID, userID)
    if err != nil {
        if errors.Is(err, conversation.ErrConversationNotFound) {
            return nil, chatservice.NewNotFoundError("get_conversation", conversationID, userID)
        }
        return nil, chatservice.NewStorageError("get_conversation", "could not load conversation", err)
    }
    return conv, nil
}

// ListConversationMeta lists the user's conversations without messages,
// most recently updated first.
func (s *ChatService) ListConversationMeta(ctx context.Context, userID string) ([]domain.Conversation, error) {
    convs, err := s.convRepo.FindMetaByUserID(ctx, userID)
    if err != nil {
        return nil, chatservice.NewStorageError("list_conversations", "could not list conversations", err)
    }
    return convs, nil
}

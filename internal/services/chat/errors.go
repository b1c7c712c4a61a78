// File: internal/services/chat/errors.go
package chat

import (
    "errors"
    "fmt"
)

type ErrorType string

const (
    ErrTypeConfig     ErrorType = "CONFIG"
    ErrTypeValidation ErrorType = "VALIDATION"
    ErrTypeNotFound   ErrorType = "NOT_FOUND"
    ErrTypeStorage    ErrorType = "STORAGE"
)

type ChatError struct {
    Type           ErrorType
    Operation      string
    Message        string
    ConversationID string
    UserID         string
    Cause          error
}

func (e *ChatError) Error() string {
    if e.Cause != nil {
        return fmt.Sprintf("Chat %s error in %s: %s (caused by: %v)",
            e.Type, e.Operation, e.Message, e.Cause)
    }
    return fmt.Sprintf("Chat %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *ChatError) Unwrap() error { return e.Cause }

func NewValidationError(operation, msg string) *ChatError {
    return &ChatError{Type: ErrTypeValidation, Operation: operation, Message: msg}
}

// NewNotFoundError reports an absent or foreign conversation. The message is
// deliberately generic: ownership denial must read the same as non-existence.
func NewNotFoundError(operation, conversationID, userID string) *ChatError {
    return &ChatError{
        Type:           ErrTypeNotFound,
        Operation:      operation,
        Message:        "conversation not found",
        ConversationID: conversationID,
        UserID:         userID,
    }
}

func NewStorageError(operation, msg string, cause error) *ChatError {
    return &ChatError{Type: ErrTypeStorage, Operation: operation, Message: msg, Cause: cause}
}

// IsNotFound reports whether err carries the NOT_FOUND chat error type.
func IsNotFound(err error) bool {
    var chatErr *ChatError
    return errors.As(err, &chatErr) && chatErr.Type == ErrTypeNotFound
}

// IsValidation reports whether err carries the VALIDATION chat error type.
func IsValidation(err error) bool {
    var chatErr *ChatError
    return errors.As(err, &chatErr) && chatErr.Type == ErrTypeValidation
}

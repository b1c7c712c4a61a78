// File: internal/services/ai/errors.go
package ai

import (
    "errors"
    "fmt"
)

type ErrorType string

const (
    ErrTypeConfig          ErrorType = "CONFIG"
    ErrTypeInvalidProvider ErrorType = "INVALID_PROVIDER"
    ErrTypeInvalidModel    ErrorType = "INVALID_MODEL"
    ErrTypeCredentials     ErrorType = "CREDENTIALS"
    ErrTypeProvider        ErrorType = "PROVIDER"
    ErrTypeDispatch        ErrorType = "DISPATCH"
)

type AIError struct {
    Type      ErrorType
    Provider  string
    Model     string
    Operation string
    Message   string
    Cause     error
}

func (e *AIError) Error() string {
    if e.Cause != nil {
        return fmt.Sprintf("AI %s error in %s: %s (caused by: %v)",
            e.Type, e.Operation, e.Message, e.Cause)
    }
    return fmt.Sprintf("AI %s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *AIError) Unwrap() error { return e.Cause }

func NewConfigError(msg string) *AIError {
    return &AIError{Type: ErrTypeConfig, Message: msg, Operation: "config"}
}

func NewInvalidProviderError(provider string) *AIError {
    return &AIError{
        Type:      ErrTypeInvalidProvider,
        Provider:  provider,
        Operation: "dispatch",
        Message:   fmt.Sprintf("invalid provider: %s", provider),
    }
}

func NewInvalidModelError(provider, model string) *AIError {
    return &AIError{
        Type:      ErrTypeInvalidModel,
        Provider:  provider,
        Model:     model,
        Operation: "dispatch",
        Message:   fmt.Sprintf("invalid model ID for provider %s: %s", provider, model),
    }
}

func NewCredentialsError(provider string) *AIError {
    return &AIError{
        Type:      ErrTypeCredentials,
        Provider:  provider,
        Operation: "completion",
        Message:   fmt.Sprintf("no API key configured for provider %s", provider),
    }
}

func NewProviderError(provider, operation, msg string, cause error) *AIError {
    return &AIError{Type: ErrTypeProvider, Provider: provider, Operation: operation, Message: msg, Cause: cause}
}

func NewDispatchError(operation string, cause error) *AIError {
    return &AIError{
        Type:      ErrTypeDispatch,
        Operation: operation,
        Message:   "error generating response",
        Cause:     cause,
    }
}

// ErrorTypeOf extracts the AIError type from an error chain, or "".
func ErrorTypeOf(err error) ErrorType {
    var aiErr *AIError
    if errors.As(err, &aiErr) {
        return aiErr.Type
    }
    return ""
}

// IsClientError reports whether err is bad caller input (invalid provider or
// model) rather than an upstream or internal failure.
func IsClientError(err error) bool {
    t := ErrorTypeOf(err)
    return t == ErrTypeInvalidProvider || t == ErrTypeInvalidModel
}

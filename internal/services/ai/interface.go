// File: internal/services/ai/interface.go
package ai

import "context"

// CompletionProvider is implemented once per vendor. Complete performs a
// single attempt against the vendor API; retry policy is deliberately absent.
type CompletionProvider interface {
    // Name returns the provider identifier, e.g. "google" or "anthropic".
    Name() string

    // Complete sends prompt to the given model and returns the completion
    // text. The context carries the dispatch timeout; implementations must
    // honor cancellation since the vendor call blocks on network I/O.
    Complete(ctx context.Context, modelID, prompt string) (string, error)
}

// Result distinguishes a generated completion from an advisory fallback, so
// callers cannot confuse a successful-but-degraded response with real output.
type Result struct {
    Text     string
    Advisory bool
}

// Logger defines the logging interface used by the dispatcher.
type Logger interface {
    Info(msg string, keysAndValues ...interface{})
    Error(msg string, keysAndValues ...interface{})
    Debug(msg string, keysAndValues ...interface{})
    Warn(msg string, keysAndValues ...interface{})
}

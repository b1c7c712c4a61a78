// File: internal/services/ai/dispatcher.go
package ai

import (
    "context"
    "fmt"
    "strings"
)

const advisoryNoKeys = "No API key found. Set at least one provider API key in your environment variables or .env file."

// Dispatcher validates a provider/model selection and routes the request to
// the matching adapter. Adapters are injected as a static table keyed by
// provider name; adding a vendor means one new adapter and one table entry.
type Dispatcher struct {
    config    *Config
    registry  *Registry
    providers map[string]CompletionProvider
    logger    Logger
}

func NewDispatcher(config *Config, registry *Registry, providers map[string]CompletionProvider, logger Logger) (*Dispatcher, error) {
    if config == nil {
        return nil, NewConfigError("config is required")
    }
    if err := config.Validate(); err != nil {
        return nil, NewConfigError(err.Error())
    }
    if registry == nil {
        return nil, NewConfigError("registry is required")
    }
    if len(providers) == 0 {
        return nil, NewConfigError("at least one provider adapter is required")
    }
    return &Dispatcher{
        config:    config,
        registry:  registry,
        providers: providers,
        logger:    logger,
    }, nil
}

// DefaultProviders builds the closed set of vendor adapters.
func DefaultProviders(config *Config) map[string]CompletionProvider {
    return map[string]CompletionProvider{
        ProviderGoogle:    NewGeminiProvider(config),
        ProviderAnthropic: NewAnthropicProvider(config),
        ProviderOpenAI:    NewOpenAIProvider(config),
    }
}

// Generate resolves provider and model, applies the credential fallbacks, and
// obtains a completion. Missing credentials yield an advisory Result rather
// than an error so the chat surface never hard-fails on configuration.
func (d *Dispatcher) Generate(ctx context.Context, message, provider, modelID string) (Result, error) {
    if !d.registry.HasProvider(provider) {
        return Result{}, NewInvalidProviderError(provider)
    }
    if !d.registry.HasModel(provider, modelID) {
        return Result{}, NewInvalidModelError(provider, modelID)
    }

    // "Nobody configured anything" reads differently from "this one provider
    // is not configured"; the advisory names only the selected provider's
    // variable, never which other credentials exist.
    if !d.config.AnyKeyConfigured() {
        return Result{Text: advisoryNoKeys, Advisory: true}, nil
    }
    if d.config.KeyFor(provider) == "" {
        text := fmt.Sprintf("%s API key not found. Set %s in your environment variables.",
            capitalize(provider), EnvVarFor(provider))
        return Result{Text: text, Advisory: true}, nil
    }

    adapter, ok := d.providers[provider]
    if !ok {
        return Result{}, NewDispatchError("generate", fmt.Errorf("no adapter registered for provider %s", provider))
    }

    ctx, cancel := context.WithTimeout(ctx, d.config.Timeout)
    defer cancel()

    text, err := adapter.Complete(ctx, modelID, message)
    if err != nil {
        d.logger.Error("provider completion failed",
            "provider", provider, "model", modelID, "error", err)
        return Result{}, NewDispatchError("generate", err)
    }

    d.logger.Debug("completion generated", "provider", provider, "model", modelID)
    return Result{Text: text}, nil
}

func capitalize(s string) string {
    if s == "" {
        return s
    }
    return strings.ToUpper(s[:1]) + s[1:]
}

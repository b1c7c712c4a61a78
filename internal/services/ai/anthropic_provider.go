// File: internal/services/ai/anthropic_provider.go
package ai

import (
    "context"
    "sync"

    anthropic "github.com/liushuangls/go-anthropic/v2"
)

type AnthropicProvider struct {
    config *Config

    once   sync.Once
    client *anthropic.Client
}

func NewAnthropicProvider(config *Config) *AnthropicProvider {
    return &AnthropicProvider{config: config}
}

func (p *AnthropicProvider) Name() string { return ProviderAnthropic }

func (p *AnthropicProvider) getClient() *anthropic.Client {
    p.once.Do(func() {
        p.client = anthropic.NewClient(p.config.AnthropicKey)
    })
    return p.client
}

func (p *AnthropicProvider) Complete(ctx context.Context, modelID, prompt string) (string, error) {
    if p.config.AnthropicKey == "" {
        return "", NewCredentialsError(ProviderAnthropic)
    }

    resp, err := p.getClient().CreateMessages(ctx, anthropic.MessagesRequest{
        Model: anthropic.Model(modelID),
        Messages: []anthropic.Message{
            anthropic.NewUserTextMessage(prompt),
        },
        MaxTokens: p.config.MaxTokens,
    })
    if err != nil {
        return "", NewProviderError(ProviderAnthropic, "completion", "failed to create completion", err)
    }

    text := resp.GetFirstContentText()
    if text == "" {
        return "", &AIError{
            Type:      ErrTypeProvider,
            Provider:  ProviderAnthropic,
            Operation: "completion",
            Message:   "empty completion response",
        }
    }

    return text, nil
}

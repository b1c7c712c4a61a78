// File: internal/services/ai/openai_provider.go
package ai

import (
    "context"
    "sync"

    openai "github.com/sashabaranov/go-openai"
)

type OpenAIProvider struct {
    config *Config

    once   sync.Once
    client *openai.Client
}

func NewOpenAIProvider(config *Config) *OpenAIProvider {
    return &OpenAIProvider{config: config}
}

func (p *OpenAIProvider) Name() string { return ProviderOpenAI }

// getClient constructs the vendor client at most once, on first use.
func (p *OpenAIProvider) getClient() *openai.Client {
    p.once.Do(func() {
        p.client = openai.NewClient(p.config.OpenAIKey)
    })
    return p.client
}

func (p *OpenAIProvider) Complete(ctx context.Context, modelID, prompt string) (string, error) {
    if p.config.OpenAIKey == "" {
        return "", NewCredentialsError(ProviderOpenAI)
    }

    resp, err := p.getClient().CreateChatCompletion(
        ctx,
        openai.ChatCompletionRequest{
            Model: modelID,
            Messages: []openai.ChatCompletionMessage{
                {
                    Role:    openai.ChatMessageRoleUser,
                    Content: prompt,
                },
            },
            MaxTokens:   p.config.MaxTokens,
            Temperature: p.config.Temperature,
        },
    )
    if err != nil {
        return "", NewProviderError(ProviderOpenAI, "completion", "failed to create completion", err)
    }

    if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
        return "", &AIError{
            Type:      ErrTypeProvider,
            Provider:  ProviderOpenAI,
            Operation: "completion",
            Message:   "empty completion response",
        }
    }

    return resp.Choices[0].Message.Content, nil
}

// File: internal/services/ai/gemini_provider.go
package ai

import (
    "context"
    "strings"
    "sync"

    genai "github.com/google/generative-ai-go/genai"
    "google.golang.org/api/option"
)

type GeminiProvider struct {
    config *Config

    once    sync.Once
    client  *genai.Client
    initErr error
}

func NewGeminiProvider(config *Config) *GeminiProvider {
    return &GeminiProvider{config: config}
}

func (p *GeminiProvider) Name() string { return ProviderGoogle }

// getClient constructs the genai client at most once. Construction does not
// touch the network, so a background context is fine here.
func (p *GeminiProvider) getClient() (*genai.Client, error) {
    p.once.Do(func() {
        p.client, p.initErr = genai.NewClient(context.Background(), option.WithAPIKey(p.config.GeminiKey))
    })
    return p.client, p.initErr
}

func (p *GeminiProvider) Complete(ctx context.Context, modelID, prompt string) (string, error) {
    if p.config.GeminiKey == "" {
        return "", NewCredentialsError(ProviderGoogle)
    }

    client, err := p.getClient()
    if err != nil {
        return "", NewProviderError(ProviderGoogle, "completion", "failed to initialize client", err)
    }

    model := client.GenerativeModel(modelID)
    model.SetMaxOutputTokens(int32(p.config.MaxTokens))
    model.SetTemperature(p.config.Temperature)

    resp, err := model.GenerateContent(ctx, genai.Text(prompt))
    if err != nil {
        return "", NewProviderError(ProviderGoogle, "completion", "failed to create completion", err)
    }

    var sb strings.Builder
    if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
        for _, part := range resp.Candidates[0].Content.Parts {
            if text, ok := part.(genai.Text); ok {
                sb.WriteString(string(text))
            }
        }
    }
    if sb.Len() == 0 {
        return "", &AIError{
            Type:      ErrTypeProvider,
            Provider:  ProviderGoogle,
            Operation: "completion",
            Message:   "empty completion response",
        }
    }

    return sb.String(), nil
}

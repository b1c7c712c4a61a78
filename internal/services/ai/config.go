// File: internal/services/ai/config.go
package ai

import (
    "fmt"
    "time"
)

type Config struct {
    // Provider credentials. Any of these may be empty; the dispatcher
    // answers with an advisory string instead of calling the vendor.
    OpenAIKey    string
    AnthropicKey string
    GeminiKey    string

    // Performance Configuration
    Timeout time.Duration

    // Model Parameters
    MaxTokens   int
    Temperature float32
}

func (c *Config) Validate() error {
    if c.Timeout <= 0 {
        return fmt.Errorf("timeout must be positive")
    }
    if c.MaxTokens <= 0 {
        return fmt.Errorf("max tokens must be positive")
    }
    return nil
}

func DefaultConfig() *Config {
    return &Config{
        Timeout:     2 * time.Minute,
        MaxTokens:   1024,
        Temperature: 0.7,
    }
}

// KeyFor returns the configured credential for a provider name, or "".
func (c *Config) KeyFor(provider string) string {
    switch provider {
    case ProviderOpenAI:
        return c.OpenAIKey
    case ProviderAnthropic:
        return c.AnthropicKey
    case ProviderGoogle:
        return c.GeminiKey
    default:
        return ""
    }
}

// AnyKeyConfigured reports whether at least one provider credential is set.
func (c *Config) AnyKeyConfigured() bool {
    return c.OpenAIKey != "" || c.AnthropicKey != "" || c.GeminiKey != ""
}

// EnvVarFor names the environment variable that configures a provider's key.
// Used in advisory messages so the operator knows what to set.
func EnvVarFor(provider string) string {
    switch provider {
    case ProviderOpenAI:
        return "OPENAI_API_KEY"
    case ProviderAnthropic:
        return "ANTHROPIC_API_KEY"
    case ProviderGoogle:
        return "GEMINI_API_KEY"
    default:
        return ""
    }
}

// File: internal/services/chat/config.go
package chat

import "fmt"

type Config struct {
    // Defaults applied when a chat request omits provider or model.
    DefaultProvider string
    DefaultModelID  string
}

func (c *Config) Validate() error {
    if c.DefaultProvider == "" {
        return fmt.Errorf("default_provider is required")
    }
    if c.DefaultModelID == "" {
        return fmt.Errorf("default_model_id is required")
    }
    return nil
}

func DefaultConfig() *Config {
    return &Config{
        DefaultProvider: "google",
        DefaultModelID:  "gemini-1.5-flash",
    }
}

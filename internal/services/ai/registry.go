// File: internal/services/ai/registry.go
package ai

import "sort"

const (
    ProviderGoogle    = "google"
    ProviderAnthropic = "anthropic"
    ProviderOpenAI    = "openai"
)

// ModelEntry describes one model a provider offers. Static reference data,
// immutable at runtime.
type ModelEntry struct {
    ID          string `json:"id"`
    Name        string `json:"name"`
    Description string `json:"description"`
}

// ProviderListing is a provider's catalog annotated with whether its
// credential is configured.
type ProviderListing struct {
    Available bool         `json:"available"`
    Models    []ModelEntry `json:"models"`
}

var defaultCatalog = map[string][]ModelEntry{
    ProviderGoogle: {
        {ID: "gemini-1.5-pro", Name: "Gemini 1.5 Pro", Description: "Most capable Gemini model for complex reasoning"},
        {ID: "gemini-1.5-flash", Name: "Gemini 1.5 Flash", Description: "Fast and cost-efficient Gemini model"},
    },
    ProviderAnthropic: {
        {ID: "claude-3-5-sonnet-20240620", Name: "Claude 3.5 Sonnet", Description: "Anthropic's balanced flagship model"},
        {ID: "claude-3-haiku-20240307", Name: "Claude 3 Haiku", Description: "Fastest Claude model for lightweight tasks"},
    },
    ProviderOpenAI: {
        {ID: "gpt-4o", Name: "GPT-4o", Description: "OpenAI's flagship multimodal model"},
        {ID: "gpt-4o-mini", Name: "GPT-4o mini", Description: "Small, affordable GPT-4-class model"},
        {ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo", Description: "Legacy fast chat model"},
    },
}

// Registry is the static catalog of providers and their models. Availability
// flags derive from the credentials configured at startup; nothing mutates
// after construction, so concurrent reads need no locking.
type Registry struct {
    config  *Config
    catalog map[string][]ModelEntry
}

func NewRegistry(config *Config) *Registry {
    return &Registry{config: config, catalog: defaultCatalog}
}

// HasProvider reports whether the provider name is registered.
func (r *Registry) HasProvider(provider string) bool {
    _, ok := r.catalog[provider]
    return ok
}

// HasModel reports whether modelID is registered under the provider.
func (r *Registry) HasModel(provider, modelID string) bool {
    for _, m := range r.catalog[provider] {
        if m.ID == modelID {
            return true
        }
    }
    return false
}

// ModelsFor returns the provider's catalog, nil for unknown providers.
func (r *Registry) ModelsFor(provider string) []ModelEntry {
    return r.catalog[provider]
}

// Providers returns registered provider names in stable order.
func (r *Registry) Providers() []string {
    names := make([]string, 0, len(r.catalog))
    for name := range r.catalog {
        names = append(names, name)
    }
    sort.Strings(names)
    return names
}

// Listing returns every provider's catalog annotated with availability,
// true iff that provider's credential is non-empty.
func (r *Registry) Listing() map[string]ProviderListing {
    out := make(map[string]ProviderListing, len(r.catalog))
    for name, models := range r.catalog {
        out[name] = ProviderListing{
            Available: r.config.KeyFor(name) != "",
            Models:    models,
        }
    }
    return out
}

// File: internal/services/ai/registry_test.go
package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_HasProvider(t *testing.T) {
	registry := NewRegistry(DefaultConfig())

	assert.True(t, registry.HasProvider(ProviderGoogle))
	assert.True(t, registry.HasProvider(ProviderAnthropic))
	assert.True(t, registry.HasProvider(ProviderOpenAI))
	assert.False(t, registry.HasProvider("mistral"))
	assert.False(t, registry.HasProvider(""))
}

func TestRegistry_HasModel(t *testing.T) {
	registry := NewRegistry(DefaultConfig())

	assert.True(t, registry.HasModel(ProviderGoogle, "gemini-1.5-flash"))
	assert.True(t, registry.HasModel(ProviderOpenAI, "gpt-4o"))
	assert.False(t, registry.HasModel(ProviderOpenAI, "gemini-1.5-flash"))
	assert.False(t, registry.HasModel(ProviderGoogle, "no-such-model"))
	assert.False(t, registry.HasModel("mistral", "gpt-4o"))
}

func TestRegistry_Providers(t *testing.T) {
	registry := NewRegistry(DefaultConfig())
	assert.Equal(t, []string{ProviderAnthropic, ProviderGoogle, ProviderOpenAI}, registry.Providers())
}

func TestRegistry_Listing_AvailabilityTracksKeys(t *testing.T) {
	config := DefaultConfig()
	config.AnthropicKey = "sk-ant-test"

	listing := NewRegistry(config).Listing()
	require.Len(t, listing, 3)

	assert.True(t, listing[ProviderAnthropic].Available)
	assert.False(t, listing[ProviderGoogle].Available)
	assert.False(t, listing[ProviderOpenAI].Available)

	for name, entry := range listing {
		assert.NotEmpty(t, entry.Models, "provider %s should list models", name)
		for _, m := range entry.Models {
			assert.NotEmpty(t, m.ID)
			assert.NotEmpty(t, m.Name)
		}
	}
}

// File: internal/services/ai/dispatcher_test.go
package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}

// mockProvider is a scripted CompletionProvider that records its calls.
type mockProvider struct {
	name  string
	text  string
	err   error
	calls int
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Complete(ctx context.Context, modelID, prompt string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

func newTestDispatcher(t *testing.T, config *Config, providers map[string]CompletionProvider) *Dispatcher {
	t.Helper()
	d, err := NewDispatcher(config, NewRegistry(config), providers, nopLogger{})
	require.NoError(t, err)
	return d
}

func TestGenerate_InvalidProvider(t *testing.T) {
	config := DefaultConfig()
	config.OpenAIKey = "sk-test"
	d := newTestDispatcher(t, config, map[string]CompletionProvider{
		ProviderOpenAI: &mockProvider{name: ProviderOpenAI},
	})

	_, err := d.Generate(context.Background(), "hello", "mistral", "gpt-4o")
	require.Error(t, err)
	assert.Equal(t, ErrTypeInvalidProvider, ErrorTypeOf(err))
	assert.Contains(t, err.Error(), "mistral")
}

func TestGenerate_InvalidModel(t *testing.T) {
	config := DefaultConfig()
	config.OpenAIKey = "sk-test"
	d := newTestDispatcher(t, config, map[string]CompletionProvider{
		ProviderOpenAI: &mockProvider{name: ProviderOpenAI},
	})

	_, err := d.Generate(context.Background(), "hello", ProviderOpenAI, "gemini-1.5-flash")
	require.Error(t, err)
	assert.Equal(t, ErrTypeInvalidModel, ErrorTypeOf(err))
	assert.Contains(t, err.Error(), "gemini-1.5-flash")
}

func TestGenerate_NoKeysAnywhere_Advisory(t *testing.T) {
	adapter := &mockProvider{name: ProviderOpenAI, text: "never"}
	d := newTestDispatcher(t, DefaultConfig(), map[string]CompletionProvider{
		ProviderOpenAI: adapter,
	})

	// Valid provider/model but zero configured credentials: advisory, not error.
	result, err := d.Generate(context.Background(), "hello", ProviderOpenAI, "gpt-4o")
	require.NoError(t, err)
	assert.True(t, result.Advisory)
	assert.Contains(t, result.Text, "No API key found")
	assert.Zero(t, adapter.calls)
}

func TestGenerate_SelectedProviderKeyMissing_Advisory(t *testing.T) {
	config := DefaultConfig()
	config.AnthropicKey = "sk-ant-test"
	adapter := &mockProvider{name: ProviderOpenAI, text: "never"}
	d := newTestDispatcher(t, config, map[string]CompletionProvider{
		ProviderOpenAI: adapter,
	})

	result, err := d.Generate(context.Background(), "hello", ProviderOpenAI, "gpt-4o")
	require.NoError(t, err)
	assert.True(t, result.Advisory)
	assert.Contains(t, result.Text, "Openai API key not found")
	assert.Contains(t, result.Text, "OPENAI_API_KEY")
	// The advisory must not reveal which other credentials exist.
	assert.NotContains(t, result.Text, "anthropic")
	assert.Zero(t, adapter.calls)
}

func TestGenerate_Success(t *testing.T) {
	config := DefaultConfig()
	config.GeminiKey = "test-key"
	adapter := &mockProvider{name: ProviderGoogle, text: "Stockholm."}
	d := newTestDispatcher(t, config, map[string]CompletionProvider{
		ProviderGoogle: adapter,
	})

	result, err := d.Generate(context.Background(), "Capital of Sweden?", ProviderGoogle, "gemini-1.5-flash")
	require.NoError(t, err)
	assert.False(t, result.Advisory)
	assert.Equal(t, "Stockholm.", result.Text)
	assert.Equal(t, 1, adapter.calls)
}

func TestGenerate_ProviderFailure_WrappedAsDispatchError(t *testing.T) {
	config := DefaultConfig()
	config.GeminiKey = "test-key"
	cause := errors.New("upstream 503")
	adapter := &mockProvider{name: ProviderGoogle, err: NewProviderError(ProviderGoogle, "completion", "failed", cause)}
	d := newTestDispatcher(t, config, map[string]CompletionProvider{
		ProviderGoogle: adapter,
	})

	_, err := d.Generate(context.Background(), "hello", ProviderGoogle, "gemini-1.5-flash")
	require.Error(t, err)
	assert.Equal(t, ErrTypeDispatch, ErrorTypeOf(err))
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsClientError(err))
}

func TestNewDispatcher_Validation(t *testing.T) {
	config := DefaultConfig()
	providers := map[string]CompletionProvider{ProviderOpenAI: &mockProvider{name: ProviderOpenAI}}

	_, err := NewDispatcher(nil, NewRegistry(config), providers, nopLogger{})
	assert.Error(t, err)

	_, err = NewDispatcher(config, nil, providers, nopLogger{})
	assert.Error(t, err)

	_, err = NewDispatcher(config, NewRegistry(config), nil, nopLogger{})
	assert.Error(t, err)

	bad := DefaultConfig()
	bad.Timeout = 0
	_, err = NewDispatcher(bad, NewRegistry(bad), providers, nopLogger{})
	assert.Error(t, err)
}

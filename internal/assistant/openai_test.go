package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	provider := NewOpenAIProvider("test-key", "gpt-4o-mini", "", 5*time.Second)
	provider.SetBaseURL(server.URL)
	return provider
}

func TestOpenAIProviderComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("sends the conversation and returns the first choice", func(t *testing.T) {
		var got chatCompletionRequest
		provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			_ = json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"content": "register as NPD"}},
				},
			})
		})

		text, err := provider.Complete(ctx, CompletionRequest{
			System:  "you are a consultant",
			History: []Message{{Role: RoleUser, Content: "hi"}, {Role: RoleAssistant, Content: "hello"}},
			Message: "which form suits me?",
		})
		require.NoError(t, err)
		assert.Equal(t, "register as NPD", text)

		assert.Equal(t, "gpt-4o-mini", got.Model)
		require.Len(t, got.Messages, 4)
		assert.Equal(t, RoleSystem, got.Messages[0].Role)
		assert.Equal(t, "which form suits me?", got.Messages[3].Content)
	})

	t.Run("api error status surfaces the provider message", func(t *testing.T) {
		provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "rate limit reached", "type": "requests"},
			})
		})

		_, err := provider.Complete(ctx, CompletionRequest{Message: "hi"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
		assert.Contains(t, err.Error(), "rate limit reached")
	})

	t.Run("empty choices is an error", func(t *testing.T) {
		provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		})

		_, err := provider.Complete(ctx, CompletionRequest{Message: "hi"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no choices")
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		})

		_, err := provider.Complete(ctx, CompletionRequest{Message: "hi"})
		require.Error(t, err)
	})
}

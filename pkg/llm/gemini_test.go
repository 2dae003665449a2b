package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness-app/internal/config"
)

func newTestGemini(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewGeminiClient(context.Background(), &config.LLMConfig{
		Provider: config.LLMProviderGemini,
		APIKey:   "test-key",
		BaseURL:  srv.URL,
		Timeout:  5 * time.Second,
	})
	require.NoError(t, err)
	return client
}

func geminiReply(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestGemini_Complete(t *testing.T) {
	var got map[string]any
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-2.0-flash:generateContent"), r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"days\":"},{"text":"[]}"}]}}]}`))
	})

	text, err := client.Complete(context.Background(), CompletionRequest{
		Model:       "gemini-2.0-flash",
		Temperature: 0.7,
		Messages: []Message{
			{Role: RoleSystem, Content: "rules"},
			{Role: RoleSystem, Content: "format"},
			{Role: RoleUser, Content: "prompt"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"days":[]}`, text)

	cfg, ok := got["generationConfig"].(map[string]any)
	require.True(t, ok, "generationConfig missing: %v", got)
	assert.InDelta(t, 0.7, cfg["temperature"], 0.001)

	system, ok := got["systemInstruction"].(map[string]any)
	require.True(t, ok, "systemInstruction missing: %v", got)
	parts := system["parts"].([]any)
	require.Len(t, parts, 1)
	assert.Equal(t, "rules\n\nformat", parts[0].(map[string]any)["text"])

	contents := got["contents"].([]any)
	require.Len(t, contents, 1)
	userParts := contents[0].(map[string]any)["parts"].([]any)
	assert.Equal(t, "prompt", userParts[0].(map[string]any)["text"])
}

func TestGemini_NoSystemInstruction(t *testing.T) {
	var got map[string]any
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		geminiReply(`{"candidates":[{"content":{"role":"model","parts":[{"text":"ok"}]}}]}`)(w, r)
	})

	text, err := client.Complete(context.Background(), CompletionRequest{
		Model:    "m",
		Messages: []Message{{Role: RoleUser, Content: "prompt"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.NotContains(t, got, "systemInstruction")
}

func TestGemini_EmptyResponse(t *testing.T) {
	cases := map[string]string{
		"no candidates": `{"candidates":[]}`,
		"nil content":   `{"candidates":[{"finishReason":"SAFETY"}]}`,
		"empty text":    `{"candidates":[{"content":{"role":"model","parts":[{"text":""}]}}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			client := newTestGemini(t, geminiReply(body))
			_, err := client.Complete(context.Background(), CompletionRequest{
				Model:    "m",
				Messages: []Message{{Role: RoleUser, Content: "prompt"}},
			})
			require.ErrorIs(t, err, ErrEmptyResponse)
		})
	}
}

func TestGemini_ServerError(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	})

	_, err := client.Complete(context.Background(), CompletionRequest{
		Model:    "m",
		Messages: []Message{{Role: RoleUser, Content: "prompt"}},
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrEmptyResponse)
}

package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saideep1817/AI-chatbot-for-medical-emergencies/config"
)

func completionServer(t *testing.T, content string, seen *map[string]interface{}) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if seen != nil {
			_ = json.NewDecoder(r.Body).Decode(seen)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "test-model",
			"choices": []map[string]interface{}{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": content}, "finish_reason": "stop"},
			},
		})
	}))
}

func TestNewOpenAIClientRequiresKey(t *testing.T) {
	_, err := NewOpenAIClient(config.AIConfig{Model: "gemini-2.5-flash"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestOpenAIClient_Chat(t *testing.T) {
	var seen map[string]interface{}
	srv := completionServer(t, "  Stay hydrated.  ", &seen)
	defer srv.Close()

	c, err := NewOpenAIClient(config.AIConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1/", Model: "test-model", RatePerSecond: 100})
	require.NoError(t, err)

	text, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}, WithMaxTokens(64))
	require.NoError(t, err)
	assert.Equal(t, "Stay hydrated.", text)
	assert.Equal(t, "test-model", seen["model"])
	assert.EqualValues(t, 64, seen["max_tokens"])
}

func TestOpenAIClient_ChatEmptyCompletion(t *testing.T) {
	srv := completionServer(t, "", nil)
	defer srv.Close()

	c, err := NewOpenAIClient(config.AIConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1", Model: "test-model"})
	require.NoError(t, err)

	_, err = c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestOpenAIClient_ChatServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	defer srv.Close()

	c, err := NewOpenAIClient(config.AIConfig{APIKey: "test-key", BaseURL: srv.URL, Model: "test-model"})
	require.NoError(t, err)

	_, err = c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})
	assert.Error(t, err)
}

func TestOpenAIClient_ChatCancelledWhileRateLimited(t *testing.T) {
	srv := completionServer(t, "ok", nil)
	defer srv.Close()

	c, err := NewOpenAIClient(config.AIConfig{APIKey: "test-key", BaseURL: srv.URL, Model: "test-model", RatePerSecond: 0.001})
	require.NoError(t, err)

	_, err = c.Chat(context.Background(), []Message{{Role: "user", Content: "first"}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Chat(ctx, []Message{{Role: "user", Content: "second"}})
	assert.Error(t, err)
}

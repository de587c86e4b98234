package summary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIClient_RequiresAPIKey(t *testing.T) {
	_, err := NewOpenAIClient("", "")
	assert.Error(t, err)
}

func TestOpenAIClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4.1", req.Model)
		require.Len(t, req.Messages, 2)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "A short summary."}},
			},
		})
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(srv.URL, "test-key")
	require.NoError(t, err)

	resp, err := client.Generate(context.Background(), Request{
		Messages: []Message{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: "Title: T. Author: A. Content: C"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "A short summary.", resp.Text)
}

func TestOpenAIClient_Generate_EmptyMessages(t *testing.T) {
	client, err := NewOpenAIClient("http://localhost:1", "test-key")
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), Request{})
	assert.Error(t, err)
}

func TestOpenAIClient_Generate_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(srv.URL, "test-key")
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), Request{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestOpenAIClient_Generate_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(srv.URL, "test-key")
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), Request{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	assert.Error(t, err)
}

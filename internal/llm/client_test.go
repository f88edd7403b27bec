package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_Providers(t *testing.T) {
	ctx := context.Background()

	client, err := NewClient(ctx, nil, "")
	require.NoError(t, err)
	_, ok := client.(*OllamaClient)
	assert.True(t, ok, "default provider is ollama")
	assert.NoError(t, client.Close())

	_, err = NewClient(ctx, DefaultGeminiConfig(), "")
	assert.ErrorContains(t, err, "API key is required")

	_, err = NewClient(ctx, &Config{Provider: "openai"}, "key")
	assert.ErrorContains(t, err, "unsupported LLM provider")
}

func TestOllamaClient_GenerateContent(t *testing.T) {
	var got ollamaRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"mistral","response":"Role: Data Analyst\nSkills: sql","done":true}`))
	}))
	defer server.Close()

	config := DefaultOllamaConfig()
	config.BaseURL = server.URL + "/"
	client := NewOllamaClient(config)

	text, err := client.GenerateContent(context.Background(), "analyze this", TierStandard)

	require.NoError(t, err)
	assert.Equal(t, "Role: Data Analyst\nSkills: sql", text)
	assert.Equal(t, ollamaRequest{Model: "mistral", Prompt: "analyze this", Stream: false}, got)
	assert.Equal(t, "mistral", client.GetModel(TierLite))
}

func TestOllamaClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model 'mistral' not found"}`))
	}))
	defer server.Close()

	config := DefaultOllamaConfig()
	config.BaseURL = server.URL
	_, err := NewOllamaClient(config).GenerateContent(context.Background(), "p", TierStandard)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Contains(t, err.Error(), "not found")
}

func TestOllamaClient_NonJSONErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	config := DefaultOllamaConfig()
	config.BaseURL = server.URL
	_, err := NewOllamaClient(config).GenerateContent(context.Background(), "p", TierStandard)

	assert.ErrorContains(t, err, "status 502")
}

func TestOllamaClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	config := DefaultOllamaConfig()
	config.BaseURL = server.URL
	config.Timeout = 50 * time.Millisecond
	_, err := NewOllamaClient(config).GenerateContent(context.Background(), "p", TierStandard)

	assert.ErrorContains(t, err, "failed to generate content")
}

func TestOllamaClient_NoModel(t *testing.T) {
	client := NewOllamaClient(&Config{Provider: ProviderOllama, Models: map[ModelTier]string{}})

	_, err := client.GenerateContent(context.Background(), "p", TierStandard)

	assert.ErrorContains(t, err, "no model configured")
}

func TestExtractTextFromResponse(t *testing.T) {
	_, err := extractTextFromResponse(nil)
	assert.Error(t, err)

	_, err = extractTextFromResponse(&genai.GenerateContentResponse{})
	assert.ErrorContains(t, err, "no candidates")

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("Role: "), genai.Text("QA")}}},
		},
	}
	text, err := extractTextFromResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, "Role: QA", text)
}

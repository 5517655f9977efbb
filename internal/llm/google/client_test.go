package google_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctriage/internal/config"
	"doctriage/internal/llm"
	"doctriage/internal/llm/google"
)

func newTestClient(serverURL string) *google.Client {
	cfg := &config.LLMProviderConfig{
		Provider:    "google",
		APIKey:      "test-google-key",
		Model:       "gemini-2.0-flash",
		TimeoutSecs: 30,
	}
	return google.NewClientWithEndpoint(cfg, serverURL)
}

func successResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]interface{}{{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	}
}

func TestClient_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-google-key", r.Header.Get("x-goog-api-key"))

		var reqBody map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		assert.NoError(t, err)

		contents := reqBody["contents"].([]interface{})
		assert.Len(t, contents, 1)

		system := reqBody["systemInstruction"].(map[string]interface{})
		parts := system["parts"].([]interface{})
		part := parts[0].(map[string]interface{})
		assert.Equal(t, "be helpful", part["text"])

		genCfg := reqBody["generationConfig"].(map[string]interface{})
		_, hasMime := genCfg["responseMimeType"]
		assert.False(t, hasMime)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse("hello there"))
	}))
	defer server.Close()

	out, err := newTestClient(server.URL).Complete(context.Background(), "say hello", "be helpful")
	require.NoError(t, err)
	assert.Equal(t, "hello there", out)
}

func TestClient_ExtractJSON_SetsJSONMimeType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&reqBody)

		genCfg := reqBody["generationConfig"].(map[string]interface{})
		assert.Equal(t, "application/json", genCfg["responseMimeType"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse(`{"fields":[]}`))
	}))
	defer server.Close()

	out, err := newTestClient(server.URL).ExtractJSON(context.Background(), "extract", "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"fields":[]}`, string(out))
}

func TestClient_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "15")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Complete(context.Background(), "p", "")
	require.Error(t, err)

	var rlErr *llm.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "google", rlErr.Provider)
}

func TestClient_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Complete(context.Background(), "p", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

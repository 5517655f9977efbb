package openai_test

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
	"doctriage/internal/llm/openai"
)

func newTestClient(serverURL string) *openai.Client {
	cfg := &config.LLMProviderConfig{
		Provider:    "openai",
		APIKey:      "test-openai-key",
		Model:       "gpt-4o-mini",
		TimeoutSecs: 30,
	}
	return openai.NewClientWithEndpoint(cfg, serverURL)
}

func successResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
	}
}

func TestClient_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-openai-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var reqBody map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		assert.NoError(t, err)
		assert.Equal(t, "gpt-4o-mini", reqBody["model"])
		assert.Nil(t, reqBody["response_format"])

		messages := reqBody["messages"].([]interface{})
		assert.Len(t, messages, 2)
		system := messages[0].(map[string]interface{})
		assert.Equal(t, "system", system["role"])
		assert.Equal(t, "be helpful", system["content"])
		user := messages[1].(map[string]interface{})
		assert.Equal(t, "user", user["role"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse("hello there"))
	}))
	defer server.Close()

	out, err := newTestClient(server.URL).Complete(context.Background(), "say hello", "be helpful")
	require.NoError(t, err)
	assert.Equal(t, "hello there", out)
}

func TestClient_ExtractJSON_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&reqBody)

		format := reqBody["response_format"].(map[string]interface{})
		assert.Equal(t, "json_object", format["type"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse(`{"fields":[]}`))
	}))
	defer server.Close()

	out, err := newTestClient(server.URL).ExtractJSON(context.Background(), "extract", "system")
	require.NoError(t, err)
	assert.JSONEq(t, `{"fields":[]}`, string(out))
}

func TestClient_ExtractJSON_StripsCodeFences(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse("```json\n{\"fields\":[]}\n```"))
	}))
	defer server.Close()

	out, err := newTestClient(server.URL).ExtractJSON(context.Background(), "extract", "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"fields":[]}`, string(out))
}

func TestClient_ExtractJSON_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse("sorry, I cannot do that"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ExtractJSON(context.Background(), "extract", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestClient_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Complete(context.Background(), "p", "")
	require.Error(t, err)

	var rlErr *llm.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "openai", rlErr.Provider)
	assert.Equal(t, float64(30), rlErr.RetryAfter.Seconds())
}

func TestClient_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Complete(context.Background(), "p", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_TruncatedOutput(t *testing.T) {
	body := map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message":       map[string]interface{}{"content": "partial"},
				"finish_reason": "length",
			},
		},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Complete(context.Background(), "p", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "truncated")
}

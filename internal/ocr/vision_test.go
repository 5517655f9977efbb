package ocr_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctriage/internal/config"
	"doctriage/internal/domain"
	"doctriage/internal/ocr"
	"doctriage/internal/port"
)

func newTestRecognizer(serverURL string) *ocr.VisionRecognizer {
	cfg := &config.OCRConfig{
		APIKey:        "test-key",
		Model:         "gpt-4o",
		TimeoutSecs:   30,
		MaxFileSizeMB: 1,
	}
	return ocr.NewVisionRecognizerWithEndpoint(cfg, serverURL)
}

func visionResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]interface{}{"content": content}},
		},
	}
}

func TestRecognizeText_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var reqBody map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		assert.NoError(t, err)
		assert.Equal(t, "gpt-4o", reqBody["model"])

		messages := reqBody["messages"].([]interface{})
		msg := messages[0].(map[string]interface{})
		content := msg["content"].([]interface{})
		assert.Len(t, content, 2)

		imgBlock := content[0].(map[string]interface{})
		assert.Equal(t, "image_url", imgBlock["type"])
		imgURL := imgBlock["image_url"].(map[string]interface{})
		assert.Contains(t, imgURL["url"], "data:image/png;base64,")

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(visionResponse("Receipt #456\nTotal: $12.99\n"))
	}))
	defer server.Close()

	text, err := newTestRecognizer(server.URL).RecognizeText(context.Background(), port.MediaInput{
		Data:        []byte("fake png bytes"),
		Filename:    "receipt.png",
		ContentType: "image/png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Receipt #456\nTotal: $12.99", text)
}

func TestRecognizeText_UnsupportedExtension(t *testing.T) {
	_, err := newTestRecognizer("http://unused").RecognizeText(context.Background(), port.MediaInput{
		Data:     []byte("content"),
		Filename: "document.pdf",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestRecognizeText_FileTooLarge(t *testing.T) {
	_, err := newTestRecognizer("http://unused").RecognizeText(context.Background(), port.MediaInput{
		Data:     bytes.Repeat([]byte("x"), 2*1024*1024),
		Filename: "big.jpg",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestRecognizeText_ExtensionCaseInsensitive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(visionResponse("text"))
	}))
	defer server.Close()

	_, err := newTestRecognizer(server.URL).RecognizeText(context.Background(), port.MediaInput{
		Data:     []byte("jpeg bytes"),
		Filename: "SCAN.JPG",
	})
	require.NoError(t, err)
}

func TestRecognizeText_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream error"))
	}))
	defer server.Close()

	_, err := newTestRecognizer(server.URL).RecognizeText(context.Background(), port.MediaInput{
		Data:     []byte("bytes"),
		Filename: "card.webp",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

package transcribe_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctriage/internal/config"
	"doctriage/internal/domain"
	"doctriage/internal/port"
	"doctriage/internal/transcribe"
)

func newTestTranscriber(serverURL string) *transcribe.WhisperTranscriber {
	cfg := &config.TranscribeConfig{
		APIKey:        "test-key",
		Model:         "whisper-1",
		TimeoutSecs:   30,
		MaxFileSizeMB: 1,
	}
	return transcribe.NewWhisperTranscriberWithEndpoint(cfg, serverURL)
}

func TestTranscribe_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		err := r.ParseMultipartForm(32 << 20)
		require.NoError(t, err)
		assert.Equal(t, "whisper-1", r.FormValue("model"))
		assert.Equal(t, "json", r.FormValue("response_format"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "memo.mp3", header.Filename)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"text":"the total due is forty five dollars "}`))
	}))
	defer server.Close()

	text, err := newTestTranscriber(server.URL).Transcribe(context.Background(), port.MediaInput{
		Data:        []byte("fake mp3 bytes"),
		Filename:    "memo.mp3",
		ContentType: "audio/mpeg",
	})
	require.NoError(t, err)
	assert.Equal(t, "the total due is forty five dollars", text)
}

func TestTranscribe_UnsupportedExtension(t *testing.T) {
	_, err := newTestTranscriber("http://unused").Transcribe(context.Background(), port.MediaInput{
		Data:     []byte("content"),
		Filename: "notes.txt",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestTranscribe_FileTooLarge(t *testing.T) {
	_, err := newTestTranscriber("http://unused").Transcribe(context.Background(), port.MediaInput{
		Data:     bytes.Repeat([]byte("x"), 2*1024*1024),
		Filename: "long.wav",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestTranscribe_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid file"}}`))
	}))
	defer server.Close()

	_, err := newTestTranscriber(server.URL).Transcribe(context.Background(), port.MediaInput{
		Data:     []byte("bytes"),
		Filename: "memo.m4a",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

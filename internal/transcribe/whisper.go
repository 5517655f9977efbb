package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"doctriage/internal/config"
	"doctriage/internal/domain"
	"doctriage/internal/port"
)

const (
	apiURL = "https://api.openai.com/v1/audio/transcriptions"
)

// supportedAudioExtensions lists the file extensions the transcription API accepts.
var supportedAudioExtensions = map[string]struct{}{
	".mp3":  {},
	".mp4":  {},
	".mpeg": {},
	".mpga": {},
	".m4a":  {},
	".wav":  {},
	".webm": {},
}

// WhisperTranscriber implements port.Transcriber using the OpenAI audio
// transcription API.
type WhisperTranscriber struct {
	apiKey      string
	model       string
	endpoint    string
	maxFileSize int64
	client      *http.Client
}

// NewWhisperTranscriber creates a transcriber from config.
func NewWhisperTranscriber(cfg *config.TranscribeConfig) *WhisperTranscriber {
	return newWhisperTranscriber(cfg, apiURL)
}

// NewWhisperTranscriberWithEndpoint creates a transcriber pointing at a custom API endpoint (for testing).
func NewWhisperTranscriberWithEndpoint(cfg *config.TranscribeConfig, endpoint string) *WhisperTranscriber {
	return newWhisperTranscriber(cfg, endpoint)
}

func newWhisperTranscriber(cfg *config.TranscribeConfig, endpoint string) *WhisperTranscriber {
	model := cfg.Model
	if model == "" {
		model = "whisper-1"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	maxSize := cfg.MaxFileSizeMB
	if maxSize == 0 {
		maxSize = 25
	}
	return &WhisperTranscriber{
		apiKey:      cfg.APIKey,
		model:       model,
		endpoint:    endpoint,
		maxFileSize: maxSize * 1024 * 1024,
		client:      &http.Client{Timeout: timeout},
	}
}

// Transcribe validates the uploaded recording and returns its transcript.
func (t *WhisperTranscriber) Transcribe(ctx context.Context, input port.MediaInput) (string, error) {
	if err := t.validate(input); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", input.Filename)
	if err != nil {
		return "", fmt.Errorf("creating form file: %w", err)
	}
	if _, err := part.Write(input.Data); err != nil {
		return "", fmt.Errorf("writing form file: %w", err)
	}
	if err := writer.WriteField("model", t.model); err != nil {
		return "", fmt.Errorf("writing model field: %w", err)
	}
	if err := writer.WriteField("response_format", "json"); err != nil {
		return "", fmt.Errorf("writing response_format field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("closing multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+t.apiKey)

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling transcription API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcription API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var parsed struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}

	return strings.TrimSpace(parsed.Text), nil
}

func (t *WhisperTranscriber) validate(input port.MediaInput) error {
	ext := strings.ToLower(filepath.Ext(input.Filename))
	if _, ok := supportedAudioExtensions[ext]; !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedFileType, ext)
	}
	if int64(len(input.Data)) > t.maxFileSize {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", domain.ErrFileTooLarge, len(input.Data), t.maxFileSize)
	}
	return nil
}

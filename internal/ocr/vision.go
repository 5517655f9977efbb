package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"doctriage/internal/config"
	"doctriage/internal/domain"
	"doctriage/internal/port"
)

const (
	apiURL = "https://api.openai.com/v1/chat/completions"

	recognizePrompt = "Extract all text visible in this image. Return the text exactly as it " +
		"appears, preserving line breaks. Do not add commentary, labels, or formatting of your own. " +
		"If the image contains no readable text, return an empty response."
)

// supportedImageTypes maps allowed file extensions to their MIME types.
var supportedImageTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// VisionRecognizer implements port.TextRecognizer using the OpenAI Chat
// Completions API with image content blocks.
type VisionRecognizer struct {
	apiKey      string
	model       string
	endpoint    string
	maxFileSize int64
	client      *http.Client
}

// NewVisionRecognizer creates a vision-based text recognizer from config.
func NewVisionRecognizer(cfg *config.OCRConfig) *VisionRecognizer {
	return newVisionRecognizer(cfg, apiURL)
}

// NewVisionRecognizerWithEndpoint creates a recognizer pointing at a custom API endpoint (for testing).
func NewVisionRecognizerWithEndpoint(cfg *config.OCRConfig, endpoint string) *VisionRecognizer {
	return newVisionRecognizer(cfg, endpoint)
}

func newVisionRecognizer(cfg *config.OCRConfig, endpoint string) *VisionRecognizer {
	model := cfg.Model
	if model == "" {
		model = "gpt-4o"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	maxSize := cfg.MaxFileSizeMB
	if maxSize == 0 {
		maxSize = 10
	}
	return &VisionRecognizer{
		apiKey:      cfg.APIKey,
		model:       model,
		endpoint:    endpoint,
		maxFileSize: maxSize * 1024 * 1024,
		client:      &http.Client{Timeout: timeout},
	}
}

// RecognizeText validates the uploaded image and returns the text the model
// reads from it.
func (r *VisionRecognizer) RecognizeText(ctx context.Context, input port.MediaInput) (string, error) {
	mimeType, err := r.validate(input)
	if err != nil {
		return "", err
	}

	encoded := base64.StdEncoding.EncodeToString(input.Data)
	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, encoded)

	reqBody := map[string]interface{}{
		"model":                 r.model,
		"max_completion_tokens": 4096,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{
						"type": "image_url",
						"image_url": map[string]interface{}{
							"url": dataURI,
						},
					},
					{
						"type": "text",
						"text": recognizePrompt,
					},
				},
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling vision API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("vision API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return parseResponse(respBody)
}

func (r *VisionRecognizer) validate(input port.MediaInput) (string, error) {
	ext := strings.ToLower(filepath.Ext(input.Filename))
	mimeType, ok := supportedImageTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFileType, ext)
	}
	if int64(len(input.Data)) > r.maxFileSize {
		return "", fmt.Errorf("%w: %d bytes exceeds limit of %d", domain.ErrFileTooLarge, len(input.Data), r.maxFileSize)
	}
	return mimeType, nil
}

// visionResponse models the Chat Completions API response.
type visionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func parseResponse(body []byte) (string, error) {
	var resp visionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from API: no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

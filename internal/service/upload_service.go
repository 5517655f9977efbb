package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"doctriage/internal/domain"
	"doctriage/internal/port"
)

// UploadResult is the outcome of analyzing an uploaded media file.
type UploadResult struct {
	Text            string          `json:"text"`
	Analysis        *AnalysisResult `json:"analysis"`
	ArchiveLocation string          `json:"archive_location,omitempty"`
	ProcessingMS    int64           `json:"processing_ms"`
}

// UploadService defines the media upload analysis contract.
type UploadService interface {
	AnalyzeImage(ctx context.Context, input port.MediaInput) (*UploadResult, error)
	AnalyzeAudio(ctx context.Context, input port.MediaInput) (*UploadResult, error)
}

type uploadService struct {
	recognizer    port.TextRecognizer
	transcriber   port.Transcriber
	analysis      AnalysisService
	storage       port.ObjectStorage // nil disables archival
	archiveBucket string
}

// NewUploadService creates a new UploadService implementation. storage may be
// nil, in which case uploads are not archived.
func NewUploadService(
	recognizer port.TextRecognizer,
	transcriber port.Transcriber,
	analysis AnalysisService,
	storage port.ObjectStorage,
	archiveBucket string,
) UploadService {
	return &uploadService{
		recognizer:    recognizer,
		transcriber:   transcriber,
		analysis:      analysis,
		storage:       storage,
		archiveBucket: archiveBucket,
	}
}

func (s *uploadService) AnalyzeImage(ctx context.Context, input port.MediaInput) (*UploadResult, error) {
	return s.analyze(ctx, input, "images", func(ctx context.Context) (string, error) {
		return s.recognizer.RecognizeText(ctx, input)
	})
}

func (s *uploadService) AnalyzeAudio(ctx context.Context, input port.MediaInput) (*UploadResult, error) {
	return s.analyze(ctx, input, "audio", func(ctx context.Context) (string, error) {
		return s.transcriber.Transcribe(ctx, input)
	})
}

func (s *uploadService) analyze(ctx context.Context, input port.MediaInput, prefix string, extract func(context.Context) (string, error)) (*UploadResult, error) {
	start := time.Now()

	text, err := extract(ctx)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoTextExtracted, input.Filename)
	}

	location := s.archive(ctx, input, prefix)

	analysis, err := s.analysis.Analyze(ctx, text, nil, "")
	if err != nil {
		return nil, err
	}

	return &UploadResult{
		Text:            text,
		Analysis:        analysis,
		ArchiveLocation: location,
		ProcessingMS:    time.Since(start).Milliseconds(),
	}, nil
}

// archive stores the original upload for later audit. Failures are logged and
// swallowed so a storage outage never blocks analysis.
func (s *uploadService) archive(ctx context.Context, input port.MediaInput, prefix string) string {
	if s.storage == nil || s.archiveBucket == "" {
		return ""
	}

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), filepath.Ext(input.Filename))
	out, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.archiveBucket,
		Key:         key,
		Body:        bytes.NewReader(input.Data),
		ContentType: input.ContentType,
	})
	if err != nil {
		log.Printf("service.uploadService: archiving %s failed: %v", input.Filename, err)
		return ""
	}
	return out.Location
}

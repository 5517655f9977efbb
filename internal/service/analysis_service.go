package service

import (
	"context"
	"fmt"
	"strings"

	"doctriage/internal/classifier"
	"doctriage/internal/domain"
	"doctriage/internal/extractor"
)

// AnalysisResult combines a classification verdict with the fields extracted
// for the resolved document type.
type AnalysisResult struct {
	Classification *classifier.Result `json:"classification"`
	Fields         []domain.Field     `json:"fields"`
}

// AnalysisService defines the document analysis contract.
type AnalysisService interface {
	Classify(ctx context.Context, text string, fields []domain.Field, hint domain.DocumentType) (*classifier.Result, error)
	Extract(ctx context.Context, text string, documentType domain.DocumentType) ([]domain.Field, error)
	Analyze(ctx context.Context, text string, fields []domain.Field, hint domain.DocumentType) (*AnalysisResult, error)
}

type analysisService struct {
	classifier *classifier.Service
	extractor  *extractor.Service
}

// NewAnalysisService creates a new AnalysisService implementation.
func NewAnalysisService(cls *classifier.Service, ext *extractor.Service) AnalysisService {
	return &analysisService{
		classifier: cls,
		extractor:  ext,
	}
}

func (s *analysisService) Classify(ctx context.Context, text string, fields []domain.Field, hint domain.DocumentType) (*classifier.Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyText
	}
	return s.classifier.Classify(text, fields, hint)
}

func (s *analysisService) Extract(ctx context.Context, text string, documentType domain.DocumentType) ([]domain.Field, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyText
	}
	return s.extractor.ExtractFields(ctx, text, documentType)
}

// Analyze classifies the text and extracts fields for whatever type the
// classifier resolved.
func (s *analysisService) Analyze(ctx context.Context, text string, fields []domain.Field, hint domain.DocumentType) (*AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyText
	}
	classification, err := s.classifier.Classify(text, fields, hint)
	if err != nil {
		return nil, fmt.Errorf("classifying document: %w", err)
	}

	extracted, err := s.extractor.ExtractFields(ctx, text, classification.DocumentType)
	if err != nil {
		return nil, fmt.Errorf("extracting fields: %w", err)
	}

	return &AnalysisResult{
		Classification: classification,
		Fields:         extracted,
	}, nil
}

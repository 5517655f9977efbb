// Package extractor pulls structured fields out of recognized text: generic
// regex extraction, type-aware refinement of the result, and type-specific
// additions, optionally enriched by an LLM provider.
package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"doctriage/internal/domain"
	"doctriage/internal/llm"
	"doctriage/internal/port"
)

const defaultEnrichTimeout = 30 * time.Second

// Service extracts fields from document text. The provider is optional; when
// nil, extraction is purely pattern-based.
type Service struct {
	provider      port.LLMProvider
	enrichTimeout time.Duration
}

// New creates a pattern-only extractor.
func New() *Service {
	return &Service{}
}

// NewWithProvider creates an extractor that also asks the given LLM provider
// for additional fields. Enrichment is best-effort: provider failures never
// affect the pattern results.
func NewWithProvider(provider port.LLMProvider, enrichTimeout time.Duration) *Service {
	if enrichTimeout <= 0 {
		enrichTimeout = defaultEnrichTimeout
	}
	return &Service{provider: provider, enrichTimeout: enrichTimeout}
}

// ExtractFields extracts fields from text in three stages: pattern
// extraction over the raw text, type-aware refinement, and type-specific
// additions. When an LLM provider is configured its fields are appended
// last, tagged source=llm.
func (s *Service) ExtractFields(ctx context.Context, text string, documentType domain.DocumentType) ([]domain.Field, error) {
	if !documentType.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDocumentType, documentType)
	}

	log.Printf("extractor.Service: starting extraction doc_type=%s text_length=%d", documentType, len(text))

	fields := extractPatternFields(text)
	fields = refineByType(fields, documentType)
	fields = append(fields, extractTypeFields(text, documentType)...)

	if s.provider != nil {
		fields = append(fields, s.enrichWithLLM(ctx, text, documentType)...)
	}

	log.Printf("extractor.Service: extraction complete doc_type=%s total_fields=%d", documentType, len(fields))
	return fields, nil
}

// refineByType relabels generic fields according to the document type.
// Refinement is a pure transform: it returns a new list and never mutates
// the input fields.
func refineByType(fields []domain.Field, documentType domain.DocumentType) []domain.Field {
	refined := make([]domain.Field, 0, len(fields))
	for _, f := range fields {
		switch {
		case documentType == domain.TypePromotional && f.Key == "amount":
			refined = append(refined, domain.Field{
				Key: "offer_amount", Value: f.Value, Confidence: f.Confidence * 0.9, Source: f.Source,
			})
		case documentType == domain.TypeBillStatement && f.Key == "amount":
			refined = append(refined, domain.Field{
				Key: "amount_due", Value: f.Value, Confidence: f.Confidence * 0.9, Source: f.Source,
			})
		default:
			// Receipts keep amounts as transaction amounts; every other type
			// passes through unchanged.
			refined = append(refined, f)
		}
	}
	return refined
}

// extractTypeFields adds type-specific fields found by ordered,
// first-match-wins pattern lists.
func extractTypeFields(text string, documentType domain.DocumentType) []domain.Field {
	var fields []domain.Field

	switch documentType {
	case domain.TypePromotional:
		if code, ok := firstMatch(text, promoCodePatterns); ok {
			fields = append(fields, domain.Field{
				Key: "promo_code", Value: code, Confidence: 0.95, Source: domain.SourcePattern,
			})
		}
		if expiry, ok := firstMatch(text, offerExpiryPatterns); ok {
			fields = append(fields, domain.Field{
				Key: "offer_expiry", Value: expiry, Confidence: 0.90, Source: domain.SourcePattern,
			})
		}

	case domain.TypeReceipt:
		if id, ok := firstMatch(text, transactionIDPatterns); ok {
			fields = append(fields, domain.Field{
				Key: "transaction_id", Value: id, Confidence: 0.95, Source: domain.SourcePattern,
			})
		}
		if m := totalAmountPattern.FindStringSubmatch(text); m != nil {
			fields = append(fields, domain.Field{
				Key: "total_amount", Value: "$" + m[1], Confidence: 0.95, Source: domain.SourcePattern,
			})
		}

	case domain.TypeBillStatement:
		if due, ok := firstMatch(text, dueDatePatterns); ok {
			fields = append(fields, domain.Field{
				Key: "due_date", Value: due, Confidence: 0.95, Source: domain.SourcePattern,
			})
		}
		if m := accountNumberPattern.FindStringSubmatch(text); m != nil {
			fields = append(fields, domain.Field{
				Key: "account_number", Value: m[1], Confidence: 0.90, Source: domain.SourcePattern,
			})
		}
	}

	return fields
}

// enrichWithLLM asks the provider for additional fields. Any failure, from
// transport errors to malformed JSON, degrades to an empty list.
func (s *Service) enrichWithLLM(ctx context.Context, text string, documentType domain.DocumentType) []domain.Field {
	ctx, cancel := context.WithTimeout(ctx, s.enrichTimeout)
	defer cancel()

	raw, err := s.provider.ExtractJSON(ctx,
		llm.BuildFieldExtractionPrompt(text, documentType),
		llm.FieldExtractionSystemPrompt(documentType),
	)
	if err != nil {
		log.Printf("extractor.Service: LLM enrichment failed, continuing without: %v", err)
		return nil
	}

	var parsed struct {
		Fields []struct {
			Key        string  `json:"key"`
			Value      string  `json:"value"`
			Confidence float64 `json:"confidence"`
		} `json:"fields"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.Printf("extractor.Service: LLM returned unparseable field list, continuing without: %v", err)
		return nil
	}

	fields := make([]domain.Field, 0, len(parsed.Fields))
	for _, f := range parsed.Fields {
		if f.Key == "" {
			continue
		}
		confidence := f.Confidence
		if confidence <= 0 || confidence > 1 {
			confidence = 0.8
		}
		fields = append(fields, domain.Field{
			Key: f.Key, Value: f.Value, Confidence: confidence, Source: domain.SourceLLM,
		})
	}

	log.Printf("extractor.Service: LLM enrichment added %d fields", len(fields))
	return fields
}

package llm

import (
	"fmt"

	"doctriage/internal/domain"
)

// FieldExtractionSystemPrompt returns the system prompt for type-aware field
// extraction.
func FieldExtractionSystemPrompt(documentType domain.DocumentType) string {
	return fmt.Sprintf("You are an expert at extracting structured information from %s documents.", documentType)
}

// BuildFieldExtractionPrompt returns the extraction prompt for a document's
// recognized text.
func BuildFieldExtractionPrompt(text string, documentType domain.DocumentType) string {
	return fmt.Sprintf(`Extract key fields from this %s document:

%s

Return ONLY valid JSON with no markdown formatting, no code fences, no explanation.

Return a JSON object with extracted fields in this format:
{
    "fields": [
        {"key": "field_name", "value": "extracted_value", "confidence": 0.95}
    ]
}

Confidence must be a float between 0.0 and 1.0. Do not invent fields that are
not present in the document.`, documentType, text)
}

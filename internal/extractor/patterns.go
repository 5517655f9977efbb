package extractor

import (
	"regexp"

	"doctriage/internal/domain"
)

// Generic field patterns applied to every document regardless of type.
var (
	amountPattern = regexp.MustCompile(`\$\s*(\d+(?:\.\d{2})?)`)
	datePattern   = regexp.MustCompile(`\b(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\b`)
	emailPattern  = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern  = regexp.MustCompile(`\b(\d{3}[-.\s]?\d{3}[-.\s]?\d{4}|\(\d{3}\)\s*\d{3}[-.\s]?\d{4})\b`)
)

// Type-specific patterns. Each list is ordered: the first match wins and the
// rest are not tried.
var (
	promoCodePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)promo\s*code:?\s*([A-Z0-9]+)`),
		regexp.MustCompile(`(?i)use\s*code:?\s*([A-Z0-9]+)`),
		regexp.MustCompile(`(?i)code:?\s*([A-Z0-9]{4,})`),
	}
	offerExpiryPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)expires?:?\s*([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
		regexp.MustCompile(`(?i)ends?:?\s*([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
		regexp.MustCompile(`(?i)by\s+(\d{1,2}/\d{1,2}/\d{4})`),
	}
	transactionIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)receipt\s*#:?\s*([A-Z0-9-]+)`),
		regexp.MustCompile(`(?i)transaction\s*#:?\s*([A-Z0-9-]+)`),
		regexp.MustCompile(`(?i)order\s*#:?\s*([A-Z0-9-]+)`),
	}
	totalAmountPattern = regexp.MustCompile(`(?i)total:?\s*\$\s*(\d+\.\d{2})`)
	dueDatePatterns    = []*regexp.Regexp{
		regexp.MustCompile(`(?i)due\s*date:?\s*(\d{1,2}/\d{1,2}/\d{4})`),
		regexp.MustCompile(`(?i)payment\s*due:?\s*(\d{1,2}/\d{1,2}/\d{4})`),
	}
	accountNumberPattern = regexp.MustCompile(`(?i)account\s*#?:?\s*([A-Z0-9-]+)`)
)

// extractPatternFields runs the generic regexes over the raw text. Every
// match becomes one field; duplicates are kept.
func extractPatternFields(text string) []domain.Field {
	var fields []domain.Field

	for _, m := range amountPattern.FindAllStringSubmatch(text, -1) {
		fields = append(fields, domain.Field{
			Key: "amount", Value: "$" + m[1], Confidence: 0.85, Source: domain.SourcePattern,
		})
	}
	for _, m := range datePattern.FindAllStringSubmatch(text, -1) {
		fields = append(fields, domain.Field{
			Key: "date", Value: m[1], Confidence: 0.90, Source: domain.SourcePattern,
		})
	}
	for _, m := range emailPattern.FindAllString(text, -1) {
		fields = append(fields, domain.Field{
			Key: "email", Value: m, Confidence: 0.95, Source: domain.SourcePattern,
		})
	}
	for _, m := range phonePattern.FindAllString(text, -1) {
		fields = append(fields, domain.Field{
			Key: "phone", Value: m, Confidence: 0.85, Source: domain.SourcePattern,
		})
	}

	return fields
}

// firstMatch tries an ordered list of patterns and returns the first capture
// group of the first pattern that matches.
func firstMatch(text string, patterns []*regexp.Regexp) (string, bool) {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

package detect

import (
	"regexp"
	"strings"
)

var (
	// 13-19 digit PAN candidates: grouped 4-4-4-(3..7) or a continuous run.
	groupedPANPattern    = regexp.MustCompile(`\b\d{4}[\s\-]?\d{4}[\s\-]?\d{4}[\s\-]?\d{3,7}\b`)
	continuousPANPattern = regexp.MustCompile(`\b\d{13,19}\b`)
	expiryPattern        = regexp.MustCompile(`\b(0[1-9]|1[0-2])/(\d{2}|\d{4})\b`)
	nonDigitPattern      = regexp.MustCompile(`\D`)
)

var (
	nonPaymentCardTerms = []string{"gift card", "member card", "membership card", "loyalty card"}
	issuerNames         = []string{
		"visa", "mastercard", "amex", "american express", "discover", "maestro", "jcb",
	}
	cardTypeKeywords = []string{"credit card", "debit card", "valid thru", "expires"}
)

// Luhn validates a payment card number. Non-digits are stripped first; the
// digit count must be 13-19.
func Luhn(cardNumber string) bool {
	digits := nonDigitPattern.ReplaceAllString(cardNumber, "")
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}

	total := 0
	for i := 0; i < len(digits); i++ {
		// Walk from the rightmost digit; double every second one.
		n := int(digits[len(digits)-1-i] - '0')
		if i%2 == 1 {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		total += n
	}
	return total%10 == 0
}

func extractCardNumbers(text string) []string {
	matches := groupedPANPattern.FindAllString(text, -1)
	return append(matches, continuousPANPattern.FindAllString(text, -1)...)
}

// CreditCard detects physical payment cards. A hit requires a Luhn-valid PAN
// plus strong context (issuer name, expiry date, card-specific field key, or
// card keyword). Gift/member/loyalty cards without an issuer name are
// rejected outright.
func CreditCard(haystack string, fieldKeys []string) (bool, map[string]interface{}) {
	isNonPaymentCard := containsAny(haystack, nonPaymentCardTerms)
	hasIssuerName := containsAny(haystack, issuerNames)

	if isNonPaymentCard && !hasIssuerName {
		return false, map[string]interface{}{"rejected_reason": "non_payment_card"}
	}

	hasValidPAN := false
	for _, number := range extractCardNumbers(haystack) {
		if Luhn(number) {
			hasValidPAN = true
			break
		}
	}

	hasExpiry := expiryPattern.MatchString(haystack)

	// "card number"/"card pan" or credit/debit field keys, not just "card".
	hasCardField := false
	for _, key := range fieldKeys {
		if (strings.Contains(key, "card") && (strings.Contains(key, "number") || strings.Contains(key, "pan"))) ||
			strings.Contains(key, "credit") || strings.Contains(key, "debit") {
			hasCardField = true
			break
		}
	}

	hasCardKeyword := containsAny(haystack, cardTypeKeywords)

	hasStrongContext := hasIssuerName || hasExpiry || hasCardField || hasCardKeyword

	details := map[string]interface{}{
		"has_valid_pan":       hasValidPAN,
		"has_issuer_name":     hasIssuerName,
		"has_expiry":          hasExpiry,
		"has_card_field":      hasCardField,
		"has_card_keyword":    hasCardKeyword,
		"is_non_payment_card": isNonPaymentCard,
	}
	return hasValidPAN && hasStrongContext, details
}

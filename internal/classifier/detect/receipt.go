package detect

import "regexp"

var amountPattern = regexp.MustCompile(`\$\s*\d+(\.\d{2})?`)

var (
	transactionIDTerms = []string{
		"receipt #", "receipt number", "transaction #", "order #",
		"order number", "confirmation #",
	}
	receiptCardTypes     = []string{"visa", "mastercard", "amex", "discover"}
	paymentIndicators    = []string{"auth code", "approval", "paid with"}
	cashIndicators       = []string{"cash", "change:", "tendered", "amount paid"}
	merchantIndicators   = []string{"store #", "cashier", "terminal", "server:", "table:"}
	receiptKeywords      = []string{"receipt", "thank you for shopping"}
	paymentCompleteWords = []string{"tendered", "change:", "change due"}
)

// CountAmounts returns the number of dollar-amount occurrences in text.
// Duplicate amounts count multiple times.
func CountAmounts(text string) int {
	return len(amountPattern.FindAllString(text, -1))
}

// Receipt detects proof-of-purchase transactions using three tiers of
// decreasing strength, returning at the first tier that matches. A
// promotional hit vetoes the receipt entirely: marketing intent overrides
// transactional structure.
func Receipt(haystack string, promotional bool) (bool, map[string]interface{}) {
	if promotional {
		return false, map[string]interface{}{"rejected_reason": "promotional"}
	}

	hasTransactionID := containsAny(haystack, transactionIDTerms)

	hasCardPayment := containsAny(haystack, receiptCardTypes) || containsAny(haystack, paymentIndicators)
	hasCashPayment := containsAny(haystack, cashIndicators)
	hasPaymentMethod := hasCardPayment || hasCashPayment

	hasMerchantContext := containsAny(haystack, merchantIndicators)

	// Tier 1: transaction ID + payment method.
	if hasTransactionID && hasPaymentMethod {
		return true, map[string]interface{}{
			"rule":               RuleStrongTransaction,
			"has_transaction_id": true,
			"has_payment_method": true,
		}
	}

	// Tier 2: merchant context + payment method.
	if hasMerchantContext && hasPaymentMethod {
		return true, map[string]interface{}{
			"rule":                 RuleMerchantPayment,
			"has_merchant_context": true,
			"has_payment_method":   true,
		}
	}

	// Tier 3: receipt wording + payment completion + three or more amounts.
	hasReceiptWord := containsAny(haystack, receiptKeywords)
	hasPaymentComplete := containsAny(haystack, paymentCompleteWords)
	amountCount := CountAmounts(haystack)

	if hasReceiptWord && hasPaymentComplete && amountCount >= 3 {
		return true, map[string]interface{}{
			"rule":                 RuleWeakCombined,
			"has_receipt_word":     true,
			"has_payment_complete": true,
			"amount_count":         amountCount,
		}
	}

	return false, map[string]interface{}{
		"has_transaction_id":   hasTransactionID,
		"has_payment_method":   hasPaymentMethod,
		"has_merchant_context": hasMerchantContext,
	}
}

// Receipt tier identifiers, reported in the details map and used by the
// classifier to band confidence.
const (
	RuleStrongTransaction = "strong_transaction"
	RuleMerchantPayment   = "merchant_payment"
	RuleWeakCombined      = "weak_combined"
)

package detect

import "strings"

// Anti-patterns: insurance-adjacent documents that are explicitly not cards.
// Any match rejects regardless of other signals.
var insuranceAntiPatterns = []string{
	"this is not an insurance card",
	"summary of benefits",
	"explanation of benefits",
	"eob",
	"claim statement",
	"billing statement",
}

var (
	cardIndicators = []string{"member id", "subscriber id", "policy number", "certificate number"}
	insuranceTerms = []string{"copay", "rx bin", "rx grp", "deductible", "payer id"}
	networkTerms   = []string{"ppo", "hmo", "epo", "pos"}
	knownInsurers  = []string{
		"blue cross", "blue shield", "premera", "regence", "aetna",
		"cigna", "kaiser", "vsp", "delta dental",
	}
)

// InsuranceCardMaxSignals is the number of insurance-card signal categories.
const InsuranceCardMaxSignals = 4

// InsuranceCard detects health/dental/vision insurance cards. Requires two
// signal categories, except that "rx bin" is specific enough to match on its
// own.
func InsuranceCard(haystack string) (bool, map[string]interface{}) {
	if containsAny(haystack, insuranceAntiPatterns) {
		return false, map[string]interface{}{"rejected_reason": "anti_pattern"}
	}

	hasCardIndicator := containsAny(haystack, cardIndicators)
	hasInsuranceTerm := containsAny(haystack, insuranceTerms)
	hasNetworkTerm := containsAny(haystack, networkTerms)
	hasKnownInsurer := containsAny(haystack, knownInsurers)

	signalCount := countTrue(hasCardIndicator, hasInsuranceTerm, hasNetworkTerm, hasKnownInsurer)
	hasRxBin := strings.Contains(haystack, "rx bin") || strings.Contains(haystack, "rxbin")

	details := map[string]interface{}{
		"signal_count":       signalCount,
		"has_card_indicator": hasCardIndicator,
		"has_insurance_term": hasInsuranceTerm,
		"has_network_term":   hasNetworkTerm,
		"has_known_insurer":  hasKnownInsurer,
		"has_rx_bin":         hasRxBin,
	}
	return signalCount >= 2 || hasRxBin, details
}

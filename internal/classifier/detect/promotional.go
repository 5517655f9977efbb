package detect

// Signal vocabularies for promotional content. Five independent categories:
// a hit requires at least two of them so a lone "free" or "offer" does not
// flip a receipt into marketing mail.
var (
	incentiveVerbs = []string{
		"get $", "earn", "save $", "receive", "win", "claim", "redeem",
	}
	conditionals = []string{
		"when you", "if you", "after you", "you'll", "we'll", "you will", "you can",
	}
	promoTerms = []string{
		"promo code", "promotional code", "offer code", "offer", "promotion",
		"deal", "bonus", "reward", "free", "gift",
	}
	urgencyTerms = []string{
		"limited time", "expires", "ends", "by ", "hurry", "act now",
		"don't miss", "last chance",
	}
	callsToAction = []string{
		"sign up", "enroll", "apply now", "join now", "visit", "call now",
		"click here", "register",
	}
)

// PromotionalMaxSignals is the number of promotional signal categories.
const PromotionalMaxSignals = 5

// Promotional detects marketing materials, offers, and coupons. It must run
// before the receipt and letter detectors, which treat a promotional hit as
// a veto.
func Promotional(haystack string) (bool, map[string]interface{}) {
	hasIncentiveVerb := containsAny(haystack, incentiveVerbs)
	hasConditional := containsAny(haystack, conditionals)
	hasPromoTerm := containsAny(haystack, promoTerms)
	hasUrgency := containsAny(haystack, urgencyTerms)
	hasCTA := containsAny(haystack, callsToAction)

	signalCount := countTrue(hasIncentiveVerb, hasConditional, hasPromoTerm, hasUrgency, hasCTA)

	details := map[string]interface{}{
		"signal_count":       signalCount,
		"has_incentive_verb": hasIncentiveVerb,
		"has_conditional":    hasConditional,
		"has_promo_term":     hasPromoTerm,
		"has_urgency":        hasUrgency,
		"has_cta":            hasCTA,
	}
	return signalCount >= 2, details
}

package detect

var (
	salutations = []string{
		"dear ", "to whom it may concern", "hello ", "hi ", "greetings",
	}
	closings = []string{
		"sincerely", "regards", "best regards", "best", "yours truly",
		"respectfully", "cordially", "warm regards",
	}
)

// Letter detects correspondence by requiring both a salutation and a closing.
// A promotional hit vetoes it: format never overrides marketing intent.
func Letter(haystack string, promotional bool) (bool, map[string]interface{}) {
	if promotional {
		return false, map[string]interface{}{"rejected_reason": "promotional"}
	}

	hasSalutation := containsAny(haystack, salutations)
	hasClosing := containsAny(haystack, closings)

	details := map[string]interface{}{
		"has_salutation": hasSalutation,
		"has_closing":    hasClosing,
	}
	return hasSalutation && hasClosing, details
}

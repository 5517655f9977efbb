package llm

import "strings"

// StripCodeFences removes a surrounding markdown code fence from model
// output. Providers are asked for raw JSON but occasionally wrap it in
// ```json ... ``` anyway.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		// Drop the language tag on the opening fence line.
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

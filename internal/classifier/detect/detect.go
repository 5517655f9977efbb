// Package detect holds the signal detectors used by the classifier. Each
// detector is a pure function of the lower-cased haystack (plus explicit
// context parameters) returning a hit flag and a diagnostic details map.
// Detectors threshold on the count of distinct signal categories, not raw
// keyword occurrences, to resist single-keyword false positives.
package detect

import "strings"

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func countTrue(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

package utils

import "strings"

// MatchFilter reports whether any of the properties contains filter, ignoring case.
// An empty filter matches everything.
func MatchFilter(filter string, properties ...string) bool {
	if filter == "" {
		return true
	}
	needle := strings.ToLower(filter)
	for _, p := range properties {
		if strings.Contains(strings.ToLower(p), needle) {
			return true
		}
	}
	return false
}

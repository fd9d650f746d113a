package catalog

import "strings"

// Keywords splits a search string into lowercase whitespace-separated terms.
func Keywords(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// MatchAll reports whether every keyword is a substring of the fields. The
// fields are joined with a space so a keyword never matches across the
// boundary of two fields. No keywords matches everything.
func MatchAll(keywords []string, fields ...string) bool {
	if len(keywords) == 0 {
		return true
	}
	haystack := strings.ToLower(strings.Join(fields, " "))
	for _, k := range keywords {
		if !strings.Contains(haystack, k) {
			return false
		}
	}
	return true
}

package services

import "strings"

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// Sanitize strips angle-bracket characters.
func Sanitize(s string) string {
	return angleBrackets.Replace(s)
}

// clean trims, sanitizes, and trims again so that stripped brackets never
// leave a field that is only whitespace.
func clean(s string) string {
	return strings.TrimSpace(Sanitize(strings.TrimSpace(s)))
}

// Slug lowercases name and keeps only ASCII letters and digits.
func Slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

package common

import (
	"fmt"
	"strings"
	"unicode"
)

// Slugify converts input into a lowercase URL-safe slug. When the input
// contains no usable characters the fallback is used instead.
func Slugify(input, fallback string) (string, error) {
	var b strings.Builder
	lastDash := true

	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = strings.TrimSpace(fallback)
	}
	if slug == "" {
		return "", fmt.Errorf("cannot derive slug from %q", input)
	}
	return slug, nil
}

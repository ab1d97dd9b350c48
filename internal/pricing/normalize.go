package pricing

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds case and strips diacritics so "Mazatlán" matches "mazatlan".
// The result is only used for matching, never shown to users.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	lowered := strings.ToLower(text)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, lowered)
	if err != nil {
		return lowered
	}
	return out
}

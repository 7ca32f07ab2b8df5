package greeting

import (
	"strings"

	"golang.org/x/text/language"
)

// CanonicalLocale normalizes a BCP 47 locale code ("en_us" -> "en-US").
// ok is false when the code cannot be parsed.
func CanonicalLocale(code string) (string, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	return tag.String(), true
}

// canonicalOrRaw keeps unparseable codes as-is so they still miss on lookup
func canonicalOrRaw(code string) string {
	if c, ok := CanonicalLocale(code); ok {
		return c
	}
	return code
}

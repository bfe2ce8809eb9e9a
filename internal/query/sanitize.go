package query

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	spacePattern      = regexp.MustCompile(`\s+`)
	slugInvalid       = regexp.MustCompile(`[^a-z0-9 _-]`)
	slugSeparators    = regexp.MustCompile(`[\s-]+`)
	keyInvalid        = regexp.MustCompile(`[^a-z0-9_-]`)
	accentTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// SanitizeText strips markup, collapses whitespace and trims.
func SanitizeText(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Slug lowercases s, folds accents and joins words with dashes.
// "Light Blue" becomes "light-blue".
func Slug(s string) string {
	s = SanitizeText(s)
	if folded, _, err := transform.String(accentTransformer, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SanitizeKey keeps lowercase alphanumerics, dashes and underscores.
func SanitizeKey(s string) string {
	return keyInvalid.ReplaceAllString(strings.ToLower(s), "")
}

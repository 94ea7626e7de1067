// Package slug normalizes free-form labels: URL slugs for project detail
// pages and accent-insensitive comparison keys for category filtering.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlnum    = regexp.MustCompile(`[^a-z0-9]+`)
	edgeHyphens = regexp.MustCompile(`^-+|-+$`)

	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// NormalizeLabel trims, case-folds and strips diacritics, so that
// "Évenements", "evenements " and "EVENEMENTS" all compare equal.
func NormalizeLabel(value string) string {
	folded, _, err := transform.String(stripMarks, strings.TrimSpace(value))
	if err != nil {
		folded = strings.TrimSpace(value)
	}
	return strings.ToLower(folded)
}

// Slugify turns an arbitrary title into a lowercase hyphenated slug.
func Slugify(value string) string {
	s := NormalizeLabel(value)
	s = nonAlnum.ReplaceAllString(s, "-")
	return edgeHyphens.ReplaceAllString(s, "")
}

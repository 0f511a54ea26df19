package normalize

import (
	"regexp"
	"strings"
)

var (
	parentheticalPattern = regexp.MustCompile(`\(.*?\)`)
	editionSuffixPattern = regexp.MustCompile(`: \w+ (edition|cut)`)
	nonAlphanumPattern   = regexp.MustCompile(`[^a-z0-9]+`)
)

// romanNumerals maps the trailing roman numerals that appear in the
// sources. Ordered longest-first so "iii" never half-matches as "ii".
// The list is intentionally short: numerals outside it (vi, vii, ...)
// are left alone.
var romanNumerals = []struct {
	pattern *regexp.Regexp
	digit   string
}{
	{regexp.MustCompile(`\biii\b`), "3"},
	{regexp.MustCompile(`\bxv\b`), "15"},
	{regexp.MustCompile(`\bix\b`), "9"},
	{regexp.MustCompile(`\biv\b`), "4"},
	{regexp.MustCompile(`\bii\b`), "2"},
}

// CompareKey reduces a title to the key used for cross-catalog
// matching. Keys are throwaway join values and are never stored back
// as titles.
func CompareKey(title string) string {
	key := strings.ToLower(title)
	key = parentheticalPattern.ReplaceAllString(key, "")
	key = strings.ReplaceAll(key, "'", "")
	key = strings.ReplaceAll(key, "’", "")
	key = editionSuffixPattern.ReplaceAllString(key, "")
	for _, numeral := range romanNumerals {
		key = numeral.pattern.ReplaceAllString(key, numeral.digit)
	}
	// A long-standing typo in the scraped access catalog.
	key = strings.ReplaceAll(key, "adeventure", "adventure")
	key = nonAlphanumPattern.ReplaceAllString(key, "")
	return strings.TrimSpace(key)
}

// CompareKeySet builds the membership set for one external catalog.
func CompareKeySet(titles []string) map[string]struct{} {
	set := make(map[string]struct{}, len(titles))
	for _, title := range titles {
		set[CompareKey(title)] = struct{}{}
	}
	return set
}

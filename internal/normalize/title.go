package normalize

import (
	"regexp"
	"strings"
)

// Rule is one pure title transformation. Rules run in declaration
// order; later rules must not re-match text freed by earlier ones.
type Rule struct {
	Name  string
	Apply func(string) string
}

// storedLiteralWrapper is the fixed-width wrapper the launcher stores
// around title values (a quoted JSON-ish byte literal): 10 leading and
// 2 trailing characters. Verified against captured GamePieces rows;
// values shorter than the wrapper pass through untouched.
const (
	wrapperHead = 10
	wrapperTail = 2
)

var (
	windowsSuffixPattern = regexp.MustCompile(`\w+ Windows 10|\w+ Windows`)
	innerThePattern      = regexp.MustCompile(`(?i) the `)
	innerAtPattern       = regexp.MustCompile(`(?i) at `)
)

// TitleRules is the canonical-title rule sequence, in the only order
// that is known to be safe.
var TitleRules = []Rule{
	{Name: "unwrap stored literal", Apply: unwrapStoredLiteral},
	{Name: "strip trademark symbols", Apply: func(s string) string {
		s = strings.ReplaceAll(s, "™", "")
		return strings.ReplaceAll(s, "®", "")
	}},
	{Name: "strip windows suffix", Apply: func(s string) string {
		return windowsSuffixPattern.ReplaceAllString(s, "")
	}},
	// "â€™" is a right single quote read through the wrong codec
	// upstream. Compatibility shim until the source rows are re-read
	// with the correct encoding.
	{Name: "strip mis-encoded apostrophe", Apply: func(s string) string {
		return strings.ReplaceAll(s, "â€™", "")
	}},
	{Name: "lowercase inner the", Apply: func(s string) string {
		return innerThePattern.ReplaceAllString(s, " the ")
	}},
	{Name: "strip leading The", Apply: func(s string) string {
		return strings.TrimPrefix(s, "The ")
	}},
	{Name: "lowercase inner at", Apply: func(s string) string {
		return innerAtPattern.ReplaceAllString(s, " at ")
	}},
	{Name: "trim whitespace", Apply: strings.TrimSpace},
}

// Title derives the canonical title from a raw stored title value.
// Deterministic and stateless: identical input always yields an
// identical canonical title.
func Title(raw string) string {
	out := raw
	for _, rule := range TitleRules {
		out = rule.Apply(out)
	}
	return out
}

// CleanTitle applies every rule except the stored-literal unwrap. Used
// for external catalog titles, which arrive as plain text rather than
// wrapped launcher literals.
func CleanTitle(raw string) string {
	out := raw
	for _, rule := range TitleRules[1:] {
		out = rule.Apply(out)
	}
	return out
}

func unwrapStoredLiteral(s string) string {
	if len(s) <= wrapperHead+wrapperTail {
		return s
	}
	return s[wrapperHead : len(s)-wrapperTail]
}

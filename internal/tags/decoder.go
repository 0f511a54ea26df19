// Package tags decodes free-text user tags into structured status,
// length, and platform-override facets.
//
// Tags follow the "<Facet> - <Value>" convention where the facet is S
// (status), L (length), or P (platform override). An older tagging
// convention stored bare values ("Infinite", "Tried", ...), which are
// corrected to the canonical form before decoding. Tags that match
// neither convention pass through and decode to nothing.
package tags

import (
	"regexp"

	"gamekeeper/internal/games"
)

// NoTag stands in for a release with no tag row at all.
const NoTag = "No tag"

var (
	statusPattern   = regexp.MustCompile(`^S - (\w+)`)
	lengthPattern   = regexp.MustCompile(`^L - (\w+)`)
	platformPattern = regexp.MustCompile(`^P - (\w+)`)
	legacyPattern   = regexp.MustCompile(`^(Infinite|Tried|Short|Completed)\b`)
)

// legacyCorrections maps bare legacy tag words to their canonical
// "<Facet> - <Value>" form.
var legacyCorrections = map[string]string{
	"Infinite":  "L - Infinite",
	"Tried":     "S - Tried",
	"Short":     "L - Short",
	"Completed": "S - Completed",
}

// Facets are the structured values decoded from one release's tags.
// Zero values mean the facet was never tagged.
type Facets struct {
	Status           games.Status
	Length           games.Length
	PlatformOverride string
}

// Correct rewrites a legacy bare-value tag to its canonical form.
// Everything else, including an empty tag, is returned unmodified.
func Correct(tag string) string {
	if tag == "" {
		return NoTag
	}
	if m := legacyPattern.FindStringSubmatch(tag); m != nil {
		return legacyCorrections[m[1]]
	}
	return tag
}

// Decode extracts the facets a single tag string carries.
func Decode(tag string) Facets {
	tag = Correct(tag)
	var f Facets
	if m := statusPattern.FindStringSubmatch(tag); m != nil {
		f.Status = games.Status(m[1])
	}
	if m := lengthPattern.FindStringSubmatch(tag); m != nil {
		f.Length = games.Length(m[1])
	}
	if m := platformPattern.FindStringSubmatch(tag); m != nil {
		f.PlatformOverride = m[1]
	}
	return f
}

// DecodeAll folds a release's tag rows into one Facets value. The
// first tag to claim a facet wins; later tags never overwrite it.
func DecodeAll(tagValues []string) Facets {
	var out Facets
	for _, tag := range tagValues {
		f := Decode(tag)
		if out.Status == games.StatusUnknown {
			out.Status = f.Status
		}
		if out.Length == games.LengthUnknown {
			out.Length = f.Length
		}
		if out.PlatformOverride == "" {
			out.PlatformOverride = f.PlatformOverride
		}
	}
	return out
}

// Package platforms resolves a release key's leading platform prefix
// to a display name using a small user-maintained JSON dictionary.
package platforms

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Unclassified is the display label for release keys that match no
// dictionary prefix.
const Unclassified = "Other"

// Classifier maps release-key prefixes to platform display names.
// Prefixes are tried longest-first so the longest alternative wins at
// the start of the key; ties are impossible because prefixes are
// unique. A miss yields the empty string.
type Classifier struct {
	prefixes []string
	names    map[string]string
}

// NewClassifier builds a classifier from a prefix -> display-name map.
func NewClassifier(dictionary map[string]string) *Classifier {
	prefixes := make([]string, 0, len(dictionary))
	names := make(map[string]string, len(dictionary))
	for prefix, name := range dictionary {
		prefixes = append(prefixes, prefix)
		names[prefix] = name
	}
	sort.Slice(prefixes, func(i, j int) bool {
		if len(prefixes[i]) != len(prefixes[j]) {
			return len(prefixes[i]) > len(prefixes[j])
		}
		return prefixes[i] < prefixes[j]
	})
	return &Classifier{prefixes: prefixes, names: names}
}

// Load reads the platform dictionary from a JSON file.
func Load(path string) (*Classifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read platform dictionary: %w", err)
	}
	var dictionary map[string]string
	if err := json.Unmarshal(raw, &dictionary); err != nil {
		return nil, fmt.Errorf("parse platform dictionary: %w", err)
	}
	return NewClassifier(dictionary), nil
}

// Classify returns the display name for the platform prefix at the
// start of the release key, or "" when no prefix matches.
func (c *Classifier) Classify(releaseKey string) string {
	for _, prefix := range c.prefixes {
		if strings.HasPrefix(releaseKey, prefix) {
			return c.names[prefix]
		}
	}
	return ""
}

// Label converts a classifier result to a display label, mapping the
// empty (unclassified) result to "Other".
func Label(platform string) string {
	if platform == "" {
		return Unclassified
	}
	return platform
}

// Package normalize turns raw launcher title strings into canonical
// display/dedup titles, and canonical titles into the stricter
// comparison keys used for cross-catalog matching. Each normalizer is
// an ordered list of named, pure string rules so individual rules can
// be tested and reordered safely.
package normalize

package pipeline

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"gamekeeper/internal/games"
	"gamekeeper/internal/normalize"
)

// DefaultColumns are the semantic attribute names the pipeline
// materializes from the launcher vocabulary.
var DefaultColumns = []string{"title", "meta"}

// ExcludedTypeIDs are metadata type ids that are never materialized.
// The list matches the launcher's bookkeeping rows (ratings, media,
// OS compatibility and similar) observed in the wild.
var ExcludedTypeIDs = map[int64]struct{}{
	1: {}, 4: {}, 5: {}, 6: {}, 7: {}, 10: {}, 19: {}, 47: {},
	1377: {}, 1378: {}, 1421: {}, 1422: {}, 1423: {}, 1424: {},
	3465: {}, 3466: {},
}

// DenormalizeOptions selects which semantic attributes become entity
// fields.
type DenormalizeOptions struct {
	// Vocabulary maps semantic attribute names to numeric type ids,
	// as read from the launcher's GamePieceTypes table.
	Vocabulary map[string]int64
	// Columns are the semantic names to materialize. Defaults to
	// DefaultColumns when empty.
	Columns []string
	// Excluded type ids are dropped before grouping. Defaults to
	// ExcludedTypeIDs when nil.
	Excluded map[int64]struct{}
}

var releaseDatePattern = regexp.MustCompile(`releaseDate":(\d{9,10})`)

// Denormalize pivots sparse metadata rows into one Entity per release
// key. For each requested column the first row with the matching type
// id wins, in input order. A release with no value for any requested
// column is dropped entirely; a partially filled release is kept with
// the gaps explicit. Output order follows first appearance in the
// input.
func Denormalize(rows []games.RawMetadataRow, opts DenormalizeOptions) ([]games.Entity, error) {
	columns := opts.Columns
	if len(columns) == 0 {
		columns = DefaultColumns
	}
	excluded := opts.Excluded
	if excluded == nil {
		excluded = ExcludedTypeIDs
	}

	typeForColumn := make(map[int64]string, len(columns))
	for _, column := range columns {
		id, ok := opts.Vocabulary[column]
		if !ok {
			return nil, fmt.Errorf("attribute vocabulary has no type id for %q", column)
		}
		typeForColumn[id] = column
	}

	var order []string
	values := make(map[string]map[string]string)
	for _, row := range rows {
		if _, skip := excluded[row.TypeID]; skip {
			continue
		}
		column, ok := typeForColumn[row.TypeID]
		if !ok {
			continue
		}
		entity, seen := values[row.ReleaseKey]
		if !seen {
			entity = make(map[string]string, len(columns))
			values[row.ReleaseKey] = entity
			order = append(order, row.ReleaseKey)
		}
		if _, taken := entity[column]; taken {
			continue
		}
		entity[column] = row.Value
	}

	out := make([]games.Entity, 0, len(order))
	for _, key := range order {
		fields := values[key]
		if len(fields) == 0 {
			continue
		}
		// A record with no title cannot be keyed in the catalog;
		// drop it rather than merge blanks into one empty-titled game.
		if fields["title"] == "" {
			continue
		}
		entity := games.Entity{
			ReleaseKey:     key,
			RawTitle:       fields["title"],
			MetaBlob:       fields["meta"],
			CanonicalTitle: normalize.Title(fields["title"]),
		}
		entity.ReleaseYear = extractReleaseYear(entity.MetaBlob)
		out = append(out, entity)
	}
	return out, nil
}

// extractReleaseYear pulls the epoch release date out of a metadata
// blob. A missing or unparsable date yields 0, never an error.
func extractReleaseYear(meta string) int {
	m := releaseDatePattern.FindStringSubmatch(meta)
	if m == nil {
		return 0
	}
	epoch, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0
	}
	return time.Unix(epoch, 0).UTC().Year()
}

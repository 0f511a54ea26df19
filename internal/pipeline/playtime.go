package pipeline

import (
	"gamekeeper/internal/games"
	"gamekeeper/internal/trackerdb"
)

// AttachPlaytime joins tracked playtime onto the catalog by exact,
// case-sensitive title match against the tracker's product name. A
// title the tracker never saw keeps zero playtime; this is a known
// precision gap, not an error.
func AttachPlaytime(catalog []games.LogicalGame, playtimes []trackerdb.PlaytimeRow, ticksPerMinute int64) []games.LogicalGame {
	minutes := make(map[string]int, len(playtimes))
	for _, row := range playtimes {
		minutes[row.ProductName] = MinutesFromTicks(row.RuntimeTicks, ticksPerMinute)
	}

	out := make([]games.LogicalGame, len(catalog))
	for i, game := range catalog {
		game.PlaytimeMinutes = minutes[game.Title]
		out[i] = game
	}
	return out
}

// MinutesFromTicks converts the tracker's runtime ticks into whole
// minutes by integer division.
func MinutesFromTicks(ticks, ticksPerMinute int64) int {
	if ticks <= 0 || ticksPerMinute <= 0 {
		return 0
	}
	return int(ticks / ticksPerMinute)
}

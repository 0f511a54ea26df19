package pipeline

import (
	"testing"

	"gamekeeper/internal/games"
	"gamekeeper/internal/trackerdb"
)

func TestMinutesFromTicks(t *testing.T) {
	tests := []struct {
		name           string
		ticks          int64
		ticksPerMinute int64
		want           int
	}{
		{"one hour", 600_000_000, 10_000_000, 60},
		{"zero ticks", 0, 10_000_000, 0},
		{"sub-minute rounds down", 9_999_999, 10_000_000, 0},
		{"default ratio", 36_000_000_000, 600_000_000, 60},
		{"negative guarded", -5, 10_000_000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinutesFromTicks(tt.ticks, tt.ticksPerMinute); got != tt.want {
				t.Fatalf("MinutesFromTicks(%d, %d) = %d, want %d", tt.ticks, tt.ticksPerMinute, got, tt.want)
			}
		})
	}
}

func TestAttachPlaytime(t *testing.T) {
	catalog := []games.LogicalGame{
		{Title: "Hades"},
		{Title: "Untracked"},
	}
	playtimes := []trackerdb.PlaytimeRow{
		{ProductName: "Hades", RuntimeTicks: 600_000_000},
	}

	got := AttachPlaytime(catalog, playtimes, 10_000_000)
	if got[0].PlaytimeMinutes != 60 {
		t.Fatalf("Hades minutes = %d, want 60", got[0].PlaytimeMinutes)
	}
	if format := games.FormatPlaytime(got[0].PlaytimeMinutes); format != "1 Hours" {
		t.Fatalf("formatted playtime = %q", format)
	}
	if got[1].PlaytimeMinutes != 0 {
		t.Fatalf("untracked game minutes = %d, want 0", got[1].PlaytimeMinutes)
	}
	if format := games.FormatPlaytime(got[1].PlaytimeMinutes); format != "0" {
		t.Fatalf("zero playtime renders as %q, want literal 0", format)
	}
}

package tags

import (
	"testing"

	"gamekeeper/internal/games"
)

func TestCorrect(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want string
	}{
		{"legacy infinite", "Infinite", "L - Infinite"},
		{"legacy tried", "Tried", "S - Tried"},
		{"legacy short", "Short", "L - Short"},
		{"legacy completed", "Completed", "S - Completed"},
		{"canonical passes through", "S - Backlog", "S - Backlog"},
		{"unknown passes through", "favorites", "favorites"},
		{"empty becomes no tag", "", NoTag},
		{"legacy word must lead", "Almost Completed", "Almost Completed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Correct(tt.tag); got != tt.want {
				t.Errorf("Correct(%q) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want Facets
	}{
		{"status", "S - Playing", Facets{Status: games.StatusPlaying}},
		{"length", "L - Long", Facets{Length: games.LengthLong}},
		{"platform override", "P - Disc", Facets{PlatformOverride: "Disc"}},
		{"legacy corrected", "Infinite", Facets{Length: games.LengthInfinite}},
		{"unrecognized decodes to nothing", "favorites", Facets{}},
		{"missing tag decodes to nothing", "", Facets{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.tag); got != tt.want {
				t.Errorf("Decode(%q) = %+v, want %+v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestDecodeAllFirstWinsPerFacet(t *testing.T) {
	got := DecodeAll([]string{"S - Backlog", "S - Completed", "L - Short", "P - Disc"})
	want := Facets{
		Status:           games.StatusBacklog,
		Length:           games.LengthShort,
		PlatformOverride: "Disc",
	}
	if got != want {
		t.Fatalf("DecodeAll() = %+v, want %+v", got, want)
	}
}

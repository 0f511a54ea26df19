package games

import "testing"

func TestFormatPlaytime(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0"},
		{-1, "0"},
		{59, "59 Minutes"},
		{60, "1 Hours"},
		{90, "1 Hours 30 Minutes"},
		{600, "10 Hours"},
	}
	for _, tt := range tests {
		if got := FormatPlaytime(tt.minutes); got != tt.want {
			t.Errorf("FormatPlaytime(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestReleaseLabel(t *testing.T) {
	if got := (LogicalGame{ReleaseYear: 2020}).ReleaseLabel(); got != "2020" {
		t.Errorf("ReleaseLabel() = %q", got)
	}
	if got := (LogicalGame{}).ReleaseLabel(); got != "No Date" {
		t.Errorf("missing year should render No Date, got %q", got)
	}
}

func TestOnPlatform(t *testing.T) {
	game := LogicalGame{Platforms: []string{"Steam", "GOG"}}
	if !game.OnPlatform("GOG") {
		t.Error("expected GOG membership")
	}
	if game.OnPlatform("Epic") {
		t.Error("unexpected Epic membership")
	}
}

func TestActiveTitles(t *testing.T) {
	entries := []CatalogEntry{
		{Title: "A", Active: true},
		{Title: "B", Active: false},
		{Title: "C", Active: true},
	}
	got := ActiveTitles(entries)
	if len(got) != 2 || got[0] != "A" || got[1] != "C" {
		t.Fatalf("ActiveTitles = %v", got)
	}
}

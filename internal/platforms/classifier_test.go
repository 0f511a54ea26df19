package platforms

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClassify(t *testing.T) {
	classifier := NewClassifier(map[string]string{
		"steam_": "Steam",
		"gog_":   "GOG",
	})

	tests := []struct {
		key  string
		want string
	}{
		{"steam_12345", "Steam"},
		{"gog_999", "GOG"},
		{"unknown_999", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := classifier.Classify(tt.key); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestClassifyLongestPrefixWins(t *testing.T) {
	classifier := NewClassifier(map[string]string{
		"xbox_":     "Xbox",
		"xbox_sub_": "Xbox Gamepass",
	})

	if got := classifier.Classify("xbox_sub_42"); got != "Xbox Gamepass" {
		t.Fatalf("Classify() = %q, want %q", got, "Xbox Gamepass")
	}
	if got := classifier.Classify("xbox_42"); got != "Xbox" {
		t.Fatalf("Classify() = %q, want %q", got, "Xbox")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platforms.json")
	if err := os.WriteFile(path, []byte(`{"steam_":"Steam"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	classifier, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := classifier.Classify("steam_1"); got != "Steam" {
		t.Fatalf("Classify() = %q, want %q", got, "Steam")
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platforms.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed dictionary")
	}
}

func TestLabel(t *testing.T) {
	if got := Label(""); got != Unclassified {
		t.Fatalf("Label(\"\") = %q, want %q", got, Unclassified)
	}
	if got := Label("Steam"); got != "Steam" {
		t.Fatalf("Label(Steam) = %q, want Steam", got)
	}
}

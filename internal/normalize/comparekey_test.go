package normalize

import "testing"

func TestCompareKey(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"lowercase and squeeze", "Slay the Spire", "slaythespire"},
		{"parenthetical stripped", "Control (Ultimate Edition)", "control"},
		{"apostrophe stripped", "Assassin's Creed", "assassinscreed"},
		{"curly apostrophe stripped", "Marvel’s Avengers", "marvelsavengers"},
		{"edition suffix stripped", "Nioh: Complete edition", "nioh"},
		{"cut suffix stripped", "Death Stranding: Directors cut", "deathstranding"},
		{"roman three", "Diablo III", "diablo3"},
		{"roman two not half of three", "Crusader Kings III", "crusaderkings3"},
		{"roman fifteen", "Final Fantasy XV", "finalfantasy15"},
		{"roman nine", "Final Fantasy IX", "finalfantasy9"},
		{"roman four", "Fallout IV", "fallout4"},
		// vi is deliberately not in the numeral list.
		{"roman six untouched", "Civilization VI", "civilizationvi"},
		{"catalog typo corrected", "LEGO Indiana Jones 2: The Adeventure Continues", "legoindianajones2theadventurecontinues"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompareKey(tt.title); got != tt.want {
				t.Errorf("CompareKey(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestCompareKeySet(t *testing.T) {
	set := CompareKeySet([]string{"Diablo III", "Slay the Spire"})
	if len(set) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(set))
	}
	if _, ok := set["diablo3"]; !ok {
		t.Error("expected diablo3 in key set")
	}
	if _, ok := set["slaythespire"]; !ok {
		t.Error("expected slaythespire in key set")
	}
}

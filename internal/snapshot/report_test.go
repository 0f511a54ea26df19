package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testReport(diff Diff) Report {
	return Report{
		RunID:       "run-2",
		GeneratedAt: time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC),
		LastRunAt:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		TotalGames:  2,
		Diff:        diff,
	}
}

func TestSummaryAdditionsSuppressRemovals(t *testing.T) {
	summary := testReport(Diff{Added: []string{"C"}, Removed: []string{"B"}}).Summary()

	if !strings.Contains(summary, "Number of games added since last run - 1") {
		t.Fatalf("missing addition count:\n%s", summary)
	}
	if !strings.Contains(summary, "New games added -\nC\n") {
		t.Fatalf("missing added title:\n%s", summary)
	}
	if strings.Contains(summary, "removed") {
		t.Fatalf("removals must not be reported when additions exist:\n%s", summary)
	}
}

func TestSummaryRemovalsOnly(t *testing.T) {
	summary := testReport(Diff{Removed: []string{"B"}}).Summary()

	if !strings.Contains(summary, "Number of games removed since last run - 1") {
		t.Fatalf("missing removal count:\n%s", summary)
	}
	if !strings.Contains(summary, "Games removed -\nB\n") {
		t.Fatalf("missing removed title:\n%s", summary)
	}
}

func TestSummaryNoChanges(t *testing.T) {
	summary := testReport(Diff{}).Summary()
	if !strings.Contains(summary, "No new games added since last run") {
		t.Fatalf("missing no-change line:\n%s", summary)
	}
	if !strings.Contains(summary, "Total number of games - 2") {
		t.Fatalf("missing total:\n%s", summary)
	}
	if !strings.Contains(summary, "Last run at - ") {
		t.Fatalf("missing last run line:\n%s", summary)
	}
}

func TestSummaryFirstRunOmitsLastRun(t *testing.T) {
	report := testReport(Diff{})
	report.LastRunAt = time.Time{}
	if strings.Contains(report.Summary(), "Last run at") {
		t.Fatal("first run must not mention a prior run")
	}
}

func TestWriteDailyLogAppends(t *testing.T) {
	logDir := t.TempDir()
	report := testReport(Diff{Added: []string{"C"}})

	path, err := report.WriteDailyLog(logDir)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "2024-03-02.txt" {
		t.Fatalf("log file named %q", filepath.Base(path))
	}
	if _, err := report.WriteDailyLog(logDir); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(raw), "Report for Game Database"); got != 2 {
		t.Fatalf("expected 2 appended reports, found %d", got)
	}
}

package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Report is the human-readable summary of one run.
type Report struct {
	RunID       string
	GeneratedAt time.Time
	LastRunAt   time.Time // zero when this is the first recorded run
	TotalGames  int
	Diff        Diff
}

// Summary renders the run report. Long-standing reporting policy:
// when any titles were added, removals are not mentioned even if both
// occurred. The Diff still carries both lists so callers can log the
// suppressed side.
func (r Report) Summary() string {
	var b strings.Builder
	b.WriteString("\nReport for Game Database\n")
	fmt.Fprintf(&b, "Run %s generated on %s\n", r.RunID, r.GeneratedAt.Format(time.RFC1123))
	fmt.Fprintf(&b, "Total number of games - %d\n", r.TotalGames)
	if !r.LastRunAt.IsZero() {
		fmt.Fprintf(&b, "Last run at - %s\n", r.LastRunAt.Format(time.RFC1123))
	}

	switch {
	case len(r.Diff.Added) > 0:
		fmt.Fprintf(&b, "Number of games added since last run - %d\n", len(r.Diff.Added))
		b.WriteString("New games added -\n")
		for _, title := range r.Diff.Added {
			b.WriteString(title)
			b.WriteByte('\n')
		}
	case len(r.Diff.Removed) > 0:
		fmt.Fprintf(&b, "Number of games removed since last run - %d\n", len(r.Diff.Removed))
		b.WriteString("Games removed -\n")
		for _, title := range r.Diff.Removed {
			b.WriteString(title)
			b.WriteByte('\n')
		}
	default:
		b.WriteString("No new games added since last run\n")
	}
	return b.String()
}

// WriteDailyLog appends the summary to the per-date report file under
// logDir. Multiple runs on the same day append to the same file.
func (r Report) WriteDailyLog(logDir string) (string, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return "", fmt.Errorf("create report log directory: %w", err)
	}
	path := filepath.Join(logDir, r.GeneratedAt.Format("2006-01-02")+".txt")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("open report log: %w", err)
	}
	defer file.Close()
	if _, err := file.WriteString(r.Summary()); err != nil {
		return "", fmt.Errorf("append report log: %w", err)
	}
	return path, nil
}

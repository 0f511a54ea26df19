package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gamekeeper/internal/games"
)

// Override patches any game whose title contains Substring. Empty
// fields leave the existing value alone.
type Override struct {
	Substring string
	Length    games.Length
	Status    games.Status
}

// LoadOverrides reads the manual override file: one
// "titleSubstring,length,status" line per override. A missing file
// means no overrides. Blank lines and lines starting with '#' are
// skipped.
func LoadOverrides(path string) ([]Override, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open overrides: %w", err)
	}
	defer file.Close()

	var out []Override
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, ",", 3)
		if len(fields) != 3 {
			return nil, fmt.Errorf("overrides: malformed line %q", line)
		}
		out = append(out, Override{
			Substring: strings.TrimSpace(fields[0]),
			Length:    games.Length(strings.TrimSpace(fields[1])),
			Status:    games.Status(strings.TrimSpace(fields[2])),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read overrides: %w", err)
	}
	return out, nil
}

// ApplyOverrides patches matching games in place. Overrides apply in
// file order, so when several lines match the same title the
// last-listed one wins.
func ApplyOverrides(catalog []games.LogicalGame, overrides []Override) {
	for i := range catalog {
		for _, override := range overrides {
			if override.Substring == "" || !strings.Contains(catalog[i].Title, override.Substring) {
				continue
			}
			if override.Length != games.LengthUnknown {
				catalog[i].Length = override.Length
			}
			if override.Status != games.StatusUnknown {
				catalog[i].Status = override.Status
			}
		}
	}
}

// LoadExclusions reads the manual exclusion file: one release key per
// line. A missing file means no exclusions.
func LoadExclusions(path string) (map[string]struct{}, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open exclusions: %w", err)
	}
	defer file.Close()

	out := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read exclusions: %w", err)
	}
	return out, nil
}

// Package sheetcat fetches the subscription catalog from a published
// spreadsheet in CSV form.
//
// The sheet carries a banner row above the real header, so the second
// row names the columns. Only the Title, System, and Status columns
// matter; console-only rows (System "Xbox One") are dropped because
// the library only tracks PC ownership. An entry counts as active when
// its status is "Active" or "Leaving Soon".
package sheetcat

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"gamekeeper/internal/config"
	"gamekeeper/internal/games"
)

// HTTPDoer describes the HTTP client used by the catalog fetcher.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

const consoleOnlySystem = "Xbox One"

var activeStatus = regexp.MustCompile(`^(Active|Leaving Soon)`)

// Source fetches the spreadsheet-backed subscription catalog.
type Source struct {
	label  string
	url    string
	client HTTPDoer
}

// NewConfiguredSource builds a source from the subscription config
// section, or nil when the catalog is disabled.
func NewConfiguredSource(cfg *config.Config) *Source {
	if cfg == nil || !cfg.Subscription.Enabled {
		return nil
	}
	timeout := time.Duration(cfg.Subscription.RequestTimeout) * time.Second
	return NewSource(cfg.Subscription.PlatformLabel, cfg.Subscription.SheetURL, &http.Client{Timeout: timeout})
}

// NewSource constructs a source with an injected HTTP client.
func NewSource(label, url string, client HTTPDoer) *Source {
	return &Source{label: label, url: strings.TrimSpace(url), client: client}
}

// Label is the platform label the catalog vouches for.
func (s *Source) Label() string {
	return s.label
}

// Fetch downloads and parses the sheet.
func (s *Source) Fetch(ctx context.Context) ([]games.CatalogEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build sheet request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch subscription sheet: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("subscription sheet returned %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse subscription sheet: %w", err)
	}
	return parse(records)
}

// parse skips the banner row, resolves the named columns from the
// second row, and builds entries from the remainder.
func parse(records [][]string) ([]games.CatalogEntry, error) {
	if len(records) < 2 {
		return nil, fmt.Errorf("subscription sheet has no header row")
	}

	header := records[1]
	titleCol, systemCol, statusCol := -1, -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "Title":
			titleCol = i
		case "System":
			systemCol = i
		case "Status":
			statusCol = i
		}
	}
	if titleCol < 0 || systemCol < 0 || statusCol < 0 {
		return nil, fmt.Errorf("subscription sheet is missing Title, System, or Status columns")
	}

	var entries []games.CatalogEntry
	for _, record := range records[2:] {
		if titleCol >= len(record) || systemCol >= len(record) || statusCol >= len(record) {
			continue
		}
		title := strings.TrimSpace(record[titleCol])
		if title == "" {
			continue
		}
		if strings.TrimSpace(record[systemCol]) == consoleOnlySystem {
			continue
		}
		status := strings.TrimSpace(record[statusCol])
		entries = append(entries, games.CatalogEntry{
			Title:  title,
			Status: status,
			Active: activeStatus.MatchString(status),
		})
	}
	return entries, nil
}

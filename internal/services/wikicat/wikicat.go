// Package wikicat scrapes the access-catalog listing from a public
// wiki page.
//
// The page renders each subscription tier as a table inside a
// "container-pcgwikitable" div, game titles in header cells of class
// "table-origin-body-game". The first table is the Premiere tier, the
// second the Basic tier. The page only lists currently available
// games, so every scraped entry is active.
package wikicat

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"gamekeeper/internal/config"
	"gamekeeper/internal/games"
)

// HTTPDoer describes the HTTP client used by the catalog fetcher.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

const (
	tableContainerClass = "container-pcgwikitable"
	gameCellClass       = "table-origin-body-game"
	userAgent           = "Mozilla/5.0"
)

// tierNames indexes scraped tables to tier labels, page order.
var tierNames = []string{"Premiere", "Basic"}

// Source fetches the wiki-scraped access catalog.
type Source struct {
	label  string
	url    string
	client HTTPDoer
}

// NewConfiguredSource builds a source from the access-catalog config
// section, or nil when the catalog is disabled.
func NewConfiguredSource(cfg *config.Config) *Source {
	if cfg == nil || !cfg.AccessCatalog.Enabled {
		return nil
	}
	timeout := time.Duration(cfg.AccessCatalog.RequestTimeout) * time.Second
	return NewSource(cfg.AccessCatalog.PlatformLabel, cfg.AccessCatalog.PageURL, &http.Client{Timeout: timeout})
}

// NewSource constructs a source with an injected HTTP client.
func NewSource(label, url string, client HTTPDoer) *Source {
	return &Source{label: label, url: strings.TrimSpace(url), client: client}
}

// Label is the platform label the catalog vouches for.
func (s *Source) Label() string {
	return s.label
}

// Fetch downloads the wiki page and scrapes the tier tables.
func (s *Source) Fetch(ctx context.Context) ([]games.CatalogEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog page request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch access catalog page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("access catalog page returned %d", resp.StatusCode)
	}

	root, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse access catalog page: %w", err)
	}
	return scrape(root)
}

// scrape walks the document for tier tables and flattens them into
// catalog entries, page order.
func scrape(root *html.Node) ([]games.CatalogEntry, error) {
	tables := findAll(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "div" && hasClass(n, tableContainerClass)
	})
	if len(tables) == 0 {
		return nil, fmt.Errorf("access catalog page has no tier tables")
	}

	var entries []games.CatalogEntry
	for i, table := range tables {
		tier := "Unknown"
		if i < len(tierNames) {
			tier = tierNames[i]
		}
		cells := findAll(table, func(n *html.Node) bool {
			return n.Type == html.ElementNode && n.Data == "th" && hasClass(n, gameCellClass)
		})
		for _, cell := range cells {
			title := strings.TrimSpace(text(cell))
			if title == "" {
				continue
			}
			entries = append(entries, games.CatalogEntry{
				Title:  title,
				Status: tier,
				Active: true,
			})
		}
	}
	return entries, nil
}

// findAll collects nodes matching the predicate in document order.
// Matched nodes are not descended into, so nested containers count
// once.
func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	if match(n) {
		return []*html.Node{n}
	}
	var out []*html.Node
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		out = append(out, findAll(child, match)...)
	}
	return out
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, candidate := range strings.Fields(attr.Val) {
			if candidate == class {
				return true
			}
		}
	}
	return false
}

func text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		b.WriteString(text(child))
	}
	return b.String()
}

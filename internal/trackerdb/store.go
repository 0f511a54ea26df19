// Package trackerdb reads the Gameplay Time Tracker profile database:
// one row of accumulated runtime per tracked application.
package trackerdb

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// PlaytimeRow is one tracked application with its total runtime in the
// tracker's native 100 ns ticks.
type PlaytimeRow struct {
	ProductName  string
	RuntimeTicks int64
}

// Store wraps a read-only connection to the tracker database.
type Store struct {
	db   *sql.DB
	path string
}

// Open connects to the tracker database at path.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("tracker database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open tracker database: %w", err)
	}

	pragmas := []string{
		"PRAGMA query_only = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Playtimes returns every tracked application's accumulated runtime.
func (s *Store) Playtimes(ctx context.Context) ([]PlaytimeRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ProductName, StatTotalFullRuntime FROM Applications`)
	if err != nil {
		return nil, fmt.Errorf("query playtimes: %w", err)
	}
	defer rows.Close()

	var out []PlaytimeRow
	for rows.Next() {
		var row PlaytimeRow
		var ticks sql.NullInt64
		if err := rows.Scan(&row.ProductName, &ticks); err != nil {
			return nil, fmt.Errorf("scan playtime: %w", err)
		}
		row.RuntimeTicks = ticks.Int64
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playtimes: %w", err)
	}
	return out, nil
}

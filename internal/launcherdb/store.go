// Package launcherdb reads the GOG Galaxy 2.0 library database. The
// store is strictly read-only: gamekeeper never writes to the
// launcher's files.
package launcherdb

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"gamekeeper/internal/games"
)

// Store wraps a read-only connection to the launcher database.
type Store struct {
	db   *sql.DB
	path string
}

// Open connects to the launcher database at path. The file must
// already exist; a missing library is a fatal configuration problem,
// not something to create on the fly.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("launcher database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open launcher database: %w", err)
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

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// AttributeTypes returns the launcher's metadata vocabulary: semantic
// attribute name to numeric game-piece type id.
func (s *Store) AttributeTypes(ctx context.Context) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, type FROM GamePieceTypes`)
	if err != nil {
		return nil, fmt.Errorf("query attribute types: %w", err)
	}
	defer rows.Close()

	types := make(map[string]int64)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan attribute type: %w", err)
		}
		types[name] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attribute types: %w", err)
	}
	return types, nil
}

// MetadataRows returns every metadata row for releases the user
// actually holds in the library. The LibraryReleases join is the
// ownership signal: releases outside it were never tracked by the
// user and are not returned.
func (s *Store) MetadataRows(ctx context.Context) ([]games.RawMetadataRow, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT GamePieces.releaseKey, GamePieces.gamePieceTypeId, GamePieces.value
        FROM GameLinks
        JOIN GamePieces ON GameLinks.releaseKey = GamePieces.releaseKey
        JOIN LibraryReleases ON GameLinks.releaseKey = LibraryReleases.releaseKey`)
	if err != nil {
		return nil, fmt.Errorf("query metadata rows: %w", err)
	}
	defer rows.Close()

	var out []games.RawMetadataRow
	for rows.Next() {
		var row games.RawMetadataRow
		var value sql.NullString
		if err := rows.Scan(&row.ReleaseKey, &row.TypeID, &value); err != nil {
			return nil, fmt.Errorf("scan metadata row: %w", err)
		}
		row.Value = value.String
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate metadata rows: %w", err)
	}
	return out, nil
}

// ReleaseProperties returns the launcher-managed visibility facts per
// release key (DLC flag, library visibility).
func (s *Store) ReleaseProperties(ctx context.Context) (map[string]games.OwnershipFacts, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT releaseKey, isDlc, isVisibleInLibrary FROM ReleaseProperties`)
	if err != nil {
		return nil, fmt.Errorf("query release properties: %w", err)
	}
	defer rows.Close()

	facts := make(map[string]games.OwnershipFacts)
	for rows.Next() {
		var key string
		var isDLC, visible int
		if err := rows.Scan(&key, &isDLC, &visible); err != nil {
			return nil, fmt.Errorf("scan release properties: %w", err)
		}
		fact := facts[key]
		fact.IsDLC = isDLC != 0
		fact.Visible = visible != 0
		facts[key] = fact
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate release properties: %w", err)
	}
	return facts, nil
}

// UserReleaseProperties returns the user-managed visibility facts:
// presence in the table marks a release as owned, isHidden marks it
// hidden by hand.
func (s *Store) UserReleaseProperties(ctx context.Context) (map[string]games.OwnershipFacts, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT releaseKey, isHidden FROM UserReleaseProperties`)
	if err != nil {
		return nil, fmt.Errorf("query user release properties: %w", err)
	}
	defer rows.Close()

	facts := make(map[string]games.OwnershipFacts)
	for rows.Next() {
		var key string
		var hidden int
		if err := rows.Scan(&key, &hidden); err != nil {
			return nil, fmt.Errorf("scan user release properties: %w", err)
		}
		facts[key] = games.OwnershipFacts{Owned: true, Hidden: hidden != 0}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user release properties: %w", err)
	}
	return facts, nil
}

// UserTags returns the user's free-text tags in table order, grouped
// per release key.
func (s *Store) UserTags(ctx context.Context) (map[string][]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT releaseKey, tag FROM UserReleaseTags`)
	if err != nil {
		return nil, fmt.Errorf("query user tags: %w", err)
	}
	defer rows.Close()

	tags := make(map[string][]string)
	for rows.Next() {
		var key string
		var tag sql.NullString
		if err := rows.Scan(&key, &tag); err != nil {
			return nil, fmt.Errorf("scan user tag: %w", err)
		}
		if !tag.Valid {
			continue
		}
		tags[key] = append(tags[key], tag.String)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user tags: %w", err)
	}
	return tags, nil
}

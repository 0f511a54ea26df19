package testsupport

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// launcherSchema mirrors the handful of GOG Galaxy 2.0 tables the
// pipeline reads.
const launcherSchema = `
CREATE TABLE GamePieceTypes (id INTEGER PRIMARY KEY, type TEXT NOT NULL);
CREATE TABLE GameLinks (releaseKey TEXT NOT NULL);
CREATE TABLE LibraryReleases (releaseKey TEXT NOT NULL);
CREATE TABLE GamePieces (releaseKey TEXT NOT NULL, gamePieceTypeId INTEGER NOT NULL, value TEXT);
CREATE TABLE ReleaseProperties (releaseKey TEXT NOT NULL, isDlc INTEGER NOT NULL, isVisibleInLibrary INTEGER NOT NULL);
CREATE TABLE UserReleaseProperties (releaseKey TEXT NOT NULL, isHidden INTEGER NOT NULL);
CREATE TABLE UserReleaseTags (releaseKey TEXT NOT NULL, tag TEXT);
`

// NewLauncherDB creates a small fixture library database and returns
// its path. The fixture holds two tracked releases (steam_100 playing,
// steam_hidden hidden), one DLC release, and one release outside
// LibraryReleases.
func NewLauncherDB(t testing.TB) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "galaxy-2.0.db")
	db := mustOpen(t, path)
	defer db.Close()

	mustExec(t, db, launcherSchema)

	statements := []string{
		`INSERT INTO GamePieceTypes (id, type) VALUES (46, 'meta'), (48, 'title'), (8, 'originalMeta')`,
		`INSERT INTO GameLinks (releaseKey) VALUES ('steam_100'), ('steam_hidden'), ('steam_dlc'), ('steam_untracked')`,
		`INSERT INTO LibraryReleases (releaseKey) VALUES ('steam_100'), ('steam_hidden'), ('steam_dlc')`,
		`INSERT INTO GamePieces (releaseKey, gamePieceTypeId, value) VALUES
            ('steam_100', 48, '{"title":"Hades"}'),
            ('steam_100', 46, '{"releaseDate":1600300800}'),
            ('steam_hidden', 48, '{"title":"Spelunky"}'),
            ('steam_dlc', 48, '{"title":"Some DLC"}'),
            ('steam_untracked', 48, '{"title":"Never Owned"}')`,
		`INSERT INTO ReleaseProperties (releaseKey, isDlc, isVisibleInLibrary) VALUES
            ('steam_100', 0, 1),
            ('steam_hidden', 0, 1),
            ('steam_dlc', 1, 1)`,
		`INSERT INTO UserReleaseProperties (releaseKey, isHidden) VALUES
            ('steam_100', 0),
            ('steam_hidden', 1),
            ('steam_dlc', 0)`,
		`INSERT INTO UserReleaseTags (releaseKey, tag) VALUES ('steam_100', 'S - Playing')`,
	}
	for _, stmt := range statements {
		mustExec(t, db, stmt)
	}
	return path
}

// NewTrackerDB creates a fixture playtime tracker database and returns
// its path. Runtime values are in the tracker's 100 ns ticks.
func NewTrackerDB(t testing.TB, playtimes map[string]int64) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tracker.sqlite")
	db := mustOpen(t, path)
	defer db.Close()

	mustExec(t, db, `CREATE TABLE Applications (ProductName TEXT NOT NULL, StatTotalFullRuntime INTEGER)`)
	for name, ticks := range playtimes {
		if _, err := db.Exec(
			`INSERT INTO Applications (ProductName, StatTotalFullRuntime) VALUES (?, ?)`,
			name, ticks,
		); err != nil {
			t.Fatalf("insert playtime %q: %v", name, err)
		}
	}
	return path
}

func mustOpen(t testing.TB, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open fixture database: %v", err)
	}
	return db
}

func mustExec(t testing.TB, db *sql.DB, stmt string) {
	t.Helper()
	if _, err := db.Exec(stmt); err != nil {
		t.Fatalf("exec fixture statement: %v", err)
	}
}

package galleria

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// StatsStore records page views in SQLite. Gallery content itself lives on
// the filesystem; the database only ever holds hit counters.
type StatsStore struct {
	db *sql.DB
}

// NewStatsStore opens (or creates) the SQLite database at path, ensures the
// data directory exists, and runs schema migrations.
func NewStatsStore(path string) (*StatsStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL keeps the per-request Record writes from blocking readers, and
	// busy_timeout makes writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &StatsStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *StatsStore) Close() error {
	return s.db.Close()
}

func (s *StatsStore) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS page_views (
    path TEXT PRIMARY KEY,
    hits INTEGER NOT NULL DEFAULT 0
);
`)
	return err
}

// Record increments the hit counter for path.
func (s *StatsStore) Record(path string) error {
	_, err := s.db.Exec(`INSERT INTO page_views (path, hits) VALUES (?, 1)
		ON CONFLICT(path) DO UPDATE SET hits = hits + 1`, path)
	return err
}

// Views returns all counters ordered by hits descending, then path.
func (s *StatsStore) Views() ([]PageView, error) {
	rows, err := s.db.Query(`SELECT path, hits FROM page_views ORDER BY hits DESC, path ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var views []PageView
	for rows.Next() {
		var v PageView
		if err := rows.Scan(&v.Path, &v.Hits); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

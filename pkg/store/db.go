// Package store archives solved numbers in SQLite so earlier runs can be
// queried without solving again.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const migrationsSQL = `
CREATE TABLE IF NOT EXISTS numbers (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	number    TEXT NOT NULL UNIQUE,
	area_code TEXT NOT NULL,
	digits    TEXT NOT NULL,
	solved_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS paths (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	number_id INTEGER NOT NULL REFERENCES numbers(id),
	position  INTEGER NOT NULL,
	UNIQUE(number_id, position)
);
CREATE TABLE IF NOT EXISTS spans (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	path_id  INTEGER NOT NULL REFERENCES paths(id),
	position INTEGER NOT NULL,
	length   INTEGER NOT NULL,
	words    TEXT NOT NULL,
	UNIQUE(path_id, position)
);
CREATE INDEX IF NOT EXISTS idx_paths_number ON paths(number_id);
CREATE INDEX IF NOT EXISTS idx_spans_path ON spans(path_id);
`

// Open opens the archive at path and runs migrations.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	if err := InitDB(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate archive %s: %w", path, err)
	}
	return db, nil
}

// InitDB runs migrations on the given DB connection.
func InitDB(db *sql.DB) error {
	stmts := strings.Split(migrationsSQL, ";")
	for _, s := range stmts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Package db is the sqlite persistence layer for the planning domain:
// habits, todos, goals, visions, mantras, calendar rules, schedule events,
// preferences, daily notes, and schedule templates. The schema is embedded
// and applied on open, so a fresh database file is usable immediately.
package db

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

type DB struct {
	conn *sql.DB
}

// Open connects to the sqlite database at path, applies connection pragmas,
// and runs the embedded schema. WAL keeps readers unblocked during the
// planner's write bursts; busy_timeout covers the auto-plan run and API
// requests hitting the same file.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := conn.Exec(pragma); err != nil {
			return nil, fmt.Errorf("applying %s: %w", pragma, err)
		}
	}
	if _, err := conn.Exec(schema); err != nil {
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

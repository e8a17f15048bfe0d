package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		completed_at TEXT NOT NULL,
		answers_json TEXT NOT NULL DEFAULT '{}',
		shown_json TEXT NOT NULL DEFAULT '[]',
		profile_json TEXT NOT NULL DEFAULT '{}',
		scenarios_json TEXT NOT NULL DEFAULT '{}',
		diagnostic_json TEXT NOT NULL DEFAULT '{}',
		plan_json TEXT NOT NULL DEFAULT '{}'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_completed_at ON sessions(completed_at)`,

	`CREATE TABLE IF NOT EXISTS checkins (
		date TEXT PRIMARY KEY,
		done INTEGER NOT NULL DEFAULT 0,
		note TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
}

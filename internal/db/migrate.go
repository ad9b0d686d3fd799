package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so they are
// simply re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// A project is stored as one row; its tree, resources and conversation log
// are JSON documents because the engine always reads and writes them whole.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id                   TEXT PRIMARY KEY,
		name                 TEXT NOT NULL,
		description          TEXT NOT NULL DEFAULT '',
		project_start        TEXT NOT NULL DEFAULT '',
		project_budget       REAL NOT NULL DEFAULT 0 CHECK(project_budget >= 0),
		project_manager      TEXT NOT NULL DEFAULT '',
		wbs                  TEXT NOT NULL DEFAULT '[]',
		resources            TEXT NOT NULL DEFAULT '[]',
		conversation_history TEXT NOT NULL DEFAULT '[]',
		created_at           TEXT NOT NULL,
		last_modified        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_created ON projects(created_at)`,

	`ALTER TABLE projects ADD COLUMN template_id TEXT NOT NULL DEFAULT ''`,
}

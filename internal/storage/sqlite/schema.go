package sqlite

import (
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS project (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		status TEXT NOT NULL DEFAULT 'Planned',
		priority TEXT DEFAULT 'Medium',
		domain TEXT,
		next_steps TEXT,
		deadline TEXT,
		project_type TEXT,
		tooling TEXT,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ix_project_project_id ON project (project_id);`,
	`CREATE TABLE IF NOT EXISTS projectnote (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id INTEGER NOT NULL,
		content TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS ix_projectnote_project_id ON projectnote (project_id);`,
}

// InitSchema creates the project and projectnote tables if absent. It is
// idempotent and safe to run on every boot; concurrent worker starts are
// serialized by the database's own locking.
func InitSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}

// DropSchema removes both entity tables. Used by the dataset purge, which
// recreates an empty schema afterwards.
func DropSchema(db *sql.DB) error {
	for _, stmt := range []string{
		`DROP TABLE IF EXISTS projectnote;`,
		`DROP TABLE IF EXISTS project;`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}
	return nil
}

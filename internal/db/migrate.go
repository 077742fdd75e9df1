package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS validation_runs (
		id           TEXT PRIMARY KEY,
		created_at   TEXT NOT NULL,
		run_trigger  TEXT NOT NULL
		             CHECK(run_trigger IN ('load','edit','correction','manual')),
		client_rows  INTEGER NOT NULL DEFAULT 0,
		worker_rows  INTEGER NOT NULL DEFAULT 0,
		task_rows    INTEGER NOT NULL DEFAULT 0,
		error_count  INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS run_findings (
		run_id    TEXT NOT NULL REFERENCES validation_runs(id) ON DELETE CASCADE,
		seq       INTEGER NOT NULL,
		dataset   TEXT NOT NULL
		          CHECK(dataset IN ('clients','workers','tasks')),
		row_index INTEGER NOT NULL,
		row_key   TEXT NOT NULL DEFAULT '',
		category  TEXT NOT NULL
		          CHECK(category IN ('structural','reference','capacity')),
		message   TEXT NOT NULL,
		PRIMARY KEY (run_id, dataset, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_run_findings_run ON run_findings(run_id)`,

	`CREATE INDEX IF NOT EXISTS idx_validation_runs_created ON validation_runs(created_at)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

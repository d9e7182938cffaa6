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
	`CREATE TABLE IF NOT EXISTS sprints (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date   TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'planned'
		           CHECK(status IN ('planned','active','closed')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id         TEXT PRIMARY KEY,
		sprint_id  TEXT NOT NULL REFERENCES sprints(id) ON DELETE CASCADE,
		objective  TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_goals_sprint ON goals(sprint_id)`,

	`CREATE TABLE IF NOT EXISTS promises (
		id            TEXT PRIMARY KEY,
		goal_id       TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
		text          TEXT NOT NULL,
		kind          TEXT NOT NULL CHECK(kind IN ('daily','weekly')),
		schedule_days TEXT NOT NULL DEFAULT '',
		weekly_target INTEGER NOT NULL DEFAULT 0,
		archived_at   TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_promises_goal ON promises(goal_id)`,

	`CREATE TABLE IF NOT EXISTS daily_logs (
		id         TEXT PRIMARY KEY,
		date       TEXT NOT NULL UNIQUE,
		energy     INTEGER NOT NULL CHECK(energy BETWEEN 1 AND 5),
		notes      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS promise_logs (
		id           TEXT PRIMARY KEY,
		promise_id   TEXT NOT NULL REFERENCES promises(id) ON DELETE CASCADE,
		date         TEXT NOT NULL,
		completed    INTEGER NOT NULL DEFAULT 0,
		daily_log_id TEXT REFERENCES daily_logs(id) ON DELETE SET NULL,
		created_at   TEXT NOT NULL,
		UNIQUE(promise_id, date)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_promise_logs_date ON promise_logs(date)`,

	`CREATE TABLE IF NOT EXISTS priorities (
		key                 TEXT PRIMARY KEY,
		name                TEXT NOT NULL,
		weekly_target_units INTEGER NOT NULL,
		created_at          TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS priority_logs (
		id           TEXT PRIMARY KEY,
		daily_log_id TEXT NOT NULL REFERENCES daily_logs(id) ON DELETE CASCADE,
		key          TEXT NOT NULL REFERENCES priorities(key) ON DELETE CASCADE,
		units        INTEGER NOT NULL CHECK(units >= 0),
		effort       INTEGER NOT NULL CHECK(effort BETWEEN 1 AND 5),
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_priority_logs_daily ON priority_logs(daily_log_id)`,

	`CREATE TABLE IF NOT EXISTS proof_entries (
		id           TEXT PRIMARY KEY,
		daily_log_id TEXT NOT NULL REFERENCES daily_logs(id) ON DELETE CASCADE,
		text         TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_proof_entries_daily ON proof_entries(daily_log_id)`,
}

// Package sqlstore persists profiles and reports through sqlx. Queries are
// written with ? placeholders and rebound per driver, so the same code runs
// on PostgreSQL and SQLite.
package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id            TEXT PRIMARY KEY,
		payload       TEXT NOT NULL,
		created_at    BIGINT NOT NULL,
		last_modified BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS reports (
		profile_lo   TEXT NOT NULL,
		profile_hi   TEXT NOT NULL,
		id           TEXT NOT NULL,
		payload      TEXT NOT NULL,
		generated_at BIGINT NOT NULL,
		PRIMARY KEY (profile_lo, profile_hi)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reports_generated_at ON reports (generated_at)`,
	`CREATE INDEX IF NOT EXISTS idx_reports_profile_hi ON reports (profile_hi)`,
}

// EnsureSchema creates the tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

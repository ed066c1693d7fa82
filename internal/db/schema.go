package db

import "fmt"

// SchemaSQL is the complete schema for fresh installs.
//
// This is the SINGLE SOURCE OF TRUTH for the local database schema. All
// repository tests use it via GetSchemaSQL(), so a repository referencing a
// column that does not exist here fails immediately with "no such column"
// instead of drifting past the tests.
//
// The queue is append/delete-only: records are inserted by the submission
// pipeline, read and deleted by reconciliation, and never updated in place.
const SchemaSQL = `
-- Pending submissions (the durable offline queue)
CREATE TABLE IF NOT EXISTS pending_submissions (
	id TEXT PRIMARY KEY,
	category TEXT NOT NULL,
	severity TEXT NOT NULL CHECK(severity IN ('Low', 'Medium', 'High')),
	description TEXT NOT NULL,
	latitude REAL NOT NULL,
	longitude REAL NOT NULL,
	image_data TEXT NOT NULL,
	image_name TEXT NOT NULL,
	image_type TEXT NOT NULL,
	image_size INTEGER NOT NULL,
	enqueued_at DATETIME NOT NULL
);

-- Reconciliation drains oldest-first
CREATE INDEX IF NOT EXISTS idx_pending_submissions_enqueued_at
	ON pending_submissions(enqueued_at);
`

// GetSchemaSQL returns the authoritative schema for tests and setup.
func GetSchemaSQL() string {
	return SchemaSQL
}

// InitSchema creates the local tables if absent. There is no migration
// machinery: the only durable state is the queue collection, created on
// first use.
func InitSchema() error {
	database, err := GetDB()
	if err != nil {
		return err
	}

	if _, err := database.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

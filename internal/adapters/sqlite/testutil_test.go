// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the SINGLE POINT where the database schema is loaded for
// tests. All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema; a repository referencing a missing column fails
// immediately instead of drifting past the suite.
package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/fieldreport/internal/db"
	"github.com/example/fieldreport/internal/ports/secondary"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedSubmission builds a pending submission with sensible defaults and the
// given enqueue time, and inserts it through the repository under test.
func seedSubmission(t *testing.T, ctx context.Context, repo secondary.QueueRepository, id string, enqueuedAt time.Time) *secondary.PendingSubmissionRecord {
	t.Helper()

	record := &secondary.PendingSubmissionRecord{
		ID:          id,
		Category:    "Potholes",
		Severity:    "Medium",
		Description: "deep pothole on the main road",
		Latitude:    35.6892,
		Longitude:   51.3890,
		ImageData:   "data:image/jpeg;base64,aGVsbG8=",
		ImageName:   "pothole.jpg",
		ImageType:   "image/jpeg",
		ImageSize:   5,
		EnqueuedAt:  enqueuedAt,
	}
	if err := repo.Put(ctx, record); err != nil {
		t.Fatalf("failed to seed submission %s: %v", id, err)
	}
	return record
}

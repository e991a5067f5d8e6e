package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/projectapi/internal/database"
)

// SetupTestDB creates an in-memory database with the full schema. It is
// closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateTestProject inserts a project directly and returns its ID
func CreateTestProject(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO projects (name, description) VALUES (?, NULL)", name)
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get project ID: %v", err)
	}
	return id
}

// CreateTestTask inserts a task directly and returns its ID
func CreateTestTask(t *testing.T, db *sql.DB, projectID int64, title, status string) int64 {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO tasks (projectId, title, status) VALUES (?, ?, ?)", projectID, title, status)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get task ID: %v", err)
	}
	return id
}

// CountRows returns the number of rows in table
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var count int
	// table names come from test code only
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return count
}

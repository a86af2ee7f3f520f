package db

import (
	"path/filepath"
	"testing"
	"time"
)

// setupTestDB points the package at a fresh sqlite file for one test.
func setupTestDB(t *testing.T) {
	t.Helper()
	if err := InitializeAt(filepath.Join(t.TempDir(), "test.db")); err != nil {
		t.Fatalf("failed to initialize test database: %v", err)
	}
	t.Cleanup(func() {
		if err := Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})
}

func day(n int) time.Time {
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func mustCreateTask(t *testing.T, title string, deadline time.Time, days int) uint {
	t.Helper()
	task, err := CreateTask(CreateTaskRequest{
		Title:             title,
		Deadline:          deadline,
		DaysForCompletion: days,
	})
	if err != nil {
		t.Fatalf("failed to create task %q: %v", title, err)
	}
	return task.ID
}

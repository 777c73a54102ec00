package database

import (
	"path/filepath"
	"testing"
)

func TestNewCreatesDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "data.db")

	db, err := New(path)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.HealthCheck(); err != nil {
		t.Errorf("health check failed on a fresh database: %v", err)
	}

	stats := db.GetStats()
	if stats.MaxOpenConnections != 25 {
		t.Errorf("expected MaxOpenConnections to be 25, got %d", stats.MaxOpenConnections)
	}
}

func TestRunMigrationsCreatesLeadsTable(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "data.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'leads'`).Scan(&count)
	if err != nil {
		t.Fatalf("failed to inspect schema: %v", err)
	}
	if count != 1 {
		t.Error("expected the leads table to exist after migrations")
	}
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "data.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		t.Fatalf("first migration run failed: %v", err)
	}
	if err := db.RunMigrations(); err != nil {
		t.Errorf("second migration run should be a no-op, got: %v", err)
	}
}

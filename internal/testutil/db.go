// Package testutil holds helpers shared by package tests.
package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/minigram/minigram/internal/db"
	_ "modernc.org/sqlite"
)

// NewDB opens an in-memory SQLite database with foreign keys on and the
// real migrations applied. Each call gets a fresh database.
func NewDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := sqlx.Connect("sqlite", ":memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A single connection keeps every query on the same in-memory database
	conn.SetMaxOpenConns(1)

	err = db.RunMigrations(conn.DB, "sqlite")
	if err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}

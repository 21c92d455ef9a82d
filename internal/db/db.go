package db

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Init opens the configured database and verifies the connection. Both the
// sqlite and pgx drivers are linked in; DB_DRIVER picks one at runtime.
func Init(driver, connection string) (*sqlx.DB, error) {
	// The sqlite file lives under a data directory that may not exist yet
	if driver == "sqlite" {
		if err := os.MkdirAll(filepath.Dir(connection), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	// Connect pings before returning, so a bad DSN fails here
	conn, err := sqlx.Connect(driver, connection)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)

	slog.Info("database connected", "driver", driver)
	return conn, nil
}

func Close(conn *sqlx.DB) error {
	if conn == nil {
		return nil
	}
	return conn.Close()
}

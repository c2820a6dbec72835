package db

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

// MemoryDSN is an in-memory SQLite database with foreign keys enforced. It
// lives as long as the process keeps its single connection open.
const MemoryDSN = "file::memory:?_pragma=foreign_keys(1)"

// Open creates and returns a SQLite database connection. The pool is pinned
// to one connection because every connection to an in-memory database sees
// its own empty database.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Verify connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	slog.Info("database connected", "dsn", dsn)
	return db, nil
}

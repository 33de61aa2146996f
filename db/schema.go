// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to the database of the given type and verifies the connection
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case TypeSQLite, TypePostgres:
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(dbType, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	// sqlite allows a single writer; the registry serializes writes anyway
	if dbType == TypeSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Genesis (single row)
CREATE TABLE IF NOT EXISTS genesis (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    chairperson TEXT NOT NULL,
    created_at BIGINT NOT NULL
);

-- Proposals
CREATE TABLE IF NOT EXISTS proposal (
    idx INTEGER PRIMARY KEY,
    name_hex TEXT NOT NULL
);

-- Journal of applied mutations
CREATE TABLE IF NOT EXISTS journal (
    seq BIGINT PRIMARY KEY,
    id TEXT NOT NULL UNIQUE,
    kind TEXT NOT NULL CHECK (kind IN ('grant', 'delegate', 'vote')),
    caller TEXT NOT NULL,
    target TEXT NOT NULL DEFAULT '',
    proposal INTEGER NOT NULL DEFAULT 0,
    recorded_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_journal_caller ON journal(caller);
`

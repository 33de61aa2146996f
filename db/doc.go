// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles schema creation and durable storage of the registry.

# Opening

Open selects the driver by database type (sqlite via modernc.org/sqlite,
postgres via github.com/lib/pq) and pings the connection:

	conn, err := db.Open(db.TypeSQLite, "file:evoting.db")

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - genesis: single row holding the chairperson
  - proposal: proposal labels (hex) by index
  - journal: every applied mutation, keyed by sequence number

# Restoring

OpenRegistry stores the genesis on first start, checks it on later
starts, replays the journal and returns a registry that appends new
mutations to the journal:

	reg, journal, err := db.OpenRegistry(conn, db.Genesis{
		Chairperson: chair,
		Proposals:   labels,
	})
*/
package db

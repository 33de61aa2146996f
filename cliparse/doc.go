// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: database connection string (required)
  - DatabaseType: sqlite (default) or postgres
  - Chairperson: administrator identity (required)
  - Proposals: ordered proposal names, each at most 32 bytes (required)
  - MaxChain: cap on delegation hops, 0 = number of known voters

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-chairperson  Chairperson identity
	-proposals    Comma-separated proposal names
	-max-chain    Maximum delegation hops

# Environment Variables

Flags fall back to environment variables:

	PORT                 → -p
	DATABASE_URL         → -d
	DATABASE_TYPE        → -t
	CHAIRPERSON          → -chairperson
	PROPOSALS            → -proposals
	MAX_DELEGATION_CHAIN → -max-chain

CLI flags take precedence over environment variables. LoadEnv reads a
.env file first (via godotenv) without overriding variables already set:

	if err := cliparse.LoadEnv(".env"); err != nil {
		log.Fatal(err)
	}
*/
package cliparse

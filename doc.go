// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the EVoting API server.

EVoting runs a single ballot: a chairperson grants voting rights, voters
cast one weighted vote each or delegate their weight along a chain, and
the proposal with the most weight wins. Every accepted mutation is written
to a journal first, so a restart replays the same election.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=evoting.db CHAIRPERSON=0xf39f... PROPOSALS=Proposal1,Proposal2 go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." \
		-chairperson 0xf39f... -proposals "Proposal1,Proposal2"

A .env file in the working directory is loaded first when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string, or file path for sqlite
  - CHAIRPERSON (-chairperson): identity allowed to grant rights
  - PROPOSALS (-proposals): comma-separated names, at most 32 bytes each

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - MAX_DELEGATION_CHAIN (-max-chain): hop limit, 0 means the voter count

Restarting against an existing database with a different chairperson or
proposal list fails instead of silently starting a second election.

# Architecture

  - registry: ballot state and rules
  - db: sqlite/postgres schema, genesis record and journal
  - handlers: HTTP request handlers (voting, results, journal)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Caller identity parsing
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

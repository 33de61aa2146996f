// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the EVoting API.

# Handler Types

Each handler is a struct wrapping the shared registry:

  - VotingHandler: grants, votes and delegations
  - ResultsHandler: chairperson, proposals, voter records and the winner
  - JournalHandler: the append-only mutation log

	votingHandler := handlers.NewVotingHandler(reg)

# Mutations

The caller is read from the X-Caller-Identity header:

	POST /voters/{address}/right → GrantRight (chairperson only)
	POST /votes                  → Vote        {"proposal": 0}
	POST /delegations            → Delegate    {"to": "0x..."}

Rule violations map to 400, 403 or 409 with a stable error code in the
body. A journal write failure is a 500 and leaves the ballot unchanged.

# Queries

	GET /chairperson
	GET /proposals, /proposals/{index}
	GET /voters/{address}, /voters/{address}/vote-counted
	GET /winner
	GET /journal?caller=0x...

Addresses in paths and queries are normalized, so checksummed and
lowercase forms name the same voter.
*/
package handlers

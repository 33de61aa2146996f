// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the voting API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(reg, journal)

# Endpoints

Health:

	GET /health

Registry setup:

	GET /chairperson        - Administrator identity
	GET /proposals          - All proposals with vote counts
	GET /proposals/{index}  - One proposal

Mutations (caller identity in X-Caller-Identity):

	POST /voters/{address}/right - Grant a voting right (chairperson only)
	POST /votes                  - Vote for {"proposal": n}
	POST /delegations            - Delegate to {"to": "<identity>"}

Tally:

	GET /voters/{address}              - Voter record
	GET /voters/{address}/vote-counted - Whether the voter's weight was tallied
	GET /winner                        - Winning proposal (ties keep the lowest index)

Audit:

	GET /journal[?caller=<identity>] - Recorded mutations in order
*/
package router

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing incoming JSON:

  - VoteRequest: proposal (index, required)
  - DelegateRequest: to (identity)

# Response Types

Types for JSON responses:

  - ChairpersonResponse: chairperson
  - ProposalsResponse: proposals (Proposal list in construction order)
  - Proposal: index, name, name_hex, vote_count
  - Voter: address, weight, voted, vote_counted, delegate_to, voted_proposal
  - VoteCountedResponse: address, vote_counted
  - WinnerResponse: index, name, name_hex, vote_count
  - MutationResponse: message
  - JournalResponse: entries
  - ErrorResponse: error, code, message

Proposal names are 32-byte labels. name is the text with zero padding
removed; name_hex is the full label as 0x-prefixed hex.
*/
package models

package models

import "time"

// Request types

type VoteRequest struct {
	Proposal *int `json:"proposal"`
}

type DelegateRequest struct {
	To string `json:"to"`
}

// Response types

type ChairpersonResponse struct {
	Chairperson string `json:"chairperson"`
}

type Proposal struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	NameHex   string `json:"name_hex"`
	VoteCount uint64 `json:"vote_count"`
}

type ProposalsResponse struct {
	Proposals []Proposal `json:"proposals"`
}

type Voter struct {
	Address       string  `json:"address"`
	Weight        uint64  `json:"weight"`
	Voted         bool    `json:"voted"`
	VoteCounted   bool    `json:"vote_counted"`
	DelegateTo    *string `json:"delegate_to,omitempty"`
	VotedProposal *int    `json:"voted_proposal,omitempty"`
}

type VoteCountedResponse struct {
	Address     string `json:"address"`
	VoteCounted bool   `json:"vote_counted"`
}

type WinnerResponse struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	NameHex   string `json:"name_hex"`
	VoteCount uint64 `json:"vote_count"`
}

// MutationResponse acknowledges a successful grant, vote or delegation
type MutationResponse struct {
	Message string `json:"message"`
}

type JournalEntry struct {
	Seq        uint64    `json:"seq"`
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Caller     string    `json:"caller"`
	Target     string    `json:"target,omitempty"`
	Proposal   *int      `json:"proposal,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

type JournalResponse struct {
	Entries []JournalEntry `json:"entries"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

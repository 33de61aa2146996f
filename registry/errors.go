// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import "errors"

var (
	ErrUnauthorized           = errors.New("only the chairperson can give access to vote")
	ErrAlreadyHasRightOrVoted = errors.New("voter already has the right to vote or has already voted")
	ErrNoRightToVote          = errors.New("has no right to vote")
	ErrAlreadyVoted           = errors.New("already voted")
	ErrSelfDelegation         = errors.New("self-delegation is disallowed")
	ErrDelegationLoop         = errors.New("found loop in delegation")
	ErrInvalidProposal        = errors.New("invalid proposal")

	ErrInvalidIdentity = errors.New("identity must not be empty")
	ErrNoProposals     = errors.New("at least one proposal is required")
	ErrLabelTooLong    = errors.New("label longer than 32 bytes")
	ErrJournal         = errors.New("journal append failed")
	ErrReplay          = errors.New("journal replay failed")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrUnauthorized, "unauthorized"},
	{ErrAlreadyHasRightOrVoted, "already_has_right_or_voted"},
	{ErrNoRightToVote, "no_right_to_vote"},
	{ErrAlreadyVoted, "already_voted"},
	{ErrSelfDelegation, "self_delegation"},
	{ErrDelegationLoop, "delegation_loop"},
	{ErrInvalidProposal, "invalid_proposal"},
	{ErrInvalidIdentity, "invalid_identity"},
	{ErrNoProposals, "no_proposals"},
	{ErrLabelTooLong, "label_too_long"},
	{ErrJournal, "journal"},
	{ErrReplay, "replay"},
}

// Code returns the stable machine-readable code for err, or "" when err
// is not one of the registry errors.
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}

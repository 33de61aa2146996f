// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package registry implements the weighted, delegated voting tally.

# Construction

A Registry is created once from an ordered proposal list and the
chairperson identity:

	labels, err := registry.NewLabels([]string{"Proposal1", "Proposal2"})
	reg, err := registry.New(labels, "0xabc...")

The proposal list and the chairperson never change afterwards.

# Operations

Mutating operations take the (already authenticated) caller identity:

	reg.GrantVotingRight(chair, voter)   // chairperson only, weight := 1
	reg.Vote(voter, 0)                   // commit weight to proposal 0
	reg.Delegate(voter, other)           // hand weight to the chain terminus

Queries:

	reg.WinningProposal()     // index, ties keep the lowest index
	reg.WinningName()         // label of the winning proposal
	reg.IsVoteCounted(voter)  // has this voter's weight landed in a tally

A failed call returns one of the sentinel errors (ErrUnauthorized,
ErrAlreadyHasRightOrVoted, ErrNoRightToVote, ErrAlreadyVoted,
ErrSelfDelegation, ErrDelegationLoop, ErrInvalidProposal) and leaves the
registry untouched.

# Voter States

	Uninitialized (weight 0)
	  → RightsGranted (weight 1)
	    → Voted | DelegatedPending | DelegatedAndCounted

Once a voter has voted or delegated no further mutation on it succeeds.

# Journal

Attach a Journal with WithJournal to record every successful mutation.
The entry is appended before the state changes; if the append fails the
call returns ErrJournal and nothing is applied. Replay rebuilds a registry
from previously recorded entries.
*/
package registry

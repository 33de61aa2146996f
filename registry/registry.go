// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Identity is an opaque, already authenticated principal. The empty
// identity is reserved to mean "no delegate".
type Identity string

type Proposal struct {
	Name      Label
	VoteCount uint64
}

// Voter is the per-identity record. Every identity implicitly has the
// zero Voter until the chairperson grants it a right or someone delegates
// to it.
type Voter struct {
	Weight        uint64
	Voted         bool
	VoteCounted   bool
	DelegateTo    Identity
	VotedProposal int
}

// Registry owns the chairperson, the proposal list and the voter table.
// All methods are safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	chairperson Identity
	proposals   []Proposal
	voters      map[Identity]*Voter
	// delegators[x] lists the voters whose weight was handed directly to x
	delegators map[Identity][]Identity
	seq        uint64

	journal  Journal
	maxChain int

	// replaying lifts maxChain while Replay runs
	replaying bool
	now       func() time.Time
}

type Option func(*Registry)

// WithJournal records every successful mutation in j before it is applied.
func WithJournal(j Journal) Option {
	return func(r *Registry) { r.journal = j }
}

// WithMaxChainLength caps the number of hops followed when resolving a
// delegation. Zero means the number of voters currently known.
func WithMaxChainLength(n int) Option {
	return func(r *Registry) { r.maxChain = n }
}

// WithClock overrides the clock used to stamp journal entries.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// New creates a registry with one zero-count proposal per label, in order.
func New(names []Label, chairperson Identity, opts ...Option) (*Registry, error) {
	if len(names) == 0 {
		return nil, ErrNoProposals
	}
	if chairperson == "" {
		return nil, fmt.Errorf("chairperson: %w", ErrInvalidIdentity)
	}

	r := &Registry{
		chairperson: chairperson,
		proposals:   make([]Proposal, len(names)),
		voters:      make(map[Identity]*Voter),
		delegators:  make(map[Identity][]Identity),
		now:         time.Now,
	}
	for i, name := range names {
		r.proposals[i] = Proposal{Name: name}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// GrantVotingRight gives target a weight of 1. Only the chairperson may
// call it, and only for a voter that has neither weight nor a vote. An
// empty target is rejected with ErrInvalidIdentity.
func (r *Registry) GrantVotingRight(caller, target Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.grantLocked(caller, target, r.journal)
}

// Delegate hands the caller's weight to the end of target's delegation
// chain. If that voter has already voted the weight is tallied at once,
// otherwise it accumulates on the terminus.
func (r *Registry) Delegate(caller, target Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.delegateLocked(caller, target, r.journal)
}

// Vote commits the caller's full weight to proposal.
func (r *Registry) Vote(caller Identity, proposal int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.voteLocked(caller, proposal, r.journal)
}

func (r *Registry) grantLocked(caller, target Identity, j Journal) error {
	if caller != r.chairperson {
		return ErrUnauthorized
	}
	if target == "" {
		return ErrInvalidIdentity
	}
	v := r.voter(target)
	if v.Weight != 0 || v.Voted {
		return ErrAlreadyHasRightOrVoted
	}

	if err := r.record(j, KindGrant, caller, target, 0); err != nil {
		return err
	}

	r.mutable(target).Weight = 1
	return nil
}

func (r *Registry) delegateLocked(caller, target Identity, j Journal) error {
	if caller == "" || target == "" {
		return ErrInvalidIdentity
	}
	if caller == target {
		return ErrSelfDelegation
	}
	sender := r.voter(caller)
	if sender.Voted {
		return ErrAlreadyVoted
	}
	terminus, err := r.resolve(caller, target)
	if err != nil {
		return err
	}
	if sender.Weight == 0 {
		return ErrNoRightToVote
	}

	if err := r.record(j, KindDelegate, caller, target, 0); err != nil {
		return err
	}

	s := r.mutable(caller)
	t := r.mutable(terminus)
	weight := s.Weight

	s.Voted = true
	s.DelegateTo = terminus
	s.Weight = 0
	r.delegators[terminus] = append(r.delegators[terminus], caller)

	if t.Voted {
		r.proposals[t.VotedProposal].VoteCount += weight
		r.markCounted(caller)
	} else {
		t.Weight += weight
	}
	return nil
}

func (r *Registry) voteLocked(caller Identity, proposal int, j Journal) error {
	if caller == "" {
		return ErrInvalidIdentity
	}
	v := r.voter(caller)
	if v.Weight == 0 {
		return ErrNoRightToVote
	}
	if v.Voted {
		return ErrAlreadyVoted
	}
	if proposal < 0 || proposal >= len(r.proposals) {
		return fmt.Errorf("%w: index %d, have %d proposals", ErrInvalidProposal, proposal, len(r.proposals))
	}

	if err := r.record(j, KindVote, caller, "", proposal); err != nil {
		return err
	}

	m := r.mutable(caller)
	m.Voted = true
	m.VotedProposal = proposal
	r.proposals[proposal].VoteCount += m.Weight
	r.markCounted(caller)
	return nil
}

// resolve walks target's delegation chain to its terminus. The walk is
// bounded and fails on any revisited identity. During replay the
// configured cap is ignored; the visited set still guarantees the walk ends.
func (r *Registry) resolve(caller, target Identity) (Identity, error) {
	limit := r.maxChain
	if limit <= 0 || r.replaying {
		limit = len(r.voters)
	}

	visited := map[Identity]struct{}{target: {}}
	to := target
	for hops := 0; ; hops++ {
		v, ok := r.voters[to]
		if !ok || v.DelegateTo == "" {
			return to, nil
		}
		if hops >= limit {
			return "", fmt.Errorf("%w: chain longer than %d", ErrDelegationLoop, limit)
		}
		to = v.DelegateTo
		if to == caller {
			return "", ErrDelegationLoop
		}
		if _, seen := visited[to]; seen {
			return "", ErrDelegationLoop
		}
		visited[to] = struct{}{}
	}
}

// markCounted flags id and everyone whose weight reached id through
// delegation.
func (r *Registry) markCounted(id Identity) {
	stack := []Identity{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		v := r.mutable(cur)
		if v.VoteCounted {
			continue
		}
		v.VoteCounted = true
		stack = append(stack, r.delegators[cur]...)
	}
}

// record appends the journal entry for a validated mutation. It must be
// the last step before state changes.
func (r *Registry) record(j Journal, kind string, caller, target Identity, proposal int) error {
	if j != nil {
		e := Entry{
			Seq:        r.seq + 1,
			ID:         uuid.NewString(),
			Kind:       kind,
			Caller:     caller,
			Target:     target,
			Proposal:   proposal,
			RecordedAt: r.now().UTC(),
		}
		if err := j.Append(e); err != nil {
			return fmt.Errorf("%w: %w", ErrJournal, err)
		}
	}
	r.seq++
	return nil
}

func (r *Registry) voter(id Identity) Voter {
	if v, ok := r.voters[id]; ok {
		return *v
	}
	return Voter{}
}

func (r *Registry) mutable(id Identity) *Voter {
	v, ok := r.voters[id]
	if !ok {
		v = &Voter{}
		r.voters[id] = v
	}
	return v
}

// WinningProposal returns the index with the greatest vote count. Ties
// keep the lowest index, so a registry without votes reports 0.
func (r *Registry) WinningProposal() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.winningLocked()
}

func (r *Registry) winningLocked() int {
	winner := 0
	var best uint64
	for i, p := range r.proposals {
		if p.VoteCount > best {
			best = p.VoteCount
			winner = i
		}
	}
	return winner
}

// WinningName returns the label of WinningProposal.
func (r *Registry) WinningName() Label {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.proposals[r.winningLocked()].Name
}

// Winner returns the winning index together with its proposal, read under
// a single lock.
func (r *Registry) Winner() (int, Proposal) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.winningLocked()
	return i, r.proposals[i]
}

// IsVoteCounted reports whether id's weight has landed in a tally.
func (r *Registry) IsVoteCounted(id Identity) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.voter(id).VoteCounted
}

func (r *Registry) Chairperson() Identity {
	return r.chairperson
}

// Voter returns a copy of id's record, the zero Voter for unknown ids.
func (r *Registry) Voter(id Identity) Voter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.voter(id)
}

// Proposals returns a copy of the proposal list in construction order.
func (r *Registry) Proposals() []Proposal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Proposal, len(r.proposals))
	copy(out, r.proposals)
	return out
}

func (r *Registry) Proposal(i int) (Proposal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.proposals) {
		return Proposal{}, fmt.Errorf("%w: index %d", ErrInvalidProposal, i)
	}
	return r.proposals[i], nil
}

// Seq returns the sequence number of the last applied mutation.
func (r *Registry) Seq() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.seq
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"fmt"
	"time"
)

// Entry kinds
const (
	KindGrant    = "grant"
	KindDelegate = "delegate"
	KindVote     = "vote"
)

// Entry records one successful mutation. Target is set for grant and
// delegate entries, Proposal for vote entries.
type Entry struct {
	Seq        uint64
	ID         string
	Kind       string
	Caller     Identity
	Target     Identity
	Proposal   int
	RecordedAt time.Time
}

// Journal durably records entries in the order they are applied.
type Journal interface {
	Append(e Entry) error
}

// Replay applies previously recorded entries to a freshly constructed
// registry. Entries must continue the registry's sequence and every one
// of them must succeed. Delegations were checked against the chain cap in
// force when they were recorded, so replay does not apply the current one.
func (r *Registry) Replay(entries []Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.replaying = true
	defer func() { r.replaying = false }()

	for _, e := range entries {
		if e.Seq != r.seq+1 {
			return fmt.Errorf("%w: expected seq %d, got %d", ErrReplay, r.seq+1, e.Seq)
		}

		var apply func() error
		switch e.Kind {
		case KindGrant:
			apply = func() error { return r.grantLocked(e.Caller, e.Target, nil) }
		case KindDelegate:
			apply = func() error { return r.delegateLocked(e.Caller, e.Target, nil) }
		case KindVote:
			apply = func() error { return r.voteLocked(e.Caller, e.Proposal, nil) }
		default:
			return fmt.Errorf("%w: entry %d has unknown kind %q", ErrReplay, e.Seq, e.Kind)
		}

		if err := apply(); err != nil {
			return fmt.Errorf("%w: entry %d: %w", ErrReplay, e.Seq, err)
		}
	}
	return nil
}

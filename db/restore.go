// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/ensonal/EVotingCompany-Web3/registry"
)

// OpenRegistry bootstraps the genesis, rebuilds the registry from the
// journal and attaches the journal so new mutations are recorded.
func OpenRegistry(db *sql.DB, g Genesis, opts ...registry.Option) (*registry.Registry, *Journal, error) {
	if err := Bootstrap(db, g); err != nil {
		return nil, nil, err
	}

	journal := NewJournal(db)
	reg, err := registry.New(g.Proposals, g.Chairperson, append(opts, registry.WithJournal(journal))...)
	if err != nil {
		return nil, nil, err
	}

	entries, err := journal.Entries()
	if err != nil {
		return nil, nil, err
	}
	if err := reg.Replay(entries); err != nil {
		return nil, nil, fmt.Errorf("failed to restore registry: %w", err)
	}

	return reg, journal, nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ensonal/EVotingCompany-Web3/registry"
)

var ErrGenesisMismatch = errors.New("configured chairperson or proposals differ from the stored genesis")

// Genesis is the construction input of the registry
type Genesis struct {
	Chairperson registry.Identity
	Proposals   []registry.Label
}

// Bootstrap stores g on first start. On later starts the stored genesis
// must equal g, otherwise ErrGenesisMismatch is returned.
func Bootstrap(db *sql.DB, g Genesis) error {
	stored, found, err := LoadGenesis(db)
	if err != nil {
		return err
	}

	if found {
		if !stored.equal(g) {
			return fmt.Errorf("%w: stored chairperson %s with %d proposals",
				ErrGenesisMismatch, stored.Chairperson, len(stored.Proposals))
		}
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO genesis (id, chairperson, created_at)
		VALUES (1, $1, $2)
	`, string(g.Chairperson), time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert genesis: %w", err)
	}

	for i, label := range g.Proposals {
		_, err = tx.Exec(`
			INSERT INTO proposal (idx, name_hex)
			VALUES ($1, $2)
		`, i, label.Hex())
		if err != nil {
			return fmt.Errorf("failed to insert proposal %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit genesis: %w", err)
	}
	return nil
}

// LoadGenesis returns the stored genesis, found is false on an empty database
func LoadGenesis(db *sql.DB) (g Genesis, found bool, err error) {
	var chair string
	err = db.QueryRow(`SELECT chairperson FROM genesis WHERE id = 1`).Scan(&chair)
	if err == sql.ErrNoRows {
		return Genesis{}, false, nil
	}
	if err != nil {
		return Genesis{}, false, fmt.Errorf("failed to query genesis: %w", err)
	}
	g.Chairperson = registry.Identity(chair)

	rows, err := db.Query(`SELECT name_hex FROM proposal ORDER BY idx`)
	if err != nil {
		return Genesis{}, false, fmt.Errorf("failed to query proposals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var nameHex string
		if err := rows.Scan(&nameHex); err != nil {
			return Genesis{}, false, fmt.Errorf("failed to scan proposal: %w", err)
		}
		label, err := registry.ParseLabelHex(nameHex)
		if err != nil {
			return Genesis{}, false, fmt.Errorf("stored proposal: %w", err)
		}
		g.Proposals = append(g.Proposals, label)
	}
	if err := rows.Err(); err != nil {
		return Genesis{}, false, fmt.Errorf("failed to read proposals: %w", err)
	}

	return g, true, nil
}

func (g Genesis) equal(o Genesis) bool {
	if g.Chairperson != o.Chairperson || len(g.Proposals) != len(o.Proposals) {
		return false
	}
	for i := range g.Proposals {
		if g.Proposals[i] != o.Proposals[i] {
			return false
		}
	}
	return true
}

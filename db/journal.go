// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ensonal/EVotingCompany-Web3/registry"
)

// Journal stores registry entries in the journal table. It implements
// registry.Journal.
type Journal struct {
	db *sql.DB
}

func NewJournal(db *sql.DB) *Journal {
	return &Journal{db: db}
}

// Append inserts e. The seq primary key rejects out-of-order duplicates.
func (j *Journal) Append(e registry.Entry) error {
	_, err := j.db.Exec(`
		INSERT INTO journal (seq, id, kind, caller, target, proposal, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, int64(e.Seq), e.ID, e.Kind, string(e.Caller), string(e.Target), e.Proposal, e.RecordedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert journal entry %d: %w", e.Seq, err)
	}
	return nil
}

// Entries returns all entries in sequence order
func (j *Journal) Entries() ([]registry.Entry, error) {
	return j.query(`
		SELECT seq, id, kind, caller, target, proposal, recorded_at
		FROM journal
		ORDER BY seq
	`)
}

// EntriesByCaller returns the entries issued by caller in sequence order
func (j *Journal) EntriesByCaller(caller registry.Identity) ([]registry.Entry, error) {
	return j.query(`
		SELECT seq, id, kind, caller, target, proposal, recorded_at
		FROM journal
		WHERE caller = $1
		ORDER BY seq
	`, string(caller))
}

func (j *Journal) query(q string, args ...any) ([]registry.Entry, error) {
	rows, err := j.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	entries := []registry.Entry{}
	for rows.Next() {
		var (
			e              registry.Entry
			seq            int64
			caller, target string
			recordedAt     int64
		)
		if err := rows.Scan(&seq, &e.ID, &e.Kind, &caller, &target, &e.Proposal, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		e.Seq = uint64(seq)
		e.Caller = registry.Identity(caller)
		e.Target = registry.Identity(target)
		e.RecordedAt = time.UnixMilli(recordedAt).UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	return entries, nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ensonal/EVotingCompany-Web3/models"
	"github.com/ensonal/EVotingCompany-Web3/registry"
	"github.com/ensonal/EVotingCompany-Web3/testutil"
)

func TestGetJournal(t *testing.T) {
	reg, journal := testutil.NewTestRegistry(t)
	testutil.GrantTestRights(t, reg, testutil.Addr1, testutil.Addr2)
	if err := reg.Delegate(testutil.Addr1, testutil.Addr2); err != nil {
		t.Fatal(err)
	}
	if err := reg.Vote(testutil.Addr2, 1); err != nil {
		t.Fatal(err)
	}
	handler := NewJournalHandler(journal)

	w := httptest.NewRecorder()
	handler.GetJournal(w, httptest.NewRequest("GET", "/journal", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.JournalResponse
	testutil.AssertJSON(t, w, &resp)

	kinds := []string{registry.KindGrant, registry.KindGrant, registry.KindDelegate, registry.KindVote}
	if len(resp.Entries) != len(kinds) {
		t.Fatalf("Expected %d entries, got %d", len(kinds), len(resp.Entries))
	}
	for i, e := range resp.Entries {
		if e.Seq != uint64(i+1) || e.Kind != kinds[i] {
			t.Errorf("Entry %d: expected seq %d kind %s, got %d %s", i, i+1, kinds[i], e.Seq, e.Kind)
		}
	}
	if p := resp.Entries[3].Proposal; p == nil || *p != 1 {
		t.Errorf("Expected vote entry for proposal 1, got %v", p)
	}
	if resp.Entries[0].Proposal != nil {
		t.Error("Grant entries carry no proposal")
	}
}

func TestGetJournalByCaller(t *testing.T) {
	reg, journal := testutil.NewTestRegistry(t)
	testutil.GrantTestRights(t, reg, testutil.Addr1)
	if err := reg.Vote(testutil.Addr1, 0); err != nil {
		t.Fatal(err)
	}
	handler := NewJournalHandler(journal)

	// checksummed query resolves to the stored lowercase identity
	req := httptest.NewRequest("GET", "/journal?caller=0x70997970C51812dc3A010C7d01b50e0d17dc79C8", nil)
	w := httptest.NewRecorder()
	handler.GetJournal(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.JournalResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Entries) != 1 || resp.Entries[0].Kind != registry.KindVote {
		t.Errorf("Expected the single vote entry, got %+v", resp.Entries)
	}

	req = httptest.NewRequest("GET", "/journal?caller=bad%20caller", nil)
	w = httptest.NewRecorder()
	handler.GetJournal(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

type failingJournal struct{}

func (failingJournal) Entries() ([]registry.Entry, error) {
	return nil, errors.New("connection reset")
}

func (failingJournal) EntriesByCaller(registry.Identity) ([]registry.Entry, error) {
	return nil, errors.New("connection reset")
}

func TestGetJournalDatabaseError(t *testing.T) {
	handler := NewJournalHandler(failingJournal{})

	w := httptest.NewRecorder()
	handler.GetJournal(w, httptest.NewRequest("GET", "/journal", nil))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}

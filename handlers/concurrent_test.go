// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ensonal/EVotingCompany-Web3/models"
	"github.com/ensonal/EVotingCompany-Web3/registry"
	"github.com/ensonal/EVotingCompany-Web3/testutil"
)

// TestConcurrentVotes verifies that simultaneous votes, including repeated
// attempts by the same voter, are each counted exactly once
func TestConcurrentVotes(t *testing.T) {
	reg, journal := testutil.NewTestRegistry(t)
	votingHandler := NewVotingHandler(reg)

	numVoters := 10
	voters := make([]registry.Identity, numVoters)
	for i := range voters {
		voters[i] = registry.Identity(fmt.Sprintf("0x%040x", i+1))
	}
	testutil.GrantTestRights(t, reg, voters...)

	var successCount, rejectedCount atomic.Int32
	var wg sync.WaitGroup

	// Every voter fires twice; only one of each pair may land
	for i := 0; i < numVoters*2; i++ {
		wg.Add(1)
		go func(attempt int) {
			defer wg.Done()

			voter := voters[attempt%numVoters]
			req := testutil.MakeRequest("POST", "/votes",
				models.VoteRequest{Proposal: intPtr(attempt % 2)},
				testutil.CallerHeaders(voter))
			w := httptest.NewRecorder()

			votingHandler.Vote(w, req)

			switch w.Code {
			case http.StatusOK:
				successCount.Add(1)
			case http.StatusConflict:
				rejectedCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful votes, got %d", numVoters, successCount.Load())
	}
	if int(rejectedCount.Load()) != numVoters {
		t.Errorf("Expected %d rejected duplicates, got %d", numVoters, rejectedCount.Load())
	}

	var total uint64
	for _, p := range reg.Proposals() {
		total += p.VoteCount
	}
	if total != uint64(numVoters) {
		t.Errorf("Expected %d votes tallied, got %d", numVoters, total)
	}

	entries, err := journal.Entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != numVoters*2 {
		t.Errorf("Expected %d journal entries, got %d", numVoters*2, len(entries))
	}
	for i, e := range entries {
		if e.Seq != uint64(i+1) {
			t.Fatalf("Journal sequence gap at %d: got %d", i, e.Seq)
		}
	}
}

// TestConcurrentDelegationsIntoOneVoter verifies that weight arriving from
// many delegators at once is conserved
func TestConcurrentDelegationsIntoOneVoter(t *testing.T) {
	reg, _ := testutil.NewTestRegistry(t)
	votingHandler := NewVotingHandler(reg)

	numDelegators := 8
	delegators := make([]registry.Identity, numDelegators)
	for i := range delegators {
		delegators[i] = registry.Identity(fmt.Sprintf("0x%040x", i+100))
	}
	testutil.GrantTestRights(t, reg, testutil.Addr1)
	testutil.GrantTestRights(t, reg, delegators...)

	var wg sync.WaitGroup
	for _, d := range delegators {
		wg.Add(1)
		go func(from registry.Identity) {
			defer wg.Done()
			req := testutil.MakeRequest("POST", "/delegations",
				models.DelegateRequest{To: string(testutil.Addr1)},
				testutil.CallerHeaders(from))
			w := httptest.NewRecorder()
			votingHandler.Delegate(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("Delegation from %s failed: %d %s", from, w.Code, w.Body.String())
			}
		}(d)
	}
	wg.Wait()

	if got := reg.Voter(testutil.Addr1).Weight; got != uint64(numDelegators+1) {
		t.Errorf("Expected weight %d, got %d", numDelegators+1, got)
	}
}

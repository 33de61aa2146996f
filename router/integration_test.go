// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ensonal/EVotingCompany-Web3/models"
	"github.com/ensonal/EVotingCompany-Web3/registry"
	"github.com/ensonal/EVotingCompany-Web3/testutil"
)

func serve(t *testing.T, mux *http.ServeMux, req *http.Request, expected int) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, expected)
	return w
}

func winner(t *testing.T, mux *http.ServeMux) models.WinnerResponse {
	t.Helper()
	w := serve(t, mux, httptest.NewRequest("GET", "/winner", nil), http.StatusOK)
	var resp models.WinnerResponse
	testutil.AssertJSON(t, w, &resp)
	return resp
}

func vote(t *testing.T, mux *http.ServeMux, caller registry.Identity, proposal int, expected int) {
	t.Helper()
	serve(t, mux, testutil.MakeRequest("POST", "/votes",
		models.VoteRequest{Proposal: &proposal}, testutil.CallerHeaders(caller)), expected)
}

func grant(t *testing.T, mux *http.ServeMux, caller, voter registry.Identity, expected int) {
	t.Helper()
	serve(t, mux, testutil.MakeRequest("POST", "/voters/"+string(voter)+"/right",
		nil, testutil.CallerHeaders(caller)), expected)
}

// TestBallotFlow drives a full election over HTTP: grants, votes, a late
// voter changing the outcome, then the audit journal
func TestBallotFlow(t *testing.T) {
	mux := newTestRouter(t)

	if w := winner(t, mux); w.Index != 0 || w.Name != "Proposal1" {
		t.Fatalf("Expected Proposal1 before any votes, got %+v", w)
	}

	grant(t, mux, testutil.Chair, testutil.Addr1, http.StatusOK)
	grant(t, mux, testutil.Chair, testutil.Addr2, http.StatusOK)
	grant(t, mux, testutil.Addr1, testutil.Addr3, http.StatusForbidden)

	vote(t, mux, testutil.Addr1, 0, http.StatusOK)
	vote(t, mux, testutil.Addr2, 1, http.StatusOK)
	vote(t, mux, testutil.Addr1, 1, http.StatusConflict)

	// 1-1 tie resolves to the first proposal
	if w := winner(t, mux); w.Index != 0 || w.Name != "Proposal1" || w.VoteCount != 1 {
		t.Fatalf("Expected Proposal1 on a tie, got %+v", w)
	}

	grant(t, mux, testutil.Chair, testutil.Addr3, http.StatusOK)
	vote(t, mux, testutil.Addr3, 1, http.StatusOK)

	if w := winner(t, mux); w.Index != 1 || w.Name != "Proposal2" || w.VoteCount != 2 {
		t.Fatalf("Expected Proposal2 after late vote, got %+v", w)
	}

	w := serve(t, mux, httptest.NewRequest("GET", "/voters/"+string(testutil.Addr3)+"/vote-counted", nil), http.StatusOK)
	var counted models.VoteCountedResponse
	testutil.AssertJSON(t, w, &counted)
	if !counted.VoteCounted {
		t.Error("Expected addr3 vote to be counted")
	}

	w = serve(t, mux, httptest.NewRequest("GET", "/journal", nil), http.StatusOK)
	var journal models.JournalResponse
	testutil.AssertJSON(t, w, &journal)
	// rejected requests leave no trace
	if len(journal.Entries) != 6 {
		t.Errorf("Expected 6 journal entries, got %d", len(journal.Entries))
	}
}

// TestDelegationFlow follows weight through a delegation chain and checks
// that the delegator sees its vote counted once the chain end votes
func TestDelegationFlow(t *testing.T) {
	mux := newTestRouter(t)

	grant(t, mux, testutil.Chair, testutil.Addr1, http.StatusOK)
	grant(t, mux, testutil.Chair, testutil.Addr2, http.StatusOK)
	grant(t, mux, testutil.Chair, testutil.Addr3, http.StatusOK)

	delegate := func(from, to registry.Identity, expected int) {
		t.Helper()
		serve(t, mux, testutil.MakeRequest("POST", "/delegations",
			models.DelegateRequest{To: string(to)}, testutil.CallerHeaders(from)), expected)
	}

	delegate(testutil.Addr1, testutil.Addr2, http.StatusOK)
	delegate(testutil.Addr2, testutil.Addr3, http.StatusOK)
	delegate(testutil.Addr3, testutil.Addr1, http.StatusConflict)

	w := serve(t, mux, httptest.NewRequest("GET", "/voters/"+string(testutil.Addr3), nil), http.StatusOK)
	var terminus models.Voter
	testutil.AssertJSON(t, w, &terminus)
	if terminus.Weight != 3 {
		t.Fatalf("Expected chain end weight 3, got %d", terminus.Weight)
	}

	vote(t, mux, testutil.Addr3, 1, http.StatusOK)

	if w := winner(t, mux); w.Index != 1 || w.VoteCount != 3 {
		t.Fatalf("Expected Proposal2 with 3 votes, got %+v", w)
	}

	w = serve(t, mux, httptest.NewRequest("GET", "/voters/"+string(testutil.Addr1)+"/vote-counted", nil), http.StatusOK)
	var counted models.VoteCountedResponse
	testutil.AssertJSON(t, w, &counted)
	if !counted.VoteCounted {
		t.Error("Expected the first delegator's vote to be counted")
	}
}

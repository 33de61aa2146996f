// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ensonal/EVotingCompany-Web3/auth"
	"github.com/ensonal/EVotingCompany-Web3/db"
	"github.com/ensonal/EVotingCompany-Web3/registry"
)

// Well-known development accounts
const (
	Chair registry.Identity = "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"
	Addr1 registry.Identity = "0x70997970c51812dc3a010c7d01b50e0d17dc79c8"
	Addr2 registry.Identity = "0x3c44cdddb6a900fa2b585dd299e03d12fa4293bc"
	Addr3 registry.Identity = "0x90f79bf6eb2c4f870365e785982e1f101e93b906"
)

// DefaultProposals are used when NewTestRegistry gets no names
var DefaultProposals = []string{"Proposal1", "Proposal2"}

// SetupTestDB creates a fresh in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// NewTestRegistry creates a journaled registry chaired by Chair
func NewTestRegistry(t *testing.T, names ...string) (*registry.Registry, *db.Journal) {
	t.Helper()

	if len(names) == 0 {
		names = DefaultProposals
	}
	labels, err := registry.NewLabels(names)
	if err != nil {
		t.Fatalf("Failed to build labels: %v", err)
	}

	reg, journal, err := db.OpenRegistry(SetupTestDB(t), db.Genesis{
		Chairperson: Chair,
		Proposals:   labels,
	})
	if err != nil {
		t.Fatalf("Failed to open registry: %v", err)
	}

	return reg, journal
}

// GrantTestRights grants each voter a right as the chairperson
func GrantTestRights(t *testing.T, reg *registry.Registry, voters ...registry.Identity) {
	t.Helper()
	for _, v := range voters {
		if err := reg.GrantVotingRight(Chair, v); err != nil {
			t.Fatalf("Failed to grant right to %s: %v", v, err)
		}
	}
}

// CallerHeaders returns request headers identifying caller
func CallerHeaders(caller registry.Identity) map[string]string {
	return map[string]string{auth.CallerHeader: string(caller)}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

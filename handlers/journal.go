// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ensonal/EVotingCompany-Web3/auth"
	"github.com/ensonal/EVotingCompany-Web3/middleware"
	"github.com/ensonal/EVotingCompany-Web3/models"
	"github.com/ensonal/EVotingCompany-Web3/registry"
)

// JournalReader lists recorded registry mutations
type JournalReader interface {
	Entries() ([]registry.Entry, error)
	EntriesByCaller(caller registry.Identity) ([]registry.Entry, error)
}

type JournalHandler struct {
	journal JournalReader
}

func NewJournalHandler(journal JournalReader) *JournalHandler {
	return &JournalHandler{journal: journal}
}

// GetJournal handles GET /journal
// The optional caller query parameter filters by issuing identity
func (h *JournalHandler) GetJournal(w http.ResponseWriter, r *http.Request) {
	var (
		entries []registry.Entry
		err     error
	)

	if q := r.URL.Query().Get("caller"); q != "" {
		caller, perr := auth.ParseIdentity(q)
		if perr != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "invalid caller")
			return
		}
		entries, err = h.journal.EntriesByCaller(caller)
	} else {
		entries, err = h.journal.Entries()
	}
	if err != nil {
		slog.Error("failed to read journal", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.JournalResponse{Entries: make([]models.JournalEntry, 0, len(entries))}
	for _, e := range entries {
		entry := models.JournalEntry{
			Seq:        e.Seq,
			ID:         e.ID,
			Kind:       e.Kind,
			Caller:     string(e.Caller),
			Target:     string(e.Target),
			RecordedAt: e.RecordedAt,
		}
		if e.Kind == registry.KindVote {
			proposal := e.Proposal
			entry.Proposal = &proposal
		}
		resp.Entries = append(resp.Entries, entry)
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

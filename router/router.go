// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/ensonal/EVotingCompany-Web3/handlers"
	"github.com/ensonal/EVotingCompany-Web3/middleware"
	"github.com/ensonal/EVotingCompany-Web3/registry"
)

func NewRouter(reg *registry.Registry, journal handlers.JournalReader) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	votingHandler := handlers.NewVotingHandler(reg)
	resultsHandler := handlers.NewResultsHandler(reg)
	journalHandler := handlers.NewJournalHandler(journal)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Registry setup (public)
	mux.HandleFunc("GET /chairperson", middleware.WithLogging(resultsHandler.GetChairperson))
	mux.HandleFunc("GET /proposals", middleware.WithLogging(resultsHandler.GetProposals))
	mux.HandleFunc("GET /proposals/{index}", middleware.WithLogging(resultsHandler.GetProposal))

	// Mutations (caller from X-Caller-Identity)
	mux.HandleFunc("POST /voters/{address}/right", middleware.WithLogging(votingHandler.GrantRight))
	mux.HandleFunc("POST /votes", middleware.WithLogging(votingHandler.Vote))
	mux.HandleFunc("POST /delegations", middleware.WithLogging(votingHandler.Delegate))

	// Tally queries
	mux.HandleFunc("GET /voters/{address}", middleware.WithLogging(resultsHandler.GetVoter))
	mux.HandleFunc("GET /voters/{address}/vote-counted", middleware.WithLogging(resultsHandler.GetVoteCounted))
	mux.HandleFunc("GET /winner", middleware.WithLogging(resultsHandler.GetWinner))

	// Audit
	mux.HandleFunc("GET /journal", middleware.WithLogging(journalHandler.GetJournal))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("evoting API v1"))
	})

	return mux
}

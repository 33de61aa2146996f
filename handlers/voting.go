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

type VotingHandler struct {
	reg *registry.Registry
}

func NewVotingHandler(reg *registry.Registry) *VotingHandler {
	return &VotingHandler{reg: reg}
}

// GrantRight handles POST /voters/{address}/right
func (h *VotingHandler) GrantRight(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.CallerFromRequest(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, auth.CallerHeader+" header required")
		return
	}

	target, err := auth.ParseIdentity(r.PathValue("address"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid voter address")
		return
	}

	if err := h.reg.GrantVotingRight(caller, target); err != nil {
		registryError(w, err)
		return
	}

	slog.Info("voting right granted", "caller", caller, "voter", target)

	middleware.JSONResponse(w, http.StatusOK, models.MutationResponse{
		Message: "Voting right granted",
	})
}

// Vote handles POST /votes
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.CallerFromRequest(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, auth.CallerHeader+" header required")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Proposal == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "proposal is required")
		return
	}

	if err := h.reg.Vote(caller, *req.Proposal); err != nil {
		registryError(w, err)
		return
	}

	slog.Info("vote cast", "caller", caller, "proposal", *req.Proposal)

	middleware.JSONResponse(w, http.StatusOK, models.MutationResponse{
		Message: "Vote cast",
	})
}

// Delegate handles POST /delegations
func (h *VotingHandler) Delegate(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.CallerFromRequest(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, auth.CallerHeader+" header required")
		return
	}

	var req models.DelegateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	to, err := auth.ParseIdentity(req.To)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "to must be a valid identity")
		return
	}

	if err := h.reg.Delegate(caller, to); err != nil {
		registryError(w, err)
		return
	}

	slog.Info("vote delegated", "caller", caller, "to", to)

	middleware.JSONResponse(w, http.StatusOK, models.MutationResponse{
		Message: "Vote delegated",
	})
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/ensonal/EVotingCompany-Web3/auth"
	"github.com/ensonal/EVotingCompany-Web3/middleware"
	"github.com/ensonal/EVotingCompany-Web3/models"
	"github.com/ensonal/EVotingCompany-Web3/registry"
)

type ResultsHandler struct {
	reg *registry.Registry
}

func NewResultsHandler(reg *registry.Registry) *ResultsHandler {
	return &ResultsHandler{reg: reg}
}

// GetChairperson handles GET /chairperson
func (h *ResultsHandler) GetChairperson(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ChairpersonResponse{
		Chairperson: string(h.reg.Chairperson()),
	})
}

// GetProposals handles GET /proposals
func (h *ResultsHandler) GetProposals(w http.ResponseWriter, r *http.Request) {
	proposals := h.reg.Proposals()

	resp := models.ProposalsResponse{Proposals: make([]models.Proposal, 0, len(proposals))}
	for i, p := range proposals {
		resp.Proposals = append(resp.Proposals, proposalModel(i, p))
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetProposal handles GET /proposals/{index}
func (h *ResultsHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "index must be an integer")
		return
	}

	p, err := h.reg.Proposal(idx)
	if err != nil {
		middleware.CodedErrorResponse(w, http.StatusNotFound, registry.Code(err), "Proposal not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, proposalModel(idx, p))
}

// GetWinner handles GET /winner
// Ties resolve to the lowest index
func (h *ResultsHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	idx, p := h.reg.Winner()

	middleware.JSONResponse(w, http.StatusOK, models.WinnerResponse{
		Index:     idx,
		Name:      p.Name.String(),
		NameHex:   p.Name.Hex(),
		VoteCount: p.VoteCount,
	})
}

// GetVoter handles GET /voters/{address}
// Unknown addresses report the zero record
func (h *ResultsHandler) GetVoter(w http.ResponseWriter, r *http.Request) {
	address, err := auth.ParseIdentity(r.PathValue("address"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid voter address")
		return
	}

	v := h.reg.Voter(address)
	resp := models.Voter{
		Address:     string(address),
		Weight:      v.Weight,
		Voted:       v.Voted,
		VoteCounted: v.VoteCounted,
	}
	switch {
	case v.DelegateTo != "":
		delegate := string(v.DelegateTo)
		resp.DelegateTo = &delegate
	case v.Voted:
		proposal := v.VotedProposal
		resp.VotedProposal = &proposal
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetVoteCounted handles GET /voters/{address}/vote-counted
func (h *ResultsHandler) GetVoteCounted(w http.ResponseWriter, r *http.Request) {
	address, err := auth.ParseIdentity(r.PathValue("address"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid voter address")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteCountedResponse{
		Address:     string(address),
		VoteCounted: h.reg.IsVoteCounted(address),
	})
}

func proposalModel(idx int, p registry.Proposal) models.Proposal {
	return models.Proposal{
		Index:     idx,
		Name:      p.Name.String(),
		NameHex:   p.Name.Hex(),
		VoteCount: p.VoteCount,
	}
}

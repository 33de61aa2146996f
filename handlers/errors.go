// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ensonal/EVotingCompany-Web3/middleware"
	"github.com/ensonal/EVotingCompany-Web3/registry"
)

// registryErrorStatus maps a registry rule violation to an HTTP status
func registryErrorStatus(err error) int {
	switch {
	case errors.Is(err, registry.ErrUnauthorized),
		errors.Is(err, registry.ErrNoRightToVote):
		return http.StatusForbidden
	case errors.Is(err, registry.ErrAlreadyHasRightOrVoted),
		errors.Is(err, registry.ErrAlreadyVoted),
		errors.Is(err, registry.ErrDelegationLoop):
		return http.StatusConflict
	case errors.Is(err, registry.ErrSelfDelegation),
		errors.Is(err, registry.ErrInvalidProposal),
		errors.Is(err, registry.ErrInvalidIdentity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func registryError(w http.ResponseWriter, err error) {
	status := registryErrorStatus(err)
	if status == http.StatusInternalServerError {
		slog.Error("registry operation failed", "error", err)
		middleware.CodedErrorResponse(w, status, registry.Code(err), "Failed to record operation")
		return
	}
	middleware.CodedErrorResponse(w, status, registry.Code(err), err.Error())
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms) under a request_id that is returned in X-Request-ID.

# CORS Middleware

Enable cross-origin requests for browser clients:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with headers Content-Type,
Authorization, X-Caller-Identity, X-Request-ID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.CodedErrorResponse(w, http.StatusConflict, "already_voted", "already voted")

Parse JSON request bodies:

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware

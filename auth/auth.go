// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/ensonal/EVotingCompany-Web3/registry"
)

// CallerHeader carries the identity established by the upstream
// authentication provider.
const CallerHeader = "X-Caller-Identity"

// MaxIdentityLength bounds opaque identities
const MaxIdentityLength = 128

var (
	ErrMissingIdentity = errors.New("identity is required")
	ErrInvalidIdentity = errors.New("invalid identity format")
)

// ParseIdentity normalizes an identity string.
// 0x-prefixed 20-byte hex addresses are lowercased so that checksummed and
// plain spellings name the same voter. Anything else is kept as is but
// must be printable and free of whitespace.
func ParseIdentity(s string) (registry.Identity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrMissingIdentity
	}
	if len(s) > MaxIdentityLength {
		return "", ErrInvalidIdentity
	}

	if isHexAddress(s) {
		return registry.Identity("0x" + strings.ToLower(s[2:])), nil
	}

	for _, r := range s {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return "", ErrInvalidIdentity
		}
	}
	return registry.Identity(s), nil
}

// CallerFromRequest returns the normalized caller identity of r
func CallerFromRequest(r *http.Request) (registry.Identity, error) {
	return ParseIdentity(r.Header.Get(CallerHeader))
}

func isHexAddress(s string) bool {
	if len(s) != 42 || (s[:2] != "0x" && s[:2] != "0X") {
		return false
	}
	_, err := hex.DecodeString(s[2:])
	return err == nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ensonal/EVotingCompany-Web3/registry"
)

func TestParseIdentity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    registry.Identity
		wantErr error
	}{
		{
			name:  "checksummed address is lowercased",
			input: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
			want:  "0x70997970c51812dc3a010c7d01b50e0d17dc79c8",
		},
		{
			name:  "uppercase prefix",
			input: "0X70997970C51812DC3A010C7D01B50E0D17DC79C8",
			want:  "0x70997970c51812dc3a010c7d01b50e0d17dc79c8",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  alice  ",
			want:  "alice",
		},
		{
			name:  "opaque identity kept as is",
			input: "User:Alice",
			want:  "User:Alice",
		},
		{
			name:  "short hex is opaque, not lowercased",
			input: "0xABCD",
			want:  "0xABCD",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrMissingIdentity,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: ErrMissingIdentity,
		},
		{
			name:    "inner whitespace",
			input:   "al ice",
			wantErr: ErrInvalidIdentity,
		},
		{
			name:    "control character",
			input:   "al\x00ice",
			wantErr: ErrInvalidIdentity,
		},
		{
			name:    "too long",
			input:   strings.Repeat("a", MaxIdentityLength+1),
			wantErr: ErrInvalidIdentity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIdentity(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCallerFromRequest(t *testing.T) {
	req := httptest.NewRequest("POST", "/votes", nil)
	if _, err := CallerFromRequest(req); !errors.Is(err, ErrMissingIdentity) {
		t.Errorf("expected ErrMissingIdentity, got %v", err)
	}

	req.Header.Set(CallerHeader, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	caller, err := CallerFromRequest(req)
	if err != nil {
		t.Fatal(err)
	}
	if caller != "0x70997970c51812dc3a010c7d01b50e0d17dc79c8" {
		t.Errorf("unexpected caller %q", caller)
	}
}

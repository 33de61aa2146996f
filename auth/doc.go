// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth extracts caller identities from requests.

Identities are authenticated upstream; this package only reads and
normalizes them. The caller of every request is taken from the
X-Caller-Identity header:

	caller, err := auth.CallerFromRequest(r)

# Normalization

ParseIdentity trims surrounding whitespace and lowercases 0x-prefixed
20-byte hex addresses:

	auth.ParseIdentity("0xAbC...")  // "0xabc..."

Other identities are opaque. They must be at most 128 characters, printable
and contain no whitespace.
*/
package auth

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// LabelSize is the fixed width of a proposal name.
const LabelSize = 32

// Label is a fixed-width proposal name, right-padded with zero bytes.
type Label [LabelSize]byte

// NewLabel packs s into a Label
func NewLabel(s string) (Label, error) {
	var l Label
	if len(s) > LabelSize {
		return l, fmt.Errorf("%w: %q is %d bytes", ErrLabelTooLong, s, len(s))
	}
	copy(l[:], s)
	return l, nil
}

// NewLabels converts an ordered list of names, keeping the order
func NewLabels(names []string) ([]Label, error) {
	labels := make([]Label, 0, len(names))
	for _, name := range names {
		l, err := NewLabel(name)
		if err != nil {
			return nil, err
		}
		labels = append(labels, l)
	}
	return labels, nil
}

// ParseLabelHex decodes a 0x-prefixed (or bare) hex encoding of a Label
func ParseLabelHex(s string) (Label, error) {
	var l Label
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"))
	if err != nil {
		return l, fmt.Errorf("invalid label hex: %w", err)
	}
	if len(raw) > LabelSize {
		return l, fmt.Errorf("%w: %d bytes", ErrLabelTooLong, len(raw))
	}
	copy(l[:], raw)
	return l, nil
}

// String returns the label text with the zero padding removed
func (l Label) String() string {
	return string(bytes.TrimRight(l[:], "\x00"))
}

// Hex returns the full 32-byte label as 0x-prefixed hex
func (l Label) Hex() string {
	return "0x" + hex.EncodeToString(l[:])
}

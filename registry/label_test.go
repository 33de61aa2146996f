package registry

import (
	"strings"
	"testing"
)

func TestNewLabel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"short", "Proposal1", false},
		{"empty", "", false},
		{"exactly 32 bytes", strings.Repeat("a", 32), false},
		{"too long", strings.Repeat("a", 33), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLabel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l.String() != tt.input {
				t.Errorf("expected %q, got %q", tt.input, l.String())
			}
		})
	}
}

func TestLabelHex(t *testing.T) {
	l, _ := NewLabel("Proposal1")
	h := l.Hex()
	if !strings.HasPrefix(h, "0x50726f706f73616c31") {
		t.Errorf("unexpected hex %s", h)
	}
	if len(h) != 2+64 {
		t.Errorf("expected 66 chars, got %d", len(h))
	}

	back, err := ParseLabelHex(h)
	if err != nil {
		t.Fatal(err)
	}
	if back != l {
		t.Errorf("round trip mismatch: %s", back)
	}

	if _, err := ParseLabelHex("0xzz"); err == nil {
		t.Error("expected error for invalid hex")
	}
	if _, err := ParseLabelHex("0x" + strings.Repeat("00", 33)); err == nil {
		t.Error("expected error for oversized label")
	}
}

func TestNewLabelsKeepsOrder(t *testing.T) {
	labels, err := NewLabels([]string{"b", "a", "c"})
	if err != nil {
		t.Fatal(err)
	}
	got := []string{labels[0].String(), labels[1].String(), labels[2].String()}
	if strings.Join(got, ",") != "b,a,c" {
		t.Errorf("order not kept: %v", got)
	}
}

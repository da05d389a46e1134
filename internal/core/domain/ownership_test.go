package domain

import (
	"errors"
	"testing"
)

func TestAssertOwner(t *testing.T) {
	tests := []struct {
		name    string
		owner   string
		actor   string
		wantErr bool
	}{
		{"same id", "65b0c2f1a9d4e8b3c6f7a1d2", "65b0c2f1a9d4e8b3c6f7a1d2", false},
		{"case-insensitive match", "65B0C2F1A9D4E8B3C6F7A1D2", "65b0c2f1a9d4e8b3c6f7a1d2", false},
		{"different actor", "65b0c2f1a9d4e8b3c6f7a1d2", "65b0c2f1a9d4e8b3c6f7a1d3", true},
		{"empty owner", "", "65b0c2f1a9d4e8b3c6f7a1d2", true},
		{"empty actor", "65b0c2f1a9d4e8b3c6f7a1d2", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AssertOwner(tt.owner, tt.actor)
			if tt.wantErr && !errors.Is(err, ErrForbidden) {
				t.Fatalf("expected ErrForbidden, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("expected nil, got %v", err)
			}
		})
	}
}

func TestValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"65b0c2f1a9d4e8b3c6f7a1d2", true},
		{"65B0C2F1A9D4E8B3C6F7A1D2", true},
		{"65b0c2f1a9d4e8b3c6f7a1d", false},   // 23 chars
		{"65b0c2f1a9d4e8b3c6f7a1d22", false}, // 25 chars
		{"65b0c2f1a9d4e8b3c6f7a1dg", false},  // non-hex
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidID(tt.id); got != tt.want {
			t.Errorf("ValidID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestSameID(t *testing.T) {
	if !SameID("ABC", "abc") {
		t.Fatalf("comparison must be canonical")
	}
	if SameID("", "") {
		t.Fatalf("empty ids never match")
	}
}

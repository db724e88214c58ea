package models

import (
	"errors"
	"fmt"
	"testing"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestDomainError_IsMatchesKind(t *testing.T) {
	detailed := NewDomainError(KindDuplicatePlayer, "player 'Rafa' already exists in group 'Rocket'")

	if !errors.Is(detailed, ErrDuplicatePlayer) {
		t.Error("detailed error should match ErrDuplicatePlayer")
	}
	if errors.Is(detailed, ErrDuplicateGroup) {
		t.Error("detailed error should not match ErrDuplicateGroup")
	}
	if detailed.Error() != "player 'Rafa' already exists in group 'Rocket'" {
		t.Errorf("unexpected message: %s", detailed.Error())
	}
}

func TestDomainError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("failed to add player: %w", NewDomainError(KindGroupNotFound, "group 'X' not found"))

	domainErr, ok := AsDomainError(wrapped)
	if !ok {
		t.Fatal("expected wrapped error to unwrap into DomainError")
	}
	if domainErr.Kind != KindGroupNotFound {
		t.Errorf("expected kind %s, got %s", KindGroupNotFound, domainErr.Kind)
	}
	if !IsDomainError(wrapped) {
		t.Error("IsDomainError should be true for wrapped domain errors")
	}
}

func TestDomainError_NotDomain(t *testing.T) {
	if IsDomainError(errors.New("disk full")) {
		t.Error("plain errors must not classify as domain errors")
	}
	if _, ok := AsDomainError(nil); ok {
		t.Error("nil must not classify as a domain error")
	}
}

func TestDomainError_EmptyMessageFallsBackToKind(t *testing.T) {
	err := &DomainError{Kind: KindInvalidTeam}
	if err.Error() != "INVALID_TEAM" {
		t.Errorf("expected kind as message, got %s", err.Error())
	}
}

// ============================================================================
// Team Tests
// ============================================================================

func TestParseTeam(t *testing.T) {
	tests := []struct {
		input   string
		want    Team
		wantErr bool
	}{
		{"Time A", TeamA, false},
		{"time b", TeamB, false},
		{"a", TeamA, false},
		{" B ", TeamB, false},
		{"Time C", "", true},
		{"", "", true},
		{"team a", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTeam(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseTeam(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTeam(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTeam(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTeam_Valid(t *testing.T) {
	for _, team := range Teams() {
		if !team.Valid() {
			t.Errorf("%q should be valid", team)
		}
	}
	if Team("Time C").Valid() {
		t.Error("Time C should not be valid")
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"  Rocket ", "Rocket", false},
		{"Águias", "Águias", false},
		{"", "", true},
		{"\t ", "", true},
		{"Ro\xffcket", "", true},
		{string(make([]rune, MaxNameLength+1)), "", true},
	}

	for _, tt := range tests {
		got, err := NormalizeName("group", tt.raw)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidName) {
				t.Errorf("NormalizeName(%q) error = %v, want ErrInvalidName", tt.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeName(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

package players

import (
	"regexp"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "Alice", "Alice", false},
		{"trimmed", "  Bob  ", "Bob", false},
		{"min length", "Al", "Al", false},
		{"max length", "abcdefghijklmnopqrst", "abcdefghijklmnopqrst", false},
		{"too short", "A", "", true},
		{"too long", "abcdefghijklmnopqrstu", "", true},
		{"only spaces", "    ", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateName(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ValidateName(%q) expected error", tt.input)
				}
				if !IsNameError(err) {
					t.Errorf("IsNameError(%v) = false, want true", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateName(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ValidateName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	p, err := New("conn-1", "  Alice ")
	if err != nil {
		t.Fatal(err)
	}
	if p.ID != "conn-1" {
		t.Errorf("ID = %q, want %q", p.ID, "conn-1")
	}
	if p.Name != "Alice" {
		t.Errorf("Name = %q, want %q", p.Name, "Alice")
	}
	if p.JoinedAt.IsZero() {
		t.Error("JoinedAt should be set")
	}
}

func TestNew_InvalidName(t *testing.T) {
	if _, err := New("conn-1", "x"); err == nil {
		t.Fatal("expected error for one-character name")
	}
}

func TestRandomColorHex(t *testing.T) {
	hexPattern := regexp.MustCompile(`^#[0-9a-f]{6}$`)

	for i := 0; i < 100; i++ {
		color := RandomColorHex()
		if !hexPattern.MatchString(color) {
			t.Errorf("RandomColorHex() = %q, want matching #rrggbb pattern", color)
		}
	}
}

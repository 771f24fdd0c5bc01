package scribearc

import "testing"

func TestPinFromPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"plain number", "012345678", "5678"},
		{"formatted number", "+855 12 345-678", "5678"},
		{"exactly four digits", "1234", "1234"},
		{"too few digits", "123", ""},
		{"empty", "", ""},
		{"no digits", "unknown", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PinFromPhone(tt.phone); got != tt.want {
				t.Errorf("PinFromPhone(%q) = %q, want %q", tt.phone, got, tt.want)
			}
		})
	}
}

func TestPinMatches(t *testing.T) {
	tests := []struct {
		name      string
		expected  string
		submitted string
		want      bool
	}{
		{"match", "5678", "5678", true},
		{"mismatch", "5678", "0000", false},
		{"wrong length", "5678", "56789", false},
		{"empty expected never matches", "", "", false},
		{"empty submitted", "5678", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PinMatches(tt.expected, tt.submitted); got != tt.want {
				t.Errorf("PinMatches(%q, %q) = %v, want %v", tt.expected, tt.submitted, got, tt.want)
			}
		})
	}
}

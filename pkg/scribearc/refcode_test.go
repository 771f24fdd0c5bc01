package scribearc

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeSequenceSource struct {
	next      int
	taken     map[string]struct{}
	nextErr   error
	failAll   bool
	nextCalls int
}

func (f *fakeSequenceSource) Next(_ context.Context, year int) (int, error) {
	f.nextCalls++
	if f.nextErr != nil {
		return 0, f.nextErr
	}
	f.next++
	return f.next, nil
}

func (f *fakeSequenceSource) Reserve(_ context.Context, code string) error {
	if f.failAll {
		return ErrCodeTaken
	}
	if _, ok := f.taken[code]; ok {
		return ErrCodeTaken
	}
	if f.taken == nil {
		f.taken = map[string]struct{}{}
	}
	f.taken[code] = struct{}{}
	return nil
}

func TestFormatReferenceCode(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		sequence int
		want     string
	}{
		{"low sequence", 2026, 1, "SA-2026-00001"},
		{"padded sequence", 2026, 42, "SA-2026-00042"},
		{"high sequence", 2025, 99999, "SA-2025-99999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatReferenceCode(tt.year, tt.sequence)
			if got != tt.want {
				t.Errorf("FormatReferenceCode(%d, %d) = %q, want %q", tt.year, tt.sequence, got, tt.want)
			}
			if !IsValidReferenceCode(got) {
				t.Errorf("IsValidReferenceCode(%q) = false, want true", got)
			}
		})
	}
}

func TestIsValidReferenceCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"SA-2026-00001", true},
		{"SA-2026-0001", false},
		{"SA-26-00001", false},
		{"XX-2026-00001", false},
		{"sa-2026-00001", false},
		{"SA-2026-00001 ", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := IsValidReferenceCode(tt.code); got != tt.want {
				t.Errorf("IsValidReferenceCode(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestReferenceCodeGenerator(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	t.Run("returns first free code", func(t *testing.T) {
		src := &fakeSequenceSource{}
		g := NewReferenceCodeGenerator(src, 5)

		code, err := g.Generate(context.Background(), now)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if code != "SA-2026-00001" {
			t.Errorf("Generate() = %q, want SA-2026-00001", code)
		}
	})

	t.Run("retries on conflict", func(t *testing.T) {
		src := &fakeSequenceSource{taken: map[string]struct{}{
			"SA-2026-00001": {},
			"SA-2026-00002": {},
		}}
		g := NewReferenceCodeGenerator(src, 5)

		code, err := g.Generate(context.Background(), now)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if code != "SA-2026-00003" {
			t.Errorf("Generate() = %q, want SA-2026-00003", code)
		}
	})

	t.Run("exhausts retries", func(t *testing.T) {
		src := &fakeSequenceSource{failAll: true}
		g := NewReferenceCodeGenerator(src, 3)

		_, err := g.Generate(context.Background(), now)
		if !IsKind(err, KindExhaustedRetries) {
			t.Fatalf("Generate() error = %v, want kind %v", err, KindExhaustedRetries)
		}
		if src.nextCalls != 3 {
			t.Errorf("Generate() attempts = %d, want 3", src.nextCalls)
		}
	})

	t.Run("fails once the yearly sequence space is spent", func(t *testing.T) {
		// Next will hand out 100000, which no longer fits the 5-digit field
		src := &fakeSequenceSource{next: 99999}
		g := NewReferenceCodeGenerator(src, 5)

		_, err := g.Generate(context.Background(), now)
		if !IsKind(err, KindExhaustedRetries) {
			t.Fatalf("Generate() error = %v, want kind %v", err, KindExhaustedRetries)
		}
		if src.nextCalls != 1 {
			t.Errorf("Generate() attempts = %d, want 1", src.nextCalls)
		}
	})

	t.Run("propagates source errors", func(t *testing.T) {
		srcErr := errors.New("sequence table unavailable")
		src := &fakeSequenceSource{nextErr: srcErr}
		g := NewReferenceCodeGenerator(src, 5)

		_, err := g.Generate(context.Background(), now)
		if !errors.Is(err, srcErr) {
			t.Fatalf("Generate() error = %v, want %v", err, srcErr)
		}
		if src.nextCalls != 1 {
			t.Errorf("Generate() attempts = %d, want 1", src.nextCalls)
		}
	})
}

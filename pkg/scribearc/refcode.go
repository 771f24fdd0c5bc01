package scribearc

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Reference codes are the public order identifiers, e.g. SA-2026-00042.
// Sequence numbers are scoped per year; uniqueness is enforced by the
// persistence layer, the generator only retries on conflict.
const referenceCodePrefix = "SA"

// the sequence field is fixed at 5 digits, so a year holds at most 99999 codes
const maxReferenceSequence = 99999

var referenceCodeRegex = regexp.MustCompile(`^SA-\d{4}-\d{5}$`)

// ErrCodeTaken is returned by a code-uniqueness oracle (SequenceSource.Reserve,
// ReferralCodeReserver) when another caller claimed the candidate first.
var ErrCodeTaken = errors.New("code already taken")

// SequenceSource is the uniqueness oracle for reference codes. Next hands out
// the next sequence number for the year (typically an atomic increment in
// persistent storage); Reserve claims the formatted code under a unique
// constraint and is the final arbiter under concurrent callers.
type SequenceSource interface {
	Next(ctx context.Context, year int) (int, error)
	Reserve(ctx context.Context, code string) error
}

func FormatReferenceCode(year, sequence int) string {
	return fmt.Sprintf("%s-%04d-%05d", referenceCodePrefix, year, sequence)
}

func IsValidReferenceCode(code string) bool {
	return referenceCodeRegex.MatchString(code)
}

const DefaultReferenceCodeAttempts = 5

type ReferenceCodeGenerator struct {
	src         SequenceSource
	maxAttempts int
}

func NewReferenceCodeGenerator(src SequenceSource, maxAttempts int) *ReferenceCodeGenerator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultReferenceCodeAttempts
	}

	return &ReferenceCodeGenerator{src: src, maxAttempts: maxAttempts}
}

// Generate mints a new unique reference code for the year of now. On conflict
// it retries with a fresh sequence number up to the configured attempt count,
// then fails with KindExhaustedRetries. A failure here must abort the calling
// operation; no project may exist without a reference code.
func (g *ReferenceCodeGenerator) Generate(ctx context.Context, now time.Time) (string, error) {
	year := now.Year()

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		sequence, err := g.src.Next(ctx, year)
		if err != nil {
			return "", err
		}
		if sequence > maxReferenceSequence {
			return "", newError(KindExhaustedRetries, "reference sequence for year %d is exhausted (%d > %d)", year, sequence, maxReferenceSequence)
		}

		code := FormatReferenceCode(year, sequence)

		err = g.src.Reserve(ctx, code)
		if err == nil {
			return code, nil
		}
		if errors.Is(err, ErrCodeTaken) {
			continue
		}

		return "", err
	}

	return "", newError(KindExhaustedRetries, "failed to generate a unique reference code after %d attempts", g.maxAttempts)
}

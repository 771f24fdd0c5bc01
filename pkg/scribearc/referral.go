package scribearc

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"
)

// Referral codes are 4 uppercase letters derived from the client name plus a
// 4-digit number, e.g. DAVE4821. When the bounded random retry fails to find a
// free code, a time-derived fallback of 2 letters + 6 digits keeps the total
// length at 8 without risking unbounded retries.
var referralCodeRegex = regexp.MustCompile(`^[A-Z]{4}\d{4}$`)

const DefaultReferralCodeAttempts = 10

// ReferralCodeReserver claims a candidate code, returning ErrCodeTaken when
// another caller already holds it. Typically backed by the unique index on
// referral_code, which makes it the final arbiter under concurrent
// registrations.
type ReferralCodeReserver func(code string) error

// letterPrefix extracts up to n letters from the first word of fullName,
// uppercased with non-letters stripped, right-padded with X.
func letterPrefix(fullName string, n int) string {
	firstWord := ""
	if fields := strings.Fields(fullName); len(fields) > 0 {
		firstWord = fields[0]
	}

	var b strings.Builder
	for _, r := range strings.ToUpper(firstWord) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
			if b.Len() == n {
				break
			}
		}
	}

	prefix := b.String()
	for len(prefix) < n {
		prefix += "X"
	}

	return prefix
}

// GenerateReferralCode builds a candidate referral code from fullName. The
// candidate is not yet guaranteed unique. Pure with respect to rnd.
func GenerateReferralCode(fullName string, rnd *rand.Rand) string {
	return fmt.Sprintf("%s%d", letterPrefix(fullName, 4), 1000+rnd.Intn(9000))
}

// GenerateUniqueReferralCode mints a referral code and reserves it through
// reserve. Primary-format candidates are retried up to maxAttempts on
// ErrCodeTaken, then a 2-letter + 6-digit fallback derived from now is tried
// once; if even that is taken the generator fails with KindExhaustedRetries.
// Any other reserve error aborts immediately.
func GenerateUniqueReferralCode(fullName string, reserve ReferralCodeReserver, maxAttempts int, now time.Time, rnd *rand.Rand) (string, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultReferralCodeAttempts
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := GenerateReferralCode(fullName, rnd)

		err := reserve(candidate)
		if err == nil {
			return candidate, nil
		}
		if errors.Is(err, ErrCodeTaken) {
			continue
		}

		return "", err
	}

	fallback := fmt.Sprintf("%s%06d", letterPrefix(fullName, 2), now.UnixMilli()%1000000)

	err := reserve(fallback)
	if err == nil {
		return fallback, nil
	}
	if errors.Is(err, ErrCodeTaken) {
		return "", newError(KindExhaustedRetries, "failed to generate a unique referral code after %d attempts", maxAttempts+1)
	}

	return "", err
}

func NormalizeReferralCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValidReferralCodeFormat checks the primary 4-letter 4-digit shape. The
// timestamp fallback shape intentionally does not match.
func IsValidReferralCodeFormat(code string) bool {
	return referralCodeRegex.MatchString(NormalizeReferralCode(code))
}

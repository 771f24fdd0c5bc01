package scribearc

import "crypto/subtle"

// The tracking-view PIN is the last 4 digits of the phone number on file.
const pinLength = 4

// PinFromPhone derives the expected PIN from a stored phone number. Returns ""
// when the number has fewer than 4 digits, which makes verification impossible
// rather than trivially guessable.
func PinFromPhone(phone string) string {
	digits := make([]byte, 0, len(phone))
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			digits = append(digits, phone[i])
		}
	}

	if len(digits) < pinLength {
		return ""
	}

	return string(digits[len(digits)-pinLength:])
}

// PinMatches compares a submitted PIN against the expected one in constant
// time. An empty expected PIN never matches.
func PinMatches(expected, submitted string) bool {
	if expected == "" || len(submitted) != pinLength {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(expected), []byte(submitted)) == 1
}

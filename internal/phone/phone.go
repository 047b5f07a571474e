// Package phone canonicalizes phone-number strings into a single
// comparable form. Normalization never fails; callers must check
// IsValid before trusting the result.
package phone

import "strings"

// DefaultCountryCode is prefixed onto bare 10-digit national numbers.
const DefaultCountryCode = "+1"

const (
	minDigits = 7
	maxDigits = 15
)

// Normalize strips all non-digit characters and returns an E.164-shaped
// string. A bare 10-digit number gets the default country code; input
// that already carried a leading plus keeps its digits as given.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	hadPlus := strings.HasPrefix(trimmed, "+")

	var b strings.Builder
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if !hadPlus && len(digits) == 10 {
		return DefaultCountryCode + digits
	}
	return "+" + digits
}

// IsValid reports whether a canonical phone string has between 7 and 15
// digits after its leading plus.
func IsValid(canonical string) bool {
	if !strings.HasPrefix(canonical, "+") {
		return false
	}
	digits := canonical[1:]
	if len(digits) < minDigits || len(digits) > maxDigits {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

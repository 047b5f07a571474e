package parse

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/tonefence/relay/internal/phone"
)

var (
	ErrNoPhoneNumber        = errors.New("no phone number found in message")
	ErrMultiplePhoneNumbers = errors.New("more than one phone number found in message")
	ErrInvalidPhoneNumber   = errors.New("phone number in message is not valid")
)

// SetupInfo is the result of parsing a setup/pairing message: the
// counterpart's phone number plus any names the sender volunteered.
type SetupInfo struct {
	CounterpartPhone string
	OwnName          string
	CounterpartName  string
}

// phonePattern tolerates optional +1, punctuation and spacing around a
// 10-digit national number.
var phonePattern = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`)

// connectorPhrases are stripped before name extraction, longest first so
// that e.g. "your co-parent's name:" wins over "name:".
var connectorPhrases = []string{
	"your co-parent's name:",
	"co-parent's name:",
	"ex-partner:",
	"my name is",
	"name is",
	"ex is",
	"i am",
	"my ex",
	"name:",
	"ex:",
	"i'm",
}

var nameStopwords = map[string]struct{}{
	"and": {}, "is": {}, "the": {}, "my": {}, "ex": {}, "partner": {},
	"name": {}, "your": {}, "co-parent": {}, "coparent": {}, "number": {},
	"phone": {}, "his": {}, "her": {}, "their": {}, "a": {}, "an": {},
}

// ParseSetup searches input for exactly one phone-shaped substring,
// normalizes and validates it, then attempts best-effort name extraction
// from the remaining words.
func ParseSetup(input string) (SetupInfo, error) {
	matches := phonePattern.FindAllString(input, -1)
	switch {
	case len(matches) == 0:
		return SetupInfo{}, ErrNoPhoneNumber
	case len(matches) > 1:
		return SetupInfo{}, ErrMultiplePhoneNumbers
	}

	canonical := phone.Normalize(matches[0])
	if !phone.IsValid(canonical) {
		return SetupInfo{}, ErrInvalidPhoneNumber
	}

	info := SetupInfo{CounterpartPhone: canonical}

	names := extractNames(strings.Replace(input, matches[0], " ", 1))
	switch len(names) {
	case 0:
	case 1:
		info.OwnName = names[0]
	case 2:
		info.OwnName = names[0]
		info.CounterpartName = names[1]
	default:
		info.OwnName = names[0]
		info.CounterpartName = names[len(names)-1]
	}

	return info, nil
}

func extractNames(text string) []string {
	lowered := strings.ToLower(text)
	for _, phrase := range connectorPhrases {
		for {
			idx := strings.Index(lowered, phrase)
			if idx < 0 {
				break
			}
			text = text[:idx] + " " + text[idx+len(phrase):]
			lowered = lowered[:idx] + " " + lowered[idx+len(phrase):]
		}
	}

	var b strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	var names []string
	for _, word := range strings.Fields(b.String()) {
		if isDigits(word) {
			continue
		}
		if _, stop := nameStopwords[strings.ToLower(word)]; stop {
			continue
		}
		names = append(names, capitalize(word))
	}
	return names
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

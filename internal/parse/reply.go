// Package parse interprets raw inbound SMS text. All functions are pure:
// they inspect text and report what it is, with no side effects.
package parse

import (
	"errors"
	"strings"
)

// MaxCustomReplyLength bounds free-form replies to pending options.
const MaxCustomReplyLength = 500

var (
	ErrEmptyReply   = errors.New("reply is empty")
	ErrReplyTooLong = errors.New("reply exceeds maximum length of 500 characters")
)

// ReplyKind distinguishes a numbered selection from a free-form reply.
type ReplyKind int

const (
	ReplyOption ReplyKind = iota
	ReplyCustom
)

// Reply is the result of parsing a message received while options are pending.
type Reply struct {
	Kind   ReplyKind
	Option int    // 1-3 when Kind == ReplyOption
	Text   string // trimmed original text when Kind == ReplyCustom
}

var optionWords = map[string]int{
	"1": 1, "one": 1, "first": 1, "option 1": 1, "option one": 1,
	"2": 2, "two": 2, "second": 2, "option 2": 2, "option two": 2,
	"3": 3, "three": 3, "third": 3, "option 3": 3, "option three": 3,
}

// ParseReply classifies input as an option selection or a custom reply.
// The result is total over non-empty, length-bounded input: anything that
// is not a recognized option form is a custom reply, not an error.
func ParseReply(input string) (Reply, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Reply{}, ErrEmptyReply
	}
	if len(trimmed) > MaxCustomReplyLength {
		return Reply{}, ErrReplyTooLong
	}

	if n, ok := optionWords[strings.ToLower(trimmed)]; ok {
		return Reply{Kind: ReplyOption, Option: n}, nil
	}

	return Reply{Kind: ReplyCustom, Text: trimmed}, nil
}

package parse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tonefence/relay/internal/parse"
)

func TestParseReply_OptionForms(t *testing.T) {
	tests := []struct {
		input  string
		option int
	}{
		{"1", 1}, {"one", 1}, {"first", 1}, {"option 1", 1}, {"Option One", 1},
		{"2", 2}, {"two", 2}, {"second", 2}, {"option 2", 2}, {"OPTION TWO", 2},
		{"3", 3}, {"three", 3}, {"third", 3}, {"option 3", 3}, {"option three", 3},
		{"  2  ", 2},
		{"ONE", 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			reply, err := parse.ParseReply(tt.input)
			require.NoError(t, err)
			assert.Equal(t, parse.ReplyOption, reply.Kind)
			assert.Equal(t, tt.option, reply.Option)
		})
	}
}

func TestParseReply_CustomText(t *testing.T) {
	tests := []string{
		"I can pick him up at 5 instead",
		"4",
		"options",
		"one two",
		"first thing tomorrow works",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			reply, err := parse.ParseReply(input)
			require.NoError(t, err)
			assert.Equal(t, parse.ReplyCustom, reply.Kind)
			assert.Equal(t, input, reply.Text)
		})
	}
}

func TestParseReply_Invalid(t *testing.T) {
	_, err := parse.ParseReply("")
	assert.ErrorIs(t, err, parse.ErrEmptyReply)

	_, err = parse.ParseReply("   \t\n ")
	assert.ErrorIs(t, err, parse.ErrEmptyReply)

	_, err = parse.ParseReply(strings.Repeat("a", parse.MaxCustomReplyLength+1))
	assert.ErrorIs(t, err, parse.ErrReplyTooLong)
}

// ParseReply must return exactly one classification for any input.
func TestParseReply_Total(t *testing.T) {
	inputs := []string{"", "1", "one", "anything else", strings.Repeat("x", 600), "option one", "?"}

	for _, input := range inputs {
		reply, err := parse.ParseReply(input)
		if err != nil {
			assert.Zero(t, reply)
			continue
		}
		switch reply.Kind {
		case parse.ReplyOption:
			assert.Contains(t, []int{1, 2, 3}, reply.Option)
			assert.Empty(t, reply.Text)
		case parse.ReplyCustom:
			assert.NotEmpty(t, reply.Text)
			assert.Zero(t, reply.Option)
		default:
			t.Fatalf("unexpected kind %v for input %q", reply.Kind, input)
		}
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected parse.Command
	}{
		{"help", parse.CommandHelp},
		{"HELP", parse.CommandHelp},
		{"?", parse.CommandHelp},
		{" help ", parse.CommandHelp},
		{"status", parse.CommandStatus},
		{"Info", parse.CommandStatus},
		{"stop", parse.CommandStop},
		{"pause", parse.CommandStop},
		{"DISABLE", parse.CommandStop},
		{"start", parse.CommandStart},
		{"resume", parse.CommandStart},
		{"enable", parse.CommandStart},
		{"helpme", parse.CommandNone},
		{"please stop", parse.CommandNone},
		{"", parse.CommandNone},
		{"2", parse.CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parse.ParseCommand(tt.input))
		})
	}
}

// Command parsing pre-empts reply parsing: callers check commands first, and
// "help" parses as a command even though it would also be a valid custom reply.
func TestParseCommand_PreemptsCustomReply(t *testing.T) {
	cmd := parse.ParseCommand("help")
	require.Equal(t, parse.CommandHelp, cmd)

	reply, err := parse.ParseReply("help")
	require.NoError(t, err)
	assert.Equal(t, parse.ReplyCustom, reply.Kind, "reply parser alone would misclassify; command check must run first")
}

// Package format renders outbound SMS bodies sent to the client. Both
// renderings degrade to generic wording when names were never captured.
package format

import (
	"fmt"
	"strings"
)

const (
	genericCounterpart = "your co-parent"
	replyFooter        = "Reply with 1, 2, or 3, or write your own response."
	sendFooter         = "Reply with 1, 2, or 3 to send."
)

// topicPhrases maps keywords in the filtered text to a one-sentence topic
// summary. First match wins; order is fixed.
var topicPhrases = []struct {
	keywords []string
	phrase   string
}{
	{keywords: []string{"schedule", "time"}, phrase: "is requesting a schedule change"},
	{keywords: []string{"pickup", "pick up", "pick-up", "drop"}, phrase: "has a pickup/drop-off request"},
	{keywords: []string{"money", "pay", "expense", "cost"}, phrase: "sent a message about expenses"},
	{keywords: []string{"school", "doctor", "appointment"}, phrase: "sent a message about an appointment"},
}

const defaultTopicPhrase = "sent a message"

// IncomingRender carries everything needed to render a filtered incoming
// message plus its reply options.
type IncomingRender struct {
	ClientName      string
	CounterpartName string
	FilteredText    string
	ContextReason   string
	Options         [3]string
}

// Incoming renders the SMS delivered to the client when the counterpart's
// message has been filtered and reply options generated.
func Incoming(r IncomingRender) string {
	var b strings.Builder

	b.WriteString(greeting(r.ClientName))
	b.WriteString(" ")
	b.WriteString(counterpartOrGeneric(r.CounterpartName))
	b.WriteString(" ")
	b.WriteString(topicPhrase(r.FilteredText))
	if r.ContextReason != "" {
		b.WriteString(" because ")
		b.WriteString(r.ContextReason)
	}
	b.WriteString(".\n\n")

	fmt.Fprintf(&b, "\"%s\"\n\n", r.FilteredText)
	writeOptions(&b, r.Options)
	b.WriteString("\n")
	b.WriteString(replyFooter)

	return b.String()
}

// OutgoingRender carries what is needed to offer the client three phrasings
// of a message they initiated.
type OutgoingRender struct {
	ClientName      string
	CounterpartName string
	Options         [3]string
}

// OutgoingOptions renders the SMS offering three ways to phrase a
// client-initiated message.
func OutgoingOptions(r OutgoingRender) string {
	var b strings.Builder

	b.WriteString(greeting(r.ClientName))
	fmt.Fprintf(&b, " here are 3 ways to send your message to %s:\n\n", counterpartOrGeneric(r.CounterpartName))
	writeOptions(&b, r.Options)
	b.WriteString("\n")
	b.WriteString(sendFooter)

	return b.String()
}

func writeOptions(b *strings.Builder, options [3]string) {
	for i, opt := range options {
		fmt.Fprintf(b, "%d. %s\n", i+1, opt)
	}
}

func greeting(name string) string {
	if name == "" {
		return "Hi,"
	}
	return fmt.Sprintf("Hi %s,", name)
}

func counterpartOrGeneric(name string) string {
	if name == "" {
		return genericCounterpart
	}
	return name
}

func topicPhrase(filtered string) string {
	lowered := strings.ToLower(filtered)
	for _, tp := range topicPhrases {
		for _, kw := range tp.keywords {
			if strings.Contains(lowered, kw) {
				return tp.phrase
			}
		}
	}
	return defaultTopicPhrase
}

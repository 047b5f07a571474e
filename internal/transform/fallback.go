package transform

import (
	"strings"

	"github.com/tonefence/relay/internal/models"
)

// keywordFallback is the degraded path used when the transform service is
// unreachable. Results are tagged Degraded so the fallback never looks like
// a primary-path success.
type keywordFallback struct {
	hostile  []string
	decision []string
}

func newKeywordFallback() *keywordFallback {
	return &keywordFallback{
		hostile: []string{
			"idiot", "stupid", "hate", "useless", "pathetic", "loser",
			"shut up", "never", "always late", "your fault", "liar",
			"worthless", "selfish", "terrible", "worst",
		},
		decision: []string{
			"?", "can you", "will you", "could you", "need you", "pick up",
			"drop off", "schedule", "change", "switch", "confirm",
		},
	}
}

func (f *keywordFallback) processIncoming(text string) *IncomingResult {
	return &IncomingResult{
		FilteredText: f.filter(text),
		Category:     f.classify(text),
		Options: [3]string{
			"Okay, that works for me.",
			"That doesn't work for me. Can we look at alternatives?",
			"Let me check and get back to you shortly.",
		},
		Degraded: true,
	}
}

func (f *keywordFallback) generateOutgoing(text string) *OutgoingResult {
	filtered := f.filter(text)
	return &OutgoingResult{
		Options: [3]string{
			filtered,
			"I wanted to let you know: " + filtered,
			"When you have a moment: " + filtered,
		},
		Category: f.classify(text),
		Degraded: true,
	}
}

// moderate refuses anything containing a hostile keyword; without the
// primary service there is no rewrite capability, only a pass/refuse gate.
func (f *keywordFallback) moderate(text string) (string, error) {
	lowered := strings.ToLower(text)
	for _, word := range f.hostile {
		if strings.Contains(lowered, word) {
			return "", ErrReplyRefused
		}
	}
	return text, nil
}

func (f *keywordFallback) filter(text string) string {
	filtered := text
	lowered := strings.ToLower(text)
	for _, word := range f.hostile {
		for {
			idx := strings.Index(lowered, word)
			if idx < 0 {
				break
			}
			replacement := strings.Repeat("*", len(word))
			filtered = filtered[:idx] + replacement + filtered[idx+len(word):]
			lowered = lowered[:idx] + replacement + lowered[idx+len(word):]
		}
	}
	return filtered
}

func (f *keywordFallback) classify(text string) models.MessageCategory {
	lowered := strings.ToLower(text)
	for _, marker := range f.decision {
		if strings.Contains(lowered, marker) {
			return models.CategoryDecisionMaking
		}
	}
	return models.CategoryInformational
}

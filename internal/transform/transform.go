// Package transform wraps the external content-transform collaborator:
// filtering hostile language, classifying messages, and generating reply
// options. The resolver depends only on the Transform interface.
package transform

import (
	"context"
	"errors"

	"github.com/tonefence/relay/internal/models"
)

// ErrReplyRefused signals that moderation rejected a custom reply outright.
// The caller should instruct the client to pick a numbered option instead.
var ErrReplyRefused = errors.New("custom reply refused by moderation")

// IncomingResult is the transform output for a counterpart message.
// Degraded marks results produced by the local keyword fallback rather than
// the primary service, so operators can tell the two apart.
type IncomingResult struct {
	FilteredText  string
	Category      models.MessageCategory
	Options       [3]string
	ContextReason string
	Degraded      bool
}

// OutgoingResult is the transform output for a client-initiated message.
type OutgoingResult struct {
	Options  [3]string
	Category models.MessageCategory
	Degraded bool
}

// Transform is the content-transform collaborator contract.
type Transform interface {
	// ProcessIncoming filters a counterpart message, classifies it, and
	// generates three candidate replies for the client.
	ProcessIncoming(ctx context.Context, text string) (*IncomingResult, error)

	// GenerateOutgoingOptions classifies a client draft and produces three
	// phrasings of it.
	GenerateOutgoingOptions(ctx context.Context, text string) (*OutgoingResult, error)

	// ModerateCustomReply returns the (possibly rewritten) reply text, or
	// ErrReplyRefused when the reply cannot be made acceptable.
	ModerateCustomReply(ctx context.Context, text string) (string, error)
}

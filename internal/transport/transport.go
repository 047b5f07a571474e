// Package transport wraps the SMS provider. The resolver depends only on
// the Transport interface; the concrete client speaks the provider's
// Messages API.
package transport

import "context"

// Transport is the SMS transport collaborator contract.
type Transport interface {
	// Send delivers body to the destination address and returns the
	// provider's message identifier.
	Send(ctx context.Context, to, body string) (string, error)

	// NormalizeAddress canonicalizes a raw phone string.
	NormalizeAddress(raw string) string

	// IsValidAddress reports whether a canonical address is usable.
	IsValidAddress(canonical string) bool
}

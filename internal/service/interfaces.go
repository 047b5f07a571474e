package service

import (
	"context"

	"github.com/tonefence/relay/internal/breaker"
	"github.com/tonefence/relay/internal/models"
)

// ResolverService is the conversation state resolver: it classifies an
// inbound message's origin, derives pending-option state, and dispatches
// to the appropriate flow.
type ResolverService interface {
	HandleInbound(ctx context.Context, sms models.InboundSMS) error
	HandleStatusCallback(ctx context.Context, callback models.StatusCallback) error
}

// PartyService is the party registry: create/find/update of the two-party
// pairing and its activation flags.
type PartyService interface {
	FindByEitherPhone(raw string) (*models.Party, models.PartyRole, error)
	CreateOrUpdate(ownPhone, counterpartPhone, servicePhone, ownName, counterpartName string) (*models.Party, error)
	Deactivate(id int64) error
	MarkActivated(id int64) error
}

// MessageService exposes message records for operational visibility.
type MessageService interface {
	ListMessages(page, limit int) (*models.MessageListResponse, error)
}

// MaintenanceService runs the background loop that abandons stale drafts
// and re-attempts stuck outbound sends.
type MaintenanceService interface {
	Start(ctx context.Context) error
	Stop() error
	IsRunning() bool
	RunOnce(ctx context.Context) error
}

// HealthService reports component health.
type HealthService interface {
	GetHealth() *HealthStatus
}

// BreakerStatus is implemented by adapters that expose their circuit
// breaker for health reporting.
type BreakerStatus interface {
	BreakerState() breaker.State
	BreakerCounts() (requests, failures uint32)
}

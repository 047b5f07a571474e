package repository

import (
	"time"

	"github.com/tonefence/relay/internal/models"
)

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	// Party returns the party repository
	Party() PartyRepository

	// Message returns the message repository
	Message() MessageRepository

	// ReplyOption returns the reply option set repository
	ReplyOption() ReplyOptionRepository
}

// PartyRepository defines operations on subscriber pairings.
type PartyRepository interface {
	// FindByEitherPhone looks a party up by its own phone or its counterpart
	// phone and reports which role matched. Returns ErrNotFound when the
	// phone matches no active-or-inactive party.
	FindByEitherPhone(phone string) (*models.Party, models.PartyRole, error)
	FindByPhone(phone string) (*models.Party, error)
	Create(party *models.Party) error
	// UpdatePairing overwrites the counterpart phone; names are overwritten
	// only when non-nil.
	UpdatePairing(id int64, counterpartPhone string, ownName, counterpartName *string) error
	Deactivate(id int64) error
	MarkActivated(id int64) error
}

// MessageRepository defines operations on message records.
type MessageRepository interface {
	Create(msg *models.Message) error
	UpdateStatus(id int64, status models.MessageStatus, externalID, errorMsg *string) error
	// UpdateStatusByExternalID applies a provider delivery callback.
	UpdateStatusByExternalID(externalID string, status models.MessageStatus) error
	LatestByDirection(partyID int64, direction models.MessageDirection) (*models.Message, error)
	ActivitySummary(partyID int64) (*models.ActivitySummary, error)
	// GetStuckPending lists outbound messages that never left pending state.
	GetStuckPending(olderThan time.Duration, limit int) ([]*models.Message, error)
	List(offset, limit int) ([]*models.Message, error)
	CountAll() (int64, error)
}

// ReplyOptionRepository defines operations on reply option sets.
type ReplyOptionRepository interface {
	Create(set *models.ReplyOptionSet) error
	GetByMessageID(messageID int64) (*models.ReplyOptionSet, error)
	// LatestUnresolved returns the newest unresolved option set owned by the
	// party for the given message direction, together with its message.
	// This is the single pending-state query the resolver derives conversation
	// state from. Returns ErrNotFound when nothing is pending.
	LatestUnresolved(partyID int64, direction models.MessageDirection) (*models.ReplyOptionSet, *models.Message, error)
	// ResolveSelected stores the chosen option text. Fails with
	// ErrAlreadyResolved when the set was already answered.
	ResolveSelected(id int64, text string) error
	// ResolveCustom stores a moderated free-form reply. Fails with
	// ErrAlreadyResolved when the set was already answered.
	ResolveCustom(id int64, text string) error
	// AbandonStaleIntents resolves-as-abandoned unresolved option sets for
	// outgoing_intent messages older than the given age, returning how many
	// were closed.
	AbandonStaleIntents(olderThan time.Duration) (int64, error)
}

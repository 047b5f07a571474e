package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db          *sqlx.DB
	party       PartyRepository
	message     MessageRepository
	replyOption ReplyOptionRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:          db,
		party:       NewPartyRepository(db),
		message:     NewMessageRepository(db),
		replyOption: NewReplyOptionRepository(db),
	}
}

// Party returns the party repository.
func (r *repositoryImpl) Party() PartyRepository {
	return r.party
}

// Message returns the message repository.
func (r *repositoryImpl) Message() MessageRepository {
	return r.message
}

// ReplyOption returns the reply option set repository.
func (r *repositoryImpl) ReplyOption() ReplyOptionRepository {
	return r.replyOption
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}

package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tonefence/relay/internal/models"
)

const messageColumns = `id, party_id, sender, recipient, original_text, filtered_text,
	category, direction, status, external_id, error, created_at, updated_at`

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create inserts a message record and fills in its generated fields.
func (r *messageRepository) Create(msg *models.Message) error {
	query := `
		INSERT INTO messages (party_id, sender, recipient, original_text, filtered_text,
			category, direction, status, external_id, error, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING id, created_at, updated_at
	`

	now := time.Now()
	err := r.db.QueryRowx(query,
		msg.PartyID, msg.Sender, msg.Recipient, msg.OriginalText, msg.FilteredText,
		msg.Category, msg.Direction, msg.Status, msg.ExternalID, msg.Error, now,
	).Scan(&msg.ID, &msg.CreatedAt, &msg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	return nil
}

// UpdateStatus updates the delivery status of a message.
func (r *messageRepository) UpdateStatus(id int64, status models.MessageStatus, externalID, errorMsg *string) error {
	query := `
		UPDATE messages
		SET status = $2,
		    external_id = COALESCE($3, external_id),
		    error = $4,
		    updated_at = $5
		WHERE id = $1
	`

	var extID sql.NullString
	if externalID != nil {
		extID = sql.NullString{String: *externalID, Valid: true}
	}

	var errMsg sql.NullString
	if errorMsg != nil {
		errMsg = sql.NullString{String: *errorMsg, Valid: true}
	}

	result, err := r.db.Exec(query, id, status, extID, errMsg, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update message status: %w", err)
	}

	return requireOneRow(result)
}

// UpdateStatusByExternalID applies a provider delivery callback. Records
// already delivered or failed are immutable to callbacks arriving late.
func (r *messageRepository) UpdateStatusByExternalID(externalID string, status models.MessageStatus) error {
	query := `
		UPDATE messages
		SET status = $2, updated_at = $3
		WHERE external_id = $1
		  AND status NOT IN ('delivered', 'failed')
	`

	result, err := r.db.Exec(query, externalID, status, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update message status by external id: %w", err)
	}

	return requireOneRow(result)
}

// LatestByDirection returns the most recent message for the party in the
// given direction.
func (r *messageRepository) LatestByDirection(partyID int64, direction models.MessageDirection) (*models.Message, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM messages
		WHERE party_id = $1 AND direction = $2
		ORDER BY created_at DESC
		LIMIT 1
	`, messageColumns)

	var msg models.Message
	err := r.db.Get(&msg, query, partyID, direction)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest message: %w", err)
	}

	return &msg, nil
}

// ActivitySummary aggregates message counts and last activity for a party.
func (r *messageRepository) ActivitySummary(partyID int64) (*models.ActivitySummary, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE direction = 'incoming')           AS incoming_count,
			COUNT(*) FILTER (WHERE direction = 'outgoing')           AS outgoing_count,
			MAX(created_at)                                          AS last_activity
		FROM messages
		WHERE party_id = $1
	`

	var summary models.ActivitySummary
	if err := r.db.Get(&summary, query, partyID); err != nil {
		return nil, fmt.Errorf("failed to get activity summary: %w", err)
	}

	return &summary, nil
}

// GetStuckPending lists outbound messages that never left pending state.
func (r *messageRepository) GetStuckPending(olderThan time.Duration, limit int) ([]*models.Message, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM messages
		WHERE direction = 'outgoing'
		  AND status = 'pending'
		  AND created_at < $1
		ORDER BY created_at ASC
		LIMIT $2
	`, messageColumns)

	var messages []*models.Message
	if err := r.db.Select(&messages, query, time.Now().Add(-olderThan), limit); err != nil {
		return nil, fmt.Errorf("failed to get stuck pending messages: %w", err)
	}

	return messages, nil
}

// List retrieves messages with pagination, newest first.
func (r *messageRepository) List(offset, limit int) ([]*models.Message, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM messages
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, messageColumns)

	var messages []*models.Message
	if err := r.db.Select(&messages, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, nil
}

// CountAll returns the total number of message records.
func (r *messageRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM messages`); err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}

	return count, nil
}

package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tonefence/relay/internal/models"
)

const optionColumns = `id, message_id, option_1, option_2, option_3,
	selected_response, custom_response, abandoned_at, created_at, updated_at`

type replyOptionRepository struct {
	db *sqlx.DB
}

func NewReplyOptionRepository(db *sqlx.DB) ReplyOptionRepository {
	return &replyOptionRepository{
		db: db,
	}
}

// Create inserts a reply option set and fills in its generated fields.
func (r *replyOptionRepository) Create(set *models.ReplyOptionSet) error {
	query := `
		INSERT INTO reply_options (message_id, option_1, option_2, option_3, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, created_at, updated_at
	`

	now := time.Now()
	err := r.db.QueryRowx(query,
		set.MessageID, set.Option1, set.Option2, set.Option3, now,
	).Scan(&set.ID, &set.CreatedAt, &set.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create reply option set: %w", err)
	}

	return nil
}

// GetByMessageID returns the option set belonging to a message record.
func (r *replyOptionRepository) GetByMessageID(messageID int64) (*models.ReplyOptionSet, error) {
	query := fmt.Sprintf(`SELECT %s FROM reply_options WHERE message_id = $1`, optionColumns)

	var set models.ReplyOptionSet
	err := r.db.Get(&set, query, messageID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reply option set: %w", err)
	}

	return &set, nil
}

// LatestUnresolved is the single query conversation state is derived from:
// the newest option set for the party and direction that has neither a
// selected nor a custom response and was not abandoned.
func (r *replyOptionRepository) LatestUnresolved(partyID int64, direction models.MessageDirection) (*models.ReplyOptionSet, *models.Message, error) {
	query := `
		SELECT
			o.id AS set_id, o.message_id, o.option_1, o.option_2, o.option_3,
			o.selected_response, o.custom_response, o.abandoned_at,
			o.created_at AS set_created_at, o.updated_at AS set_updated_at,
			m.id, m.party_id, m.sender, m.recipient, m.original_text, m.filtered_text,
			m.category, m.direction, m.status, m.external_id, m.error, m.created_at, m.updated_at
		FROM reply_options o
		JOIN messages m ON m.id = o.message_id
		WHERE m.party_id = $1
		  AND m.direction = $2
		  AND o.selected_response IS NULL
		  AND o.custom_response IS NULL
		  AND o.abandoned_at IS NULL
		ORDER BY m.created_at DESC
		LIMIT 1
	`

	var row struct {
		SetID            int64            `db:"set_id"`
		MessageID        int64            `db:"message_id"`
		Option1          string           `db:"option_1"`
		Option2          string           `db:"option_2"`
		Option3          string           `db:"option_3"`
		SelectedResponse sql.NullString   `db:"selected_response"`
		CustomResponse   sql.NullString   `db:"custom_response"`
		AbandonedAt      sql.NullTime     `db:"abandoned_at"`
		SetCreatedAt     time.Time        `db:"set_created_at"`
		SetUpdatedAt     time.Time        `db:"set_updated_at"`
		models.Message
	}

	err := r.db.Get(&row, query, partyID, direction)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get latest unresolved option set: %w", err)
	}

	set := &models.ReplyOptionSet{
		ID:               row.SetID,
		MessageID:        row.MessageID,
		Option1:          row.Option1,
		Option2:          row.Option2,
		Option3:          row.Option3,
		SelectedResponse: row.SelectedResponse,
		CustomResponse:   row.CustomResponse,
		AbandonedAt:      row.AbandonedAt,
		CreatedAt:        row.SetCreatedAt,
		UpdatedAt:        row.SetUpdatedAt,
	}
	msg := row.Message

	return set, &msg, nil
}

// ResolveSelected stores the chosen option text exactly once. The guard in
// the WHERE clause makes a second resolution attempt observe zero rows.
func (r *replyOptionRepository) ResolveSelected(id int64, text string) error {
	query := `
		UPDATE reply_options
		SET selected_response = $2, updated_at = $3
		WHERE id = $1
		  AND selected_response IS NULL
		  AND custom_response IS NULL
		  AND abandoned_at IS NULL
	`

	return r.resolve(query, id, text)
}

// ResolveCustom stores a moderated free-form reply exactly once.
func (r *replyOptionRepository) ResolveCustom(id int64, text string) error {
	query := `
		UPDATE reply_options
		SET custom_response = $2, updated_at = $3
		WHERE id = $1
		  AND selected_response IS NULL
		  AND custom_response IS NULL
		  AND abandoned_at IS NULL
	`

	return r.resolve(query, id, text)
}

func (r *replyOptionRepository) resolve(query string, id int64, text string) error {
	result, err := r.db.Exec(query, id, text, time.Now())
	if err != nil {
		return fmt.Errorf("failed to resolve reply option set: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrAlreadyResolved
	}

	return nil
}

// AbandonStaleIntents closes unresolved option sets for outgoing_intent
// drafts older than the given age so they cannot shadow newer pending state.
func (r *replyOptionRepository) AbandonStaleIntents(olderThan time.Duration) (int64, error) {
	query := `
		UPDATE reply_options o
		SET abandoned_at = $1, updated_at = $1
		FROM messages m
		WHERE m.id = o.message_id
		  AND m.direction = 'outgoing_intent'
		  AND o.selected_response IS NULL
		  AND o.custom_response IS NULL
		  AND o.abandoned_at IS NULL
		  AND m.created_at < $2
	`

	now := time.Now()
	result, err := r.db.Exec(query, now, now.Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("failed to abandon stale intents: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}

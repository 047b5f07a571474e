package repository_test

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

func insertTestParty(db *sqlx.DB, phone, counterpartPhone string) (int64, error) {
	var id int64
	query := `
		INSERT INTO parties (phone, counterpart_phone, service_phone, active,
			subscription_status, service_activated, created_at, updated_at)
		VALUES ($1, $2, '+15550000000', TRUE, 'active', TRUE, $3, $3)
		RETURNING id
	`

	if err := db.QueryRow(query, phone, counterpartPhone, time.Now()).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert test party: %w", err)
	}

	return id, nil
}

func insertTestMessage(db *sqlx.DB, partyID int64, direction, status string, createdAt time.Time) (int64, error) {
	var id int64
	query := `
		INSERT INTO messages (party_id, sender, recipient, original_text, filtered_text,
			direction, status, created_at, updated_at)
		VALUES ($1, '+15551230001', '+15551230002', 'original', 'filtered', $2, $3, $4, $4)
		RETURNING id
	`

	if err := db.QueryRow(query, partyID, direction, status, createdAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert test message: %w", err)
	}

	return id, nil
}

func insertTestMessageWithExternalID(db *sqlx.DB, partyID int64, direction, status, externalID string) (int64, error) {
	var id int64
	query := `
		INSERT INTO messages (party_id, sender, recipient, original_text,
			direction, status, external_id, created_at, updated_at)
		VALUES ($1, '+15551230001', '+15551230002', 'original', $2, $3, $4, $5, $5)
		RETURNING id
	`

	if err := db.QueryRow(query, partyID, direction, status, externalID, time.Now()).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert test message: %w", err)
	}

	return id, nil
}

func insertTestOptionSet(db *sqlx.DB, messageID int64) (int64, error) {
	var id int64
	query := `
		INSERT INTO reply_options (message_id, option_1, option_2, option_3, created_at, updated_at)
		VALUES ($1, 'option one', 'option two', 'option three', $2, $2)
		RETURNING id
	`

	if err := db.QueryRow(query, messageID, time.Now()).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert test option set: %w", err)
	}

	return id, nil
}

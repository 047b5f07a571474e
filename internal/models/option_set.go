package models

import (
	"database/sql"
	"time"
)

// ReplyOptionSet holds the three candidate reply strings offered for one
// message record. It is resolved exactly once: either a numbered option is
// selected or a custom reply is supplied, never both.
type ReplyOptionSet struct {
	ID               int64          `db:"id" json:"id"`
	MessageID        int64          `db:"message_id" json:"message_id"`
	Option1          string         `db:"option_1" json:"option_1"`
	Option2          string         `db:"option_2" json:"option_2"`
	Option3          string         `db:"option_3" json:"option_3"`
	SelectedResponse sql.NullString `db:"selected_response" json:"selected_response,omitempty"`
	CustomResponse   sql.NullString `db:"custom_response" json:"custom_response,omitempty"`
	AbandonedAt      sql.NullTime   `db:"abandoned_at" json:"abandoned_at,omitempty"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updated_at"`
}

// Resolved reports whether the set has already been answered.
func (s *ReplyOptionSet) Resolved() bool {
	return s.SelectedResponse.Valid || s.CustomResponse.Valid
}

// Abandoned reports whether the maintenance loop closed the set unanswered.
func (s *ReplyOptionSet) Abandoned() bool {
	return s.AbandonedAt.Valid
}

// Option returns the stored text for option n (1-3).
func (s *ReplyOptionSet) Option(n int) (string, bool) {
	switch n {
	case 1:
		return s.Option1, s.Option1 != ""
	case 2:
		return s.Option2, s.Option2 != ""
	case 3:
		return s.Option3, s.Option3 != ""
	default:
		return "", false
	}
}

// Options returns all three candidate strings in order.
func (s *ReplyOptionSet) Options() [3]string {
	return [3]string{s.Option1, s.Option2, s.Option3}
}

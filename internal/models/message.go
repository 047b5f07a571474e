package models

import (
	"database/sql"
	"time"
)

// MessageDirection classifies a message record relative to the client.
type MessageDirection string

const (
	// DirectionIncoming is counterpart -> client, filtered before delivery.
	DirectionIncoming MessageDirection = "incoming"
	// DirectionOutgoing is client -> counterpart, already resolved to final text.
	DirectionOutgoing MessageDirection = "outgoing"
	// DirectionOutgoingIntent is a client-authored draft awaiting a phrasing choice.
	DirectionOutgoingIntent MessageDirection = "outgoing_intent"
)

// MessageStatus is the delivery lifecycle of a message record.
type MessageStatus string

const (
	MessageStatusPending    MessageStatus = "pending"
	MessageStatusProcessing MessageStatus = "processing"
	MessageStatusSent       MessageStatus = "sent"
	MessageStatusDelivered  MessageStatus = "delivered"
	MessageStatusFailed     MessageStatus = "failed"
)

// MessageCategory is assigned by the content transform.
type MessageCategory string

const (
	CategoryInformational  MessageCategory = "informational"
	CategoryDecisionMaking MessageCategory = "decision_making"
)

// Message represents one logical SMS event in the database.
type Message struct {
	ID           int64            `db:"id" json:"id"`
	PartyID      int64            `db:"party_id" json:"party_id"`
	Sender       string           `db:"sender" json:"sender"`
	Recipient    string           `db:"recipient" json:"recipient"`
	OriginalText string           `db:"original_text" json:"original_text"`
	FilteredText sql.NullString   `db:"filtered_text" json:"filtered_text,omitempty"`
	Category     sql.NullString   `db:"category" json:"category,omitempty"`
	Direction    MessageDirection `db:"direction" json:"direction"`
	Status       MessageStatus    `db:"status" json:"status"`
	ExternalID   sql.NullString   `db:"external_id" json:"external_id,omitempty"`
	Error        sql.NullString   `db:"error" json:"error,omitempty"`
	CreatedAt    time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time        `db:"updated_at" json:"updated_at"`
}

// ActivitySummary aggregates per-party message counts for status reports.
type ActivitySummary struct {
	IncomingCount int64        `db:"incoming_count"`
	OutgoingCount int64        `db:"outgoing_count"`
	LastActivity  sql.NullTime `db:"last_activity"`
}

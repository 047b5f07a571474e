// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"time"
)

// SubscriptionStatus mirrors the billing provider's subscription state.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
)

// PartyRole identifies which side of a pairing an inbound phone matched.
type PartyRole string

const (
	RoleClient      PartyRole = "client"
	RoleCounterpart PartyRole = "counterpart"
)

// Party represents one subscriber pairing: the client phone, the
// counterpart phone, and the shared service number they converse through.
type Party struct {
	ID                 int64          `db:"id" json:"id"`
	Phone              string         `db:"phone" json:"phone"`
	CounterpartPhone   string         `db:"counterpart_phone" json:"counterpart_phone"`
	Name               sql.NullString `db:"name" json:"name,omitempty"`
	CounterpartName    sql.NullString `db:"counterpart_name" json:"counterpart_name,omitempty"`
	ServicePhone       string         `db:"service_phone" json:"service_phone"`
	Active             bool           `db:"active" json:"active"`
	SubscriptionStatus sql.NullString `db:"subscription_status" json:"subscription_status,omitempty"`
	ServiceActivated   bool           `db:"service_activated" json:"service_activated"`
	CreatedAt          time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at" json:"updated_at"`
}

// SubscriptionIsActive reports whether the billing gate passes.
func (p *Party) SubscriptionIsActive() bool {
	return p.SubscriptionStatus.Valid && SubscriptionStatus(p.SubscriptionStatus.String) == SubscriptionActive
}

// DisplayName returns the client's name, or empty when never captured.
func (p *Party) DisplayName() string {
	if p.Name.Valid {
		return p.Name.String
	}
	return ""
}

// CounterpartDisplayName returns the counterpart's name, or empty.
func (p *Party) CounterpartDisplayName() string {
	if p.CounterpartName.Valid {
		return p.CounterpartName.String
	}
	return ""
}

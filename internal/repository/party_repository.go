package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/tonefence/relay/internal/models"
)

const partyColumns = `id, phone, counterpart_phone, name, counterpart_name,
	service_phone, active, subscription_status, service_activated, created_at, updated_at`

type partyRepository struct {
	db *sqlx.DB
}

func NewPartyRepository(db *sqlx.DB) PartyRepository {
	return &partyRepository{
		db: db,
	}
}

// FindByEitherPhone retrieves a party by either of its two phone roles.
// A match on the party's own phone wins over a match on counterpart_phone;
// the schema guarantees the two columns differ within one row.
func (r *partyRepository) FindByEitherPhone(phone string) (*models.Party, models.PartyRole, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM parties
		WHERE phone = $1 OR counterpart_phone = $1
		ORDER BY (phone = $1) DESC, created_at DESC
		LIMIT 1
	`, partyColumns)

	var party models.Party
	err := r.db.Get(&party, query, phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to find party by phone: %w", err)
	}

	role := models.RoleClient
	if party.Phone != phone {
		role = models.RoleCounterpart
	}

	return &party, role, nil
}

// FindByPhone retrieves a party by its own phone only.
func (r *partyRepository) FindByPhone(phone string) (*models.Party, error) {
	query := fmt.Sprintf(`SELECT %s FROM parties WHERE phone = $1`, partyColumns)

	var party models.Party
	err := r.db.Get(&party, query, phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find party: %w", err)
	}

	return &party, nil
}

// Create inserts a new party and fills in its generated fields.
func (r *partyRepository) Create(party *models.Party) error {
	query := `
		INSERT INTO parties (phone, counterpart_phone, name, counterpart_name,
			service_phone, active, subscription_status, service_activated, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id, created_at, updated_at
	`

	now := time.Now()
	err := r.db.QueryRowx(query,
		party.Phone, party.CounterpartPhone, party.Name, party.CounterpartName,
		party.ServicePhone, party.Active, party.SubscriptionStatus, party.ServiceActivated, now,
	).Scan(&party.ID, &party.CreatedAt, &party.UpdatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return ErrDuplicatePhone
	}
	if err != nil {
		return fmt.Errorf("failed to create party: %w", err)
	}

	return nil
}

// UpdatePairing overwrites the counterpart phone; names are overwritten only
// when a non-nil value is provided.
func (r *partyRepository) UpdatePairing(id int64, counterpartPhone string, ownName, counterpartName *string) error {
	query := `
		UPDATE parties
		SET counterpart_phone = $2,
		    name = COALESCE($3, name),
		    counterpart_name = COALESCE($4, counterpart_name),
		    updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(query, id, counterpartPhone, ownName, counterpartName, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update party pairing: %w", err)
	}

	return requireOneRow(result)
}

// Deactivate flips the active flag off. Parties are never deleted.
func (r *partyRepository) Deactivate(id int64) error {
	result, err := r.db.Exec(`UPDATE parties SET active = FALSE, updated_at = $2 WHERE id = $1`, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to deactivate party: %w", err)
	}

	return requireOneRow(result)
}

// MarkActivated records that both sides confirmed the service.
func (r *partyRepository) MarkActivated(id int64) error {
	result, err := r.db.Exec(`UPDATE parties SET service_activated = TRUE, updated_at = $2 WHERE id = $1`, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark party activated: %w", err)
	}

	return requireOneRow(result)
}

func requireOneRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

package service

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/tonefence/relay/internal/models"
	"github.com/tonefence/relay/internal/phone"
	"github.com/tonefence/relay/internal/repository"
)

type partyService struct {
	repo   repository.Repository
	logger *zap.Logger
}

// NewPartyService creates a party registry backed by the record store.
func NewPartyService(repo repository.Repository, logger *zap.Logger) PartyService {
	return &partyService{
		repo:   repo,
		logger: logger,
	}
}

func (s *partyService) FindByEitherPhone(raw string) (*models.Party, models.PartyRole, error) {
	normalized := phone.Normalize(raw)
	if !phone.IsValid(normalized) {
		return nil, "", fmt.Errorf("invalid phone number %q: %w", raw, repository.ErrNotFound)
	}
	return s.repo.Party().FindByEitherPhone(normalized)
}

// CreateOrUpdate registers a pairing keyed by the client's own phone. A
// repeated setup message from the same phone updates the pairing in place
// instead of failing on the unique constraint.
func (s *partyService) CreateOrUpdate(ownPhone, counterpartPhone, servicePhone, ownName, counterpartName string) (*models.Party, error) {
	own := phone.Normalize(ownPhone)
	counterpart := phone.Normalize(counterpartPhone)

	if !phone.IsValid(own) {
		return nil, fmt.Errorf("invalid own phone number: %s", ownPhone)
	}
	if !phone.IsValid(counterpart) {
		return nil, fmt.Errorf("invalid counterpart phone number: %s", counterpartPhone)
	}
	if own == counterpart {
		return nil, fmt.Errorf("own and counterpart phone numbers must differ")
	}

	existing, err := s.repo.Party().FindByPhone(own)
	if err == nil {
		var namePtr, counterpartNamePtr *string
		if ownName != "" {
			namePtr = &ownName
		}
		if counterpartName != "" {
			counterpartNamePtr = &counterpartName
		}
		if err := s.repo.Party().UpdatePairing(existing.ID, counterpart, namePtr, counterpartNamePtr); err != nil {
			return nil, fmt.Errorf("failed to update pairing: %w", err)
		}
		return s.repo.Party().FindByPhone(own)
	}
	if err != repository.ErrNotFound {
		return nil, fmt.Errorf("failed to look up party: %w", err)
	}

	party := &models.Party{
		Phone:            own,
		CounterpartPhone: counterpart,
		ServicePhone:     servicePhone,
		Active:           true,
	}
	if ownName != "" {
		party.Name = sql.NullString{String: ownName, Valid: true}
	}
	if counterpartName != "" {
		party.CounterpartName = sql.NullString{String: counterpartName, Valid: true}
	}

	if err := s.repo.Party().Create(party); err != nil {
		return nil, fmt.Errorf("failed to create party: %w", err)
	}

	s.logger.Info("Registered new party pairing",
		zap.Int64("party_id", party.ID),
		zap.String("phone", own))

	return party, nil
}

func (s *partyService) Deactivate(id int64) error {
	if err := s.repo.Party().Deactivate(id); err != nil {
		return fmt.Errorf("failed to deactivate party %d: %w", id, err)
	}
	s.logger.Info("Party deactivated", zap.Int64("party_id", id))
	return nil
}

func (s *partyService) MarkActivated(id int64) error {
	if err := s.repo.Party().MarkActivated(id); err != nil {
		return fmt.Errorf("failed to mark party %d activated: %w", id, err)
	}
	s.logger.Info("Party activated", zap.Int64("party_id", id))
	return nil
}

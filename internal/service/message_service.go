package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tonefence/relay/internal/models"
	"github.com/tonefence/relay/internal/repository"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

type messageService struct {
	repo   repository.Repository
	logger *zap.Logger
}

// NewMessageService creates the read-side message service used by the
// operational API.
func NewMessageService(repo repository.Repository, logger *zap.Logger) MessageService {
	return &messageService{
		repo:   repo,
		logger: logger,
	}
}

// ListMessages returns a page of message records, newest first.
func (s *messageService) ListMessages(page, limit int) (*models.MessageListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	total, err := s.repo.Message().CountAll()
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	messages, err := s.repo.Message().List((page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &models.MessageListResponse{
		Messages: messages,
		Pagination: models.Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   int(total),
			ItemsPerPage: limit,
		},
	}, nil
}

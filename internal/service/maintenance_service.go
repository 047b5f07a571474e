package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tonefence/relay/internal/config"
	"github.com/tonefence/relay/internal/models"
	"github.com/tonefence/relay/internal/repository"
	"github.com/tonefence/relay/internal/scheduler"
	"github.com/tonefence/relay/internal/transport"
)

// stuckPendingAge is how long an outbound message may sit in pending state
// before the maintenance loop re-attempts the send.
const stuckPendingAge = 10 * time.Minute

type maintenanceService struct {
	cfg       *config.Config
	repo      repository.Repository
	transport transport.Transport
	sched     *scheduler.Scheduler
	logger    *zap.Logger
}

// NewMaintenanceService builds the background loop that abandons stale
// drafts and retries stuck outbound sends on a fixed interval.
func NewMaintenanceService(cfg *config.Config, repo repository.Repository, tp transport.Transport, logger *zap.Logger) MaintenanceService {
	m := &maintenanceService{
		cfg:       cfg,
		repo:      repo,
		transport: tp,
		logger:    logger,
	}
	interval := time.Duration(cfg.Maintenance.IntervalMinutes) * time.Minute
	m.sched = scheduler.NewScheduler(logger, interval, m.RunOnce)
	return m
}

func (m *maintenanceService) Start(ctx context.Context) error {
	return m.sched.Start(ctx)
}

func (m *maintenanceService) Stop() error {
	return m.sched.Stop()
}

func (m *maintenanceService) IsRunning() bool {
	return m.sched.IsRunning()
}

// RunOnce executes a single maintenance pass. Both halves run even if the
// first fails; their errors are logged rather than aborting the pass.
func (m *maintenanceService) RunOnce(ctx context.Context) error {
	m.abandonStaleDrafts()
	m.retryStuckSends(ctx)
	return nil
}

// abandonStaleDrafts closes option sets for client drafts that were never
// answered. Abandoned drafts stop shadowing newer pending state.
func (m *maintenanceService) abandonStaleDrafts() {
	staleAge := time.Duration(m.cfg.Maintenance.StaleIntentHours) * time.Hour
	n, err := m.repo.ReplyOption().AbandonStaleIntents(staleAge)
	if err != nil {
		m.logger.Error("Failed to abandon stale drafts", zap.Error(err))
		return
	}
	if n > 0 {
		m.logger.Info("Abandoned stale drafts", zap.Int64("count", n))
	}
}

// retryStuckSends re-attempts outbound messages that were recorded but
// never confirmed sent, typically after a crash mid-send.
func (m *maintenanceService) retryStuckSends(ctx context.Context) {
	messages, err := m.repo.Message().GetStuckPending(stuckPendingAge, m.cfg.Maintenance.RetryBatchSize)
	if err != nil {
		m.logger.Error("Failed to list stuck pending messages", zap.Error(err))
		return
	}

	for _, msg := range messages {
		body := msg.OriginalText
		if msg.FilteredText.Valid {
			body = msg.FilteredText.String
		}

		externalID, err := m.transport.Send(ctx, msg.Recipient, body)
		if err != nil {
			m.logger.Warn("Retry send failed",
				zap.Int64("message_id", msg.ID), zap.Error(err))
			errMsg := err.Error()
			if uerr := m.repo.Message().UpdateStatus(msg.ID, models.MessageStatusFailed, nil, &errMsg); uerr != nil {
				m.logger.Error("Failed to mark message failed",
					zap.Int64("message_id", msg.ID), zap.Error(uerr))
			}
			continue
		}

		if err := m.repo.Message().UpdateStatus(msg.ID, models.MessageStatusSent, &externalID, nil); err != nil {
			m.logger.Error("Failed to mark retried message sent",
				zap.Int64("message_id", msg.ID), zap.Error(err))
			continue
		}
		m.logger.Info("Retried stuck message",
			zap.Int64("message_id", msg.ID), zap.String("external_id", externalID))
	}
}

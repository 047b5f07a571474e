// Package service implements the mediation logic between the record store,
// the content transform, and the SMS transport.
package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/tonefence/relay/internal/config"
	"github.com/tonefence/relay/internal/repository"
	"github.com/tonefence/relay/internal/transform"
	"github.com/tonefence/relay/internal/transport"
)

// Service bundles every service the handlers and the server lifecycle need.
type Service struct {
	Party       PartyService
	Resolver    ResolverService
	Message     MessageService
	Maintenance MaintenanceService
	Health      HealthService
}

// NewService wires the full service graph. redisClient may be nil.
func NewService(
	cfg *config.Config,
	repo repository.Repository,
	tf transform.Transform,
	tp transport.Transport,
	redisClient *redis.Client,
	logger *zap.Logger,
) *Service {
	party := NewPartyService(repo, logger)
	maintenance := NewMaintenanceService(cfg, repo, tp, logger)

	// Health reads breaker state only from adapters that expose one.
	tfStatus, _ := tf.(BreakerStatus)
	tpStatus, _ := tp.(BreakerStatus)

	return &Service{
		Party:       party,
		Resolver:    NewResolverService(cfg, repo, party, tf, tp, redisClient, logger),
		Message:     NewMessageService(repo, logger),
		Maintenance: maintenance,
		Health:      NewHealthService(repo, redisClient, maintenance, tfStatus, tpStatus, logger),
	}
}

package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/tonefence/relay/internal/repository"
)

// HealthStatus is the aggregate health report served by the health endpoint.
type HealthStatus struct {
	Status           string `json:"status"`
	Database         string `json:"database"`
	Redis            string `json:"redis"`
	Maintenance      string `json:"maintenance"`
	TransformBreaker string `json:"transform_breaker"`
	TransportBreaker string `json:"transport_breaker"`
}

type healthService struct {
	repo        repository.Repository
	redis       *redis.Client
	maintenance MaintenanceService
	transform   BreakerStatus
	transport   BreakerStatus
	logger      *zap.Logger
}

// NewHealthService aggregates component health. transform and transport may
// be nil when the adapters expose no breaker.
func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	maintenance MaintenanceService,
	tf, tp BreakerStatus,
	logger *zap.Logger,
) HealthService {
	return &healthService{
		repo:        repo,
		redis:       redisClient,
		maintenance: maintenance,
		transform:   tf,
		transport:   tp,
		logger:      logger,
	}
}

// GetHealth probes each component. The overall status is unhealthy when the
// database is unreachable, degraded when any optional component is off
// nominal, healthy otherwise.
func (s *healthService) GetHealth() *HealthStatus {
	status := &HealthStatus{
		Status:           "healthy",
		Database:         "up",
		Redis:            "up",
		Maintenance:      "stopped",
		TransformBreaker: breakerLabel(s.transform),
		TransportBreaker: breakerLabel(s.transport),
	}

	if err := s.repo.Ping(); err != nil {
		s.logger.Error("Database health check failed", zap.Error(err))
		status.Database = "down"
		status.Status = "unhealthy"
	}

	if s.redis == nil {
		status.Redis = "disabled"
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.redis.Ping(ctx).Err(); err != nil {
			s.logger.Warn("Redis health check failed", zap.Error(err))
			status.Redis = "down"
			degrade(status)
		}
	}

	if s.maintenance != nil && s.maintenance.IsRunning() {
		status.Maintenance = "running"
	} else {
		degrade(status)
	}

	if status.TransformBreaker == "open" || status.TransportBreaker == "open" {
		degrade(status)
	}

	return status
}

func degrade(status *HealthStatus) {
	if status.Status == "healthy" {
		status.Status = "degraded"
	}
}

func breakerLabel(b BreakerStatus) string {
	if b == nil {
		return "unknown"
	}
	return string(b.BreakerState())
}

// Package breaker wraps sony/gobreaker with logging and a small surface
// shared by the transform and transport clients.
package breaker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/tonefence/relay/internal/config"
)

// State is the circuit breaker state exposed to health reporting.
type State string

const (
	StateClosed   State = "closed"
	StateHalfOpen State = "half_open"
	StateOpen     State = "open"
)

type Breaker struct {
	cb     *gobreaker.CircuitBreaker
	logger *zap.Logger
}

func New(name string, cfg *config.CircuitBreakerConfig, logger *zap.Logger) *Breaker {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    time.Duration(cfg.Interval) * time.Second,
		Timeout:     time.Duration(cfg.Timeout) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.ConsecutiveFails && failureRatio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			return err == nil
		},
	}

	return &Breaker{
		cb:     gobreaker.NewCircuitBreaker(settings),
		logger: logger,
	}
}

// Execute runs the given function through the circuit breaker.
func (b *Breaker) Execute(ctx context.Context, fn func() error) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			return nil, fn()
		}
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			b.logger.Warn("Circuit breaker is open, request blocked",
				zap.String("name", b.cb.Name()))
			return fmt.Errorf("service unavailable: circuit breaker is open")
		}
		if errors.Is(err, gobreaker.ErrTooManyRequests) {
			b.logger.Warn("Circuit breaker: too many requests",
				zap.String("name", b.cb.Name()))
			return fmt.Errorf("service unavailable: too many requests")
		}
		return err
	}

	return nil
}

// State returns the current state of the circuit breaker.
func (b *Breaker) State() State {
	switch b.cb.State() {
	case gobreaker.StateHalfOpen:
		return StateHalfOpen
	case gobreaker.StateOpen:
		return StateOpen
	default:
		return StateClosed
	}
}

// Counts returns the request and failure counts of the current window.
func (b *Breaker) Counts() (requests, failures uint32) {
	counts := b.cb.Counts()
	return counts.Requests, counts.TotalFailures
}

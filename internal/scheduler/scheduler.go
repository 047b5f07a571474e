package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Scheduler runs a task at a fixed interval until stopped. The task runs
// once immediately on start, then on every tick.
type Scheduler struct {
	logger   *zap.Logger
	interval time.Duration
	taskFunc func(context.Context) error

	mu        sync.RWMutex
	isRunning bool
	stopCh    chan struct{}
	doneCh    chan struct{}
}

// NewScheduler creates a scheduler for the given task.
func NewScheduler(logger *zap.Logger, interval time.Duration, taskFunc func(context.Context) error) *Scheduler {
	return &Scheduler{
		logger:   logger,
		interval: interval,
		taskFunc: taskFunc,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the background loop. It returns ErrSchedulerAlreadyRunning
// if the loop is already active.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return ErrSchedulerAlreadyRunning
	}

	s.isRunning = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Scheduler started", zap.Duration("interval", s.interval))
	return nil
}

// Stop signals the loop to exit and waits for the in-flight run to finish.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	s.mu.Unlock()

	close(s.stopCh)
	<-s.doneCh

	s.mu.Lock()
	s.isRunning = false
	s.mu.Unlock()

	s.logger.Info("Scheduler stopped")
	return nil
}

// IsRunning reports whether the loop is active.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.doneCh)
	defer func() {
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
	}()

	if err := s.runTask(ctx); err != nil {
		s.logger.Error("Initial task run failed", zap.Error(err))
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler context canceled")
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			if err := s.runTask(ctx); err != nil {
				s.logger.Error("Scheduled task run failed", zap.Error(err))
			}
		}
	}
}

// runTask executes one run with a deadline short of the next tick, so a
// slow run cannot pile up behind the ticker. Panics are contained here to
// keep one bad run from killing the loop.
func (s *Scheduler) runTask(ctx context.Context) (err error) {
	budget := s.interval - time.Second
	if budget <= 0 {
		budget = s.interval
	}
	taskCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()

	start := time.Now()
	err = s.taskFunc(taskCtx)
	s.logger.Debug("Task run finished",
		zap.Duration("duration", time.Since(start)),
		zap.Bool("ok", err == nil),
	)
	return err
}

package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// SyncRunner executes one pass over every due sync configuration
type SyncRunner interface {
	RunDue(ctx context.Context)
}

// SheetsSyncSchedulerConfig holds configuration for the sheets sync scheduler
type SheetsSyncSchedulerConfig struct {
	// Enabled indicates if the scheduler runs at all
	Enabled bool
	// CheckInterval is how often due configurations are checked
	CheckInterval time.Duration
	// PassTimeout is the maximum time one full pass may take
	PassTimeout time.Duration
}

// DefaultSheetsSyncSchedulerConfig returns default configuration
func DefaultSheetsSyncSchedulerConfig() SheetsSyncSchedulerConfig {
	return SheetsSyncSchedulerConfig{
		Enabled:       true,
		CheckInterval: 30 * time.Minute,
		PassTimeout:   15 * time.Minute,
	}
}

// SheetsSyncScheduler periodically triggers spreadsheet sync passes.
// Passes never overlap: if a tick fires while the previous pass is still
// running, the tick is skipped.
type SheetsSyncScheduler struct {
	config SheetsSyncSchedulerConfig
	runner SyncRunner
	logger *zap.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
	inPass    atomic.Bool
}

// NewSheetsSyncScheduler creates a new sheets sync scheduler
func NewSheetsSyncScheduler(config SheetsSyncSchedulerConfig, runner SyncRunner, logger *zap.Logger) *SheetsSyncScheduler {
	if config.CheckInterval <= 0 {
		config.CheckInterval = DefaultSheetsSyncSchedulerConfig().CheckInterval
	}
	if config.PassTimeout <= 0 {
		config.PassTimeout = DefaultSheetsSyncSchedulerConfig().PassTimeout
	}

	return &SheetsSyncScheduler{
		config: config,
		runner: runner,
		logger: logger,
	}
}

// Start starts the scheduler loop
func (s *SheetsSyncScheduler) Start(ctx context.Context) error {
	if !s.config.Enabled {
		s.logger.Info("Sheets sync scheduler disabled")
		return nil
	}

	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.loop(ctx)

	s.logger.Info("Sheets sync scheduler started",
		zap.Duration("check_interval", s.config.CheckInterval),
	)
	return nil
}

// Stop gracefully stops the scheduler
func (s *SheetsSyncScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Sheets sync scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Sheets sync scheduler stop timed out")
		return ctx.Err()
	}
}

func (s *SheetsSyncScheduler) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.CheckInterval)
	defer ticker.Stop()

	// run once on startup so a restart never waits a full interval
	s.runPass(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runPass(ctx)
		}
	}
}

// TriggerNow runs a pass immediately unless one is already in flight
func (s *SheetsSyncScheduler) TriggerNow(ctx context.Context) bool {
	if s.inPass.Load() {
		return false
	}
	s.runPass(ctx)
	return true
}

func (s *SheetsSyncScheduler) runPass(ctx context.Context) {
	if !s.inPass.CompareAndSwap(false, true) {
		s.logger.Warn("Skipping sync tick, previous pass still running")
		return
	}
	defer s.inPass.Store(false)

	passCtx, cancel := context.WithTimeout(ctx, s.config.PassTimeout)
	defer cancel()

	started := time.Now()
	s.runner.RunDue(passCtx)
	s.logger.Debug("Sync pass finished", zap.Duration("elapsed", time.Since(started)))
}

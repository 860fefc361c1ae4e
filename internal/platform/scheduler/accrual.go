package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	portssvc "github.com/SscSPs/autoinvest_app/internal/core/ports/services"
	"github.com/SscSPs/autoinvest_app/internal/middleware"
	"github.com/robfig/cron/v3"
)

// AccrualScheduler turns cron ticks (and manual triggers) into daily accrual passes.
// It holds no ledger state: the day key is derived from the clock on every trigger and
// repeated triggers for the same day are absorbed by the per-asset guard.
type AccrualScheduler struct {
	accrual  portssvc.AccrualSvc
	location *time.Location
	clock    func() time.Time
	logger   *slog.Logger
	cron     *cron.Cron

	// One pass at a time within this process; other processes are covered by the store.
	runMu   sync.Mutex
	stopped bool
}

// ErrStopped is returned by Trigger once Stop has completed.
var ErrStopped = errors.New("accrual scheduler stopped")

// Option configures an AccrualScheduler.
type Option func(*AccrualScheduler)

// WithClock overrides time.Now.
func WithClock(clock func() time.Time) Option {
	return func(s *AccrualScheduler) {
		s.clock = clock
	}
}

// NewAccrualScheduler registers spec (standard 5-field cron) in location.
func NewAccrualScheduler(accrual portssvc.AccrualSvc, spec string, location *time.Location, logger *slog.Logger, options ...Option) (*AccrualScheduler, error) {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &AccrualScheduler{
		accrual:  accrual,
		location: location,
		clock:    time.Now,
		logger:   logger.With(slog.String("component", "accrual_scheduler")),
	}
	for _, option := range options {
		option(s)
	}

	cronLogger := slogCronLogger{logger: s.logger}
	s.cron = cron.New(
		cron.WithLocation(location),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)
	if _, err := s.cron.AddFunc(spec, s.runScheduled); err != nil {
		return nil, fmt.Errorf("invalid accrual schedule %q: %w", spec, err)
	}
	return s, nil
}

// Start begins firing on schedule. It does not block.
func (s *AccrualScheduler) Start() {
	s.cron.Start()
	if entries := s.cron.Entries(); len(entries) > 0 {
		s.logger.Info("Accrual scheduler started", slog.Time("next_run", entries[0].Next))
	}
}

// Stop prevents further ticks and waits for any running pass, scheduled or triggered by hand,
// to finish or for ctx to expire. Later calls to Trigger fail with ErrStopped.
func (s *AccrualScheduler) Stop(ctx context.Context) error {
	cronDone := s.cron.Stop().Done()
	done := make(chan struct{})
	go func() {
		<-cronDone
		s.runMu.Lock()
		s.stopped = true
		s.runMu.Unlock()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Accrual scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("accrual scheduler did not stop in time: %w", ctx.Err())
	}
}

// Day returns the accrual day key for the current instant in the scheduler's location.
func (s *AccrualScheduler) Day() time.Time {
	return domain.AccrualDay(s.clock().In(s.location))
}

// Trigger runs one accrual pass for the current day.
func (s *AccrualScheduler) Trigger(ctx context.Context) (domain.AccrualReport, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if s.stopped {
		return domain.AccrualReport{}, ErrStopped
	}

	return s.accrual.ApplyDailyAccrual(ctx, s.Day())
}

func (s *AccrualScheduler) runScheduled() {
	report, err := s.Trigger(middleware.WithLogger(context.Background(), s.logger))
	if err != nil {
		s.logger.Error("Scheduled accrual pass failed", slog.String("error", err.Error()))
		return
	}
	if report.Failed > 0 {
		s.logger.Warn("Scheduled accrual pass finished with failures",
			slog.Int("failed", report.Failed), slog.Int("paid", report.Paid))
	}
}

// slogCronLogger adapts slog to cron.Logger.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l slogCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l slogCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append([]interface{}{slog.String("error", err.Error())}, keysAndValues...)...)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/autoinvest_app/internal/apperrors"
	"github.com/SscSPs/autoinvest_app/internal/middleware"
	"github.com/SscSPs/autoinvest_app/internal/utils"
	"github.com/shopspring/decimal"
)

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time

// BaseService provides common functionality for all services
type BaseService struct {
	now Clock
}

func newBaseService() BaseService {
	return BaseService{now: time.Now}
}

// Now returns the service clock's current time in UTC.
func (s *BaseService) Now() time.Time {
	if s.now == nil {
		return time.Now().UTC()
	}
	return s.now().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// ServiceOption configures the shared parts of a service.
type ServiceOption func(*BaseService)

// WithClock replaces time.Now as the service clock.
func WithClock(clock Clock) ServiceOption {
	return func(s *BaseService) {
		s.now = clock
	}
}

func (s *BaseService) apply(options []ServiceOption) {
	for _, option := range options {
		option(s)
	}
}

// validateAmount rejects non-positive amounts and amounts finer than the 2-decimal
// precision the ledger stores, so nothing is rounded silently.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero, got %s", apperrors.ErrInvalidAmount, amount.String())
	}
	if !utils.HasMoneyPrecision(amount) {
		return fmt.Errorf("%w: amount %s has more than two decimal places", apperrors.ErrInvalidAmount, amount.String())
	}
	if !utils.WithinMoneyRange(amount) {
		return fmt.Errorf("%w: amount %s exceeds the ledger maximum", apperrors.ErrInvalidAmount, amount.String())
	}
	return nil
}

package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_ledger_app/internal/middleware"
	"github.com/google/uuid"
)

// BaseService provides common functionality for all services
type BaseService struct {
	clock func() time.Time
	newID func() string
}

func newBaseService() BaseService {
	return BaseService{
		clock: func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Now returns the service clock in UTC.
func (s *BaseService) Now() time.Time {
	return s.clock()
}

// NewID returns a fresh entity identifier.
func (s *BaseService) NewID() string {
	return s.newID()
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

// ServiceOption configures the shared parts of any service.
type ServiceOption func(*BaseService)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(b *BaseService) {
		b.clock = clock
	}
}

// WithIDGenerator replaces uuid generation, mainly for tests.
func WithIDGenerator(gen func() string) ServiceOption {
	return func(b *BaseService) {
		b.newID = gen
	}
}

func applyOptions(b *BaseService, options []ServiceOption) {
	for _, option := range options {
		option(b)
	}
}

// uniqueStrings removes duplicates while keeping first-seen order.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

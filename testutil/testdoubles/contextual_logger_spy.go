package testdoubles

import (
	"context"
	"sync"

	"github.com/aiswo/librarydesk/tablestore"
)

// ContextualLoggerSpy is a ContextualLogger implementation that captures contextual logging calls for testing.
type ContextualLoggerSpy struct {
	records []SpyContextualLogRecord
	mu      sync.Mutex
}

// SpyContextualLogRecord represents a recorded contextual log call.
type SpyContextualLogRecord struct {
	Level   string
	Message string
	Args    []any
	Context context.Context
}

// NewContextualLoggerSpy creates a new ContextualLoggerSpy instance.
func NewContextualLoggerSpy() *ContextualLoggerSpy {
	return &ContextualLoggerSpy{}
}

// DebugContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) DebugContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "debug", msg, args)
}

// InfoContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) InfoContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "info", msg, args)
}

// WarnContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) WarnContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "warn", msg, args)
}

// ErrorContext implements the ContextualLogger interface for testing.
func (s *ContextualLoggerSpy) ErrorContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "error", msg, args)
}

// HasRecord checks if a record with the given level and message was captured.
func (s *ContextualLoggerSpy) HasRecord(level, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.Level == level && record.Message == message {
			return true
		}
	}

	return false
}

// Records returns a copy of all captured records.
func (s *ContextualLoggerSpy) Records() []SpyContextualLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyContextualLogRecord(nil), s.records...)
}

func (s *ContextualLoggerSpy) record(ctx context.Context, level, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyContextualLogRecord{
		Level:   level,
		Message: msg,
		Args:    args,
		Context: ctx,
	})
}

var _ tablestore.ContextualLogger = (*ContextualLoggerSpy)(nil)

package testdoubles

import (
	"context"
	"log/slog"
	"sync"
)

// LogHandlerSpy is a slog.Handler implementation that captures log records for testing.
type LogHandlerSpy struct {
	records []slog.Record
	mu      sync.Mutex
}

// NewLogHandlerSpy creates a new LogHandlerSpy.
func NewLogHandlerSpy() *LogHandlerSpy {
	return &LogHandlerSpy{records: make([]slog.Record, 0)}
}

// Handle implements slog.Handler interface.
func (s *LogHandlerSpy) Handle(_ context.Context, record slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)

	return nil
}

// Enabled implements slog.Handler interface.
func (s *LogHandlerSpy) Enabled(_ context.Context, _ slog.Level) bool {
	return true // Always enabled for testing
}

// WithAttrs implements slog.Handler interface.
func (s *LogHandlerSpy) WithAttrs(_ []slog.Attr) slog.Handler {
	return s
}

// WithGroup implements slog.Handler interface.
func (s *LogHandlerSpy) WithGroup(_ string) slog.Handler {
	return s
}

// GetRecordCount returns the number of captured log records.
func (s *LogHandlerSpy) GetRecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// HasLog checks if there's a record with the given level and message.
func (s *LogHandlerSpy) HasLog(level slog.Level, message string) bool {
	_, found := s.find(level, message)
	return found
}

// AttrOf returns the value of attribute key on the first record with the given level and message.
func (s *LogHandlerSpy) AttrOf(level slog.Level, message, key string) (slog.Value, bool) {
	record, found := s.find(level, message)
	if !found {
		return slog.Value{}, false
	}

	var value slog.Value
	var hasAttr bool
	record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == key {
			value = attr.Value
			hasAttr = true
			return false // Stop iteration
		}

		return true
	})

	return value, hasAttr
}

func (s *LogHandlerSpy) find(level slog.Level, message string) (slog.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.Level == level && record.Message == message {
			return record, true
		}
	}

	return slog.Record{}, false
}

package postgresengine

import (
	"errors"
	"regexp"

	"github.com/aiswo/librarydesk/tablestore"
)

// ErrInvalidSQLTableName is returned when WithTableName is given something that is not a plain SQL identifier.
var ErrInvalidSQLTableName = errors.New("sql table name must match [a-z_][a-z0-9_]*")

var sqlIdentifier = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Option defines a functional option for configuring a Backend.
type Option func(*Backend) error

// WithTableName sets the PostgreSQL table holding all logical tables.
func WithTableName(tableName string) Option {
	return func(b *Backend) error {
		if tableName == "" {
			return tablestore.ErrEmptyTableName
		}

		if !sqlIdentifier.MatchString(tableName) {
			return ErrInvalidSQLTableName
		}

		b.sqlTableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the Backend.
// Debug level receives the executed SQL, Error level receives failures.
func WithLogger(logger tablestore.Logger) Option {
	return func(b *Backend) error {
		b.instrumentation.Logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Backend.
func WithContextualLogger(logger tablestore.ContextualLogger) Option {
	return func(b *Backend) error {
		b.instrumentation.ContextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Backend.
func WithMetrics(collector tablestore.MetricsCollector) Option {
	return func(b *Backend) error {
		b.instrumentation.MetricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Backend.
func WithTracing(collector tablestore.TracingCollector) Option {
	return func(b *Backend) error {
		b.instrumentation.TracingCollector = collector
		return nil
	}
}

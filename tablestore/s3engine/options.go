package s3engine

import (
	"errors"
	"strings"

	"github.com/aiswo/librarydesk/tablestore"
)

// ErrEmptyBucket is returned when no bucket is configured.
var ErrEmptyBucket = errors.New("bucket must not be empty")

// ErrNilClient is returned when no S3 client is given.
var ErrNilClient = errors.New("s3 client must not be nil")

// Option defines a functional option for configuring a Backend.
type Option func(*Backend) error

// WithPrefix places all table objects below prefix. A trailing slash is added when missing.
func WithPrefix(prefix string) Option {
	return func(b *Backend) error {
		if prefix != "" && !strings.HasSuffix(prefix, "/") {
			prefix += "/"
		}

		b.prefix = prefix

		return nil
	}
}

// WithLogger sets the logger for the Backend.
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

package fileengine

import (
	"errors"
	"os"

	"github.com/aiswo/librarydesk/tablestore"
)

var (
	// ErrEmptyDirectory is returned when WithDirectory is given an empty path.
	ErrEmptyDirectory = errors.New("directory must not be empty")

	// ErrInvalidExtension is returned when WithExtension is given an extension without a leading dot.
	ErrInvalidExtension = errors.New("extension must start with a dot")
)

// Option defines a functional option for configuring a Backend.
type Option func(*Backend) error

// WithDirectory sets the directory holding the table files. It is created on first Save.
func WithDirectory(dir string) Option {
	return func(b *Backend) error {
		if dir == "" {
			return ErrEmptyDirectory
		}

		b.dir = dir

		return nil
	}
}

// WithExtension sets the file extension appended to table names (default ".csv").
func WithExtension(ext string) Option {
	return func(b *Backend) error {
		if len(ext) < 2 || ext[0] != '.' {
			return ErrInvalidExtension
		}

		b.extension = ext

		return nil
	}
}

// WithFileMode sets the permission bits of written table files (default 0o644).
func WithFileMode(mode os.FileMode) Option {
	return func(b *Backend) error {
		b.fileMode = mode
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

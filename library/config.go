package library

import (
	"github.com/aiswo/librarydesk/tablestore"
)

const (
	// DefaultLedgerTable is the ledger table name used when StoreConfig leaves it empty.
	DefaultLedgerTable = "library_data"

	// DefaultRegistryTable is the registry table name used when StoreConfig leaves it empty.
	DefaultRegistryTable = "registration_newuser"
)

// StoreConfig tells a store where its table lives.
type StoreConfig struct {
	Backend       tablestore.Backend
	LedgerTable   tablestore.TableNameString
	RegistryTable tablestore.TableNameString
}

func (c StoreConfig) ledgerTable() string {
	if c.LedgerTable == "" {
		return DefaultLedgerTable
	}

	return c.LedgerTable
}

func (c StoreConfig) registryTable() string {
	if c.RegistryTable == "" {
		return DefaultRegistryTable
	}

	return c.RegistryTable
}

// Option defines a functional option for configuring a store.
type Option func(*storeOptions) error

type storeOptions struct {
	logger           tablestore.Logger
	contextualLogger tablestore.ContextualLogger
	metricsCollector tablestore.MetricsCollector
	tracingCollector tablestore.TracingCollector
}

// WithLogger sets the logger used by the store's operations.
func WithLogger(logger tablestore.Logger) Option {
	return func(o *storeOptions) error {
		o.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger used by the store's operations.
func WithContextualLogger(logger tablestore.ContextualLogger) Option {
	return func(o *storeOptions) error {
		o.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector used by the store's operations.
func WithMetrics(collector tablestore.MetricsCollector) Option {
	return func(o *storeOptions) error {
		o.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector used by the store's operations.
func WithTracing(collector tablestore.TracingCollector) Option {
	return func(o *storeOptions) error {
		o.tracingCollector = collector
		return nil
	}
}

func buildOptions(config StoreConfig, opts []Option) (storeOptions, error) {
	var o storeOptions

	if config.Backend == nil {
		return o, tablestore.ErrNilBackend
	}

	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return o, err
		}
	}

	return o, nil
}

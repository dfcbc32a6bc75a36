package observable

import (
	"context"
	"time"

	"github.com/aiswo/librarydesk/library/shared/shell"
)

// QueryWrapper instruments a core query handler with metrics, tracing and logging.
type QueryWrapper[Q shell.Query, R shell.QueryResult] struct {
	coreHandler      shell.CoreQueryHandler[Q, R]
	queryType        string
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	contextualLogger shell.ContextualLogger
	logger           shell.Logger
}

// NewQueryWrapper creates a new observable wrapper around the core query handler.
func NewQueryWrapper[Q shell.Query, R shell.QueryResult](
	coreHandler shell.CoreQueryHandler[Q, R],
	opts ...QueryOption[Q, R],
) (*QueryWrapper[Q, R], error) {
	var zeroQuery Q

	wrapper := &QueryWrapper[Q, R]{
		coreHandler: coreHandler,
		queryType:   zeroQuery.QueryType(),
	}

	for _, opt := range opts {
		if err := opt(wrapper); err != nil {
			return nil, err
		}
	}

	return wrapper, nil
}

// Handle delegates to the core handler. A degraded load is reported as status "degraded", not as a failure.
func (w *QueryWrapper[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	queryStart := time.Now()
	ctx, span := shell.StartQuerySpan(ctx, w.tracingCollector, w.queryType)
	shell.LogStart(ctx, w.logger, w.contextualLogger, shell.LogMsgQueryStarted, shell.LogAttrQueryType, w.queryType)

	result, err := w.coreHandler.Handle(ctx, query)
	duration := time.Since(queryStart)

	var status string

	switch {
	case err == nil:
		status = shell.StatusSuccess
		shell.LogQueryCompleted(ctx, w.logger, w.contextualLogger, w.queryType, result.Count(), duration)
	case shell.IsDegradedLoad(err):
		status = shell.StatusDegraded
		shell.LogDegradedLoad(ctx, w.logger, w.contextualLogger, shell.LogAttrQueryType, w.queryType, err)
	default:
		status = shell.ErrorStatus(err)
		shell.LogFailure(ctx, w.logger, w.contextualLogger, shell.LogMsgQueryFailed, shell.LogAttrQueryType, w.queryType, err)
	}

	shell.RecordQueryMetrics(ctx, w.metricsCollector, w.queryType, status, result.Count(), duration)
	shell.FinishSpan(w.tracingCollector, span, status, duration, err)

	return result, err
}

// QueryOption defines a functional option for configuring QueryWrapper.
type QueryOption[Q shell.Query, R shell.QueryResult] func(*QueryWrapper[Q, R]) error

// WithQueryMetrics sets the metrics collector for the QueryWrapper.
func WithQueryMetrics[Q shell.Query, R shell.QueryResult](collector shell.MetricsCollector) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.metricsCollector = collector
		return nil
	}
}

// WithQueryTracing sets the tracing collector for the QueryWrapper.
func WithQueryTracing[Q shell.Query, R shell.QueryResult](collector shell.TracingCollector) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.tracingCollector = collector
		return nil
	}
}

// WithQueryContextualLogging sets the contextual logger for the QueryWrapper.
func WithQueryContextualLogging[Q shell.Query, R shell.QueryResult](logger shell.ContextualLogger) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.contextualLogger = logger
		return nil
	}
}

// WithQueryLogging sets the basic logger for the QueryWrapper.
func WithQueryLogging[Q shell.Query, R shell.QueryResult](logger shell.Logger) QueryOption[Q, R] {
	return func(w *QueryWrapper[Q, R]) error {
		w.logger = logger
		return nil
	}
}

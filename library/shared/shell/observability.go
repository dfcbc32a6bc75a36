package shell

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/aiswo/librarydesk/tablestore"
)

const (
	// CommandHandlerDurationMetric tracks command handler execution duration (OpenTelemetry-compatible).
	CommandHandlerDurationMetric = "commandhandler_handle_duration_seconds"

	// CommandHandlerCallsMetric tracks total command handler calls.
	CommandHandlerCallsMetric = "commandhandler_handle_calls_total"

	// CommandHandlerRejectedMetric tracks commands rejected by a business rule.
	CommandHandlerRejectedMetric = "commandhandler_rejected_operations_total"

	// CommandHandlerDegradedMetric tracks commands decided on an empty table after a failed load.
	CommandHandlerDegradedMetric = "commandhandler_degraded_loads_total"

	// QueryHandlerDurationMetric tracks query handler execution duration (OpenTelemetry-compatible).
	QueryHandlerDurationMetric = "queryhandler_handle_duration_seconds"

	// QueryHandlerCallsMetric tracks total query handler calls.
	QueryHandlerCallsMetric = "queryhandler_handle_calls_total"

	// QueryHandlerResultSizeMetric records how many items a query returned.
	QueryHandlerResultSizeMetric = "queryhandler_result_size"

	// StatusSuccess indicates successful completion.
	StatusSuccess = "success"

	// StatusRejected indicates a business rule violation.
	StatusRejected = "rejected"

	// StatusError indicates a storage error.
	StatusError = "error"

	// StatusDegraded indicates a query answered from an empty table after a failed load.
	StatusDegraded = "degraded"

	// StatusCanceled indicates the operation was canceled via its context.
	StatusCanceled = "canceled"

	// StatusTimeout indicates the operation ran into its context deadline.
	StatusTimeout = "timeout"

	// LogMsgCommandStarted is logged when command processing begins.
	LogMsgCommandStarted = "command handler started"

	// LogMsgCommandCompleted is logged when command processing ends with success or rejection.
	LogMsgCommandCompleted = "command handler completed"

	// LogMsgCommandFailed is logged when command processing fails.
	LogMsgCommandFailed = "command handler failed"

	// LogMsgQueryStarted is logged when query processing begins.
	LogMsgQueryStarted = "query handler started"

	// LogMsgQueryCompleted is logged when query processing succeeds.
	LogMsgQueryCompleted = "query handler completed"

	// LogMsgQueryFailed is logged when query processing fails.
	LogMsgQueryFailed = "query handler failed"

	// LogMsgDegradedLoad is logged when a table could not be loaded and an empty one was used instead.
	LogMsgDegradedLoad = "table unreadable, continuing with an empty table"

	// LogAttrCommandType identifies the command type in logs.
	LogAttrCommandType = "command_type"

	// LogAttrQueryType identifies the query type in logs.
	LogAttrQueryType = "query_type"

	// LogAttrStatus indicates the processing status.
	LogAttrStatus = "status"

	// LogAttrDurationMS indicates the processing duration in milliseconds.
	LogAttrDurationMS = "duration_ms"

	// LogAttrBusinessOutcome classifies the business result.
	LogAttrBusinessOutcome = "business_outcome"

	// LogAttrReason carries the rejection reason.
	LogAttrReason = "reason"

	// LogAttrResultCount carries the number of items a query returned.
	LogAttrResultCount = "result_count"

	// LogAttrError contains error details.
	LogAttrError = "error"

	// SpanNameCommandHandle is the tracing span name for command handling.
	SpanNameCommandHandle = "commandhandler.handle"

	// SpanNameQueryHandle is the tracing span name for query handling.
	SpanNameQueryHandle = "queryhandler.handle"
)

// Interface aliases for the observability interfaces, so feature slices do not import tablestore for them.

// MetricsCollector interface for collecting handler performance metrics.
type MetricsCollector = tablestore.MetricsCollector

// ContextualMetricsCollector extends MetricsCollector with context-aware methods.
type ContextualMetricsCollector = tablestore.ContextualMetricsCollector

// TracingCollector interface for distributed tracing in handlers.
type TracingCollector = tablestore.TracingCollector

// SpanContext represents an active tracing span.
type SpanContext = tablestore.SpanContext

// ContextualLogger interface for context-aware logging in handlers.
type ContextualLogger = tablestore.ContextualLogger

// Logger interface for basic logging in handlers.
type Logger = tablestore.Logger

// BuildCommandLabels creates standard metric labels for command handler operations.
func BuildCommandLabels(commandType, status string) map[string]string {
	return map[string]string{
		LogAttrCommandType: commandType,
		LogAttrStatus:      status,
	}
}

// BuildQueryLabels creates standard metric labels for query handler operations.
func BuildQueryLabels(queryType, status string) map[string]string {
	return map[string]string{
		LogAttrQueryType: queryType,
		LogAttrStatus:    status,
	}
}

// RecordCommandMetrics records duration and call count for a command, plus the rejection and degradation counters.
func RecordCommandMetrics(
	ctx context.Context,
	collector MetricsCollector,
	commandType string,
	status string,
	degraded bool,
	duration time.Duration,
) {
	if collector == nil {
		return
	}

	labels := BuildCommandLabels(commandType, status)
	recordDuration(ctx, collector, CommandHandlerDurationMetric, duration, labels)
	incrementCounter(ctx, collector, CommandHandlerCallsMetric, labels)

	if status == StatusRejected {
		incrementCounter(ctx, collector, CommandHandlerRejectedMetric, labels)
	}

	if degraded {
		incrementCounter(ctx, collector, CommandHandlerDegradedMetric, labels)
	}
}

// RecordQueryMetrics records duration, call count and result size for a query.
func RecordQueryMetrics(
	ctx context.Context,
	collector MetricsCollector,
	queryType string,
	status string,
	resultCount int,
	duration time.Duration,
) {
	if collector == nil {
		return
	}

	labels := BuildQueryLabels(queryType, status)
	recordDuration(ctx, collector, QueryHandlerDurationMetric, duration, labels)
	incrementCounter(ctx, collector, QueryHandlerCallsMetric, labels)

	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, QueryHandlerResultSizeMetric, float64(resultCount), labels)
	} else {
		collector.RecordValue(QueryHandlerResultSizeMetric, float64(resultCount), labels)
	}
}

// StartCommandSpan starts a tracing span for a command.
// Returns the original context and nil if tracing is disabled.
func StartCommandSpan(ctx context.Context, tracingCollector TracingCollector, commandType string) (context.Context, SpanContext) {
	if tracingCollector == nil {
		return ctx, nil
	}

	return tracingCollector.StartSpan(ctx, SpanNameCommandHandle, map[string]string{LogAttrCommandType: commandType})
}

// StartQuerySpan starts a tracing span for a query.
func StartQuerySpan(ctx context.Context, tracingCollector TracingCollector, queryType string) (context.Context, SpanContext) {
	if tracingCollector == nil {
		return ctx, nil
	}

	return tracingCollector.StartSpan(ctx, SpanNameQueryHandle, map[string]string{LogAttrQueryType: queryType})
}

// FinishSpan completes a command or query span with the operation outcome.
func FinishSpan(tracingCollector TracingCollector, span SpanContext, status string, duration time.Duration, err error) {
	if tracingCollector == nil || span == nil {
		return
	}

	attrs := map[string]string{
		LogAttrStatus:     status,
		LogAttrDurationMS: strconv.FormatFloat(tablestore.ToMilliseconds(duration), 'f', 2, 64),
	}

	if err != nil {
		attrs[LogAttrError] = err.Error()
	}

	tracingCollector.FinishSpan(span, status, attrs)
}

// LogStart logs the beginning of command or query processing. typeAttr is LogAttrCommandType or LogAttrQueryType.
func LogStart(ctx context.Context, logger Logger, contextualLogger ContextualLogger, msg, typeAttr, typeName string) {
	logInfo(ctx, logger, contextualLogger, msg, typeAttr, typeName)
}

// LogCommandCompleted logs a command that ended with success or rejection.
func LogCommandCompleted(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	commandType string,
	result HandlerResult,
	duration time.Duration,
) {
	args := []any{
		LogAttrCommandType, commandType,
		LogAttrBusinessOutcome, result.Outcome,
		LogAttrDurationMS, tablestore.ToMilliseconds(duration),
	}

	if result.Reason != nil {
		args = append(args, LogAttrReason, result.Reason.Error())
	}

	logInfo(ctx, logger, contextualLogger, LogMsgCommandCompleted, args...)
}

// LogQueryCompleted logs a successful query.
func LogQueryCompleted(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	queryType string,
	resultCount int,
	duration time.Duration,
) {
	logInfo(ctx, logger, contextualLogger, LogMsgQueryCompleted,
		LogAttrQueryType, queryType,
		LogAttrResultCount, resultCount,
		LogAttrDurationMS, tablestore.ToMilliseconds(duration),
	)
}

// LogDegradedLoad logs a load failure that was degraded to an empty table at warn level.
func LogDegradedLoad(ctx context.Context, logger Logger, contextualLogger ContextualLogger, typeAttr, typeName string, err error) {
	args := []any{typeAttr, typeName, LogAttrError, err.Error()}

	if contextualLogger != nil {
		contextualLogger.WarnContext(ctx, LogMsgDegradedLoad, args...)
	} else if logger != nil {
		logger.Warn(LogMsgDegradedLoad, args...)
	}
}

// LogFailure logs a failed command or query at error level.
func LogFailure(ctx context.Context, logger Logger, contextualLogger ContextualLogger, msg, typeAttr, typeName string, err error) {
	args := []any{typeAttr, typeName, LogAttrError, err.Error()}

	if contextualLogger != nil {
		contextualLogger.ErrorContext(ctx, msg, args...)
	} else if logger != nil {
		logger.Error(msg, args...)
	}
}

// ErrorStatus classifies an error as StatusCanceled, StatusTimeout or StatusError.
func ErrorStatus(err error) string {
	switch {
	case IsCancellationError(err):
		return StatusCanceled
	case IsTimeoutError(err):
		return StatusTimeout
	default:
		return StatusError
	}
}

// IsCancellationError checks if the error is due to context cancellation.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.Canceled)
}

// IsTimeoutError checks if the error is due to a context deadline.
func IsTimeoutError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

func logInfo(ctx context.Context, logger Logger, contextualLogger ContextualLogger, msg string, args ...any) {
	if contextualLogger != nil {
		contextualLogger.InfoContext(ctx, msg, args...)
	} else if logger != nil {
		logger.Info(msg, args...)
	}
}

func recordDuration(ctx context.Context, collector MetricsCollector, metric string, d time.Duration, labels map[string]string) {
	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metric, d, labels)
	} else {
		collector.RecordDuration(metric, d, labels)
	}
}

func incrementCounter(ctx context.Context, collector MetricsCollector, metric string, labels map[string]string) {
	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
	} else {
		collector.IncrementCounter(metric, labels)
	}
}

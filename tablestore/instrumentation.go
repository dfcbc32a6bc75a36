package tablestore

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"
)

const (
	// MetricLoadDuration tracks Backend.Load durations.
	MetricLoadDuration = "tablestore_load_duration_seconds"

	// MetricSaveDuration tracks Backend.Save durations.
	MetricSaveDuration = "tablestore_save_duration_seconds"

	// MetricRows records the number of data rows loaded or saved.
	MetricRows = "tablestore_rows"

	// MetricErrors counts failed Backend operations.
	MetricErrors = "tablestore_errors_total"

	// OperationLoad labels load operations.
	OperationLoad = "load"

	// OperationSave labels save operations.
	OperationSave = "save"

	// StatusSuccess marks a successful operation.
	StatusSuccess = "success"

	// StatusError marks a failed operation.
	StatusError = "error"

	// StatusNotFound marks a load of a table that does not exist yet.
	StatusNotFound = "not_found"

	// LogAttrEngine identifies the engine in logs, metrics and spans.
	LogAttrEngine = "engine"

	// LogAttrTable identifies the table in logs, metrics and spans.
	LogAttrTable = "table"

	// LogAttrOperation identifies the operation in logs, metrics and spans.
	LogAttrOperation = "operation"

	// LogAttrStatus carries the outcome of an operation.
	LogAttrStatus = "status"

	// LogAttrRowCount carries the number of data rows.
	LogAttrRowCount = "row_count"

	// LogAttrDurationMS carries the operation duration in milliseconds.
	LogAttrDurationMS = "duration_ms"

	// LogAttrError carries error details.
	LogAttrError = "error"

	logMsgOperationCompleted = "tablestore operation completed"
	logMsgOperationFailed    = "tablestore operation failed"
	spanNamePrefix           = "tablestore."
)

// Instrumentation bundles the optional observability collaborators of a Backend engine.
// A zero Instrumentation is valid and records nothing.
type Instrumentation struct {
	Engine           string
	Logger           Logger
	ContextualLogger ContextualLogger
	MetricsCollector MetricsCollector
	TracingCollector TracingCollector
}

// Observation is one in-flight Backend operation started with Instrumentation.Start.
type Observation struct {
	instrumentation Instrumentation
	ctx             context.Context
	span            SpanContext
	operation       string
	table           string
	start           time.Time
}

// Start begins observing a Backend operation and returns the (possibly span-carrying) context.
func (i Instrumentation) Start(ctx context.Context, operation, table string) (context.Context, *Observation) {
	obs := &Observation{
		instrumentation: i,
		operation:       operation,
		table:           table,
		start:           time.Now(),
	}

	if i.TracingCollector != nil {
		ctx, obs.span = i.TracingCollector.StartSpan(ctx, spanNamePrefix+operation, map[string]string{
			LogAttrEngine:    i.Engine,
			LogAttrTable:     table,
			LogAttrOperation: operation,
		})
	}

	obs.ctx = ctx

	return ctx, obs
}

// Finish records the outcome of the operation. A nil err is a success, ErrTableNotFound is its own status.
func (o *Observation) Finish(rowCount int, err error) {
	duration := time.Since(o.start)
	status := statusFor(err)
	i := o.instrumentation

	labels := map[string]string{
		LogAttrEngine:    i.Engine,
		LogAttrTable:     o.table,
		LogAttrOperation: o.operation,
		LogAttrStatus:    status,
	}

	metricName := MetricLoadDuration
	if o.operation == OperationSave {
		metricName = MetricSaveDuration
	}

	recordDuration(o.ctx, i.MetricsCollector, metricName, duration, labels)

	if status == StatusError {
		incrementCounter(o.ctx, i.MetricsCollector, MetricErrors, labels)
	} else {
		recordValue(o.ctx, i.MetricsCollector, MetricRows, float64(rowCount), labels)
	}

	if i.TracingCollector != nil && o.span != nil {
		attrs := map[string]string{
			LogAttrRowCount:   strconv.Itoa(rowCount),
			LogAttrDurationMS: strconv.FormatFloat(ToMilliseconds(duration), 'f', 3, 64),
		}
		if err != nil {
			attrs[LogAttrError] = err.Error()
		}

		i.TracingCollector.FinishSpan(o.span, status, attrs)
	}

	args := []any{
		LogAttrEngine, i.Engine,
		LogAttrTable, o.table,
		LogAttrOperation, o.operation,
		LogAttrStatus, status,
		LogAttrRowCount, rowCount,
		LogAttrDurationMS, ToMilliseconds(duration),
	}

	if status == StatusError {
		args = append(args, LogAttrError, err.Error())
		if i.ContextualLogger != nil {
			i.ContextualLogger.ErrorContext(o.ctx, logMsgOperationFailed, args...)
		} else if i.Logger != nil {
			i.Logger.Error(logMsgOperationFailed, args...)
		}

		return
	}

	if i.ContextualLogger != nil {
		i.ContextualLogger.DebugContext(o.ctx, logMsgOperationCompleted, args...)
	} else if i.Logger != nil {
		i.Logger.Debug(logMsgOperationCompleted, args...)
	}
}

// ToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func ToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

func statusFor(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrTableNotFound):
		return StatusNotFound
	default:
		return StatusError
	}
}

func recordDuration(ctx context.Context, collector MetricsCollector, metric string, d time.Duration, labels map[string]string) {
	if collector == nil {
		return
	}

	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metric, d, labels)
	} else {
		collector.RecordDuration(metric, d, labels)
	}
}

func incrementCounter(ctx context.Context, collector MetricsCollector, metric string, labels map[string]string) {
	if collector == nil {
		return
	}

	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
	} else {
		collector.IncrementCounter(metric, labels)
	}
}

func recordValue(ctx context.Context, collector MetricsCollector, metric string, value float64, labels map[string]string) {
	if collector == nil {
		return
	}

	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metric, value, labels)
	} else {
		collector.RecordValue(metric, value, labels)
	}
}

package observable

import (
	"context"
	"time"

	"github.com/aiswo/librarydesk/library/shared/shell"
)

// CommandWrapper instruments a core command handler with metrics, tracing and logging.
type CommandWrapper[C shell.Command] struct {
	coreHandler      shell.CoreCommandHandler[C]
	commandType      string
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	contextualLogger shell.ContextualLogger
	logger           shell.Logger
}

// NewCommandWrapper creates a new observable wrapper around the core command handler.
func NewCommandWrapper[C shell.Command](
	coreHandler shell.CoreCommandHandler[C],
	opts ...CommandOption[C],
) (*CommandWrapper[C], error) {
	var zeroCommand C

	wrapper := &CommandWrapper[C]{
		coreHandler: coreHandler,
		commandType: zeroCommand.CommandType(),
	}

	for _, opt := range opts {
		if err := opt(wrapper); err != nil {
			return nil, err
		}
	}

	return wrapper, nil
}

// Handle delegates to the core handler and records the outcome it reports.
func (w *CommandWrapper[C]) Handle(ctx context.Context, command C) (shell.HandlerResult, error) {
	commandStart := time.Now()
	ctx, span := shell.StartCommandSpan(ctx, w.tracingCollector, w.commandType)
	shell.LogStart(ctx, w.logger, w.contextualLogger, shell.LogMsgCommandStarted, shell.LogAttrCommandType, w.commandType)

	result, err := w.coreHandler.Handle(ctx, command)
	duration := time.Since(commandStart)

	if result.Degraded {
		shell.LogDegradedLoad(ctx, w.logger, w.contextualLogger, shell.LogAttrCommandType, w.commandType, err)
	}

	status := result.Outcome
	if status == shell.StatusError {
		status = shell.ErrorStatus(err)
	}

	shell.RecordCommandMetrics(ctx, w.metricsCollector, w.commandType, status, result.Degraded, duration)
	shell.FinishSpan(w.tracingCollector, span, status, duration, err)

	if result.Outcome == shell.StatusError {
		shell.LogFailure(ctx, w.logger, w.contextualLogger, shell.LogMsgCommandFailed, shell.LogAttrCommandType, w.commandType, err)
	} else {
		shell.LogCommandCompleted(ctx, w.logger, w.contextualLogger, w.commandType, result, duration)
	}

	return result, err
}

// CommandOption defines a functional option for configuring CommandWrapper.
type CommandOption[C shell.Command] func(*CommandWrapper[C]) error

// WithCommandMetrics sets the metrics collector for the CommandWrapper.
func WithCommandMetrics[C shell.Command](collector shell.MetricsCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.metricsCollector = collector
		return nil
	}
}

// WithCommandTracing sets the tracing collector for the CommandWrapper.
func WithCommandTracing[C shell.Command](collector shell.TracingCollector) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.tracingCollector = collector
		return nil
	}
}

// WithCommandContextualLogging sets the contextual logger for the CommandWrapper.
func WithCommandContextualLogging[C shell.Command](logger shell.ContextualLogger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.contextualLogger = logger
		return nil
	}
}

// WithCommandLogging sets the basic logger for the CommandWrapper.
func WithCommandLogging[C shell.Command](logger shell.Logger) CommandOption[C] {
	return func(w *CommandWrapper[C]) error {
		w.logger = logger
		return nil
	}
}

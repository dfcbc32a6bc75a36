package library

import (
	"github.com/aiswo/librarydesk/library/shared/shell"
	"github.com/aiswo/librarydesk/library/shared/shell/observable"
)

func wrapCommand[C shell.Command](
	core shell.CoreCommandHandler[C],
	o storeOptions,
) (*observable.CommandWrapper[C], error) {
	var opts []observable.CommandOption[C]

	if o.metricsCollector != nil {
		opts = append(opts, observable.WithCommandMetrics[C](o.metricsCollector))
	}

	if o.tracingCollector != nil {
		opts = append(opts, observable.WithCommandTracing[C](o.tracingCollector))
	}

	if o.contextualLogger != nil {
		opts = append(opts, observable.WithCommandContextualLogging[C](o.contextualLogger))
	}

	if o.logger != nil {
		opts = append(opts, observable.WithCommandLogging[C](o.logger))
	}

	return observable.NewCommandWrapper(core, opts...)
}

func wrapQuery[Q shell.Query, R shell.QueryResult](
	core shell.CoreQueryHandler[Q, R],
	o storeOptions,
) (*observable.QueryWrapper[Q, R], error) {
	var opts []observable.QueryOption[Q, R]

	if o.metricsCollector != nil {
		opts = append(opts, observable.WithQueryMetrics[Q, R](o.metricsCollector))
	}

	if o.tracingCollector != nil {
		opts = append(opts, observable.WithQueryTracing[Q, R](o.tracingCollector))
	}

	if o.contextualLogger != nil {
		opts = append(opts, observable.WithQueryContextualLogging[Q, R](o.contextualLogger))
	}

	if o.logger != nil {
		opts = append(opts, observable.WithQueryLogging[Q, R](o.logger))
	}

	return observable.NewQueryWrapper(core, opts...)
}

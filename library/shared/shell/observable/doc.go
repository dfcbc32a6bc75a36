// Package observable wraps command and query handlers with metrics, tracing and logging
// while the handlers themselves stay pure business logic.
//
// The wrappers are applied at wiring time:
//
//	coreHandler := issuebook.NewCommandHandler(backend, "library_data")
//
//	handler, err := observable.NewCommandWrapper[issuebook.Command](
//		coreHandler,
//		observable.WithCommandMetrics[issuebook.Command](metricsCollector),
//		observable.WithCommandTracing[issuebook.Command](tracingCollector),
//		observable.WithCommandContextualLogging[issuebook.Command](contextualLogger),
//	)
//
//	result, err := handler.Handle(ctx, command)
//
// A rejected command is a completed command: it is logged at info level and counted with
// status "rejected". A degraded load is logged at warn level. Only a failed save is an error.
package observable

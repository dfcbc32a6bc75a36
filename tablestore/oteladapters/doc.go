// Package oteladapters implements the tablestore observability interfaces on top of OpenTelemetry.
//
// The same adapters serve the storage engines and the library command and query handlers:
//   - SlogBridgeLogger and OTelLogger implement tablestore.ContextualLogger. The config package picks
//     one of them through LIBRARYDESK_OTEL_LOGGER; library callers can build either directly.
//   - MetricsCollector implements tablestore.ContextualMetricsCollector.
//   - TracingCollector implements tablestore.TracingCollector.
package oteladapters

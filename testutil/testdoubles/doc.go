// Package testdoubles provides test doubles for the tablestore observability interfaces
// and an in-memory tablestore.Backend.
//
//   - MetricsCollectorSpy: captures metrics recording calls for verification
//   - TracingCollectorSpy: captures spans started and finished
//   - ContextualLoggerSpy: captures structured logging with context
//   - LogHandlerSpy: captures slog records
//   - MemoryBackend: keeps tables in a map and can be told to fail loads or saves
//
// These test doubles enable testing of stores, handlers and engines
// without real storage or telemetry backends.
package testdoubles
